// Package notify entrega os avisos transitórios ("toasts") exibidos após
// cada ação do operador.
package notify

import "time"

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

type Notice struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Notifier recebe avisos. Implementações nunca devem falhar para o chamador.
type Notifier interface {
	Notify(n Notice)
}

type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

type multi []Notifier

// Multi repassa cada aviso para todos os notifiers não nulos.
func Multi(ns ...Notifier) Notifier {
	out := make(multi, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (m multi) Notify(n Notice) {
	for _, x := range m {
		x.Notify(n)
	}
}

// Nop descarta todos os avisos.
var Nop Notifier = NotifierFunc(func(Notice) {})

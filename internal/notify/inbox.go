package notify

import (
	"sync"
	"time"
)

const defaultInboxSize = 20

// Inbox guarda os avisos de uma sessão até o front-end buscá-los.
// Ao atingir o limite o aviso mais antigo é descartado.
type Inbox struct {
	mu    sync.Mutex
	items []Notice
	limit int
	now   func() time.Time
}

func NewInbox(limit int) *Inbox {
	if limit <= 0 {
		limit = defaultInboxSize
	}
	return &Inbox{limit: limit, now: time.Now}
}

func (b *Inbox) Notify(n Notice) {
	if n.Variant == "" {
		n.Variant = VariantDefault
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = b.now()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.items) == b.limit {
		b.items = b.items[1:]
	}
	b.items = append(b.items, n)
}

// Drain devolve e remove todos os avisos pendentes (nunca nil).
func (b *Inbox) Drain() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.items
	b.items = nil
	if out == nil {
		out = []Notice{}
	}
	return out
}

// TakeLast devolve o aviso mais recente e descarta os pendentes.
// Usado por telas que só exibem um aviso por vez.
func (b *Inbox) TakeLast() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.items) == 0 {
		return Notice{}, false
	}
	last := b.items[len(b.items)-1]
	b.items = nil
	return last, true
}

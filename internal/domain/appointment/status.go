package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pendente"
	StatusConfirmed Status = "confirmado"
	StatusCancelled Status = "cancelado"
)

var Statuses = []Status{StatusPending, StatusConfirmed, StatusCancelled}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Label é o texto exibido nas opções do formulário.
func (s Status) Label() string {
	switch s {
	case StatusConfirmed:
		return "Confirmado"
	case StatusCancelled:
		return "Cancelado"
	default:
		return "Pendente"
	}
}

// Tone define a cor do badge de status na listagem.
func (s Status) Tone() string {
	switch s {
	case StatusConfirmed:
		return "success"
	case StatusCancelled:
		return "danger"
	default:
		return "warning"
	}
}

// InitialStatus é o status de todo rascunho novo.
func InitialStatus() Status {
	return StatusPending
}

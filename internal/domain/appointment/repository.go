package appointment

// Repository guarda a coleção de agendamentos de UMA categoria.
// As operações são síncronas e em memória; cada categoria tem sua instância.
type Repository interface {
	// -------- Read --------
	List() []Appointment

	Get(id int64) (Appointment, bool)

	// -------- Write --------
	Add(d FormData) Appointment

	// Update e Remove devolvem ErrAppointmentNotFound sem tocar na
	// coleção quando o ID não existe.
	Update(id int64, d FormData) (Appointment, error)

	Remove(id int64) error
}

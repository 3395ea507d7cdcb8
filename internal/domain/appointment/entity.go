package appointment

import (
	"time"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/httperr"
)

var (
	ErrAppointmentNotFound = httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
)

type Appointment struct {
	ID        int64     `json:"id"`
	PetName   string    `json:"petName"`
	OwnerName string    `json:"ownerName"`
	Phone     string    `json:"phone"`
	Date      time.Time `json:"date"`
	Service   string    `json:"service"`
	Status    Status    `json:"status"`
	Notes     string    `json:"notes"`
}

// FormData é o rascunho de um agendamento: todos os campos menos o ID.
type FormData struct {
	PetName   string    `json:"petName"`
	OwnerName string    `json:"ownerName"`
	Phone     string    `json:"phone"`
	Date      time.Time `json:"date"`
	Service   string    `json:"service"`
	Status    Status    `json:"status"`
	Notes     string    `json:"notes"`
}

// ===============================
// Domain Actions
// ===============================

// New monta um agendamento a partir do rascunho com o ID informado.
func New(id int64, d FormData) Appointment {
	ap := Appointment{ID: id}
	ap.Apply(d)
	return ap
}

// Apply sobrescreve os campos com os do rascunho, preservando o ID.
func (ap *Appointment) Apply(d FormData) {
	ap.PetName = d.PetName
	ap.OwnerName = d.OwnerName
	ap.Phone = d.Phone
	ap.Date = d.Date
	ap.Service = d.Service
	ap.Status = d.Status
	ap.Notes = d.Notes
}

func (ap Appointment) FormData() FormData {
	return FormData{
		PetName:   ap.PetName,
		OwnerName: ap.OwnerName,
		Phone:     ap.Phone,
		Date:      ap.Date,
		Service:   ap.Service,
		Status:    ap.Status,
		Notes:     ap.Notes,
	}
}

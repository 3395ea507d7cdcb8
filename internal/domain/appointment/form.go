package appointment

import (
	"time"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/timezone"
)

// FormController guarda o rascunho do diálogo de criação/edição.
// Não valida nada: a validação é feita por Validate antes de gravar.
type FormController struct {
	draft FormData
	loc   *time.Location
}

func NewFormController(loc *time.Location) *FormController {
	if loc == nil {
		loc = timezone.Location(timezone.DefaultTimezone)
	}
	return &FormController{loc: loc}
}

// Draft devolve uma cópia do rascunho atual.
func (f *FormController) Draft() FormData {
	return f.draft
}

// Reset volta o rascunho para os padrões da categoria.
func (f *FormController) Reset(c Category, now time.Time) {
	f.draft = FormData{
		Date:    now,
		Service: c.DefaultService(),
		Status:  InitialStatus(),
	}
}

// Clear descarta o rascunho por completo.
func (f *FormController) Clear() {
	f.draft = FormData{}
}

func (f *FormController) LoadFrom(ap Appointment) {
	f.draft = ap.FormData()
}

func (f *FormController) SetPetName(v string)   { f.draft.PetName = v }
func (f *FormController) SetOwnerName(v string) { f.draft.OwnerName = v }
func (f *FormController) SetPhone(v string)     { f.draft.Phone = v }
func (f *FormController) SetDate(v time.Time)   { f.draft.Date = v }
func (f *FormController) SetService(v string)   { f.draft.Service = v }
func (f *FormController) SetStatus(v Status)    { f.draft.Status = v }
func (f *FormController) SetNotes(v string)     { f.draft.Notes = v }

// SetDateInput interpreta o valor do campo datetime-local. Vazio ou
// ilegível deixa a data zerada, que a validação rejeita.
func (f *FormController) SetDateInput(v string) {
	t, ok := timezone.ParseInput(v, f.loc)
	if !ok {
		f.draft.Date = time.Time{}
		return
	}
	f.draft.Date = t
}

// DraftPatch é uma atualização parcial do rascunho; nil = não altera.
type DraftPatch struct {
	PetName   *string `json:"petName"`
	OwnerName *string `json:"ownerName"`
	Phone     *string `json:"phone"`
	Date      *string `json:"date"`
	Service   *string `json:"service"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`
}

func (f *FormController) Apply(p DraftPatch) {
	if p.PetName != nil {
		f.SetPetName(*p.PetName)
	}
	if p.OwnerName != nil {
		f.SetOwnerName(*p.OwnerName)
	}
	if p.Phone != nil {
		f.SetPhone(*p.Phone)
	}
	if p.Date != nil {
		f.SetDateInput(*p.Date)
	}
	if p.Service != nil {
		f.SetService(*p.Service)
	}
	if p.Status != nil {
		f.SetStatus(Status(*p.Status))
	}
	if p.Notes != nil {
		f.SetNotes(*p.Notes)
	}
}

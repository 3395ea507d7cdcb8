package appointment

import (
	domain "github.com/BruksfildServices01/unicapital-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/dto"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/timezone"
)

// BuildListView monta a listagem da categoria na ordem de inserção.
func BuildListView(c *Coordinator, label string) dto.AppointmentListDTO {
	category := c.Category()
	appointments := c.Appointments()

	out := dto.AppointmentListDTO{
		Category: string(category),
		Label:    label,
		Heading:  "Agendamentos de " + category.ShortName(),
		Items:    make([]dto.AppointmentCardDTO, 0, len(appointments)),
		Total:    len(appointments),
	}

	if len(appointments) == 0 {
		out.Empty = true
		out.EmptyMessage = "Nenhum agendamento encontrado para " + category.ShortName()
		return out
	}

	for _, ap := range appointments {
		out.Items = append(out.Items, cardFor(ap))
	}
	return out
}

func cardFor(ap domain.Appointment) dto.AppointmentCardDTO {
	card := dto.AppointmentCardDTO{
		ID:         ap.ID,
		OwnerName:  ap.OwnerName,
		PetName:    ap.PetName,
		Phone:      ap.Phone,
		DateLabel:  timezone.Format(ap.Date, timezone.DisplayLayout),
		Service:    ap.Service,
		Status:     string(ap.Status),
		StatusTone: ap.Status.Tone(),
		Notes:      ap.Notes,
	}
	if !ap.Date.IsZero() {
		d := ap.Date
		card.Date = &d
	}
	return card
}

// BuildDialogView descreve o diálogo aberto (ou o estado ocioso).
func BuildDialogView(c *Coordinator) dto.DialogDTO {
	out := dto.DialogDTO{State: string(c.State())}

	switch c.State() {
	case StateAdding:
		out.Title = "Novo Agendamento"
		out.Description = "Preencha os dados para criar um novo agendamento."
		out.SubmitLabel = "Salvar Agendamento"
	case StateEditing:
		out.Title = "Editar Agendamento"
		out.Description = "Atualize os dados do agendamento."
		out.SubmitLabel = "Atualizar Agendamento"
	case StateDeleting:
		out.Title = "Confirmar Exclusão"
		out.Description = "Tem certeza que deseja excluir este agendamento? Esta ação não pode ser desfeita."
		out.SubmitLabel = "Excluir"
	default:
		return out
	}

	if target, ok := c.Target(); ok {
		out.Target = &dto.TargetDTO{
			ID:        target.ID,
			OwnerName: target.OwnerName,
			DateLabel: timezone.Format(target.Date, timezone.DisplayLayout),
			Service:   target.Service,
		}
	}

	if c.State() == StateDeleting {
		return out
	}

	draft := c.Draft()
	out.Draft = &dto.DraftDTO{
		PetName:   draft.PetName,
		OwnerName: draft.OwnerName,
		Phone:     draft.Phone,
		DateInput: timezone.FormatInput(draft.Date),
		DateLabel: timezone.Format(draft.Date, timezone.DisplayLayout),
		Service:   draft.Service,
		Status:    string(draft.Status),
		Notes:     draft.Notes,
	}

	for _, s := range c.Category().ServiceOptions() {
		out.ServiceOptions = append(out.ServiceOptions, dto.OptionDTO{Value: s, Label: s})
	}
	for _, s := range domain.Statuses {
		out.StatusOptions = append(out.StatusOptions, dto.OptionDTO{Value: string(s), Label: s.Label()})
	}

	return out
}

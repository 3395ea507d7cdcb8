// Package tui é o front-end de terminal da agenda: as mesmas abas, diálogos
// e avisos da API, operados pelo teclado.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	domain "github.com/BruksfildServices01/unicapital-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/notify"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/schedule"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/unicapital-scheduler/internal/usecase/appointment"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirm
	modeRename
)

// campos do formulário, na ordem de foco
const (
	fieldOwner = iota
	fieldPet
	fieldPhone
	fieldDate
	fieldService
	fieldStatus
	fieldNotes
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Nome do cliente",
	"Nome do pet",
	"Telefone",
	"Data e hora (AAAA-MM-DDTHH:MM)",
	"Serviço",
	"Status (pendente/confirmado/cancelado)",
	"Observações",
}

type Model struct {
	schedule *schedule.Schedule
	inbox    *notify.Inbox

	mode   mode
	cursor int

	inputs [fieldCount]textinput.Model
	focus  int
	rename textinput.Model

	footer    string
	footerErr bool
	quitting  bool
}

func New(s *schedule.Schedule, inbox *notify.Inbox) Model {
	m := Model{schedule: s, inbox: inbox}

	for i := range m.inputs {
		in := textinput.New()
		in.CharLimit = 120
		in.Width = 40
		m.inputs[i] = in
	}
	m.inputs[fieldDate].Placeholder = "2024-05-01T10:00"
	m.inputs[fieldPhone].Placeholder = "11999999999"

	m.rename = textinput.New()
	m.rename.CharLimit = 40
	m.rename.Width = 30

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Quitting() bool { return m.quitting }

func (m Model) Footer() string { return m.footer }

func (m Model) active() *schedule.Tab { return m.schedule.Active() }

// ======================================================
// UPDATE
// ======================================================

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(key)
	case modeConfirm:
		return m.updateConfirm(key)
	case modeRename:
		return m.updateRename(key)
	default:
		return m.updateList(key)
	}
}

func (m Model) updateList(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	coord := m.active().Coordinator
	items := coord.Appointments()

	switch key.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		next := domain.Categories[0]
		for i, c := range domain.Categories {
			if c == m.active().Category {
				next = domain.Categories[(i+1)%len(domain.Categories)]
			}
		}
		m.setError(m.schedule.Switch(next))
		m.cursor = 0

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}

	case "n":
		if m.setError(coord.RequestAdd()) {
			return m, nil
		}
		return m.openForm()

	case "e":
		if len(items) == 0 {
			return m, nil
		}
		if m.setError(coord.RequestEdit(items[m.cursor].ID)) {
			return m, nil
		}
		return m.openForm()

	case "d":
		if len(items) == 0 {
			return m, nil
		}
		if m.setError(coord.RequestDelete(items[m.cursor].ID)) {
			return m, nil
		}
		m.mode = modeConfirm

	case "r":
		if m.setError(m.schedule.BeginRename(m.active().Category)) {
			return m, nil
		}
		_, text, _ := m.schedule.Renaming()
		m.rename.SetValue(text)
		m.rename.CursorEnd()
		m.rename.Focus()
		m.mode = modeRename
		return m, textinput.Blink
	}

	return m, nil
}

func (m Model) openForm() (tea.Model, tea.Cmd) {
	d := m.active().Coordinator.Draft()

	values := [fieldCount]string{
		fieldOwner:   d.OwnerName,
		fieldPet:     d.PetName,
		fieldPhone:   d.Phone,
		fieldDate:    timezone.FormatInput(d.Date),
		fieldService: d.Service,
		fieldStatus:  string(d.Status),
		fieldNotes:   d.Notes,
	}
	for i := range m.inputs {
		m.inputs[i].SetValue(values[i])
		m.inputs[i].Blur()
	}

	m.focus = fieldOwner
	m.inputs[m.focus].Focus()
	m.mode = modeForm
	m.footer = ""
	return m, textinput.Blink
}

func (m Model) updateForm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	coord := m.active().Coordinator

	switch key.String() {
	case "esc":
		_ = coord.Cancel()
		m.mode = modeList
		m.footer = ""
		return m, nil

	case "tab", "down":
		m.moveFocus(1)
		return m, textinput.Blink

	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, textinput.Blink

	case "enter":
		if err := coord.UpdateDraft(m.patch()); err != nil {
			m.setError(err)
			return m, nil
		}

		_, err := coord.Submit()
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			m.footer = validationText(verr)
			m.footerErr = true
			return m, nil
		case err != nil && coord.State() != ucAppointment.StateIdle:
			m.setError(err)
			return m, nil
		}

		m.mode = modeList
		m.clampCursor()
		m.showNotices()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(key)
	return m, cmd
}

func (m Model) updateConfirm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	coord := m.active().Coordinator

	switch key.String() {
	case "y", "enter":
		_ = coord.Confirm()
		m.mode = modeList
		m.clampCursor()
		m.showNotices()
	case "n", "esc":
		_ = coord.Cancel()
		m.mode = modeList
		m.footer = ""
	}
	return m, nil
}

func (m Model) updateRename(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		_ = m.schedule.SetRenameText(m.rename.Value())
		label, err := m.schedule.CommitRename()
		if !m.setError(err) {
			m.footer = "Aba renomeada para " + label
		}
		m.rename.Blur()
		m.mode = modeList
		return m, nil
	case "esc":
		m.schedule.CancelRename()
		m.rename.Blur()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.rename, cmd = m.rename.Update(key)
	return m, cmd
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func (m *Model) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
}

func (m *Model) patch() domain.DraftPatch {
	v := func(i int) *string {
		s := m.inputs[i].Value()
		return &s
	}
	return domain.DraftPatch{
		OwnerName: v(fieldOwner),
		PetName:   v(fieldPet),
		Phone:     v(fieldPhone),
		Date:      v(fieldDate),
		Service:   v(fieldService),
		Status:    v(fieldStatus),
		Notes:     v(fieldNotes),
	}
}

func (m *Model) clampCursor() {
	n := len(m.active().Coordinator.Appointments())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// setError mostra err no rodapé; devolve true se havia erro.
func (m *Model) setError(err error) bool {
	if err == nil {
		return false
	}
	m.footer = errorText(err)
	m.footerErr = true
	return true
}

func (m *Model) showNotices() {
	if m.inbox == nil {
		return
	}
	last, ok := m.inbox.TakeLast()
	if !ok {
		return
	}
	m.footer = last.Title
	if last.Description != "" {
		m.footer += ": " + last.Description
	}
	m.footerErr = last.Variant == notify.VariantDestructive
}

func errorText(err error) string {
	switch {
	case errors.Is(err, ucAppointment.ErrDialogAlreadyOpen):
		return "Já existe uma janela aberta."
	case errors.Is(err, ucAppointment.ErrNoActiveDialog):
		return "Nenhuma janela aberta."
	case errors.Is(err, domain.ErrAppointmentNotFound):
		return "Agendamento não encontrado."
	default:
		return err.Error()
	}
}

func validationText(verr *domain.ValidationError) string {
	msgs := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, " ")
}

// ======================================================
// VIEW
// ======================================================

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	switch m.mode {
	case modeForm:
		b.WriteString(m.viewForm())
	case modeConfirm:
		b.WriteString(m.viewConfirm())
	default:
		b.WriteString(m.viewList())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(domain.Categories))
	for _, t := range m.schedule.Tabs() {
		label := t.Label
		if m.mode == modeRename && t.Category == m.active().Category {
			label = m.rename.View()
		}
		if t.Category == m.active().Category {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewList() string {
	tab := m.active()
	view := ucAppointment.BuildListView(tab.Coordinator, tab.Label)

	var b strings.Builder
	b.WriteString(TitleStyle.Render(view.Heading))
	b.WriteString("\n\n")

	if view.Empty {
		b.WriteString(MutedStyle.Render("  " + view.EmptyMessage))
		b.WriteString("\n")
		return b.String()
	}

	for i, it := range view.Items {
		line := fmt.Sprintf("%-20s %-18s %-16s %s",
			it.DateLabel, it.OwnerName, it.Service, toneStyle(it.StatusTone).Render(it.Status))
		if i == m.cursor {
			b.WriteString(SelectedRowStyle.Render("▸ " + line))
		} else {
			b.WriteString(RowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewForm() string {
	view := ucAppointment.BuildDialogView(m.active().Coordinator)

	var b strings.Builder
	b.WriteString(TitleStyle.Render(view.Title))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(view.Description))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(LabelStyle.Render(fieldLabels[i]))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	services := make([]string, 0, len(view.ServiceOptions))
	for _, o := range view.ServiceOptions {
		services = append(services, o.Label)
	}
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render("Serviços: " + strings.Join(services, ", ")))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render("enter " + strings.ToLower(view.SubmitLabel) + " • tab próximo campo • esc cancelar"))

	return DialogStyle.Render(b.String())
}

func (m Model) viewConfirm() string {
	view := ucAppointment.BuildDialogView(m.active().Coordinator)

	var b strings.Builder
	b.WriteString(TitleStyle.Render(view.Title))
	b.WriteString("\n")
	b.WriteString(view.Description)
	b.WriteString("\n\n")
	if view.Target != nil {
		b.WriteString(fmt.Sprintf("%s • %s • %s", view.Target.OwnerName, view.Target.DateLabel, view.Target.Service))
		b.WriteString("\n\n")
	}
	b.WriteString(MutedStyle.Render("y/enter " + strings.ToLower(view.SubmitLabel) + " • n/esc cancelar"))

	return DangerDialogStyle.Render(b.String())
}

func (m Model) viewFooter() string {
	help := MutedStyle.Render("tab aba • ↑/↓ selecionar • n novo • e editar • d excluir • r renomear • q sair")
	if m.mode == modeRename {
		help = MutedStyle.Render("enter salvar nome • esc cancelar")
	}
	if m.footer == "" {
		return help
	}
	if m.footerErr {
		return ErrorStyle.Render(m.footer) + "\n" + help
	}
	return NoticeStyle.Render(m.footer) + "\n" + help
}

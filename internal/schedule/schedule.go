// Package schedule reúne as duas abas de agendamento (Veterinário e Banho),
// cada uma com sua própria coleção, rascunho e diálogo.
package schedule

import (
	"strings"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/unicapital-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/dto"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/httperr"
	infraRepo "github.com/BruksfildServices01/unicapital-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/notify"
	ucAppointment "github.com/BruksfildServices01/unicapital-scheduler/internal/usecase/appointment"
)

var ErrNotRenaming = httperr.ErrBusiness(httperr.CodeNotRenaming)

type Tab struct {
	Category    domain.Category
	Label       string
	Coordinator *ucAppointment.Coordinator
}

type Options struct {
	// NotifierFor devolve o destino dos avisos de cada aba.
	NotifierFor func(domain.Category) notify.Notifier
	Logger      *zap.Logger
	Location    *time.Location
	Now         func() time.Time
	// Labels sobrescreve os rótulos padrão das abas.
	Labels map[domain.Category]string
}

// Schedule é o seletor de abas. Não é seguro para uso concorrente.
type Schedule struct {
	active domain.Category
	tabs   map[domain.Category]*Tab

	renaming   domain.Category
	renameText string
}

func New(opts Options) *Schedule {
	s := &Schedule{
		active: domain.CategoryVet,
		tabs:   make(map[domain.Category]*Tab, len(domain.Categories)),
	}

	for _, cat := range domain.Categories {
		var n notify.Notifier
		if opts.NotifierFor != nil {
			n = opts.NotifierFor(cat)
		}

		label := cat.DefaultLabel()
		if l := strings.TrimSpace(opts.Labels[cat]); l != "" {
			label = l
		}

		repo := infraRepo.NewAppointmentMemoryRepository(domain.NewSequence())
		s.tabs[cat] = &Tab{
			Category: cat,
			Label:    label,
			Coordinator: ucAppointment.NewCoordinator(cat, repo, ucAppointment.Options{
				Notifier: n,
				Logger:   opts.Logger,
				Location: opts.Location,
				Now:      opts.Now,
			}),
		}
	}

	return s
}

func (s *Schedule) Active() *Tab {
	return s.tabs[s.active]
}

func (s *Schedule) Tab(c domain.Category) (*Tab, error) {
	t, ok := s.tabs[c]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCategory)
	}
	return t, nil
}

// Tabs devolve as abas na ordem de exibição.
func (s *Schedule) Tabs() []*Tab {
	out := make([]*Tab, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		out = append(out, s.tabs[c])
	}
	return out
}

// Switch troca a aba ativa. Um diálogo aberto na aba que sai de cena é
// cancelado; a coleção dela não é tocada.
func (s *Schedule) Switch(c domain.Category) error {
	if _, err := s.Tab(c); err != nil {
		return err
	}
	if c == s.active {
		return nil
	}

	leaving := s.Active().Coordinator
	if leaving.State() != ucAppointment.StateIdle {
		_ = leaving.Cancel()
	}

	s.active = c
	return nil
}

// --------------------------------------------------
// Rename
// --------------------------------------------------

func (s *Schedule) BeginRename(c domain.Category) error {
	t, err := s.Tab(c)
	if err != nil {
		return err
	}
	s.renaming = c
	s.renameText = t.Label
	return nil
}

func (s *Schedule) SetRenameText(text string) error {
	if s.renaming == "" {
		return ErrNotRenaming
	}
	s.renameText = text
	return nil
}

// CommitRename aplica o texto (sem espaços nas pontas). Texto em branco
// mantém o rótulo anterior; em ambos os casos a edição termina.
func (s *Schedule) CommitRename() (string, error) {
	if s.renaming == "" {
		return "", ErrNotRenaming
	}

	t := s.tabs[s.renaming]
	if name := strings.TrimSpace(s.renameText); name != "" {
		t.Label = name
	}

	s.CancelRename()
	return t.Label, nil
}

func (s *Schedule) CancelRename() {
	s.renaming = ""
	s.renameText = ""
}

func (s *Schedule) Renaming() (domain.Category, string, bool) {
	return s.renaming, s.renameText, s.renaming != ""
}

// Rename é o atalho begin + texto + commit. Rótulos iguais nas duas abas
// são permitidos.
func (s *Schedule) Rename(c domain.Category, text string) (string, error) {
	if err := s.BeginRename(c); err != nil {
		return "", err
	}
	s.renameText = text
	return s.CommitRename()
}

// --------------------------------------------------
// View
// --------------------------------------------------

func (s *Schedule) Snapshot() dto.ScheduleDTO {
	out := dto.ScheduleDTO{
		Active: string(s.active),
		Tabs:   make([]dto.TabDTO, 0, len(s.tabs)),
	}

	for _, t := range s.Tabs() {
		out.Tabs = append(out.Tabs, dto.TabDTO{
			Category:     string(t.Category),
			Label:        t.Label,
			Active:       t.Category == s.active,
			Appointments: len(t.Coordinator.Appointments()),
			DialogState:  string(t.Coordinator.State()),
		})
	}

	if c, text, ok := s.Renaming(); ok {
		out.Renaming = &dto.RenameDTO{Category: string(c), Text: text}
	}
	return out
}

// AllAppointments junta as coleções das duas abas (usado nas métricas).
func (s *Schedule) AllAppointments() []domain.Appointment {
	var out []domain.Appointment
	for _, t := range s.Tabs() {
		out = append(out, t.Coordinator.Appointments()...)
	}
	return out
}

package appointment

import (
	"errors"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/unicapital-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/httperr"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/notify"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/timezone"
)

// ======================================================
// DIALOG STATE
// ======================================================

type DialogState string

const (
	StateIdle     DialogState = "idle"
	StateAdding   DialogState = "adding"
	StateEditing  DialogState = "editing"
	StateDeleting DialogState = "deleting"
)

var (
	ErrDialogAlreadyOpen = httperr.ErrBusiness(httperr.CodeDialogAlreadyOpen)
	ErrNoActiveDialog    = httperr.ErrBusiness(httperr.CodeNoActiveDialog)
)

// ======================================================
// NOTICES
// ======================================================

var (
	noticeCreated = notify.Notice{
		Title:       "Agendamento criado",
		Description: "O novo agendamento foi criado com sucesso.",
	}
	noticeUpdated = notify.Notice{
		Title:       "Agendamento atualizado",
		Description: "O agendamento foi atualizado com sucesso.",
	}
	noticeDeleted = notify.Notice{
		Title:       "Agendamento excluído",
		Description: "O agendamento foi excluído com sucesso.",
	}
	noticeStale = notify.Notice{
		Title:       "Agendamento não encontrado",
		Description: "O agendamento não existe mais; nenhuma alteração foi feita.",
		Variant:     notify.VariantDestructive,
	}
)

// ======================================================
// COORDINATOR
// ======================================================

type Options struct {
	Notifier notify.Notifier
	Logger   *zap.Logger
	Location *time.Location
	Now      func() time.Time
}

// Coordinator controla qual diálogo (novo, editar, excluir) está aberto para
// uma categoria e encaminha envio/cancelamento para a coleção.
// Não é seguro para uso concorrente: o chamador serializa os eventos.
type Coordinator struct {
	category domain.Category
	repo     domain.Repository
	form     *domain.FormController
	notifier notify.Notifier
	logger   *zap.Logger
	now      func() time.Time

	state  DialogState
	target int64
}

func NewCoordinator(
	category domain.Category,
	repo domain.Repository,
	opts Options,
) *Coordinator {
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = timezone.Now
	}

	return &Coordinator{
		category: category,
		repo:     repo,
		form:     domain.NewFormController(opts.Location),
		notifier: opts.Notifier,
		logger:   opts.Logger.With(zap.String("category", string(category))),
		now:      opts.Now,
		state:    StateIdle,
	}
}

func (c *Coordinator) Category() domain.Category { return c.category }

func (c *Coordinator) State() DialogState { return c.state }

func (c *Coordinator) Appointments() []domain.Appointment { return c.repo.List() }

// Draft devolve o rascunho atual (significativo em Adding/Editing).
func (c *Coordinator) Draft() domain.FormData { return c.form.Draft() }

// Target devolve o agendamento sendo editado ou excluído.
func (c *Coordinator) Target() (domain.Appointment, bool) {
	if c.state != StateEditing && c.state != StateDeleting {
		return domain.Appointment{}, false
	}
	return c.repo.Get(c.target)
}

// --------------------------------------------------
// Intents (Idle -> *)
// --------------------------------------------------

func (c *Coordinator) RequestAdd() error {
	if c.state != StateIdle {
		return ErrDialogAlreadyOpen
	}

	c.form.Reset(c.category, c.now())
	c.target = 0
	c.state = StateAdding
	return nil
}

func (c *Coordinator) RequestEdit(id int64) error {
	if c.state != StateIdle {
		return ErrDialogAlreadyOpen
	}

	ap, ok := c.repo.Get(id)
	if !ok {
		return domain.ErrAppointmentNotFound
	}

	c.form.LoadFrom(ap)
	c.target = id
	c.state = StateEditing
	return nil
}

func (c *Coordinator) RequestDelete(id int64) error {
	if c.state != StateIdle {
		return ErrDialogAlreadyOpen
	}

	if _, ok := c.repo.Get(id); !ok {
		return domain.ErrAppointmentNotFound
	}

	c.target = id
	c.state = StateDeleting
	return nil
}

// --------------------------------------------------
// Draft edits (Adding / Editing)
// --------------------------------------------------

// UpdateDraft aplica alterações parciais ao rascunho do diálogo aberto.
func (c *Coordinator) UpdateDraft(p domain.DraftPatch) error {
	if c.state != StateAdding && c.state != StateEditing {
		return ErrNoActiveDialog
	}
	c.form.Apply(p)
	return nil
}

// Form expõe o controlador para os setters campo a campo. Alterações fora
// de Adding/Editing são descartadas na próxima abertura de diálogo.
func (c *Coordinator) Form() *domain.FormController { return c.form }

// --------------------------------------------------
// Commit / cancel (* -> Idle)
// --------------------------------------------------

// Submit grava o rascunho (Adding/Editing). Com rascunho inválido devolve
// *domain.ValidationError e o diálogo continua aberto.
func (c *Coordinator) Submit() (domain.Appointment, error) {
	switch c.state {
	case StateAdding:
		return c.submitAdd()
	case StateEditing:
		return c.submitEdit()
	default:
		return domain.Appointment{}, ErrNoActiveDialog
	}
}

func (c *Coordinator) submitAdd() (domain.Appointment, error) {
	draft := c.form.Draft()
	if err := domain.Validate(c.category, draft); err != nil {
		return domain.Appointment{}, err
	}

	ap := c.repo.Add(draft)
	c.notifier.Notify(noticeCreated)
	c.logger.Debug("appointment created", zap.Int64("appointment_id", ap.ID))

	c.form.Reset(c.category, c.now())
	c.close()
	return ap, nil
}

func (c *Coordinator) submitEdit() (domain.Appointment, error) {
	draft := c.form.Draft()
	if err := domain.Validate(c.category, draft); err != nil {
		return domain.Appointment{}, err
	}

	ap, err := c.repo.Update(c.target, draft)
	if err != nil {
		c.handleStale("update", err)
		return domain.Appointment{}, err
	}

	c.notifier.Notify(noticeUpdated)
	c.logger.Debug("appointment updated", zap.Int64("appointment_id", ap.ID))

	c.form.Reset(c.category, c.now())
	c.close()
	return ap, nil
}

// Confirm executa a exclusão pendente (Deleting).
func (c *Coordinator) Confirm() error {
	if c.state != StateDeleting {
		return ErrNoActiveDialog
	}

	id := c.target
	if err := c.repo.Remove(id); err != nil {
		c.handleStale("remove", err)
		return err
	}

	c.notifier.Notify(noticeDeleted)
	c.logger.Debug("appointment deleted", zap.Int64("appointment_id", id))

	c.close()
	return nil
}

// Cancel fecha qualquer diálogo aberto sem alterar a coleção.
func (c *Coordinator) Cancel() error {
	if c.state == StateIdle {
		return ErrNoActiveDialog
	}

	c.form.Clear()
	c.close()
	return nil
}

// alvo sumiu entre a abertura do diálogo e o envio (ex.: envio duplo)
func (c *Coordinator) handleStale(op string, err error) {
	if !errors.Is(err, domain.ErrAppointmentNotFound) {
		return
	}

	c.logger.Warn("appointment target not found",
		zap.String("op", op),
		zap.Int64("appointment_id", c.target),
	)
	c.notifier.Notify(noticeStale)

	c.form.Clear()
	c.close()
}

func (c *Coordinator) close() {
	c.target = 0
	c.state = StateIdle
}

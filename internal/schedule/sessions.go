package schedule

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/unicapital-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/notify"
)

// Session é o estado de agendamento de uma sessão de navegador.
type Session struct {
	ID       string
	UserID   uint
	Schedule *Schedule
	Inbox    *notify.Inbox

	mu sync.Mutex
	// lastSeen é protegido por Registry.mu.
	lastSeen time.Time
}

type RegistryOptions struct {
	Dispatcher *notify.Dispatcher
	Logger     *zap.Logger
	Location   *time.Location
	InboxSize  int
	Now        func() time.Time
}

// Registry mantém uma Schedule por sessão. Sessões nunca compartilham estado.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	opts     RegistryOptions
}

func NewRegistry(opts RegistryOptions) *Registry {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Registry{
		sessions: make(map[string]*Session),
		opts:     opts,
	}
}

func (r *Registry) newSession(id string, userID uint) *Session {
	inbox := notify.NewInbox(r.opts.InboxSize)
	logger := r.opts.Logger.With(zap.String("session_id", id))

	return &Session{
		ID:       id,
		UserID:   userID,
		Inbox:    inbox,
		lastSeen: r.opts.Now(),
		Schedule: New(Options{
			NotifierFor: func(c domain.Category) notify.Notifier {
				if r.opts.Dispatcher == nil {
					return inbox
				}
				return notify.Multi(inbox, r.opts.Dispatcher.For(id, userID, string(c)))
			},
			Logger:   logger,
			Location: r.opts.Location,
		}),
	}
}

// Do executa fn com a sessão bloqueada, criando-a no primeiro uso.
// Eventos da mesma sessão rodam um de cada vez, até o fim.
func (r *Registry) Do(sessionID string, userID uint, fn func(*Session) error) error {
	for {
		s := r.acquire(sessionID, userID)

		s.mu.Lock()
		if r.current(sessionID, s) {
			defer s.mu.Unlock()
			return fn(s)
		}
		// expirada entre acquire e Lock
		s.mu.Unlock()
	}
}

// acquire devolve a sessão registrada, já marcada como vista agora.
func (r *Registry) acquire(sessionID string, userID uint) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		s = r.newSession(sessionID, userID)
		r.sessions[sessionID] = s
		r.opts.Logger.Debug("session created",
			zap.String("session_id", sessionID),
			zap.Uint("user_id", userID),
		)
	}
	s.lastSeen = r.opts.Now()
	return s
}

func (r *Registry) current(sessionID string, s *Session) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[sessionID] == s
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Expire remove sessões sem uso há mais de idle e devolve quantas saíram.
func (r *Registry) Expire(idle time.Duration) int {
	cutoff := r.opts.Now().Add(-idle)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if !s.lastSeen.Before(cutoff) {
			continue
		}
		if !s.mu.TryLock() {
			// em uso agora
			continue
		}
		delete(r.sessions, id)
		s.mu.Unlock()
		removed++
	}
	return removed
}

// RunJanitor chama Expire a cada interval até ctx ser cancelado.
func (r *Registry) RunJanitor(ctx context.Context, interval, idle time.Duration) {
	if interval <= 0 || idle <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Expire(idle); n > 0 {
				r.opts.Logger.Info("expired idle sessions", zap.Int("count", n))
			}
		}
	}
}

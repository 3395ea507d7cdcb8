package notify

import (
	"sync"

	"go.uber.org/zap"
)

const DefaultQueueSize = 100

type Event struct {
	SessionID string
	UserID    uint
	Category  string
	Notice    Notice
}

// Dispatcher registra os avisos em segundo plano. Dispatch nunca bloqueia:
// com a fila cheia (ou após Close) o evento é descartado.
type Dispatcher struct {
	logger *zap.Logger
	queue  chan Event
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger *zap.Logger, size int) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if size <= 0 {
		size = DefaultQueueSize
	}

	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		d.logger.Info("notice",
			zap.String("session_id", ev.SessionID),
			zap.Uint("user_id", ev.UserID),
			zap.String("category", ev.Category),
			zap.String("title", ev.Notice.Title),
			zap.String("variant", string(ev.Notice.Variant)),
		)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		// fila cheia: aviso é cosmético, nunca travar a requisição
		d.logger.Warn("notice queue full, dropping event",
			zap.String("session_id", ev.SessionID),
			zap.String("title", ev.Notice.Title),
		)
	}
}

// Close esvazia a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}

// For devolve um Notifier que despacha avisos com os dados fixos da sessão.
func (d *Dispatcher) For(sessionID string, userID uint, category string) Notifier {
	return NotifierFunc(func(n Notice) {
		d.Dispatch(Event{
			SessionID: sessionID,
			UserID:    userID,
			Category:  category,
			Notice:    n,
		})
	})
}

package repository

import (
	"sync"

	domain "github.com/BruksfildServices01/unicapital-scheduler/internal/domain/appointment"
)

// AppointmentMemoryRepository é a coleção de UMA categoria, na ordem de
// inserção. Nada é persistido: a coleção vive enquanto a sessão existir.
type AppointmentMemoryRepository struct {
	mu    sync.RWMutex
	items []domain.Appointment
	ids   domain.IDGenerator
}

func NewAppointmentMemoryRepository(ids domain.IDGenerator) *AppointmentMemoryRepository {
	if ids == nil {
		ids = domain.NewSequence()
	}
	return &AppointmentMemoryRepository{ids: ids}
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AppointmentMemoryRepository) List() []domain.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Appointment, len(r.items))
	copy(out, r.items)
	return out
}

func (r *AppointmentMemoryRepository) Get(id int64) (domain.Appointment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.items[i], true
	}
	return domain.Appointment{}, false
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *AppointmentMemoryRepository) Add(d domain.FormData) domain.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap := domain.New(r.ids.NextID(), d)
	r.items = append(r.items, ap)
	return ap
}

func (r *AppointmentMemoryRepository) Update(id int64, d domain.FormData) (domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Appointment{}, domain.ErrAppointmentNotFound
	}

	r.items[i].Apply(d)
	return r.items[i], nil
}

func (r *AppointmentMemoryRepository) Remove(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrAppointmentNotFound
	}

	r.items = append(r.items[:i:i], r.items[i+1:]...)
	return nil
}

func (r *AppointmentMemoryRepository) indexOf(id int64) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Compile-time check
var _ domain.Repository = (*AppointmentMemoryRepository)(nil)

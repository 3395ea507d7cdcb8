package schedule

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	domain "github.com/BruksfildServices01/unicapital-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/notify"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestRegistry_SessionsDoNotShareState(t *testing.T) {
	r := NewRegistry(RegistryOptions{Location: time.UTC})

	err := r.Do("a", 1, func(s *Session) error {
		addVia(t, s.Schedule.Active().Coordinator, "Maria")
		return nil
	})
	require.NoError(t, err)

	err = r.Do("b", 1, func(s *Session) error {
		assert.Empty(t, s.Schedule.AllAppointments())
		return nil
	})
	require.NoError(t, err)

	err = r.Do("a", 1, func(s *Session) error {
		assert.Len(t, s.Schedule.AllAppointments(), 1)
		titles := []string{}
		for _, n := range s.Inbox.Drain() {
			titles = append(titles, n.Title)
		}
		assert.Equal(t, []string{"Agendamento criado"}, titles)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_ConcurrentEventsAreSerialised(t *testing.T) {
	r := NewRegistry(RegistryOptions{Location: time.UTC})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Do("same", 1, func(s *Session) error {
				c := s.Schedule.Active().Coordinator
				if err := c.RequestAdd(); err != nil {
					return err
				}
				c.Form().SetOwnerName("Maria")
				c.Form().SetPhone("11999999999")
				_, err := c.Submit()
				assert.NoError(t, err)
				return err
			})
		}()
	}
	wg.Wait()

	_ = r.Do("same", 1, func(s *Session) error {
		list := s.Schedule.Active().Coordinator.Appointments()
		assert.Len(t, list, 20)
		seen := map[int64]bool{}
		for _, ap := range list {
			seen[ap.ID] = true
		}
		assert.Len(t, seen, 20)
		return nil
	})
}

func TestRegistry_Expire(t *testing.T) {
	clk := &clock{now: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
	r := NewRegistry(RegistryOptions{Now: clk.Now})

	require.NoError(t, r.Do("old", 1, func(*Session) error { return nil }))
	clk.Advance(2 * time.Hour)
	require.NoError(t, r.Do("fresh", 2, func(*Session) error { return nil }))

	assert.Equal(t, 1, r.Expire(time.Hour))
	assert.Equal(t, 1, r.Len())

	// sessão recriada vem vazia
	_ = r.Do("old", 1, func(s *Session) error {
		assert.Empty(t, s.Schedule.AllAppointments())
		return nil
	})
}

func TestRegistry_DispatcherReceivesNotices(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	d := notify.NewDispatcher(zap.New(core), 10)

	r := NewRegistry(RegistryOptions{Dispatcher: d, Location: time.UTC})
	require.NoError(t, r.Do("sess-1", 7, func(s *Session) error {
		require.NoError(t, s.Schedule.Switch(domain.CategoryBanho))
		addVia(t, s.Schedule.Active().Coordinator, "João")
		return nil
	}))
	d.Close()

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "sess-1", fields["session_id"])
	assert.Equal(t, "BANHO", fields["category"])
}

func TestRegistry_RunJanitorStopsOnCancel(t *testing.T) {
	r := NewRegistry(RegistryOptions{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.RunJanitor(ctx, 5*time.Millisecond, time.Hour)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestRegistry_NewSessionIsNotStale(t *testing.T) {
	clk := &clock{now: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
	r := NewRegistry(RegistryOptions{Now: clk.Now})

	require.NoError(t, r.Do("s", 1, func(*Session) error { return nil }))

	assert.Equal(t, 0, r.Expire(time.Hour))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_ExpireDuringRequestsKeepsState(t *testing.T) {
	r := NewRegistry(RegistryOptions{Location: time.UTC})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ctx.Err() == nil {
			r.Expire(time.Hour)
		}
	}()

	lost := 0
	for i := 0; i < 2000; i++ {
		sid := "sid-" + strconv.Itoa(i)

		require.NoError(t, r.Do(sid, 1, func(s *Session) error {
			_, err := s.Schedule.Rename(domain.CategoryVet, "Clínica")
			return err
		}))
		require.NoError(t, r.Do(sid, 1, func(s *Session) error {
			tab, err := s.Schedule.Tab(domain.CategoryVet)
			if err != nil {
				return err
			}
			if tab.Label != "Clínica" {
				lost++
			}
			return nil
		}))
	}

	cancel()
	<-done
	assert.Zero(t, lost)
}

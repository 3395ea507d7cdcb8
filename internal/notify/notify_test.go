package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInbox_TakeLast(t *testing.T) {
	box := NewInbox(5)

	_, ok := box.TakeLast()
	assert.False(t, ok)

	box.Notify(Notice{Title: "a"})
	box.Notify(Notice{Title: "b", Variant: VariantDestructive})

	last, ok := box.TakeLast()
	require.True(t, ok)
	assert.Equal(t, "b", last.Title)
	assert.Equal(t, VariantDestructive, last.Variant)
	assert.Empty(t, box.Drain())
}

func TestInbox_DrainAndLimit(t *testing.T) {
	box := NewInbox(2)

	box.Notify(Notice{Title: "a"})
	box.Notify(Notice{Title: "b"})
	box.Notify(Notice{Title: "c"})

	got := box.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Title)
	assert.Equal(t, VariantDefault, got[0].Variant)
	assert.False(t, got[0].CreatedAt.IsZero())

	assert.Empty(t, box.Drain())
	assert.NotNil(t, box.Drain())
}

func TestMulti_SkipsNil(t *testing.T) {
	a := NewInbox(0)
	b := NewInbox(0)

	Multi(a, nil, b).Notify(Notice{Title: "x"})

	assert.Len(t, a.Drain(), 1)
	assert.Len(t, b.Drain(), 1)
}

func TestDispatcher_LogsAndCloses(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	d := NewDispatcher(zap.New(core), 10)

	d.For("sid-1", 7, "VET").Notify(Notice{Title: "Agendamento criado"})
	d.Close()

	entries := logs.FilterMessage("notice").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "sid-1", entries[0].ContextMap()["session_id"])
	assert.Equal(t, "Agendamento criado", entries[0].ContextMap()["title"])

	// após Close o despacho é descartado sem panic
	assert.NotPanics(t, func() {
		d.Dispatch(Event{SessionID: "late"})
	})
	d.Close()
}

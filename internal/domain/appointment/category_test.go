package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/httperr"
)

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" vet ")
	require.NoError(t, err)
	assert.Equal(t, CategoryVet, c)

	c, err = ParseCategory("BANHO")
	require.NoError(t, err)
	assert.Equal(t, CategoryBanho, c)

	_, err = ParseCategory("tosa")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidCategory))
}

func TestCategory_Services(t *testing.T) {
	assert.Equal(t, []string{"CALL", "Vacinação", "Exames de Rotina"}, CategoryVet.ServiceOptions())
	assert.Equal(t, []string{"Banho e Tosa", "Banho", "Tosa"}, CategoryBanho.ServiceOptions())

	assert.True(t, CategoryBanho.AcceptsService(CategoryBanho.DefaultService()))
	assert.True(t, CategoryVet.AcceptsService(CategoryVet.DefaultService()))
	assert.False(t, CategoryVet.AcceptsService("Tosa"))

	opts := CategoryVet.ServiceOptions()
	opts[0] = "mutated"
	assert.Equal(t, "CALL", CategoryVet.ServiceOptions()[0])
}

func TestStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
	assert.Equal(t, "success", StatusConfirmed.Tone())
	assert.Equal(t, "danger", StatusCancelled.Tone())
	assert.Equal(t, "warning", StatusPending.Tone())
	assert.False(t, Status("").IsValid())
}

func TestSequence_IsMonotonic(t *testing.T) {
	seq := NewSequence()
	seen := map[int64]bool{}
	var last int64
	for i := 0; i < 1000; i++ {
		id := seq.NextID()
		assert.Greater(t, id, last)
		assert.False(t, seen[id])
		seen[id] = true
		last = id
	}
}

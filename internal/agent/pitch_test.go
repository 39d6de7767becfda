package agent

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammedtarek245/real-estate-ai-agent/internal/property"
)

func seededAgent(t *testing.T, seed int64) *Agent {
	t.Helper()
	return New(testDataset(t), WithLogger(discardLogger()), WithRand(rand.NewSource(seed)))
}

func TestPitchDoesNotRepeatUntilPoolExhausted(t *testing.T) {
	a := seededAgent(t, 42)
	state := NewState(DialectEgyptian)

	seen := make(map[int]bool)
	for i := 0; i < len(salesArguments); i++ {
		a.adaptiveSalesPitch(state)
		idx := state.UsedSalesArguments[len(state.UsedSalesArguments)-1]
		require.False(t, seen[idx], "argument %d repeated before pool exhausted", idx)
		seen[idx] = true
	}
	assert.Len(t, state.UsedSalesArguments, len(salesArguments))
	assert.Equal(t, len(salesArguments), state.SalesPitchStage)
}

func TestPitchResetsAfterExhaustion(t *testing.T) {
	a := seededAgent(t, 7)
	state := NewState(DialectEgyptian)

	for i := 0; i < len(salesArguments); i++ {
		a.adaptiveSalesPitch(state)
	}
	a.adaptiveSalesPitch(state)

	assert.Len(t, state.UsedSalesArguments, 1)
	assert.Equal(t, len(salesArguments)+1, state.SalesPitchStage)
}

func TestPitchPersonalizedWithProperty(t *testing.T) {
	a := seededAgent(t, 1)
	state := NewState(DialectEgyptian)
	state.CurrentProperty = &property.Property{
		ID: 1, Type: "شقة", Location: "Cairo", Neighborhood: "المعادي",
		Price: 2_000_000, Currency: "جنيه",
	}

	pitch := a.adaptiveSalesPitch(state)

	assert.Contains(t, pitch, "السعر (2,000,000) أقل من متوسط أسعار العقارات المماثلة")
	assert.NotContains(t, pitch, "المنطقة دي")
}

func TestPitchWithoutPropertyStaysGeneric(t *testing.T) {
	a := seededAgent(t, 1)
	state := NewState(DialectEgyptian)

	pitch := a.adaptiveSalesPitch(state)

	assert.NotContains(t, pitch, "أقل من متوسط أسعار العقارات")
	assert.NotEmpty(t, pitch)
}

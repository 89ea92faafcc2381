package internal

import (
	"testing"

	"marketgps/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCalculateCompositionMetrics(t *testing.T) {
	t.Run("equal weighted set", func(t *testing.T) {
		set := newSet(
			map[string]float64{"A": 0.25, "B": 0.25, "C": 0.25, "D": 0.25},
			[]string{"A", "B", "C", "D"},
		)

		metrics, err := CalculateCompositionMetrics(set)
		require.NoError(t, err)

		require.InDelta(t, 1.0, metrics.Sum, 1e-12)
		require.InDelta(t, 0.25, metrics.MinWeight, 1e-12)
		require.InDelta(t, 0.25, metrics.MaxWeight, 1e-12)
		require.InDelta(t, 0.25, metrics.Concentration, 1e-12)
		require.InDelta(t, 4.0, metrics.EffectiveHoldings, 1e-9)
		require.False(t, metrics.OffTarget)
	})

	t.Run("concentrated set", func(t *testing.T) {
		set := newSet(map[string]float64{"A": 0.9, "B": 0.1}, []string{"A", "B"})

		metrics, err := CalculateCompositionMetrics(set)
		require.NoError(t, err)

		require.InDelta(t, 0.82, metrics.Concentration, 1e-9)
		require.Less(t, metrics.EffectiveHoldings, 2.0)
	})

	t.Run("off target set is flagged", func(t *testing.T) {
		set := newSet(map[string]float64{"A": 0.5, "B": 0.2}, []string{"A", "B"})

		metrics, err := CalculateCompositionMetrics(set)
		require.NoError(t, err)

		require.True(t, metrics.OffTarget)
		require.InDelta(t, 0.7, metrics.Sum, 1e-12)
	})

	t.Run("empty set", func(t *testing.T) {
		metrics, err := CalculateCompositionMetrics(domain.NewAllocationSet(1.0))
		require.NoError(t, err)

		require.Equal(t, &CompositionMetrics{}, metrics)
	})
}

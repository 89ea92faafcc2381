package l2_service

import (
	"context"
	"testing"

	"marketgps/internal/domain"

	"github.com/stretchr/testify/require"
)

func testSet(ids ...string) domain.AllocationSet {
	set := domain.NewAllocationSet(1.0)
	for _, id := range ids {
		set.Slots = append(set.Slots, domain.NewSlot(id, 0, nil, nil, set.Target))
	}
	return set
}

func TestEvaluateWeights(t *testing.T) {
	handler := NewWeightExpressionService()
	ctx := context.Background()

	t.Run("score based expression", func(t *testing.T) {
		set := testSet("AAPL", "MSFT")
		scores := map[string]float64{"AAPL": 2, "MSFT": 4}

		weights, err := handler.EvaluateWeights(ctx, set, "score * 0.5", scores)
		require.NoError(t, err)

		require.InDelta(t, 1.0, weights["AAPL"], 1e-12)
		require.InDelta(t, 2.0, weights["MSFT"], 1e-12)
	})

	t.Run("rank and count variables", func(t *testing.T) {
		set := testSet("AAPL", "MSFT", "GOOG")
		scores := map[string]float64{"AAPL": 10, "MSFT": 30, "GOOG": 20}

		// inverse rank weighting: best score gets the biggest raw weight
		weights, err := handler.EvaluateWeights(ctx, set, "(count - rank) + 1", scores)
		require.NoError(t, err)

		require.InDelta(t, 3.0, weights["MSFT"], 1e-12)
		require.InDelta(t, 2.0, weights["GOOG"], 1e-12)
		require.InDelta(t, 1.0, weights["AAPL"], 1e-12)
	})

	t.Run("helper functions", func(t *testing.T) {
		set := testSet("AAPL")
		scores := map[string]float64{"AAPL": 9}

		weights, err := handler.EvaluateWeights(ctx, set, "clamp(sqrt(score), 0, 2)", scores)
		require.NoError(t, err)

		require.InDelta(t, 2.0, weights["AAPL"], 1e-12)
	})

	t.Run("missing score evaluates as zero", func(t *testing.T) {
		set := testSet("AAPL", "MSFT")
		scores := map[string]float64{"AAPL": 5}

		weights, err := handler.EvaluateWeights(ctx, set, "score", scores)
		require.NoError(t, err)

		require.Equal(t, 0.0, weights["MSFT"])
	})

	t.Run("negative results floor at zero", func(t *testing.T) {
		set := testSet("AAPL")
		scores := map[string]float64{"AAPL": -3}

		weights, err := handler.EvaluateWeights(ctx, set, "score", scores)
		require.NoError(t, err)

		require.Equal(t, 0.0, weights["AAPL"])
	})

	t.Run("division by zero score is rejected", func(t *testing.T) {
		set := testSet("AAPL")
		scores := map[string]float64{"AAPL": 0}

		_, err := handler.EvaluateWeights(ctx, set, "1.0 / score", scores)
		require.Error(t, err)
	})

	t.Run("empty expression", func(t *testing.T) {
		set := testSet("AAPL")

		_, err := handler.EvaluateWeights(ctx, set, "", nil)
		require.Error(t, err)
	})

	t.Run("malformed expression", func(t *testing.T) {
		set := testSet("AAPL")

		_, err := handler.EvaluateWeights(ctx, set, "score *", nil)
		require.Error(t, err)
	})
}

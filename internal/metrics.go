package internal

import (
	"fmt"

	"marketgps/internal/domain"

	"github.com/montanaflynn/stats"
)

// Summary numbers the builder shows next to the allocation. Concentration is
// the Herfindahl index over normalized shares; effective holdings is its
// reciprocal (an equal-weighted 10 slot set has 10 effective holdings).
type CompositionMetrics struct {
	Sum               float64 `json:"sum"`
	MinWeight         float64 `json:"minWeight"`
	MaxWeight         float64 `json:"maxWeight"`
	Concentration     float64 `json:"concentration"`
	EffectiveHoldings float64 `json:"effectiveHoldings"`
	OffTarget         bool    `json:"offTarget"`
}

func CalculateCompositionMetrics(set domain.AllocationSet) (*CompositionMetrics, error) {
	if len(set.Slots) == 0 {
		return &CompositionMetrics{}, nil
	}

	weights := make([]float64, 0, len(set.Slots))
	for _, slot := range set.Slots {
		weights = append(weights, slot.Weight)
	}

	sum, err := stats.Sum(weights)
	if err != nil {
		return nil, fmt.Errorf("failed to sum weights: %w", err)
	}
	minWeight, err := stats.Min(weights)
	if err != nil {
		return nil, fmt.Errorf("failed to compute min weight: %w", err)
	}
	maxWeight, err := stats.Max(weights)
	if err != nil {
		return nil, fmt.Errorf("failed to compute max weight: %w", err)
	}

	concentration := 0.0
	if sum > 0 {
		for _, w := range weights {
			share := w / sum
			concentration += share * share
		}
	}
	effectiveHoldings := 0.0
	if concentration > 0 {
		effectiveHoldings = 1 / concentration
	}

	return &CompositionMetrics{
		Sum:               sum,
		MinWeight:         minWeight,
		MaxWeight:         maxWeight,
		Concentration:     concentration,
		EffectiveHoldings: effectiveHoldings,
		OffTarget:         set.OffTarget(),
	}, nil
}

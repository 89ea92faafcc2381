package l2_service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"marketgps/internal/domain"

	"github.com/maja42/goval"
)

// Evaluates the builder's "advanced" weight formulas. An expression is run
// once per slot with that slot's variables bound; the raw results are not
// normalized here - callers decide whether to snap them back to target.
//
// Variables: score (backend asset score, 0 when absent), rank (1-based,
// descending score), count (slot count), weight (current weight).

type WeightExpressionService interface {
	EvaluateWeights(ctx context.Context, set domain.AllocationSet, expression string, scoresByID map[string]float64) (map[string]float64, error)
}

type weightExpressionServiceHandler struct{}

func NewWeightExpressionService() WeightExpressionService {
	return weightExpressionServiceHandler{}
}

func constructFunctionMap() map[string]goval.ExpressionFunction {
	return map[string]goval.ExpressionFunction{
		"clamp": func(args ...interface{}) (interface{}, error) {
			if len(args) < 3 {
				return 0, fmt.Errorf("clamp needs 3 args, got %d", len(args))
			}
			x, err := argToFloat(args[0])
			if err != nil {
				return 0, err
			}
			lo, err := argToFloat(args[1])
			if err != nil {
				return 0, err
			}
			hi, err := argToFloat(args[2])
			if err != nil {
				return 0, err
			}
			return math.Min(math.Max(x, lo), hi), nil
		},
		"abs": func(args ...interface{}) (interface{}, error) {
			if len(args) < 1 {
				return 0, fmt.Errorf("abs needs 1 arg, got %d", len(args))
			}
			x, err := argToFloat(args[0])
			if err != nil {
				return 0, err
			}
			return math.Abs(x), nil
		},
		"sqrt": func(args ...interface{}) (interface{}, error) {
			if len(args) < 1 {
				return 0, fmt.Errorf("sqrt needs 1 arg, got %d", len(args))
			}
			x, err := argToFloat(args[0])
			if err != nil {
				return 0, err
			}
			if x < 0 {
				return 0, fmt.Errorf("sqrt of negative value %f", x)
			}
			return math.Sqrt(x), nil
		},
		"min": func(args ...interface{}) (interface{}, error) {
			if len(args) < 2 {
				return 0, fmt.Errorf("min needs 2 args, got %d", len(args))
			}
			a, err := argToFloat(args[0])
			if err != nil {
				return 0, err
			}
			b, err := argToFloat(args[1])
			if err != nil {
				return 0, err
			}
			return math.Min(a, b), nil
		},
		"max": func(args ...interface{}) (interface{}, error) {
			if len(args) < 2 {
				return 0, fmt.Errorf("max needs 2 args, got %d", len(args))
			}
			a, err := argToFloat(args[0])
			if err != nil {
				return 0, err
			}
			b, err := argToFloat(args[1])
			if err != nil {
				return 0, err
			}
			return math.Max(a, b), nil
		},
	}
}

func argToFloat(arg interface{}) (float64, error) {
	switch v := arg.(type) {
	case int:
		return float64(v), nil
	case float64:
		return v, nil
	}
	return 0, fmt.Errorf("expected numeric argument, got %T", arg)
}

func (h weightExpressionServiceHandler) EvaluateWeights(
	ctx context.Context,
	set domain.AllocationSet,
	expression string,
	scoresByID map[string]float64,
) (map[string]float64, error) {
	if expression == "" {
		return nil, fmt.Errorf("weight expression is empty")
	}

	rankByID := rankSlotsByScore(set, scoresByID)

	eval := goval.NewEvaluator()
	functions := constructFunctionMap()

	weights := map[string]float64{}
	for _, slot := range set.Slots {
		variables := map[string]interface{}{
			"score":  scoresByID[slot.ID],
			"rank":   rankByID[slot.ID],
			"count":  len(set.Slots),
			"weight": slot.Weight,
		}

		result, err := eval.Evaluate(expression, variables, functions)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate weight expression for %q: %w", slot.ID, err)
		}
		r, err := argToFloat(result)
		if err != nil {
			return nil, fmt.Errorf("weight expression for %q produced a non-numeric result: %w", slot.ID, err)
		}
		if math.IsNaN(r) {
			return nil, fmt.Errorf("weight expression for %q produced NaN", slot.ID)
		}
		if math.IsInf(r, 0) {
			return nil, fmt.Errorf("weight expression for %q produced infinity", slot.ID)
		}
		// negative raw weights have no meaning in a long-only allocation
		if r < 0 {
			r = 0
		}
		weights[slot.ID] = r
	}

	return weights, nil
}

// rank 1 is the best score; ties break by insertion order
func rankSlotsByScore(set domain.AllocationSet, scoresByID map[string]float64) map[string]int {
	type slotScore struct {
		id    string
		score float64
		pos   int
	}
	scored := make([]slotScore, 0, len(set.Slots))
	for i, slot := range set.Slots {
		scored = append(scored, slotScore{
			id:    slot.ID,
			score: scoresByID[slot.ID],
			pos:   i,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].pos < scored[j].pos
	})

	rankByID := map[string]int{}
	for i, s := range scored {
		rankByID[s.id] = i + 1
	}
	return rankByID
}

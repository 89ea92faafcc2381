package l3_service

import (
	"context"
	"errors"
	"fmt"

	"marketgps/internal"
	"marketgps/internal/domain"
	"marketgps/internal/logger"
	"marketgps/internal/repository"
	l2_service "marketgps/internal/service/l2"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	GroupSafe = "safe"
	GroupRisk = "risk"
)

// SeededAllocation is a template loaded into a working allocation set.
// GroupByID carries the template's block grouping so the barbell screen can
// prefill its safe/risk partition.
type SeededAllocation struct {
	TemplateName string
	Set          domain.AllocationSet
	GroupByID    map[string]string
}

type BuilderService interface {
	SeedFromTemplate(ctx context.Context, strategyTemplateID uuid.UUID) (*SeededAllocation, error)
	BarbellSplit(ctx context.Context, set domain.AllocationSet, safeIDs []string, safeFraction float64) (*domain.AllocationSet, error)
	PreviewExpression(ctx context.Context, set domain.AllocationSet, expression string, scoresByID map[string]float64) (*domain.AllocationSet, error)
	Compose(set domain.AllocationSet, blockNameByID map[string]string) ([]domain.BlockAllocation, error)
}

func NewBuilderService(
	strategyTemplateRepository repository.StrategyTemplateRepository,
	weightExpressionService l2_service.WeightExpressionService,
) BuilderService {
	return builderServiceHandler{
		StrategyTemplateRepository: strategyTemplateRepository,
		WeightExpressionService:    weightExpressionService,
	}
}

type builderServiceHandler struct {
	StrategyTemplateRepository repository.StrategyTemplateRepository
	WeightExpressionService    l2_service.WeightExpressionService
}

func (h builderServiceHandler) SeedFromTemplate(ctx context.Context, strategyTemplateID uuid.UUID) (*SeededAllocation, error) {
	template, blocks, err := h.StrategyTemplateRepository.Get(strategyTemplateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get strategy template: %w", err)
	}

	set := domain.NewAllocationSet(domain.DefaultTarget)
	groupByID := map[string]string{}
	for _, block := range blocks {
		var minWeight, maxWeight *float64
		if block.MinWeight != nil {
			v := block.MinWeight.InexactFloat64()
			minWeight = &v
		}
		if block.MaxWeight != nil {
			v := block.MaxWeight.InexactFloat64()
			maxWeight = &v
		}
		set.Slots = append(set.Slots, domain.NewSlot(
			block.BlockName,
			block.DefaultWeight.InexactFloat64(),
			minWeight,
			maxWeight,
			set.Target,
		))
		if block.GroupName != nil {
			groupByID[block.BlockName] = *block.GroupName
		}
	}

	// stored templates may carry stale or partial weights; snap to target
	// before handing the set to the builder
	normalized, err := internal.Normalize(set)
	var zeroSum internal.ZeroSumError
	if errors.As(err, &zeroSum) {
		normalized = internal.Equalize(set)
	} else if err != nil {
		return nil, fmt.Errorf("failed to normalize template weights: %w", err)
	}

	logger.FromContext(ctx).Infow("seeded allocation from template",
		"template", template.Name,
		"blocks", len(blocks),
	)

	return &SeededAllocation{
		TemplateName: template.Name,
		Set:          normalized,
		GroupByID:    groupByID,
	}, nil
}

// BarbellSplit scales the "safe" slots to safeFraction of target and the
// rest to the remainder, keeping relative proportions inside each side. If
// one side has no slots the result cannot reach target; that surfaces as an
// off-target report, not an error.
func (h builderServiceHandler) BarbellSplit(ctx context.Context, set domain.AllocationSet, safeIDs []string, safeFraction float64) (*domain.AllocationSet, error) {
	if safeFraction < 0 || safeFraction > 1 {
		return nil, fmt.Errorf("safe fraction should be within [0, 1], got %f", safeFraction)
	}

	safeSet := map[string]bool{}
	for _, id := range safeIDs {
		if set.IndexOf(id) < 0 {
			return nil, internal.SlotNotFoundError{ID: id}
		}
		safeSet[id] = true
	}

	out, err := internal.RedistributeByGroup(
		set,
		func(id string) string {
			if safeSet[id] {
				return GroupSafe
			}
			return GroupRisk
		},
		map[string]float64{
			GroupSafe: safeFraction,
			GroupRisk: 1 - safeFraction,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to redistribute barbell groups: %w", err)
	}

	if out.OffTarget() {
		logger.FromContext(ctx).Warnf("barbell split left allocation off target: sum=%f", out.Sum())
	}

	return &out, nil
}

func (h builderServiceHandler) PreviewExpression(ctx context.Context, set domain.AllocationSet, expression string, scoresByID map[string]float64) (*domain.AllocationSet, error) {
	rawWeights, err := h.WeightExpressionService.EvaluateWeights(ctx, set, expression, scoresByID)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate weight expression: %w", err)
	}

	cp := set.DeepCopy()
	for i := range cp.Slots {
		cp.Slots[i].Weight = rawWeights[cp.Slots[i].ID]
	}

	normalized, err := internal.Normalize(cp)
	var zeroSum internal.ZeroSumError
	if errors.As(err, &zeroSum) {
		normalized = internal.Equalize(cp)
	} else if err != nil {
		return nil, fmt.Errorf("failed to normalize expression weights: %w", err)
	}

	return &normalized, nil
}

// Compose serializes the set into the scoring backend's save payload.
// Weights become decimal percentages rounded to two places, with the
// rounding remainder put on the first line so the payload sums to 100
// exactly. Slots missing from blockNameByID fall back to their own id.
func (h builderServiceHandler) Compose(set domain.AllocationSet, blockNameByID map[string]string) ([]domain.BlockAllocation, error) {
	if len(set.Slots) == 0 {
		return nil, fmt.Errorf("cannot compose an empty allocation")
	}
	if set.OffTarget() {
		return nil, fmt.Errorf("cannot compose an off-target allocation: sum is %f, target is %f", set.Sum(), set.Target)
	}

	hundred := decimal.NewFromInt(100)
	out := make([]domain.BlockAllocation, 0, len(set.Slots))
	total := decimal.Zero
	for _, slot := range set.Slots {
		pct := decimal.NewFromFloat(slot.Weight / set.Target).Mul(hundred).Round(2)
		blockName := blockNameByID[slot.ID]
		if blockName == "" {
			blockName = slot.ID
		}
		out = append(out, domain.BlockAllocation{
			Ticker:    slot.ID,
			Weight:    pct,
			BlockName: blockName,
		})
		total = total.Add(pct)
	}
	out[0].Weight = out[0].Weight.Add(hundred.Sub(total))

	return out, nil
}

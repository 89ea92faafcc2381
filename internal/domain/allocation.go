package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	// DefaultTarget is the sum a valid allocation reaches. Weights are
	// fractions of 1, not percentages - conversion happens at the compose
	// boundary only.
	DefaultTarget = 1.0

	// DefaultPrecision is the rounding unit Equalize snaps weights to
	// (basis points).
	DefaultPrecision = 0.0001

	// SumEpsilon is the tolerance used when comparing weight sums.
	SumEpsilon = 1e-6
)

// Slot is one allocation line item - an asset position or a strategy block.
// Bounds are resolved when the slot is constructed and carried with the
// value from then on.
type Slot struct {
	ID        string
	Weight    float64
	MinWeight float64
	MaxWeight float64
}

// NewSlot resolves optional bounds against the set's target. Nil min/max
// default to [0, target].
func NewSlot(id string, weight float64, minWeight, maxWeight *float64, target float64) Slot {
	s := Slot{
		ID:        id,
		Weight:    weight,
		MinWeight: 0,
		MaxWeight: target,
	}
	if minWeight != nil {
		s.MinWeight = *minWeight
	}
	if maxWeight != nil {
		s.MaxWeight = *maxWeight
	}
	return s
}

// AllocationSet is an ordered sequence of slots whose weights should sum to
// Target. Order is insertion order; it never affects correctness but keeps
// display stable and makes tie-breaks deterministic.
type AllocationSet struct {
	Slots     []Slot
	Target    float64
	Precision float64
}

func NewAllocationSet(target float64) AllocationSet {
	if target <= 0 {
		target = DefaultTarget
	}
	return AllocationSet{
		Slots:     []Slot{},
		Target:    target,
		Precision: DefaultPrecision,
	}
}

func (s AllocationSet) DeepCopy() AllocationSet {
	cp := AllocationSet{
		Slots:     make([]Slot, len(s.Slots)),
		Target:    s.Target,
		Precision: s.Precision,
	}
	copy(cp.Slots, s.Slots)
	return cp
}

// IndexOf returns the position of the slot with the given id, or -1.
func (s AllocationSet) IndexOf(id string) int {
	for i, slot := range s.Slots {
		if slot.ID == id {
			return i
		}
	}
	return -1
}

func (s AllocationSet) SlotIDs() []string {
	ids := make([]string, 0, len(s.Slots))
	for _, slot := range s.Slots {
		ids = append(ids, slot.ID)
	}
	return ids
}

func (s AllocationSet) Sum() float64 {
	sum := 0.0
	for _, slot := range s.Slots {
		sum += slot.Weight
	}
	return sum
}

// OffTarget reports whether the set's sum has drifted from the target. An
// empty set trivially sums to 0 and is not considered off target.
func (s AllocationSet) OffTarget() bool {
	if len(s.Slots) == 0 {
		return false
	}
	return math.Abs(s.Sum()-s.Target) > SumEpsilon
}

// AllocationReport is what every mutation surfaces back to the UI so it can
// render the "total is 87%, click Normalize" warning uniformly.
type AllocationReport struct {
	Sum       float64
	OffTarget bool
}

func (s AllocationSet) Report() AllocationReport {
	return AllocationReport{
		Sum:       s.Sum(),
		OffTarget: s.OffTarget(),
	}
}

// BlockAllocation is one line of the composition payload the scoring backend
// expects when a strategy is saved. Weights are decimal percentages.
type BlockAllocation struct {
	Ticker    string          `json:"ticker"`
	Weight    decimal.Decimal `json:"weight"`
	BlockName string          `json:"block_name"`
}

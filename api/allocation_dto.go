package api

import (
	"marketgps/internal/domain"
)

// Allocation sets are client state - every request carries the full set and
// every response returns the transformed set plus the sum report the UI
// renders its off-target warning from.

type slotJson struct {
	ID        string   `json:"id"`
	Weight    float64  `json:"weight"`
	MinWeight *float64 `json:"minWeight,omitempty"`
	MaxWeight *float64 `json:"maxWeight,omitempty"`
}

type allocationSetJson struct {
	Target    *float64   `json:"target,omitempty"`
	Precision *float64   `json:"precision,omitempty"`
	Slots     []slotJson `json:"slots"`
}

type allocationResponse struct {
	Slots     []slotJson `json:"slots"`
	Sum       float64    `json:"sum"`
	OffTarget bool       `json:"offTarget"`
}

func allocationSetFromJson(in allocationSetJson) domain.AllocationSet {
	target := domain.DefaultTarget
	if in.Target != nil && *in.Target > 0 {
		target = *in.Target
	}
	set := domain.NewAllocationSet(target)
	if in.Precision != nil && *in.Precision > 0 {
		set.Precision = *in.Precision
	}
	for _, s := range in.Slots {
		set.Slots = append(set.Slots, domain.NewSlot(s.ID, s.Weight, s.MinWeight, s.MaxWeight, target))
	}
	return set
}

func newAllocationResponse(set domain.AllocationSet) allocationResponse {
	slots := make([]slotJson, 0, len(set.Slots))
	for _, slot := range set.Slots {
		minWeight := slot.MinWeight
		maxWeight := slot.MaxWeight
		slots = append(slots, slotJson{
			ID:        slot.ID,
			Weight:    slot.Weight,
			MinWeight: &minWeight,
			MaxWeight: &maxWeight,
		})
	}
	report := set.Report()
	return allocationResponse{
		Slots:     slots,
		Sum:       report.Sum,
		OffTarget: report.OffTarget,
	}
}

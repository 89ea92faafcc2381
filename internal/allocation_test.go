package internal

import (
	"math"
	"testing"

	"marketgps/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newSet(weights map[string]float64, order []string) domain.AllocationSet {
	set := domain.NewAllocationSet(domain.DefaultTarget)
	for _, id := range order {
		set.Slots = append(set.Slots, domain.NewSlot(id, weights[id], nil, nil, set.Target))
	}
	return set
}

func weightOf(t *testing.T, set domain.AllocationSet, id string) float64 {
	t.Helper()
	idx := set.IndexOf(id)
	require.GreaterOrEqual(t, idx, 0, "slot %s should exist", id)
	return set.Slots[idx].Weight
}

func TestAddSlot(t *testing.T) {
	t.Run("default share when capacity remains", func(t *testing.T) {
		set := newSet(map[string]float64{"AAPL": 0.5}, []string{"AAPL"})

		out, err := AddSlot(set, "MSFT", nil)
		require.NoError(t, err)

		require.InDelta(t, 0.10, weightOf(t, out, "MSFT"), 1e-12)
		require.InDelta(t, 0.5, weightOf(t, out, "AAPL"), 1e-12)
	})

	t.Run("default share capped by remaining capacity", func(t *testing.T) {
		set := newSet(map[string]float64{"AAPL": 0.97}, []string{"AAPL"})

		out, err := AddSlot(set, "MSFT", nil)
		require.NoError(t, err)

		require.InDelta(t, 0.03, weightOf(t, out, "MSFT"), 1e-12)
		require.False(t, out.Sum() > out.Target+domain.SumEpsilon)
	})

	t.Run("no capacity left means zero weight", func(t *testing.T) {
		set := newSet(map[string]float64{"AAPL": 0.6, "MSFT": 0.4}, []string{"AAPL", "MSFT"})

		out, err := AddSlot(set, "GOOG", nil)
		require.NoError(t, err)

		require.Equal(t, 0.0, weightOf(t, out, "GOOG"))
	})

	t.Run("explicit initial weight", func(t *testing.T) {
		set := newSet(map[string]float64{"AAPL": 0.5}, []string{"AAPL"})

		w := 0.25
		out, err := AddSlot(set, "MSFT", &w)
		require.NoError(t, err)

		require.Equal(t, 0.25, weightOf(t, out, "MSFT"))
	})

	t.Run("duplicate id", func(t *testing.T) {
		set := newSet(map[string]float64{"AAPL": 0.5}, []string{"AAPL"})

		_, err := AddSlot(set, "AAPL", nil)

		var duplicate DuplicateSlotError
		require.ErrorAs(t, err, &duplicate)
		require.Equal(t, "AAPL", duplicate.ID)
	})

	t.Run("input set is not mutated", func(t *testing.T) {
		set := newSet(map[string]float64{"AAPL": 0.5}, []string{"AAPL"})

		_, err := AddSlot(set, "MSFT", nil)
		require.NoError(t, err)

		require.Len(t, set.Slots, 1)
	})
}

func TestRemoveSlot(t *testing.T) {
	t.Run("removes without redistribution", func(t *testing.T) {
		set := newSet(map[string]float64{"AAPL": 0.5, "MSFT": 0.3, "GOOG": 0.2}, []string{"AAPL", "MSFT", "GOOG"})

		out, err := RemoveSlot(set, "MSFT")
		require.NoError(t, err)

		require.Empty(t, cmp.Diff([]string{"AAPL", "GOOG"}, out.SlotIDs()))
		require.InDelta(t, 0.7, out.Sum(), 1e-12)
		require.True(t, out.OffTarget())
	})

	t.Run("unknown id", func(t *testing.T) {
		set := newSet(map[string]float64{"AAPL": 0.5}, []string{"AAPL"})

		_, err := RemoveSlot(set, "TSLA")

		var notFound SlotNotFoundError
		require.ErrorAs(t, err, &notFound)
		require.Equal(t, "TSLA", notFound.ID)
	})
}

func TestSetSlotWeight(t *testing.T) {
	t.Run("two slot proportional redistribution", func(t *testing.T) {
		set := newSet(map[string]float64{"A": 0.5, "B": 0.5}, []string{"A", "B"})

		out, err := SetSlotWeight(set, "A", 0.8)
		require.NoError(t, err)

		require.InDelta(t, 0.8, weightOf(t, out, "A"), 1e-12)
		require.InDelta(t, 0.2, weightOf(t, out, "B"), 1e-12)
		require.InDelta(t, 1.0, out.Sum(), 1e-12)
	})

	t.Run("sum is preserved when no bound is hit", func(t *testing.T) {
		set := newSet(map[string]float64{"A": 0.4, "B": 0.35, "C": 0.15, "D": 0.1}, []string{"A", "B", "C", "D"})
		before := set.Sum()

		out, err := SetSlotWeight(set, "C", 0.4)
		require.NoError(t, err)

		require.InDelta(t, before, out.Sum(), 1e-9)
		require.InDelta(t, 0.4, weightOf(t, out, "C"), 1e-12)
	})

	t.Run("other slots keep relative proportions", func(t *testing.T) {
		set := newSet(map[string]float64{"A": 0.5, "B": 0.3, "C": 0.2}, []string{"A", "B", "C"})

		out, err := SetSlotWeight(set, "A", 0.3)
		require.NoError(t, err)

		// B:C stays 3:2
		require.InDelta(t, 1.5, weightOf(t, out, "B")/weightOf(t, out, "C"), 1e-9)
		require.InDelta(t, 1.0, out.Sum(), 1e-9)
	})

	t.Run("new weight clamps to slot bounds", func(t *testing.T) {
		set := domain.NewAllocationSet(1.0)
		maxA := 0.6
		set.Slots = append(set.Slots,
			domain.NewSlot("A", 0.5, nil, &maxA, set.Target),
			domain.NewSlot("B", 0.5, nil, nil, set.Target),
		)

		out, err := SetSlotWeight(set, "A", 0.9)
		require.NoError(t, err)

		require.InDelta(t, 0.6, weightOf(t, out, "A"), 1e-12)
		require.InDelta(t, 0.4, weightOf(t, out, "B"), 1e-12)
	})

	t.Run("clamped absorber spills into second pass", func(t *testing.T) {
		set := domain.NewAllocationSet(1.0)
		maxB := 0.32
		set.Slots = append(set.Slots,
			domain.NewSlot("A", 0.5, nil, nil, set.Target),
			domain.NewSlot("B", 0.3, nil, &maxB, set.Target),
			domain.NewSlot("C", 0.2, nil, nil, set.Target),
		)

		out, err := SetSlotWeight(set, "A", 0.3)
		require.NoError(t, err)

		// B wanted +0.12 but caps at 0.32; the leftover 0.10 lands on C
		require.InDelta(t, 0.3, weightOf(t, out, "A"), 1e-9)
		require.InDelta(t, 0.32, weightOf(t, out, "B"), 1e-9)
		require.InDelta(t, 0.38, weightOf(t, out, "C"), 1e-9)
		require.InDelta(t, 1.0, out.Sum(), 1e-9)
	})

	t.Run("zero weight slots absorb nothing", func(t *testing.T) {
		set := newSet(map[string]float64{"A": 0.5, "B": 0.5, "C": 0.0}, []string{"A", "B", "C"})

		out, err := SetSlotWeight(set, "A", 0.3)
		require.NoError(t, err)

		require.Equal(t, 0.0, weightOf(t, out, "C"))
		require.InDelta(t, 0.7, weightOf(t, out, "B"), 1e-9)
	})

	t.Run("all other slots at zero leaves the shortfall", func(t *testing.T) {
		set := newSet(map[string]float64{"A": 0.0, "B": 0.0}, []string{"A", "B"})

		out, err := SetSlotWeight(set, "A", 0.5)
		require.NoError(t, err)

		require.Equal(t, 0.5, weightOf(t, out, "A"))
		require.Equal(t, 0.0, weightOf(t, out, "B"))
		require.InDelta(t, 0.5, out.Sum(), 1e-12)
		require.True(t, out.Report().OffTarget)
	})

	t.Run("unknown id", func(t *testing.T) {
		set := newSet(map[string]float64{"A": 1.0}, []string{"A"})

		_, err := SetSlotWeight(set, "Z", 0.5)

		var notFound SlotNotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

func TestEqualize(t *testing.T) {
	t.Run("three slots with remainder on the first", func(t *testing.T) {
		set := newSet(map[string]float64{"A": 0.6, "B": 0.3, "C": 0.1}, []string{"A", "B", "C"})

		out := Equalize(set)

		require.InDelta(t, 0.3334, weightOf(t, out, "A"), 1e-12)
		require.InDelta(t, 0.3333, weightOf(t, out, "B"), 1e-12)
		require.InDelta(t, 0.3333, weightOf(t, out, "C"), 1e-12)
		require.InDelta(t, 1.0, out.Sum(), 1e-12)
		require.False(t, out.OffTarget())
	})

	t.Run("every weight within one rounding unit of the even split", func(t *testing.T) {
		for _, n := range []int{1, 2, 3, 6, 7, 11} {
			set := domain.NewAllocationSet(1.0)
			for i := 0; i < n; i++ {
				set.Slots = append(set.Slots, domain.NewSlot(string(rune('a'+i)), 0, nil, nil, set.Target))
			}

			out := Equalize(set)

			require.InDelta(t, 1.0, out.Sum(), 1e-12, "n=%d", n)
			even := 1.0 / float64(n)
			for i, slot := range out.Slots {
				tolerance := domain.DefaultPrecision
				if i == 0 {
					// the first slot also carries the rounding remainder,
					// which can reach n/2 rounding units
					tolerance = domain.DefaultPrecision * float64(n)
				}
				require.LessOrEqual(t, math.Abs(slot.Weight-even), tolerance, "n=%d slot=%s", n, slot.ID)
			}
		}
	})

	t.Run("empty set is a no-op", func(t *testing.T) {
		set := domain.NewAllocationSet(1.0)

		out := Equalize(set)

		require.Empty(t, out.Slots)
	})
}

func TestNormalize(t *testing.T) {
	t.Run("scales to target", func(t *testing.T) {
		set := newSet(map[string]float64{"A": 0.4, "B": 0.2, "C": 0.2}, []string{"A", "B", "C"})

		out, err := Normalize(set)
		require.NoError(t, err)

		require.InDelta(t, 1.0, out.Sum(), 1e-9)
		require.InDelta(t, 0.5, weightOf(t, out, "A"), 1e-9)
		require.InDelta(t, 0.25, weightOf(t, out, "B"), 1e-9)
	})

	t.Run("idempotent", func(t *testing.T) {
		set := newSet(map[string]float64{"A": 0.123, "B": 0.456, "C": 0.789}, []string{"A", "B", "C"})

		once, err := Normalize(set)
		require.NoError(t, err)
		twice, err := Normalize(once)
		require.NoError(t, err)

		for i := range once.Slots {
			require.InDelta(t, once.Slots[i].Weight, twice.Slots[i].Weight, 1e-12)
		}
	})

	t.Run("empty set is a no-op, not an error", func(t *testing.T) {
		set := domain.NewAllocationSet(1.0)

		out, err := Normalize(set)

		require.NoError(t, err)
		require.Empty(t, out.Slots)
	})

	t.Run("non-empty zero sum", func(t *testing.T) {
		set := newSet(map[string]float64{"A": 0.0, "B": 0.0}, []string{"A", "B"})

		_, err := Normalize(set)

		var zeroSum ZeroSumError
		require.ErrorAs(t, err, &zeroSum)

		// the documented fallback
		out := Equalize(set)
		require.InDelta(t, 1.0, out.Sum(), 1e-12)
	})
}

func TestRedistributeByGroup(t *testing.T) {
	coreSatellite := func(id string) string {
		if id == "BND" || id == "BIL" {
			return "core"
		}
		return "satellite"
	}

	t.Run("group totals hit their targets, proportions preserved", func(t *testing.T) {
		set := newSet(
			map[string]float64{"BND": 0.3, "BIL": 0.1, "ARKK": 0.45, "COIN": 0.15},
			[]string{"BND", "BIL", "ARKK", "COIN"},
		)

		out, err := RedistributeByGroup(set, coreSatellite, map[string]float64{
			"core":      0.8,
			"satellite": 0.2,
		})
		require.NoError(t, err)

		require.InDelta(t, 0.8, weightOf(t, out, "BND")+weightOf(t, out, "BIL"), 1e-9)
		require.InDelta(t, 0.2, weightOf(t, out, "ARKK")+weightOf(t, out, "COIN"), 1e-9)
		// BND:BIL stays 3:1, ARKK:COIN stays 3:1
		require.InDelta(t, 3.0, weightOf(t, out, "BND")/weightOf(t, out, "BIL"), 1e-9)
		require.InDelta(t, 3.0, weightOf(t, out, "ARKK")/weightOf(t, out, "COIN"), 1e-9)
		require.InDelta(t, 1.0, out.Sum(), 1e-9)
	})

	t.Run("zero weight group splits its share evenly", func(t *testing.T) {
		set := newSet(
			map[string]float64{"BND": 0.0, "BIL": 0.0, "ARKK": 1.0},
			[]string{"BND", "BIL", "ARKK"},
		)

		out, err := RedistributeByGroup(set, coreSatellite, map[string]float64{
			"core":      0.5,
			"satellite": 0.5,
		})
		require.NoError(t, err)

		require.InDelta(t, 0.25, weightOf(t, out, "BND"), 1e-9)
		require.InDelta(t, 0.25, weightOf(t, out, "BIL"), 1e-9)
		require.InDelta(t, 0.5, weightOf(t, out, "ARKK"), 1e-9)
	})

	t.Run("slot mapping to an unknown group", func(t *testing.T) {
		set := newSet(map[string]float64{"BND": 0.5, "ARKK": 0.5}, []string{"BND", "ARKK"})

		_, err := RedistributeByGroup(set, coreSatellite, map[string]float64{
			"core": 1.0,
		})

		var unknown UnknownGroupError
		require.ErrorAs(t, err, &unknown)
		require.Equal(t, "ARKK", unknown.SlotID)
		require.Equal(t, "satellite", unknown.Group)
	})

	t.Run("group targets must sum to one", func(t *testing.T) {
		set := newSet(map[string]float64{"BND": 0.5, "ARKK": 0.5}, []string{"BND", "ARKK"})

		_, err := RedistributeByGroup(set, coreSatellite, map[string]float64{
			"core":      0.8,
			"satellite": 0.3,
		})

		var invalid InvalidGroupTargetsError
		require.ErrorAs(t, err, &invalid)
		require.InDelta(t, 1.1, invalid.Sum, 1e-12)
	})
}

package algo

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func noop([]int, Mask) error { return nil }

// datasetGen produces slices shaped like generated datasets, small enough to
// shrink quickly.
func datasetGen() gopter.Gen {
	return gen.SliceOf(gen.IntRange(1, 100))
}

// TestSortEngines_PropertyBased checks that every sort engine yields a
// non-decreasing permutation of its input and that every mask it emits has
// one tag per element.
func TestSortEngines_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	for _, a := range NewRegistry().List() {
		if a.Kind != KindSort {
			continue
		}
		a := a
		properties.Property(a.Name+" sorts into a permutation", prop.ForAll(
			func(in []int) bool {
				data := slices.Clone(in)
				maskOK := true
				_, err := a.Run(data, 0, func(values []int, mask Mask) error {
					if len(mask) != len(values) {
						maskOK = false
					}
					return nil
				})
				if err != nil || !maskOK {
					return false
				}

				want := slices.Clone(in)
				slices.Sort(want)
				return slices.Equal(data, want)
			},
			datasetGen(),
		))
	}

	properties.TestingRun(t)
}

// TestSearchEngines_PropertyBased checks that both searches find an index
// holding the target when present and NotFound otherwise.
func TestSearchEngines_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	for _, fn := range []struct {
		name string
		run  SearchFunc
	}{{"binary", BinarySearch}, {"ternary", TernarySearch}} {
		fn := fn
		properties.Property(fn.name+" search agrees with membership", prop.ForAll(
			func(in []int, target int) bool {
				data := slices.Clone(in)
				slices.Sort(data)

				idx, err := fn.run(data, target, noop)
				if err != nil {
					return false
				}
				if slices.Contains(data, target) {
					return idx >= 0 && idx < len(data) && data[idx] == target
				}
				return idx == NotFound
			},
			datasetGen(),
			gen.IntRange(0, 101),
		))
	}

	properties.TestingRun(t)
}

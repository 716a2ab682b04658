package algo

// Tag marks how a single bar is emphasised in a frame.
type Tag uint8

const (
	Neutral Tag = iota
	Compared
	Swapped
	Merged
	Probe
	Found
)

func (t Tag) String() string {
	switch t {
	case Compared:
		return "compared"
	case Swapped:
		return "swapped"
	case Merged:
		return "merged"
	case Probe:
		return "probe"
	case Found:
		return "found"
	default:
		return "neutral"
	}
}

// Mask holds one tag per dataset element.
type Mask []Tag

// Highlight returns a mask of length n with the given indices set to tag.
func Highlight(n int, tag Tag, idx ...int) Mask {
	m := make(Mask, n)
	for _, i := range idx {
		if i >= 0 && i < n {
			m[i] = tag
		}
	}
	return m
}

// HighlightRange tags every index in [lo, hi].
func HighlightRange(n int, tag Tag, lo, hi int) Mask {
	m := make(Mask, n)
	for i := max(lo, 0); i <= hi && i < n; i++ {
		m[i] = tag
	}
	return m
}

// Emphasised returns the indices that carry a non-neutral tag.
func (m Mask) Emphasised() []int {
	idx := make([]int, 0, 2)
	for i, t := range m {
		if t != Neutral {
			idx = append(idx, i)
		}
	}
	return idx
}

// Checkpoint is called by an engine after every state change worth drawing.
// A non-nil error aborts the engine, which returns it unchanged.
type Checkpoint func(values []int, mask Mask) error

type SortFunc func(data []int, cp Checkpoint) error

type SearchFunc func(data []int, target int, cp Checkpoint) (int, error)

// NotFound is returned by the search engines when the target is absent.
const NotFound = -1

package algo

// BinarySearch expects data sorted ascending.
func BinarySearch(data []int, target int, cp Checkpoint) (int, error) {
	n := len(data)
	l, r := 0, n-1
	for l <= r {
		m := (l + r) / 2
		if err := cp(data, Highlight(n, Probe, m)); err != nil {
			return NotFound, err
		}
		switch {
		case data[m] == target:
			if err := cp(data, Highlight(n, Found, m)); err != nil {
				return NotFound, err
			}
			return m, nil
		case data[m] < target:
			l = m + 1
		default:
			r = m - 1
		}
	}
	return NotFound, nil
}

// TernarySearch expects data sorted ascending.
func TernarySearch(data []int, target int, cp Checkpoint) (int, error) {
	return ternary(data, target, 0, len(data)-1, cp)
}

func ternary(data []int, target, l, r int, cp Checkpoint) (int, error) {
	if r < l {
		return NotFound, nil
	}
	n := len(data)
	mid1 := l + (r-l)/3
	mid2 := r - (r-l)/3

	if err := cp(data, Highlight(n, Probe, mid1, mid2)); err != nil {
		return NotFound, err
	}

	for _, m := range [2]int{mid1, mid2} {
		if data[m] == target {
			if err := cp(data, Highlight(n, Found, m)); err != nil {
				return NotFound, err
			}
			return m, nil
		}
	}

	switch {
	case target < data[mid1]:
		return ternary(data, target, l, mid1-1, cp)
	case target > data[mid2]:
		return ternary(data, target, mid2+1, r, cp)
	default:
		return ternary(data, target, mid1+1, mid2-1, cp)
	}
}

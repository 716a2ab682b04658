package algo

// BubbleSort only checkpoints when an adjacent pair is actually swapped, so
// passes over already ordered runs are not animated.
func BubbleSort(data []int, cp Checkpoint) error {
	n := len(data)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
				if err := cp(data, Highlight(n, Compared, j, j+1)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func SelectionSort(data []int, cp Checkpoint) error {
	n := len(data)
	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if data[j] < data[minIdx] {
				minIdx = j
			}
		}
		data[i], data[minIdx] = data[minIdx], data[i]
		if err := cp(data, Highlight(n, Swapped, i, minIdx)); err != nil {
			return err
		}
	}
	return nil
}

func MergeSort(data []int, cp Checkpoint) error {
	n := len(data)
	return mergeSortBy(data, 0, n-1, lessEq, func(left, right int) error {
		return cp(data, HighlightRange(n, Merged, left, right))
	})
}

func lessEq(a, b int) bool { return a <= b }

// mergeSortBy sorts data[left:right+1] and calls merged after every span is
// merged back into place.
func mergeSortBy[E any](data []E, left, right int, le func(a, b E) bool, merged func(left, right int) error) error {
	if left >= right {
		return nil
	}
	mid := (left + right) / 2
	if err := mergeSortBy(data, left, mid, le, merged); err != nil {
		return err
	}
	if err := mergeSortBy(data, mid+1, right, le, merged); err != nil {
		return err
	}
	mergeBy(data, left, mid, right, le)
	return merged(left, right)
}

// mergeBy takes from the left run on ties, which keeps the sort stable.
func mergeBy[E any](data []E, left, mid, right int, le func(a, b E) bool) {
	lp := append([]E(nil), data[left:mid+1]...)
	rp := append([]E(nil), data[mid+1:right+1]...)

	i, j := 0, 0
	for k := left; k <= right; k++ {
		if i < len(lp) && (j >= len(rp) || le(lp[i], rp[j])) {
			data[k] = lp[i]
			i++
		} else {
			data[k] = rp[j]
			j++
		}
	}
}

func HeapSort(data []int, cp Checkpoint) error {
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		if err := heapify(data, n, i, cp); err != nil {
			return err
		}
	}
	for i := n - 1; i > 0; i-- {
		data[i], data[0] = data[0], data[i]
		if err := cp(data, Highlight(n, Swapped, i, 0)); err != nil {
			return err
		}
		if err := heapify(data, i, 0, cp); err != nil {
			return err
		}
	}
	return nil
}

// heapify sifts data[i] down within the first n elements.
func heapify(data []int, n, i int, cp Checkpoint) error {
	largest := i
	l, r := 2*i+1, 2*i+2

	if l < n && data[l] > data[largest] {
		largest = l
	}
	if r < n && data[r] > data[largest] {
		largest = r
	}
	if largest == i {
		return nil
	}

	data[i], data[largest] = data[largest], data[i]
	if err := cp(data, Highlight(len(data), Compared, i, largest)); err != nil {
		return err
	}
	return heapify(data, n, largest, cp)
}

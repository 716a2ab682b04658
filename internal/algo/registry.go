package algo

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownAlgorithm = errors.New("algo: unknown algorithm")

type Kind int

const (
	KindSort Kind = iota
	KindSearch
)

func (k Kind) String() string {
	if k == KindSearch {
		return "search"
	}
	return "sort"
}

// Algorithm describes one engine and how to invoke it.
type Algorithm struct {
	Name   string
	Key    string
	Kind   Kind
	sort   SortFunc
	search SearchFunc
}

// Run drives the engine to completion. target is ignored by sorts; sorts
// report NotFound as their index.
func (a Algorithm) Run(data []int, target int, cp Checkpoint) (int, error) {
	if a.Kind == KindSearch {
		return a.search(data, target, cp)
	}
	return NotFound, a.sort(data, cp)
}

func (a Algorithm) NeedsTarget() bool { return a.Kind == KindSearch }

type Registry struct {
	order []string
	algos map[string]Algorithm
}

func NewRegistry() *Registry {
	r := &Registry{algos: make(map[string]Algorithm)}

	r.addSort("Bubble Sort", "bubble", BubbleSort)
	r.addSort("Selection Sort", "selection", SelectionSort)
	r.addSort("Merge Sort", "merge", MergeSort)
	r.addSort("Heap Sort", "heap", HeapSort)
	r.addSearch("Binary Search", "binary", BinarySearch)
	r.addSearch("Ternary Search", "ternary", TernarySearch)

	return r
}

func (r *Registry) addSort(name, key string, fn SortFunc) {
	r.add(Algorithm{Name: name, Key: key, Kind: KindSort, sort: fn})
}

func (r *Registry) addSearch(name, key string, fn SearchFunc) {
	r.add(Algorithm{Name: name, Key: key, Kind: KindSearch, search: fn})
}

func (r *Registry) add(a Algorithm) {
	r.order = append(r.order, a.Key)
	r.algos[a.Key] = a
}

// Get accepts either the display name ("Heap Sort") or the key ("heap"),
// case-insensitively.
func (r *Registry) Get(name string) (Algorithm, error) {
	norm := normalize(name)
	if a, ok := r.algos[norm]; ok {
		return a, nil
	}
	for _, a := range r.algos {
		if normalize(a.Name) == norm {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// List returns the algorithms in menu order.
func (r *Registry) List() []Algorithm {
	out := make([]Algorithm, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.algos[k])
	}
	return out
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.order))
	for _, a := range r.List() {
		names = append(names, a.Name)
	}
	return names
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

package combo

import (
	"sort"
	"strings"
)

// keySep separates plant names inside Key(); it cannot appear in a
// printable plant name.
const keySep = "\x1f"

// Combination is a canonical (sorted, duplicate-free) set of plant names.
// Always construct through New or With; a hand-built slice may break the
// canonical form.
type Combination []string

// New returns the canonical Combination of plants: empty names are dropped,
// duplicates collapsed, the rest sorted. The input slice is not modified.
func New(plants ...string) Combination {
	out := make(Combination, 0, len(plants))
	for _, p := range plants {
		if p != "" {
			out = append(out, p)
		}
	}
	sort.Strings(out)

	// compact in place
	w := 0
	for i, p := range out {
		if i > 0 && p == out[w-1] {
			continue
		}
		out[w] = p
		w++
	}

	return out[:w]
}

// Len returns the number of plants.
func (c Combination) Len() int { return len(c) }

// Key returns a string uniquely identifying the plant set, suitable as a
// map key. Equal sets produce equal keys.
func (c Combination) Key() string { return strings.Join(c, keySep) }

// Contains reports whether plant is a member. Complexity: O(log n).
func (c Combination) Contains(plant string) bool {
	i := sort.SearchStrings(c, plant)

	return i < len(c) && c[i] == plant
}

// With returns a new Combination with plant added. c is not modified.
func (c Combination) With(plant string) Combination {
	if plant == "" || c.Contains(plant) {
		return c.Plants()
	}
	i := sort.SearchStrings(c, plant)
	out := make(Combination, 0, len(c)+1)
	out = append(out, c[:i]...)
	out = append(out, plant)
	out = append(out, c[i:]...)

	return out
}

// Intersects reports whether c and o share at least one plant.
// Complexity: O(len(c) + len(o)).
func (c Combination) Intersects(o Combination) bool {
	i, j := 0, 0
	for i < len(c) && j < len(o) {
		switch {
		case c[i] == o[j]:
			return true
		case c[i] < o[j]:
			i++
		default:
			j++
		}
	}

	return false
}

// Plants returns a copy of the members, sorted.
func (c Combination) Plants() []string {
	out := make([]string, len(c))
	copy(out, c)

	return out
}

// Compare orders combinations lexicographically by member names, shorter
// prefix first. It returns -1, 0 or +1.
func (c Combination) Compare(o Combination) int {
	for i := 0; i < len(c) && i < len(o); i++ {
		if c[i] != o[i] {
			if c[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(c) < len(o):
		return -1
	case len(c) > len(o):
		return 1
	default:
		return 0
	}
}

// String renders the set as "{A, B, C}".
func (c Combination) String() string {
	return "{" + strings.Join(c, ", ") + "}"
}

// Subsets returns every k-combination of plants for minSize ≤ k ≤ maxSize,
// ordered by k ascending, then lexicographically. plants is canonicalized
// first; sizes are clamped to [1, len(plants)]. An empty range yields nil.
func Subsets(plants []string, minSize, maxSize int) []Combination {
	pool := New(plants...)
	if minSize < 1 {
		minSize = 1
	}
	if maxSize > len(pool) {
		maxSize = len(pool)
	}
	if maxSize < minSize {
		return nil
	}

	var out []Combination
	idx := make([]int, 0, maxSize)
	var walk func(start, k int)
	walk = func(start, k int) {
		if len(idx) == k {
			c := make(Combination, k)
			for i, p := range idx {
				c[i] = pool[p]
			}
			out = append(out, c)
			return
		}
		// leave room for the remaining picks
		for i := start; i <= len(pool)-(k-len(idx)); i++ {
			idx = append(idx, i)
			walk(i+1, k)
			idx = idx[:len(idx)-1]
		}
	}
	for k := minSize; k <= maxSize; k++ {
		walk(0, k)
	}

	return out
}

package network

import "sort"

// axisEntry pairs one coordinate of a sensor with the sensor's index.
type axisEntry struct {
	coord float64
	idx   int
}

// axisIndex is an ordered multimap from a single coordinate axis to sensor
// indices. Duplicate coordinates are permitted: two sensors sharing an x
// value occupy two adjacent entries, ordered by index as a tie-break.
//
// The index is built once per deployment and queried read-only afterwards,
// which keeps range queries at O(log n + band) with zero allocation beyond
// the result slice.
type axisIndex struct {
	entries []axisEntry
}

// build replaces the index contents with one entry per coordinate in
// coords, sorted by (coord, idx).
// Complexity: O(n log n) time, O(n) space.
func (a *axisIndex) build(coords []float64) {
	a.entries = make([]axisEntry, len(coords))
	for i, c := range coords {
		a.entries[i] = axisEntry{coord: c, idx: i}
	}
	sort.Slice(a.entries, func(i, j int) bool {
		if a.entries[i].coord != a.entries[j].coord {
			return a.entries[i].coord < a.entries[j].coord
		}

		return a.entries[i].idx < a.entries[j].idx
	})
}

// band appends to dst the indices of all entries with coord ∈ [lo, hi]
// and returns the extended slice. The interval is closed on both ends.
// Complexity: O(log n + b) where b is the number of entries in the band.
func (a *axisIndex) band(dst []int, lo, hi float64) []int {
	// Locate the first entry with coord ≥ lo.
	first := sort.Search(len(a.entries), func(i int) bool {
		return a.entries[i].coord >= lo
	})
	for i := first; i < len(a.entries) && a.entries[i].coord <= hi; i++ {
		dst = append(dst, a.entries[i].idx)
	}

	return dst
}

package exthash

import (
	"testing"

	"pgregory.net/rapid"
)

// TestMap_MatchesReferenceMap checks the hash map against a plain Go
// map oracle under random insert sequences and initial directory
// sizes.
func TestMap_MatchesReferenceMap(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		dirSize := rapid.SampledFrom([]int{1, 2, 4, 8}).Draw(rt, "dirSize")
		keys := rapid.SliceOfN(rapid.IntRange(-200, 200), 0, 150).Draw(rt, "keys")

		m := New[int, int](dirSize)
		oracle := map[int]int{}
		for _, k := range keys {
			m.Put(k, k*3)
			oracle[k] = k * 3
		}

		for k, want := range oracle {
			got, ok := m.Get(k)
			if !ok || got != want {
				rt.Fatalf("Get(%d) = (%d, %v), want (%d, true)", k, got, ok, want)
			}
		}
		if got := m.Population(); got != len(oracle) {
			rt.Fatalf("Population() = %d, want %d", got, len(oracle))
		}
		if got := m.Size(); got != Slots*m.NBuckets() {
			rt.Fatalf("Size() = %d, want SLOTS*nBuckets = %d", got, Slots*m.NBuckets())
		}

		// Directory invariant: every slot still resolves to a non-nil
		// bucket and every bucket in the pool is reachable from the
		// directory.
		reachable := map[*bucket[int, int]]bool{}
		for _, b := range m.dir {
			if b == nil {
				rt.Fatal("nil directory slot")
			}
			reachable[b] = true
		}
		if len(reachable) != len(m.pool) {
			rt.Fatalf("pool has %d buckets but only %d are reachable from the directory", len(m.pool), len(reachable))
		}
	})
}

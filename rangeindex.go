package mac_oui

import "sort"

// rangeEntry maps one closed interval of the 48-bit address space to the
// record that owns it. end-start+1 is always a power of two.
type rangeEntry struct {
	start uint64
	end   uint64
	mask  int
	rec   *Record
}

// rangeIndex is an ordered collection of range entries. Entries are
// appended during load, sorted once by freeze, and read-only afterwards.
// Overlapping entries are kept as-is; the query side resolves them.
//
// Because every block is mask-aligned, two blocks are either disjoint or
// nested. A point query therefore has at most one candidate block per
// prefix length: the query value with its low 48-mask bits cleared. Each
// candidate is probed with a binary search, walking prefix lengths from
// longest to shortest, so matches come out most-specific-first.
type rangeIndex struct {
	entries []rangeEntry
}

func (ix *rangeIndex) insert(start, end uint64, mask int, rec *Record) {
	ix.entries = append(ix.entries, rangeEntry{start: start, end: end, mask: mask, rec: rec})
}

// freeze orders the entries by (start, mask). The sort is stable so rows
// sharing a block notation keep their table order; probe picks the last
// of such duplicates, making "most recently loaded wins" hold for them.
func (ix *rangeIndex) freeze() {
	sort.SliceStable(ix.entries, func(i, j int) bool {
		a, b := ix.entries[i], ix.entries[j]
		if a.start != b.start {
			return a.start < b.start
		}
		return a.mask < b.mask
	})
}

// containing returns every entry whose interval contains q, ordered from
// the most specific (longest mask) to the least.
func (ix *rangeIndex) containing(q uint64) []rangeEntry {
	var hits []rangeEntry
	for mask := maxMask; mask >= minMask; mask-- {
		aligned := q &^ (maxAddress >> mask)
		if e, ok := ix.probe(aligned, mask); ok {
			hits = append(hits, e)
		}
	}
	return hits
}

// lookup resolves q to the owning entry under the longest-prefix-wins
// policy: of all blocks containing q, the smallest one is returned.
func (ix *rangeIndex) lookup(q uint64) (rangeEntry, bool) {
	for mask := maxMask; mask >= minMask; mask-- {
		aligned := q &^ (maxAddress >> mask)
		if e, ok := ix.probe(aligned, mask); ok {
			return e, true
		}
	}
	return rangeEntry{}, false
}

// probe finds the entry with exactly the given start and mask, if any.
// When the table holds duplicates of a block, the last-loaded one wins.
func (ix *rangeIndex) probe(start uint64, mask int) (rangeEntry, bool) {
	i := sort.Search(len(ix.entries), func(i int) bool {
		e := ix.entries[i]
		if e.start != start {
			return e.start > start
		}
		return e.mask >= mask
	})
	var (
		found rangeEntry
		ok    bool
	)
	for ; i < len(ix.entries); i++ {
		e := ix.entries[i]
		if e.start != start || e.mask != mask {
			break
		}
		found, ok = e, true
	}
	return found, ok
}

// overlapDepth reports how many stored blocks contain the start of the
// given entry, counting the entry itself. Used by the load step to flag
// suspiciously deep nesting in the source table.
func (ix *rangeIndex) overlapDepth(e rangeEntry) int {
	return len(ix.containing(e.start))
}

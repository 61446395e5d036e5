package detect

import (
	"slices"
	"sort"
	"strings"

	"github.com/suryansh-23/redactkit/internal/types"
)

// Resolve flattens per-category matches and returns them in application order:
// start offset descending, ties broken by category order and then scan order.
//
// Under OverlapSplice (the default) overlapping spans are all kept and applied
// independently. OverlapPriority and OverlapMerge return a non-overlapping set.
func Resolve(found Matches, order []types.Category, policy types.OverlapPolicy) []Match {
	flat := flatten(found, order)
	if len(flat) == 0 {
		return nil
	}
	switch policy {
	case types.OverlapPriority:
		flat = keepFirst(flat)
	case types.OverlapMerge:
		flat = mergeOverlaps(flat)
	}
	sort.SliceStable(flat, func(i, j int) bool {
		return flat[i].Start > flat[j].Start
	})
	return flat
}

func flatten(found Matches, order []types.Category) []Match {
	if len(found) == 0 {
		return nil
	}
	out := make([]Match, 0, found.Count())
	seen := make(map[types.Category]bool, len(order))
	for _, category := range order {
		if seen[category] {
			continue
		}
		seen[category] = true
		out = append(out, found[category]...)
	}
	var rest []types.Category
	for category := range found {
		if !seen[category] {
			rest = append(rest, category)
		}
	}
	slices.Sort(rest)
	for _, category := range rest {
		out = append(out, found[category]...)
	}
	return out
}

// keepFirst walks matches in priority order and drops any that overlap a match
// already kept. kept stays sorted by start and pairwise disjoint.
func keepFirst(flat []Match) []Match {
	kept := make([]Match, 0, len(flat))
	for _, m := range flat {
		i := sort.Search(len(kept), func(i int) bool { return kept[i].Start >= m.Start })
		if i > 0 && kept[i-1].Overlaps(m) {
			continue
		}
		if i < len(kept) && kept[i].Overlaps(m) {
			continue
		}
		kept = slices.Insert(kept, i, m)
	}
	return kept
}

// mergeOverlaps unions overlapping spans. The merged match keeps the category
// of its earliest member and joins distinct labels with "+".
func mergeOverlaps(flat []Match) []Match {
	sorted := append([]Match(nil), flat...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})
	out := make([]Match, 0, len(sorted))
	for _, m := range sorted {
		if len(out) == 0 {
			out = append(out, m)
			continue
		}
		last := &out[len(out)-1]
		if m.Start >= last.End {
			out = append(out, m)
			continue
		}
		if m.End > last.End {
			last.Value += overhang(*last, m)
			last.End = m.End
			last.byteEnd = m.byteEnd
		}
		last.Label = joinLabel(last.Label, m.Label)
	}
	return out
}

// overhang returns the part of next's value that lies past the end of last.
func overhang(last, next Match) string {
	lastStart, lastEnd, lastOK := last.ByteSpan()
	nextStart, _, nextOK := next.ByteSpan()
	if lastOK && nextOK && lastStart <= nextStart {
		return next.Value[lastEnd-nextStart:]
	}
	return string([]rune(next.Value)[last.End-next.Start:])
}

func joinLabel(current, add string) string {
	for _, part := range strings.Split(current, "+") {
		if part == add {
			return current
		}
	}
	return current + "+" + add
}

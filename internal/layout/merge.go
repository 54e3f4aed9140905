package layout

// Merge coalesces adjacent items that render the same thing, in a
// single left-to-right pass. Two neighbours merge iff they have the
// same kind, are contiguous (prev.Top+prev.Height == next.Top) and
// carry the same identity: the same task id for single-task items, the
// same id set (order-independent) for group items. The sweep can emit
// consecutive segments with identical membership when unrelated tasks
// start or end around them; merging restores the minimal item count.
func Merge(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}

	merged := make([]Item, 0, len(items))
	merged = append(merged, items[0])

	for _, next := range items[1:] {
		prev := &merged[len(merged)-1]
		if !mergeable(*prev, next) {
			merged = append(merged, next)
			continue
		}
		prev.Height += next.Height
		if prev.Kind == KindTask {
			prev.VisibleEnd = next.VisibleEnd
		}
	}

	return merged
}

func mergeable(prev, next Item) bool {
	if prev.Kind != next.Kind || prev.Top+prev.Height != next.Top {
		return false
	}
	if prev.Kind == KindTask {
		return prev.Task.ID == next.Task.ID
	}
	return sameIDSet(prev.TaskIDs(), next.TaskIDs())
}

func sameIDSet(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[int64]bool, len(a))
	for _, id := range a {
		seen[id] = true
	}
	for _, id := range b {
		if !seen[id] {
			return false
		}
	}
	return true
}

package stats

import (
	"sort"

	"github.com/verte-zerg/morsetrace/internal/model"
)

// TopLetters returns the top N characters by decode count.
func TopLetters(aggs []model.LetterAggregate, n int) []string {
	if n <= 0 || len(aggs) == 0 {
		return nil
	}
	sorted := sortedByCount(aggs)
	if n > len(sorted) {
		n = len(sorted)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, sorted[i].Char)
	}
	return out
}

func sortedByCount(aggs []model.LetterAggregate) []model.LetterAggregate {
	items := make([]model.LetterAggregate, len(aggs))
	copy(items, aggs)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Char < items[j].Char
		}
		return items[i].Count > items[j].Count
	})
	return items
}

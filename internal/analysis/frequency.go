package analysis

import (
	"sort"
	"strings"
)

// countInOrder tallies values while remembering first-encounter order, the
// tie-break every ordered result uses.
type countInOrder struct {
	counts map[string]int
	order  []string
}

func newCountInOrder() *countInOrder {
	return &countInOrder{counts: make(map[string]int)}
}

func (c *countInOrder) add(value string) {
	if _, seen := c.counts[value]; !seen {
		c.order = append(c.order, value)
	}
	c.counts[value]++
}

// byCountDesc returns the tallied values ordered by descending count,
// first-encounter order on ties.
func (c *countInOrder) byCountDesc() []TokenCount {
	out := make([]TokenCount, 0, len(c.order))
	for _, value := range c.order {
		out = append(out, TokenCount{Token: value, Count: c.counts[value]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// splitTokens breaks a comma-separated list field into trimmed tokens,
// dropping empties left by stray separators or blank cells.
func splitTokens(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	parts := strings.Split(field, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

package models

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// CanonicalSizes is the size label set, smallest first.
var CanonicalSizes = []string{"PP", "P", "M", "G", "GG", "EXG"}

var sizeOrder = func() map[string]int {
	m := make(map[string]int, len(CanonicalSizes))
	for i, s := range CanonicalSizes {
		m[s] = i
	}
	return m
}()

func NormalizeSizeLabel(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}

func IsCanonicalSize(label string) bool {
	_, ok := sizeOrder[NormalizeSizeLabel(label)]
	return ok
}

// SizeGrid maps a size label to the number of pieces in that size.
type SizeGrid map[string]int

// Total sums the grid. Negative entries count as zero.
func (g SizeGrid) Total() int {
	total := 0
	for _, q := range g {
		if q > 0 {
			total += q
		}
	}
	return total
}

func (g SizeGrid) IsEmpty() bool {
	return g.Total() == 0
}

// Display renders "2 P, 3 M" in canonical size order. Legacy labels follow
// alphabetically and zero entries are omitted.
func (g SizeGrid) Display() string {
	labels := make([]string, 0, len(g))
	for label, q := range g {
		if q > 0 {
			labels = append(labels, label)
		}
	}
	sort.Slice(labels, func(i, j int) bool {
		oi, iok := sizeOrder[labels[i]]
		oj, jok := sizeOrder[labels[j]]
		switch {
		case iok && jok:
			return oi < oj
		case iok != jok:
			return iok
		default:
			return labels[i] < labels[j]
		}
	})

	parts := make([]string, len(labels))
	for i, label := range labels {
		parts[i] = fmt.Sprintf("%d %s", g[label], label)
	}
	return strings.Join(parts, ", ")
}

// NormalizeGrid upper-cases labels and keeps only canonical sizes. Labels that
// do not match are returned sorted so callers can show them to the user.
func NormalizeGrid(raw map[string]int) (SizeGrid, []string) {
	grid := SizeGrid{}
	var unmatched []string
	for label, q := range raw {
		if !IsCanonicalSize(label) {
			unmatched = append(unmatched, strings.TrimSpace(label))
			continue
		}
		if q < 0 {
			q = 0
		}
		grid[NormalizeSizeLabel(label)] += q
	}
	sort.Strings(unmatched)
	return grid, unmatched
}

var (
	qtyFirst   = regexp.MustCompile(`^(\d+)\s*([\p{L}]+)$`)
	labelFirst = regexp.MustCompile(`^([\p{L}]+)\s*[:=]?\s*(\d+)$`)
	sizeSplit  = regexp.MustCompile(`\s*(?:[,;/]|\be\b)\s*`)
)

// ParseSizeText reads free text such as "2 P, 3 M" or "P: 2; GG 1" into raw
// label counts. Fragments it cannot read are returned as rejects.
func ParseSizeText(text string) (map[string]int, []string) {
	counts := map[string]int{}
	var rejects []string
	for _, part := range sizeSplit.Split(strings.TrimSpace(text), -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var label, qty string
		if m := qtyFirst.FindStringSubmatch(part); m != nil {
			qty, label = m[1], m[2]
		} else if m := labelFirst.FindStringSubmatch(part); m != nil {
			label, qty = m[1], m[2]
		} else {
			rejects = append(rejects, part)
			continue
		}
		n, err := strconv.Atoi(qty)
		if err != nil {
			rejects = append(rejects, part)
			continue
		}
		counts[label] += n
	}
	return counts, rejects
}

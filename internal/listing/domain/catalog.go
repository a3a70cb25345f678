package domain

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Search filters listings conjunctively by the given criteria and orders the
// result by the sort mode. The input slice is never mutated; a fresh slice is
// returned. Callers are expected to feed active listings only — the engine
// has no notion of listing activity.
func Search(listings []*Listing, criteria Criteria, mode SortMode) []*Listing {
	result := make([]*Listing, 0, len(listings))
	for _, l := range listings {
		if criteria.matches(l) {
			result = append(result, l)
		}
	}
	sortListings(result, mode)
	return result
}

func (c Criteria) matches(l *Listing) bool {
	if c.Search != "" {
		needle := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(l.Title), needle) &&
			!strings.Contains(strings.ToLower(l.Description), needle) {
			return false
		}
	}
	if !containsFold(l.Address.City, c.City) {
		return false
	}
	if !containsFold(l.Address.State, c.State) {
		return false
	}
	if c.Type != "" && l.Type != c.Type {
		return false
	}
	if min, ok := parseBound(c.MinPrice); ok && l.PricePerM3 < min {
		return false
	}
	if max, ok := parseBound(c.MaxPrice); ok && l.PricePerM3 > max {
		return false
	}
	return true
}

// containsFold is a case-insensitive substring match so that partially typed
// queries ("recife") still hit ("Recife").
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// parseBound treats a malformed price bound as absent instead of failing the
// whole query.
func parseBound(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	bound, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(bound) || math.IsInf(bound, 0) {
		return 0, false
	}
	return bound, true
}

// sortListings orders in place. Every mode is stable: listings comparing
// equal keep their relative order from the input.
func sortListings(listings []*Listing, mode SortMode) {
	switch mode {
	case SortPriceAsc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].PricePerM3 < listings[j].PricePerM3
		})
	case SortPriceDesc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].PricePerM3 > listings[j].PricePerM3
		})
	default: // SortMostRecent
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].CreatedAt.After(listings[j].CreatedAt)
		})
	}
}

// DistinctValues collects each non-empty key value exactly once, in first-seen
// order. Used to populate the city and state filter pickers.
func DistinctValues(listings []*Listing, key func(*Listing) string) []string {
	seen := make(map[string]struct{}, len(listings))
	values := make([]string, 0, len(listings))
	for _, l := range listings {
		v := key(l)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

package dataset

import (
	"fmt"
	"regexp"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"issuedeck/common"
	"issuedeck/config"
)

// Classifier decides record category.
type Classifier func(Record) string

// Excluder reports categories to be left out entirely.
type Excluder func(category string) bool

// Order describes group ordering.
type Order struct {
	Mode common.CategoryOrder
	// used with CategoryOrderExplicit only
	Explicit []string
}

// OrderOf extracts group ordering from configuration.
func OrderOf(cfg *config.CategoriesConfig) Order {
	return Order{Mode: cfg.Order, Explicit: cfg.Explicit}
}

// ColumnClassifier classifies records by value of a single column, records
// with no value (or no such column at all) go to fallback category.
func ColumnClassifier(column, fallback string) Classifier {
	return func(r Record) string {
		if v := r.Field(column); len(v) > 0 {
			return v
		}
		return fallback
	}
}

// storedClassifier keeps category records already have, used when records
// come grouped from a snapshot.
func storedClassifier(fallback string) Classifier {
	return func(r Record) string {
		if len(r.Category) > 0 {
			return r.Category
		}
		return fallback
	}
}

// ExcludeMatcher builds exclusion predicate from exact names and optional
// regular expression.
func ExcludeMatcher(names []string, pattern string) (Excluder, error) {
	var re *regexp.Regexp
	if len(pattern) > 0 {
		var err error
		if re, err = regexp.Compile(pattern); err != nil {
			return nil, fmt.Errorf("%w: bad exclude pattern: %w", common.ErrInvalidConfiguration, err)
		}
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(category string) bool {
		if _, ok := set[category]; ok {
			return true
		}
		return re != nil && re.MatchString(category)
	}, nil
}

// Categorize groups records by classifier dropping excluded categories. Every
// record in result has its Category set. Records keep source order inside
// groups, groups are ordered according to order. Stats are derived from
// resulting groups and cannot diverge from them.
func Categorize(records []Record, classify Classifier, exclude Excluder, order Order) ([]CategoryGroup, Stats) {
	index := make(map[string]int)
	groups := make([]CategoryGroup, 0)

	for _, r := range records {
		r.Category = classify(r)
		if exclude != nil && exclude(r.Category) {
			continue
		}
		i, ok := index[r.Category]
		if !ok {
			i = len(groups)
			index[r.Category] = i
			groups = append(groups, CategoryGroup{Name: r.Category})
		}
		groups[i].Records = append(groups[i].Records, r)
	}

	switch order.Mode {
	case common.CategoryOrderNatural:
		sort.SliceStable(groups, func(i, j int) bool {
			return natural.Less(groups[i].Name, groups[j].Name)
		})
	case common.CategoryOrderExplicit:
		groups = explicitOrder(groups, order.Explicit)
	}
	return groups, StatsOf(groups)
}

// explicitOrder puts listed categories first in the listed order, the rest
// follow in their current order. Listed names without records are ignored.
func explicitOrder(groups []CategoryGroup, names []string) []CategoryGroup {
	result := make([]CategoryGroup, 0, len(groups))
	taken := make([]bool, len(groups))
	for _, name := range names {
		i := slices.IndexFunc(groups, func(g CategoryGroup) bool { return g.Name == name })
		if i < 0 || taken[i] {
			continue
		}
		taken[i] = true
		result = append(result, groups[i])
	}
	for i, g := range groups {
		if !taken[i] {
			result = append(result, g)
		}
	}
	return result
}

package css

import "sort"

// Specificity ranks selectors: {has id, number of classes, has tag name},
// compared lexicographically.
type Specificity [3]int

// Compare returns -1, 0, or +1 for sp < other, sp == other, sp > other.
func (sp Specificity) Compare(other Specificity) int {
	for i := range sp {
		switch {
		case sp[i] < other[i]:
			return -1
		case sp[i] > other[i]:
			return 1
		}
	}
	return 0
}

// Less is a strict order: equal specificities are never less than each other.
func (sp Specificity) Less(other Specificity) bool {
	return sp.Compare(other) < 0
}

// SortBySpecificity orders selectors most specific first. Selectors of equal
// specificity keep their relative order.
func SortBySpecificity(selectors []Selector) {
	sort.SliceStable(selectors, func(i, j int) bool {
		return selectors[j].Specificity().Less(selectors[i].Specificity())
	})
}

package typedef

import (
	"slices"
	"strings"
)

// Compare orders records struct-first, then by name (byte order) within
// the struct and non-struct partitions.
func Compare(a, b Record) int {
	as, bs := a.Kind.IsStructural(), b.Kind.IsStructural()
	switch {
	case as && !bs:
		return -1
	case !as && bs:
		return 1
	default:
		return strings.Compare(a.Name, b.Name)
	}
}

// Sort orders records in place by Compare. The sort is stable: records
// that compare equal, such as several impl blocks for one struct, keep
// their file order.
func Sort(records []Record) {
	slices.SortStableFunc(records, Compare)
}

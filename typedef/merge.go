package typedef

import "sort"

// Groups maps a namespace key to its records in emission order.
type Groups map[string][]Record

// Namespaces returns the group keys in ascending byte order, the order
// groups are emitted in. TopLevelNamespace sorts like any other key.
func (g Groups) Namespaces() []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of records across all groups.
func (g Groups) Len() int {
	n := 0
	for _, recs := range g {
		n += len(recs)
	}
	return n
}

// MergeStats describes what Merge did with impl records.
type MergeStats struct {
	// Folded counts impl records appended to a struct body.
	Folded int
	// Dropped holds impl records with no struct of the same name earlier in
	// the same namespace. They contribute nothing to the output.
	Dropped []Record
}

// Merge groups sorted records by namespace and folds each impl record into
// the body of the same-named struct in the same namespace.
//
// A struct is found by its index in the group, so later appends to the
// group never invalidate it. Impls never cross namespaces. An impl with no
// struct seen before it is dropped; Sort puts every struct ahead of every
// impl, so with sorted input only an impl whose struct is missing from the
// namespace is lost.
func Merge(sorted []Record) (Groups, MergeStats) {
	groups := make(Groups)
	targets := make(map[string]map[string]int) // namespace -> struct name -> index in group
	var stats MergeStats

	for _, rec := range sorted {
		ns := rec.NamespaceKey()

		switch rec.Kind {
		case KindStruct:
			byName, ok := targets[ns]
			if !ok {
				byName = make(map[string]int)
				targets[ns] = byName
			}
			byName[rec.Name] = len(groups[ns])
			groups[ns] = append(groups[ns], rec)

		case KindImpl:
			idx, ok := targets[ns][rec.Name]
			if !ok {
				stats.Dropped = append(stats.Dropped, rec)
				continue
			}
			target := &groups[ns][idx]
			if target.Def != "" {
				target.Def += "\n"
			}
			target.Def += rec.Def
			stats.Folded++

		default:
			groups[ns] = append(groups[ns], rec)
		}
	}

	return groups, stats
}

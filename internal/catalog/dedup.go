package catalog

// DedupAuthors collects every distinct author name across the given works,
// preserving first-seen order. Names are compared by exact string identity:
// variants differing only in case or whitespace stay separate authors.
func DedupAuthors(works []Work) []string {
	seen := make(map[string]bool)
	var names []string
	for _, w := range works {
		for _, name := range w.Authors {
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// Package domain defines the shared model types used across paintourney.
package domain

// Item is a single tournament entrant loaded from a record file.
// Items are compared by value; two files with the same content produce two
// distinct entrants.
type Item struct {
	// Name is the short label shown as the panel title.
	Name string
	// Description is the body text shown under the name.
	Description string
}

// Names returns the names of items in order.
func Names(items []Item) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names
}

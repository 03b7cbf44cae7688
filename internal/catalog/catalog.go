// Package catalog holds the immutable reference tables that availability and location ids
// stored on jobs and professionals are resolved against.
package catalog

// Entry is one reference row.
type Entry struct {
	ID          string
	Description string
}

// Catalog is a read-only id to description table. The zero value is an empty catalog.
type Catalog struct {
	byID map[string]Entry
}

// New builds a catalog from entries. Later duplicates of an id are ignored.
func New(entries ...Entry) *Catalog {
	c := &Catalog{byID: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if _, dup := c.byID[e.ID]; dup {
			continue
		}
		c.byID[e.ID] = e
	}
	return c
}

// Lookup returns the entry for id.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	e, ok := c.byID[id]
	return e, ok
}

// Resolve maps ids to entries in input order. Unknown ids are dropped.
func (c *Catalog) Resolve(ids []string) []Entry {
	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		if e, ok := c.Lookup(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// Set groups the catalogs a serializer needs.
type Set struct {
	Availability *Catalog
	Location     *Catalog
}

// Availabilities is the standard availability catalog.
func Availabilities() *Catalog {
	return New(
		Entry{ID: "1", Description: "1-2 days/week"},
		Entry{ID: "2", Description: "3-4 days/week"},
		Entry{ID: "3", Description: "Full Time"},
	)
}

// Locations is the standard location catalog.
func Locations() *Catalog {
	return New(
		Entry{ID: "1", Description: "onsite"},
		Entry{ID: "2", Description: "remote"},
		Entry{ID: "3", Description: "mixed"},
	)
}

// Default returns the standard catalogs.
func Default() Set {
	return Set{
		Availability: Availabilities(),
		Location:     Locations(),
	}
}

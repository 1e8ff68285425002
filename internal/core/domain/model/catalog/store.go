package catalog

import (
	"fmt"
	"sort"
	"strings"

	"kirana/internal/pkg/errs"
)

// searchLimit caps how many items a single search may return.
const searchLimit = 50

// Store is the read-only catalog lookup. It is built once at startup from the
// persisted catalog rows and shared by all sessions; lookups never touch the
// database.
type Store struct {
	byID    map[string]Item
	ordered []Item
}

// NewStore builds a Store from the given items.
//
// Every item must be constructed and item ids must be unique. Items are kept
// in a fixed order (name, then id as tiebreak) so search results are
// deterministic.
func NewStore(items []Item) (*Store, error) {
	byID := make(map[string]Item, len(items))
	ordered := make([]Item, 0, len(items))

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}

		if _, exists := byID[item.ID()]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause("catalog items",
				fmt.Errorf("duplicate item id %s", item.ID()))
		}

		byID[item.ID()] = item
		ordered = append(ordered, item)
	}

	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Name() != ordered[j].Name() {
			return ordered[i].Name() < ordered[j].Name()
		}
		return ordered[i].ID() < ordered[j].ID()
	})

	return &Store{byID: byID, ordered: ordered}, nil
}

// FindByID returns the item with the given id.
func (s *Store) FindByID(id string) (Item, bool) {
	item, ok := s.byID[id]
	return item, ok
}

// Search returns items whose name contains the query (case-insensitive) or
// that carry the query as a tag. Results keep the store's deterministic order
// and are capped at searchLimit. A blank query matches nothing.
func (s *Store) Search(query string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []Item
	for _, item := range s.ordered {
		if len(matches) == searchLimit {
			break
		}

		if item.matchesQuery(query) {
			matches = append(matches, item)
		}
	}

	return matches
}

// Len returns the number of items in the catalog.
func (s *Store) Len() int {
	return len(s.ordered)
}

// matchesQuery reports whether the item matches an already-lowercased query.
func (i Item) matchesQuery(query string) bool {
	if strings.Contains(strings.ToLower(i.name), query) {
		return true
	}

	for _, tag := range i.tags {
		if strings.EqualFold(tag, query) {
			return true
		}
	}

	return false
}

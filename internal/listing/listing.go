// Package listing implements the dashboard's client-side search and sort.
// Both work on a copy; the fetched slice is never reordered or shortened.
package listing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/checklist/internal/domain"
	"github.com/spf13/pflag"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Order is the display order of checklists by name.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// ParseOrder accepts "asc" or "desc" (case-insensitive). Empty means Ascending.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	default:
		return "", fmt.Errorf("invalid sort order %q (want asc or desc)", s)
	}
}

var _ pflag.Value = (*Order)(nil)

// Toggle flips the order.
func (o Order) Toggle() Order {
	if o == Descending {
		return Ascending
	}
	return Descending
}

// String implements pflag.Value.
func (o *Order) String() string {
	if *o == "" {
		return string(Ascending)
	}
	return string(*o)
}

// Set implements pflag.Value.
func (o *Order) Set(s string) error {
	parsed, err := ParseOrder(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Type implements pflag.Value.
func (o *Order) Type() string {
	return "order"
}

// Filter returns the checklists whose name contains query, ignoring case.
// A blank query matches everything.
func Filter(lists []domain.Checklist, query string) []domain.Checklist {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Checklist, 0, len(lists))
	for _, cl := range lists {
		if q == "" || strings.Contains(strings.ToLower(cl.Name), q) {
			out = append(out, cl)
		}
	}
	return out
}

// Sorter orders checklist names with a locale's collation rules.
type Sorter struct {
	tag language.Tag
}

// NewSorter returns a Sorter for tag.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{tag: tag}
}

// Sort returns a copy of lists ordered by name. Ties keep API order.
func (s *Sorter) Sort(lists []domain.Checklist, order Order) []domain.Checklist {
	// collate.Collator is not safe for concurrent use.
	c := collate.New(s.tag, collate.IgnoreCase)
	out := slices.Clone(lists)
	slices.SortStableFunc(out, func(a, b domain.Checklist) int {
		r := c.CompareString(a.Name, b.Name)
		if order == Descending {
			return -r
		}
		return r
	})
	return out
}

// View applies the search query, then the sort order.
func (s *Sorter) View(lists []domain.Checklist, query string, order Order) []domain.Checklist {
	return s.Sort(Filter(lists, query), order)
}

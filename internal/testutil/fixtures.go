package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/checklist/internal/domain"
)

var testIDCounter atomic.Int64

func nextID() string {
	return fmt.Sprintf("%d", testIDCounter.Add(1))
}

// Item options
type ItemOption func(*domain.Item)

func Completed() ItemOption {
	return func(i *domain.Item) {
		i.Completed = true
	}
}

// WithItemName sets the label the API reports under "itemName".
func WithItemName(name string) ItemOption {
	return func(i *domain.Item) {
		i.ItemName = name
	}
}

func NewTestChecklist(name string) domain.Checklist {
	return domain.Checklist{ID: nextID(), Name: name}
}

func NewTestItem(name string, opts ...ItemOption) domain.Item {
	it := domain.Item{ID: nextID(), Name: name}
	for _, o := range opts {
		o(&it)
	}
	return it
}

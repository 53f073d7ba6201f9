package domain

// Item is a single entry of a checklist.
//
// The API has been observed to return an item's label under either "name"
// or "itemName". Both are kept: Name is what listings show, ItemName is
// what the rename editor starts from. Listings never fall back to ItemName,
// so an item labelled only under "itemName" renders as unnamed.
type Item struct {
	ID        string
	Name      string
	ItemName  string
	Completed bool
}

// DisplayName returns the label to render. An empty result means the API
// sent no "name" for the item.
func (i *Item) DisplayName() string {
	return i.Name
}

// EditName returns the text a rename editor is seeded with, preferring ItemName.
func (i *Item) EditName() string {
	if i.ItemName != "" {
		return i.ItemName
	}
	return i.Name
}

// CountItems splits items into completed and pending counts.
func CountItems(items []Item) (done, pending int) {
	for _, it := range items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return done, pending
}

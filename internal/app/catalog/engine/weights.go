package engine

import "fmt"

// Weights are the relevance points a search token earns depending on where it matches.
// A token earns the weight of the first field it matches, in name, description, tag order.
// Highlight is the score of a highlighted product when the search is empty.
type Weights struct {
	Name        int
	Description int
	Tag         int
	Highlight   int
}

// DefaultWeights returns the storefront weights: 3 for name, 2 for description, 1 for tag.
func DefaultWeights() Weights {
	return Weights{
		Name:        3,
		Description: 2,
		Tag:         1,
		Highlight:   1,
	}
}

// Validate checks that weights keep the name > description > tag ordering.
func (w Weights) Validate() error {
	if w.Tag < 1 {
		return fmt.Errorf("tag weight must be positive, got %d", w.Tag)
	}
	if w.Description <= w.Tag {
		return fmt.Errorf("description weight (%d) must exceed tag weight (%d)", w.Description, w.Tag)
	}
	if w.Name <= w.Description {
		return fmt.Errorf("name weight (%d) must exceed description weight (%d)", w.Name, w.Description)
	}
	if w.Highlight < 0 {
		return fmt.Errorf("highlight weight must not be negative, got %d", w.Highlight)
	}
	return nil
}

package topics

import "fmt"

// Source supplies grammar topics. The built-in catalog is the default
// implementation; a remote content service would satisfy the same
// interface.
type Source interface {
	// All returns every available topic in display order.
	All() []Topic

	// ByID returns the topic with the given ID.
	ByID(id string) (Topic, error)
}

// Catalog is the built-in topic library.
type Catalog struct {
	topics []Topic
	byID   map[string]*Topic
}

var _ Source = (*Catalog)(nil)

// NewCatalog builds the default catalog from the seed data.
func NewCatalog() *Catalog {
	return newCatalog(seedTopics())
}

func newCatalog(ts []Topic) *Catalog {
	c := &Catalog{
		topics: ts,
		byID:   make(map[string]*Topic, len(ts)),
	}
	for i := range c.topics {
		c.byID[c.topics[i].ID] = &c.topics[i]
	}
	return c
}

func (c *Catalog) All() []Topic {
	out := make([]Topic, len(c.topics))
	copy(out, c.topics)
	return out
}

func (c *Catalog) ByID(id string) (Topic, error) {
	t, ok := c.byID[id]
	if !ok {
		return Topic{}, fmt.Errorf("unknown topic: %q", id)
	}
	return *t, nil
}

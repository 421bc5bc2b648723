package topic

// Catalog exposes topic retrieval for handlers and the gateway. A miss is a
// normal outcome, not an error.
type Catalog interface {
	List() []Topic
	Lookup(id string) (Topic, bool)
}

// MemoryCatalog implements Catalog with an in-memory slice loaded once at
// startup; topics are never mutated afterwards.
type MemoryCatalog struct {
	items []Topic
}

// NewMemoryCatalog returns a MemoryCatalog preloaded with the supplied topics.
func NewMemoryCatalog(items []Topic) *MemoryCatalog {
	return &MemoryCatalog{items: append([]Topic(nil), items...)}
}

// List returns the preloaded topic list.
func (c *MemoryCatalog) List() []Topic {
	return append([]Topic(nil), c.items...)
}

// Lookup finds a topic by identifier.
func (c *MemoryCatalog) Lookup(id string) (Topic, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return Topic{}, false
}

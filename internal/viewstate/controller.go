package viewstate

import "sync"

// Controller owns the three independent collection state machines of a dashboard
type Controller struct {
	mu          sync.Mutex
	collections map[Kind]*collection
}

// NewController creates empty collections in default grid state
func NewController() *Controller {
	c := &Controller{collections: make(map[Kind]*collection, len(Kinds))}
	for _, k := range Kinds {
		c.collections[k] = newCollection(k)
	}
	return c
}

// Seed captures a freshly fetched collection as its new original order
func (c *Controller) Seed(kind Kind, entries []Entry) {
	c.SeedAll(map[Kind][]Entry{kind: entries})
}

// SeedAll seeds several collections under one lock so readers never see a partial refresh
func (c *Controller) SeedAll(batch map[Kind][]Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for kind, entries := range batch {
		if col, ok := c.collections[kind]; ok {
			col.seed(entries)
		}
	}
}

// Select applies a radio control to one collection
func (c *Controller) Select(kind Kind, ctl Control) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	col := c.collections[kind]
	col.selectControl(ctl)
	return col.snapshot()
}

// SelectDefault restores fetch order (newest first) in grid layout
func (c *Controller) SelectDefault(kind Kind) State { return c.Select(kind, ControlDefault) }

// SelectAlphabetical sorts by title in grid layout
func (c *Controller) SelectAlphabetical(kind Kind) State { return c.Select(kind, ControlAZ) }

// SelectListView switches to list layout without reordering
func (c *Controller) SelectListView(kind Kind) State { return c.Select(kind, ControlList) }

// Snapshot returns the current state of one collection
func (c *Controller) Snapshot(kind Kind) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.collections[kind].snapshot()
}

// Snapshots returns every collection in dashboard order
func (c *Controller) Snapshots() []State {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]State, 0, len(Kinds))
	for _, k := range Kinds {
		out = append(out, c.collections[k].snapshot())
	}
	return out
}

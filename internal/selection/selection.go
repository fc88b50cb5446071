// Package selection tracks which accounts are active for scoping views.
package selection

import "slices"

// Coordinator holds the ordered set of selected account ids. Order is
// selection order; the first id pre-fills new transaction forms.
//
// A Coordinator is not safe for concurrent use; the ledger store guards it
// together with the account collection so the two never diverge.
type Coordinator struct {
	ids []string
}

// New returns a Coordinator holding ids in the given order. Blank and
// repeated ids are dropped.
func New(ids ...string) *Coordinator {
	c := &Coordinator{}
	for _, id := range ids {
		if id != "" && !c.Contains(id) {
			c.ids = append(c.ids, id)
		}
	}
	return c
}

// Toggle adds id when absent and removes it when present. It reports whether
// id is selected afterwards.
func (c *Coordinator) Toggle(id string) bool {
	if i := slices.Index(c.ids, id); i >= 0 {
		c.ids = slices.Delete(c.ids, i, i+1)
		return false
	}
	c.ids = append(c.ids, id)
	return true
}

// Prune drops every selected id for which known returns false.
func (c *Coordinator) Prune(known func(id string) bool) {
	c.ids = slices.DeleteFunc(c.ids, func(id string) bool { return !known(id) })
}

// IDs returns a copy of the selection in selection order.
func (c *Coordinator) IDs() []string {
	return slices.Clone(c.ids)
}

// Contains reports whether id is selected.
func (c *Coordinator) Contains(id string) bool {
	return slices.Contains(c.ids, id)
}

// First returns the earliest selected id, or "" when nothing is selected.
func (c *Coordinator) First() string {
	if len(c.ids) == 0 {
		return ""
	}
	return c.ids[0]
}

// Len returns the number of selected ids.
func (c *Coordinator) Len() int { return len(c.ids) }

package synth

import (
	"fmt"

	"github.com/biokg/go-biokg/pkg/types"
)

// Registry holds the fixed pools of organizations, universities, and
// locations. It is built once per generation run, before any person is
// created, so person records can reference its identifiers immediately.
// Entities are immutable after construction.
type Registry struct {
	entities map[string]types.Entity

	// ordered views, in creation order
	order  []string
	OrgIDs []string
	UniIDs []string
	LocIDs []string
}

// entityID builds a sequential, zero-padded identifier ("o001", "u002").
func entityID(prefix string, n int) string {
	return fmt.Sprintf("%s%03d", prefix, n)
}

// NewRegistry creates the entity registry from the fixed vocabulary pools.
func NewRegistry() *Registry {
	r := &Registry{entities: make(map[string]types.Entity)}

	for i, company := range companies {
		id := entityID("o", i+1)
		r.add(types.Entity{
			ID:    id,
			Label: types.LabelOrg,
			Name:  company,
			Attrs: map[string]string{"category": "company"},
		})
		r.OrgIDs = append(r.OrgIDs, id)
	}

	for i, uni := range universities {
		id := entityID("u", i+1)
		r.add(types.Entity{
			ID:    id,
			Label: types.LabelOrg,
			Name:  uni,
			Attrs: map[string]string{"category": "university"},
		})
		r.UniIDs = append(r.UniIDs, id)
	}

	for i, loc := range locations {
		id := entityID("l", i+1)
		r.add(types.Entity{
			ID:    id,
			Label: types.LabelLocation,
			Name:  loc,
			Attrs: map[string]string{},
		})
		r.LocIDs = append(r.LocIDs, id)
	}

	return r
}

func (r *Registry) add(e types.Entity) {
	r.entities[e.ID] = e
	r.order = append(r.order, e.ID)
}

// Get returns the entity for an id.
func (r *Registry) Get(id string) (types.Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}

// Name returns the display name for an id, or the id itself when unknown.
func (r *Registry) Name(id string) string {
	if e, ok := r.entities[id]; ok {
		return e.Name
	}
	return id
}

// Entities returns all registry entities in creation order.
func (r *Registry) Entities() []types.Entity {
	out := make([]types.Entity, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entities[id])
	}
	return out
}

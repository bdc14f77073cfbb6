package api

import (
	"sync"

	"github.com/angemarius939/datarw-core/internal/services"
)

// Ref is the {id, name} shape the reference-data API returns for projects
// and users.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ReferenceData caches reference-data lookups for selectors and the
// projector. The caller loads it from the reference-data API; the core only
// reads id → name.
type ReferenceData struct {
	mu       sync.RWMutex
	projects map[string]string
	users    map[string]string
}

func NewReferenceData() *ReferenceData {
	return &ReferenceData{
		projects: map[string]string{},
		users:    map[string]string{},
	}
}

// SetProjects replaces the project table.
func (r *ReferenceData) SetProjects(refs []Ref) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects = toTable(refs)
}

// SetUsers replaces the user table.
func (r *ReferenceData) SetUsers(refs []Ref) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = toTable(refs)
}

// ProjectName resolves a project id, falling back to the id itself.
func (r *ReferenceData) ProjectName(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name, ok := r.projects[id]; ok {
		return name
	}
	return id
}

// UserName resolves a user id, falling back to the id itself.
func (r *ReferenceData) UserName(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name, ok := r.users[id]; ok {
		return name
	}
	return id
}

// Lookup snapshots both tables into the projector's lookup shape.
func (r *ReferenceData) Lookup() services.NameLookup {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return services.NameLookup{
		Projects: copyTable(r.projects),
		Users:    copyTable(r.users),
	}
}

func toTable(refs []Ref) map[string]string {
	m := make(map[string]string, len(refs))
	for _, ref := range refs {
		m[ref.ID] = ref.Name
	}
	return m
}

func copyTable(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Package assignmenttest provides an in-memory assignment.Store for tests.
// It mirrors the gorm store's visibility rules (soft-deleted records are
// invisible to the default lookups) but not its transaction isolation:
// InTransaction simply runs the callback against the same store.
package assignmenttest

import (
	"context"
	"sort"
	"time"

	"github.com/teamtree-io/teamtree/dao/model"
	"github.com/teamtree-io/teamtree/pkg/assignment"
)

type pair struct {
	projectID  uint
	employeeID uint
}

type MemStore struct {
	projects    map[uint]*model.Project
	employees   map[uint]*model.Employee
	memberships map[pair]struct{}
	nextID      uint
}

var _ assignment.Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		projects:    make(map[uint]*model.Project),
		employees:   make(map[uint]*model.Employee),
		memberships: make(map[pair]struct{}),
	}
}

// AddProject seeds a project and returns its id. parentID may be nil for a
// top-level project.
func (m *MemStore) AddProject(title string, parentID *uint, maxParticipants int) uint {
	m.nextID++
	m.projects[m.nextID] = &model.Project{
		ID:              m.nextID,
		Title:           title,
		ParentProjectID: parentID,
		MaxParticipants: maxParticipants,
		CreatedAt:       time.Now(),
	}
	return m.nextID
}

// AddEmployee seeds an employee and returns their id.
func (m *MemStore) AddEmployee(name string, rank uint8) uint {
	m.nextID++
	m.employees[m.nextID] = &model.Employee{
		ID:           m.nextID,
		Name:         name,
		Rank:         rank,
		RegisteredAt: time.Now(),
	}
	return m.nextID
}

// SeedMembership links a pair without going through the validator.
func (m *MemStore) SeedMembership(projectID, employeeID uint) {
	m.memberships[pair{projectID, employeeID}] = struct{}{}
}

// HasMembership reports whether the pair is linked.
func (m *MemStore) HasMembership(projectID, employeeID uint) bool {
	_, ok := m.memberships[pair{projectID, employeeID}]
	return ok
}

// MembershipCount returns the total number of membership rows.
func (m *MemStore) MembershipCount() int {
	return len(m.memberships)
}

func (m *MemStore) Project(_ context.Context, id uint) (*model.Project, error) {
	p, ok := m.projects[id]
	if !ok || p.IsDeleted {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *MemStore) AnyProject(_ context.Context, id uint) (*model.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *MemStore) Employee(_ context.Context, id uint) (*model.Employee, error) {
	e, ok := m.employees[id]
	if !ok || e.IsDeleted {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (m *MemStore) ChildProjects(_ context.Context, parentID uint) ([]model.Project, error) {
	var out []model.Project
	for _, p := range m.projects {
		if p.ParentProjectID != nil && *p.ParentProjectID == parentID && !p.IsDeleted {
			out = append(out, *p)
		}
	}
	sortProjects(out)
	return out, nil
}

func (m *MemStore) ProjectsByIDs(_ context.Context, ids []uint) ([]model.Project, error) {
	var out []model.Project
	for _, id := range ids {
		if p, ok := m.projects[id]; ok && !p.IsDeleted {
			out = append(out, *p)
		}
	}
	sortProjects(out)
	return out, nil
}

func (m *MemStore) Members(_ context.Context, projectID uint) ([]model.Employee, error) {
	var out []model.Employee
	for mb := range m.memberships {
		if mb.projectID != projectID {
			continue
		}
		if e, ok := m.employees[mb.employeeID]; ok && !e.IsDeleted {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemStore) MembersOfProjects(ctx context.Context, projectIDs []uint) (map[uint][]model.Employee, error) {
	out := make(map[uint][]model.Employee, len(projectIDs))
	for _, id := range projectIDs {
		members, err := m.Members(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(members) > 0 {
			out[id] = members
		}
	}
	return out, nil
}

func (m *MemStore) ProjectsOf(_ context.Context, employeeID uint) ([]model.Project, error) {
	var out []model.Project
	for mb := range m.memberships {
		if mb.employeeID != employeeID {
			continue
		}
		if p, ok := m.projects[mb.projectID]; ok && !p.IsDeleted {
			out = append(out, *p)
		}
	}
	sortProjects(out)
	return out, nil
}

func (m *MemStore) AddMembership(_ context.Context, projectID, employeeID uint) error {
	m.memberships[pair{projectID, employeeID}] = struct{}{}
	return nil
}

func (m *MemStore) RemoveMembership(_ context.Context, projectID, employeeID uint) error {
	delete(m.memberships, pair{projectID, employeeID})
	return nil
}

func (m *MemStore) ClearMemberships(_ context.Context, projectID uint) error {
	for mb := range m.memberships {
		if mb.projectID == projectID {
			delete(m.memberships, mb)
		}
	}
	return nil
}

func (m *MemStore) MarkProjectDeleted(_ context.Context, projectID uint) error {
	if p, ok := m.projects[projectID]; ok {
		p.IsDeleted = true
	}
	return nil
}

func (m *MemStore) TopLevelAncestorID(_ context.Context, projectID uint) (uint, bool, error) {
	p, ok := m.projects[projectID]
	if !ok {
		return 0, false, nil
	}
	for p.ParentProjectID != nil {
		parent, ok := m.projects[*p.ParentProjectID]
		if !ok {
			return 0, false, nil
		}
		p = parent
	}
	return p.ID, true, nil
}

func (m *MemStore) SubtreeIDs(_ context.Context, rootID uint) ([]uint, error) {
	if _, ok := m.projects[rootID]; !ok {
		return nil, nil
	}
	ids := []uint{rootID}
	frontier := []uint{rootID}
	for len(frontier) > 0 {
		var next []uint
		for _, parentID := range frontier {
			for _, p := range m.projects {
				if p.ParentProjectID != nil && *p.ParentProjectID == parentID {
					ids = append(ids, p.ID)
					next = append(next, p.ID)
				}
			}
		}
		frontier = next
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *MemStore) InTransaction(_ context.Context, fn func(assignment.Store) error) error {
	return fn(m)
}

func sortProjects(projects []model.Project) {
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
}

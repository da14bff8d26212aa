package assignment

import (
	"context"

	"github.com/samber/lo"

	"github.com/teamtree-io/teamtree/dao/model"
)

// TopLevelMembershipCount counts the distinct top-level projects the
// employee currently belongs to. Soft-deleted projects and memberships of
// soft-deleted employees never count.
func (e *Engine) TopLevelMembershipCount(ctx context.Context, employeeID uint) (int, error) {
	projects, err := e.store.ProjectsOf(ctx, employeeID)
	if err != nil {
		return 0, storage(err)
	}
	count := 0
	for i := range projects {
		if projects[i].TopLevel() {
			count++
		}
	}
	return count, nil
}

// SubprojectMembershipCount counts the employee's memberships strictly
// inside the subtree rooted at topLevelProjectID, the root itself excluded.
func (e *Engine) SubprojectMembershipCount(ctx context.Context, employeeID, topLevelProjectID uint) (int, error) {
	subtree, err := e.store.SubtreeIDs(ctx, topLevelProjectID)
	if err != nil {
		return 0, storage(err)
	}
	inSubtree := make(map[uint]struct{}, len(subtree))
	for _, id := range subtree {
		if id != topLevelProjectID {
			inSubtree[id] = struct{}{}
		}
	}

	projects, err := e.store.ProjectsOf(ctx, employeeID)
	if err != nil {
		return 0, storage(err)
	}
	return lo.CountBy(projects, func(p model.Project) bool {
		_, ok := inSubtree[p.ID]
		return ok
	}), nil
}

package assignment

import (
	"context"

	"github.com/teamtree-io/teamtree/dao/model"
)

// TopLevelAncestor resolves the top-level project at the root of the parent
// chain containing projectID. A project with no parent is its own ancestor.
// Rejects with NotFound when the starting project does not exist or is
// soft-deleted.
func (e *Engine) TopLevelAncestor(ctx context.Context, projectID uint) (*model.Project, error) {
	p, err := e.store.Project(ctx, projectID)
	if err != nil {
		return nil, storage(err)
	}
	if p == nil {
		return nil, reject(KindNotFound, "project %d not found", projectID)
	}
	if p.TopLevel() {
		return p, nil
	}
	topID, ok, err := e.store.TopLevelAncestorID(ctx, projectID)
	if err != nil {
		return nil, storage(err)
	}
	if !ok {
		return nil, reject(KindNotFound, "project %d not found", projectID)
	}
	top, err := e.store.AnyProject(ctx, topID)
	if err != nil {
		return nil, storage(err)
	}
	if top == nil {
		return nil, reject(KindNotFound, "project %d not found", topID)
	}
	return top, nil
}

// SubtreeIDs returns the ids of all projects in the subtree rooted at
// rootID, rootID included. Soft-deleted nodes are not filtered; cascade
// deletion relies on seeing them.
func (e *Engine) SubtreeIDs(ctx context.Context, rootID uint) ([]uint, error) {
	ids, err := e.store.SubtreeIDs(ctx, rootID)
	if err != nil {
		return nil, storage(err)
	}
	return ids, nil
}

// ValidateParent checks that attaching projectID under parentID keeps the
// parent relation a forest. parentID == nil (detach to top level) is always
// valid. Walks the ancestor chain of the new parent; if it passes through
// projectID the change would create a cycle.
func (e *Engine) ValidateParent(ctx context.Context, projectID uint, parentID *uint) error {
	if parentID == nil {
		return nil
	}
	if *parentID == projectID {
		return reject(KindInvalidParent, "project %d cannot be its own parent", projectID)
	}
	cur := *parentID
	for {
		p, err := e.store.AnyProject(ctx, cur)
		if err != nil {
			return storage(err)
		}
		if p == nil {
			return reject(KindNotFound, "parent project %d not found", cur)
		}
		if p.ID == projectID {
			return reject(KindInvalidParent,
				"project %d is a descendant of project %d, linking them would create a cycle", *parentID, projectID)
		}
		if p.ParentProjectID == nil {
			return nil
		}
		cur = *p.ParentProjectID
	}
}

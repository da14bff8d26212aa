package assignment

import (
	"context"

	"k8s.io/klog/v2"
)

// DeleteProject soft-deletes the project and every descendant, clearing all
// membership rows across the subtree. The cascade runs over the id closure
// of the subtree rather than live child references, and inside a single
// store transaction: a crash leaves either the pre-deletion or the fully
// cascaded state visible. Re-deleting an already-deleted project converges
// on the same terminal state and succeeds.
func (e *Engine) DeleteProject(ctx context.Context, projectID uint) error {
	err := e.store.InTransaction(ctx, func(s Store) error {
		project, err := s.AnyProject(ctx, projectID)
		if err != nil {
			return err
		}
		if project == nil {
			return reject(KindNotFound, "project %d not found", projectID)
		}

		ids, err := s.SubtreeIDs(ctx, projectID)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err := s.ClearMemberships(ctx, id); err != nil {
				return err
			}
			if err := s.MarkProjectDeleted(ctx, id); err != nil {
				return err
			}
		}
		klog.V(2).Infof("deleted project %d with %d node(s) in its subtree", projectID, len(ids))
		return nil
	})
	return storage(err)
}

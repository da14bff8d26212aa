package assignment

import (
	"context"

	"github.com/samber/lo"

	"github.com/teamtree-io/teamtree/dao/model"
)

// Assign adds employeeID to projectID after running the business checks, in
// order:
//
//  1. both records must exist and be active (NotFound),
//  2. the project must have free capacity (CapacityExceeded),
//  3. the pair must not already be linked (AlreadyAssigned),
//  4. rank policy: top-level and subproject ceilings, and the
//     top-level-membership prerequisite for subprojects.
//
// force suppresses only the rank-policy rejections (QuotaExceeded,
// PrerequisiteMissing). Capacity and duplicate membership are physical
// constraints and hold regardless of force. On the forced subproject path
// the quota check is skipped when the prerequisite is missing; the two
// policy checks are independently overridable.
//
// The whole read-then-write sequence runs in one store transaction so that
// two concurrent assignments cannot both pass a ceiling check and commit.
func (e *Engine) Assign(ctx context.Context, projectID, employeeID uint, force bool) (*ProjectWithMembers, error) {
	var snapshot *ProjectWithMembers
	err := e.store.InTransaction(ctx, func(s Store) error {
		tx := scoped(s)

		employee, err := s.Employee(ctx, employeeID)
		if err != nil {
			return err
		}
		if employee == nil {
			return reject(KindNotFound, "employee %d not found", employeeID)
		}
		project, err := s.Project(ctx, projectID)
		if err != nil {
			return err
		}
		if project == nil {
			return reject(KindNotFound, "project %d not found", projectID)
		}

		members, err := s.Members(ctx, projectID)
		if err != nil {
			return err
		}
		if len(members) >= project.MaxParticipants {
			return reject(KindCapacityExceeded,
				"project %q reached its maximum of %d participants", project.Title, project.MaxParticipants)
		}
		if lo.ContainsBy(members, func(m model.Employee) bool { return m.ID == employee.ID }) {
			return reject(KindAlreadyAssigned,
				"employee %q is already assigned to project %q", employee.Name, project.Title)
		}

		if employee.Rank != model.RankUnrestricted {
			if err := tx.checkRankPolicy(ctx, project, employee, force); err != nil {
				return err
			}
		}

		if err := s.AddMembership(ctx, projectID, employeeID); err != nil {
			return err
		}
		refreshed, err := s.Members(ctx, projectID)
		if err != nil {
			return err
		}
		snapshot = &ProjectWithMembers{Project: *project, Members: refreshed}
		return nil
	})
	if err != nil {
		return nil, storage(err)
	}
	return snapshot, nil
}

func (e *Engine) checkRankPolicy(ctx context.Context, project *model.Project, employee *model.Employee, force bool) error {
	if project.TopLevel() {
		count, err := e.TopLevelMembershipCount(ctx, employee.ID)
		if err != nil {
			return err
		}
		if limit, ok := topLevelCeiling[employee.Rank]; ok && count >= limit && !force {
			return reject(KindQuotaExceeded,
				"rank %d employee cannot be in more than %d top-level projects", employee.Rank, limit)
		}
		return nil
	}

	top, err := e.TopLevelAncestor(ctx, project.ID)
	if err != nil {
		return err
	}
	memberOfTop, err := e.memberOf(ctx, employee.ID, top.ID)
	if err != nil {
		return err
	}
	if !memberOfTop {
		if !force {
			return reject(KindPrerequisiteMissing,
				"employee %q must be assigned to top-level project %q before joining its subproject",
				employee.Name, top.Title)
		}
		// Forced past the prerequisite: the subproject quota is not
		// evaluated on this path.
		return nil
	}

	count, err := e.SubprojectMembershipCount(ctx, employee.ID, top.ID)
	if err != nil {
		return err
	}
	if limit, ok := subprojectCeiling[employee.Rank]; ok && count >= limit && !force {
		return reject(KindQuotaExceeded,
			"rank %d employee cannot be in more than %d subprojects within top-level project %q",
			employee.Rank, limit, top.Title)
	}
	return nil
}

func (e *Engine) memberOf(ctx context.Context, employeeID, projectID uint) (bool, error) {
	projects, err := e.store.ProjectsOf(ctx, employeeID)
	if err != nil {
		return false, err
	}
	return lo.ContainsBy(projects, func(p model.Project) bool { return p.ID == projectID }), nil
}

// RemoveParticipant deletes the membership row linking the pair. Removing a
// membership that does not exist is a no-op, not an error.
func (e *Engine) RemoveParticipant(ctx context.Context, projectID, employeeID uint) error {
	return storage(e.store.RemoveMembership(ctx, projectID, employeeID))
}

package assignment

import (
	"context"

	"github.com/teamtree-io/teamtree/dao/model"
)

// Store is the persistence surface the engine runs against. Lookups return
// (nil, nil) when the record is absent or soft-deleted, except AnyProject
// which also sees soft-deleted rows. Membership writes are idempotent on
// absence.
//
// TopLevelAncestorID and SubtreeIDs are traversal primitives so an
// implementation can resolve a whole chain or subtree in a single round trip
// (the gorm store uses recursive CTEs); SubtreeIDs includes the root and does
// not filter soft-deleted nodes, so cascades can repair partially deleted
// subtrees.
type Store interface {
	Project(ctx context.Context, id uint) (*model.Project, error)
	AnyProject(ctx context.Context, id uint) (*model.Project, error)
	Employee(ctx context.Context, id uint) (*model.Employee, error)

	ChildProjects(ctx context.Context, parentID uint) ([]model.Project, error)
	ProjectsByIDs(ctx context.Context, ids []uint) ([]model.Project, error)

	Members(ctx context.Context, projectID uint) ([]model.Employee, error)
	MembersOfProjects(ctx context.Context, projectIDs []uint) (map[uint][]model.Employee, error)
	ProjectsOf(ctx context.Context, employeeID uint) ([]model.Project, error)

	AddMembership(ctx context.Context, projectID, employeeID uint) error
	RemoveMembership(ctx context.Context, projectID, employeeID uint) error
	ClearMemberships(ctx context.Context, projectID uint) error
	MarkProjectDeleted(ctx context.Context, projectID uint) error

	// TopLevelAncestorID resolves the root of the parent chain containing
	// projectID. ok is false when the project does not exist.
	TopLevelAncestorID(ctx context.Context, projectID uint) (id uint, ok bool, err error)
	// SubtreeIDs returns the transitive closure of children rooted at rootID,
	// including rootID itself.
	SubtreeIDs(ctx context.Context, rootID uint) ([]uint, error)

	// InTransaction runs fn against a transaction-scoped store. The
	// validator's read-then-write sequence needs serializable isolation (or
	// an equivalent exclusion scope) from the implementation; see the race
	// note on Engine.Assign.
	InTransaction(ctx context.Context, fn func(Store) error) error
}

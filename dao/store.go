package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/teamtree-io/teamtree/dao/model"
	"github.com/teamtree-io/teamtree/pkg/assignment"
)

// Store is the Postgres-backed membership store. Tree traversal uses
// recursive CTEs so ancestor and subtree resolution is one round trip
// regardless of nesting depth.
type Store struct {
	db *gorm.DB
}

var _ assignment.Store = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Project(ctx context.Context, id uint) (*model.Project, error) {
	return s.findProject(ctx, id, false)
}

func (s *Store) AnyProject(ctx context.Context, id uint) (*model.Project, error) {
	return s.findProject(ctx, id, true)
}

func (s *Store) findProject(ctx context.Context, id uint, includeDeleted bool) (*model.Project, error) {
	q := s.db.WithContext(ctx).Where("id = ?", id)
	if !includeDeleted {
		q = q.Where("is_deleted = false")
	}
	var p model.Project
	if err := q.First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *Store) Employee(ctx context.Context, id uint) (*model.Employee, error) {
	var e model.Employee
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_deleted = false", id).
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (s *Store) ChildProjects(ctx context.Context, parentID uint) ([]model.Project, error) {
	var out []model.Project
	err := s.db.WithContext(ctx).
		Where("parent_project_id = ? AND is_deleted = false", parentID).
		Order("id").
		Find(&out).Error
	return out, err
}

func (s *Store) ProjectsByIDs(ctx context.Context, ids []uint) ([]model.Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []model.Project
	err := s.db.WithContext(ctx).
		Where("id IN ? AND is_deleted = false", ids).
		Order("id").
		Find(&out).Error
	return out, err
}

func (s *Store) Members(ctx context.Context, projectID uint) ([]model.Employee, error) {
	var out []model.Employee
	err := s.db.WithContext(ctx).Model(&model.Employee{}).
		Joins("JOIN project_participants pp ON pp.employee_id = employees.id").
		Where("pp.project_id = ? AND employees.is_deleted = false", projectID).
		Order("employees.id").
		Find(&out).Error
	return out, err
}

func (s *Store) MembersOfProjects(ctx context.Context, projectIDs []uint) (map[uint][]model.Employee, error) {
	if len(projectIDs) == 0 {
		return map[uint][]model.Employee{}, nil
	}
	var rows []struct {
		ID              uint
		Name            string
		Rank            uint8
		RegisteredAt    time.Time
		MemberProjectID uint
	}
	err := s.db.WithContext(ctx).Table("employees").
		Select("employees.id, employees.name, employees.rank, employees.registered_at, pp.project_id AS member_project_id").
		Joins("JOIN project_participants pp ON pp.employee_id = employees.id").
		Where("pp.project_id IN ? AND employees.is_deleted = false", projectIDs).
		Order("employees.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint][]model.Employee, len(projectIDs))
	for i := range rows {
		out[rows[i].MemberProjectID] = append(out[rows[i].MemberProjectID], model.Employee{
			ID:           rows[i].ID,
			Name:         rows[i].Name,
			Rank:         rows[i].Rank,
			RegisteredAt: rows[i].RegisteredAt,
		})
	}
	return out, nil
}

func (s *Store) ProjectsOf(ctx context.Context, employeeID uint) ([]model.Project, error) {
	var out []model.Project
	err := s.db.WithContext(ctx).Model(&model.Project{}).
		Joins("JOIN project_participants pp ON pp.project_id = projects.id").
		Where("pp.employee_id = ? AND projects.is_deleted = false", employeeID).
		Order("projects.id").
		Find(&out).Error
	return out, err
}

func (s *Store) AddMembership(ctx context.Context, projectID, employeeID uint) error {
	return s.db.WithContext(ctx).
		Create(&model.Membership{ProjectID: projectID, EmployeeID: employeeID}).Error
}

func (s *Store) RemoveMembership(ctx context.Context, projectID, employeeID uint) error {
	return s.db.WithContext(ctx).
		Where("project_id = ? AND employee_id = ?", projectID, employeeID).
		Delete(&model.Membership{}).Error
}

func (s *Store) ClearMemberships(ctx context.Context, projectID uint) error {
	return s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&model.Membership{}).Error
}

func (s *Store) MarkProjectDeleted(ctx context.Context, projectID uint) error {
	return s.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", projectID).
		Update("is_deleted", true).Error
}

func (s *Store) TopLevelAncestorID(ctx context.Context, projectID uint) (uint, bool, error) {
	var ids []uint
	err := s.db.WithContext(ctx).Raw(`
		WITH RECURSIVE ancestors AS (
			SELECT id, parent_project_id FROM projects WHERE id = ?
			UNION ALL
			SELECT p.id, p.parent_project_id
			FROM projects p
			JOIN ancestors a ON p.id = a.parent_project_id
		)
		SELECT id FROM ancestors WHERE parent_project_id IS NULL LIMIT 1`, projectID).
		Scan(&ids).Error
	if err != nil || len(ids) == 0 {
		return 0, false, err
	}
	return ids[0], true, nil
}

func (s *Store) SubtreeIDs(ctx context.Context, rootID uint) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).Raw(`
		WITH RECURSIVE subtree AS (
			SELECT id FROM projects WHERE id = ?
			UNION ALL
			SELECT p.id
			FROM projects p
			JOIN subtree s ON p.parent_project_id = s.id
		)
		SELECT id FROM subtree`, rootID).
		Scan(&ids).Error
	return lo.Uniq(ids), err
}

// InTransaction runs fn inside a serializable transaction, closing the race
// window between a quota read and the membership write.
func (s *Store) InTransaction(ctx context.Context, fn func(assignment.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

package dao

import (
	"context"

	"gorm.io/gorm"

	"github.com/teamtree-io/teamtree/dao/model"
)

// Plain CRUD used by the HTTP layer. Anything touching the assignment
// invariants goes through pkg/assignment instead.

func (s *Store) CreateProject(ctx context.Context, p *model.Project) error {
	return s.db.WithContext(ctx).Create(p).Error
}

// UpdateProject overwrites the mutable project fields. The parent reference
// is written even when nil so a project can be detached back to top level.
func (s *Store) UpdateProject(ctx context.Context, p *model.Project) error {
	res := s.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ? AND is_deleted = false", p.ID).
		Updates(map[string]any{
			"title":             p.Title,
			"description":       p.Description,
			"max_participants":  p.MaxParticipants,
			"parent_project_id": p.ParentProjectID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListProjects returns all active projects, newest first. A non-empty search
// narrows by title substring.
func (s *Store) ListProjects(ctx context.Context, search string) ([]model.Project, error) {
	q := s.db.WithContext(ctx).Where("is_deleted = false")
	if search != "" {
		q = q.Where("title ILIKE ?", "%"+search+"%")
	}
	var out []model.Project
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

// TopLevelProjects returns the active roots of the forest.
func (s *Store) TopLevelProjects(ctx context.Context) ([]model.Project, error) {
	var out []model.Project
	err := s.db.WithContext(ctx).
		Where("parent_project_id IS NULL AND is_deleted = false").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (s *Store) CreateEmployee(ctx context.Context, e *model.Employee) error {
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *Store) UpdateEmployee(ctx context.Context, e *model.Employee) error {
	res := s.db.WithContext(ctx).Model(&model.Employee{}).
		Where("id = ? AND is_deleted = false", e.ID).
		Updates(map[string]any{
			"name": e.Name,
			"rank": e.Rank,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkEmployeeDeleted soft-deletes an employee. Re-deleting is a no-op.
func (s *Store) MarkEmployeeDeleted(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Model(&model.Employee{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (s *Store) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	var out []model.Employee
	err := s.db.WithContext(ctx).
		Where("is_deleted = false").
		Order("id").
		Find(&out).Error
	return out, err
}

// PruneOrphanedMemberships deletes membership rows whose project has been
// soft-deleted, returning the number of rows removed. The cascade normally
// clears these inside its own transaction; the janitor calls this as a
// consistency sweep.
func (s *Store) PruneOrphanedMemberships(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("project_id IN (?)",
			s.db.Model(&model.Project{}).Select("id").Where("is_deleted = true")).
		Delete(&model.Membership{})
	return res.RowsAffected, res.Error
}

package model

// Membership links an employee to a project. The unique index keeps the
// relation a bare set: at most one row per (project, employee) pair.
type Membership struct {
	ID         uint `gorm:"primarykey" json:"id"`
	ProjectID  uint `gorm:"not null;uniqueIndex:idx_project_participant" json:"projectId"`
	EmployeeID uint `gorm:"not null;uniqueIndex:idx_project_participant" json:"employeeId"`
}

func (Membership) TableName() string {
	return "project_participants"
}

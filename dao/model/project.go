package model

import "time"

// Project is a node in the project forest. A project with no parent is a
// top-level project; every other project belongs to exactly one top-level
// ancestor through its parent chain.
type Project struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Title           string    `gorm:"type:varchar(128);not null" json:"title"`
	Description     string    `gorm:"type:varchar(512)" json:"description"`
	ParentProjectID *uint     `gorm:"index" json:"parentProjectId"`
	MaxParticipants int       `gorm:"not null;check:max_participants > 0" json:"maxParticipants"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	IsDeleted       bool      `gorm:"not null;default:false;index" json:"-"`
}

func (Project) TableName() string {
	return "projects"
}

// TopLevel reports whether the project has no parent.
func (p *Project) TopLevel() bool {
	return p.ParentProjectID == nil
}

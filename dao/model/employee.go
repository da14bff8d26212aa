package model

import "time"

// Employee ranks. Rank 1 is unrestricted; ranks 2-4 are limited in how many
// top-level projects and subprojects they may join at the same time.
const (
	RankUnrestricted uint8 = 1
	RankSenior       uint8 = 2
	RankRegular      uint8 = 3
	RankJunior       uint8 = 4
)

type Employee struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(128);not null" json:"name"`
	Rank         uint8     `gorm:"not null;check:rank >= 1 AND rank <= 4" json:"rank"`
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registeredAt"`
	IsDeleted    bool      `gorm:"not null;default:false;index" json:"-"`
}

func (Employee) TableName() string {
	return "employees"
}

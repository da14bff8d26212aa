package dao

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"k8s.io/klog/v2"

	"github.com/teamtree-io/teamtree/dao/model"
)

// Migrate applies all pending schema migrations.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			// Base schema: project forest, employees and the membership
			// join table with its pair uniqueness index.
			ID: "20250828-initial-schema",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&model.Project{},
					&model.Employee{},
					&model.Membership{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					model.Membership{}.TableName(),
					model.Employee{}.TableName(),
					model.Project{}.TableName(),
				)
			},
		},
	})
	if err := m.Migrate(); err != nil {
		return err
	}
	klog.Info("database schema is up to date")
	return nil
}

package database

import (
	"log"
	"time"

	"club_cinema/model"

	"gorm.io/gorm"
)

// SchemaMigration tracks which versions have been applied, so each
// migration runs exactly once instead of being probed on every boot.
type SchemaMigration struct {
	Version   int `gorm:"primaryKey"`
	Name      string
	AppliedAt time.Time
}

type migration struct {
	Version int
	Name    string
	Run     func(tx *gorm.DB) error
}

// Additive only. Never edit an applied migration; append a new one.
var migrations = []migration{
	{
		Version: 1,
		Name:    "create tickets, schedule, movies tables",
		Run: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&model.Ticket{},
				&model.ScheduleEntry{},
				&model.Movie{},
			)
		},
	},
	{
		Version: 2,
		Name:    "create settings table",
		Run: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&model.Setting{})
		},
	},
	{
		Version: 3,
		Name:    "add group member id column",
		Run: func(tx *gorm.DB) error {
			m := tx.Migrator()
			if !m.HasColumn(&model.Ticket{}, "member_ids") {
				return m.AddColumn(&model.Ticket{}, "MemberIds")
			}
			return nil
		},
	},
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return err
	}

	for _, m := range migrations {
		var count int64
		db.Model(&SchemaMigration{}).Where("version = ?", m.Version).Count(&count)
		if count > 0 {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Run(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{
				Version:   m.Version,
				Name:      m.Name,
				AppliedAt: time.Now(),
			}).Error
		})
		if err != nil {
			return err
		}
		log.Printf("applied migration %d (%s)", m.Version, m.Name)
	}

	return nil
}

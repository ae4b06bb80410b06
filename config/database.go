package config

import (
	"archery/repository"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var enumQueries = []string{
	`CREATE TYPE archery.review_status AS ENUM ('pending', 'in_progress', 'eligible', 'ineligible')`,
	`CREATE TYPE archery.request_kind AS ENUM ('CLUB_ENROLLMENT', 'COMPETITION_ENROLLMENT', 'COMPETITION_WITHDRAWAL', 'RECORDER_ASSIGNMENT', 'ACCOUNT_REPORT', 'FRIENDSHIP')`,
	`CREATE TYPE archery.participation_role AS ENUM ('archer', 'recorder')`,
	`CREATE TYPE archery.score_type AS ENUM ('competition', 'practice', 'championship')`,
}

func InitDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(Env().DSN()), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "archery.",
			SingularTable: false,
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema, the enum types and every table.
func Migrate(db *gorm.DB) error {
	x := db.Exec(`CREATE SCHEMA IF NOT EXISTS archery`)
	if x.Error != nil {
		return x.Error
	}
	for _, query := range enumQueries {
		x := db.Exec(query)
		if x.Error != nil {
			if strings.Contains(x.Error.Error(), "already exists") {
				continue
			}
			return x.Error
		}
	}

	return db.AutoMigrate(
		&repository.Club{},
		&repository.Account{},
		&repository.Equipment{},
		&repository.Discipline{},
		&repository.AgeDivision{},
		&repository.TargetFace{},
		&repository.Category{},
		&repository.Round{},
		&repository.Range{},
		&repository.EligibleGroup{},
		&repository.EligibleClubMember{},
		&repository.YearlyClubChampionship{},
		&repository.ClubCompetition{},
		&repository.EventContext{},
		&repository.Participating{},
		&repository.ParticipantScore{},
		&repository.ReviewRequest{},
		&repository.Friendship{},
		&repository.CachedData{},
	)
}

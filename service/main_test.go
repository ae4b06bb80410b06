package service

import (
	"fmt"
	"log"
	"testing"
	"time"

	"archery/config"
	"archery/repository"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var db *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "DATABASE_NAME=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600) // hard kill after 10 minutes
	sqlInfo := fmt.Sprintf(
		"host=localhost port=%s user=postgres password=postgres dbname=postgres sslmode=disable search_path=archery",
		resource.GetPort("5432/tcp"))

	// the container may not accept connections yet
	if err := pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(sqlInfo), &gorm.Config{
			NamingStrategy: schema.NamingStrategy{
				TablePrefix:   "archery.",
				SingularTable: false,
			},
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return err
		}
		return config.Migrate(db)
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	defer func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}
	}()
	m.Run()
}

func tearDown() {
	for _, table := range []string{
		"cached_data", "friendships", "review_requests", "participant_scores", "participatings",
		"event_contexts", "club_competitions", "yearly_club_championships", "eligible_club_members",
		"eligible_groups", "ranges", "rounds", "categories", "target_faces", "age_divisions",
		"disciplines", "equipment", "accounts", "clubs",
	} {
		db.Exec("TRUNCATE archery." + table + " RESTART IDENTITY CASCADE")
	}
}

func createAccount(t *testing.T, roles ...repository.Role) *repository.Account {
	t.Helper()
	if len(roles) == 0 {
		roles = []repository.Role{repository.RoleArcher}
	}
	account := &repository.Account{
		Username:     gofakeit.Username() + gofakeit.DigitN(6),
		Email:        gofakeit.DigitN(6) + gofakeit.Email(),
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		DateOfBirth:  time.Now().AddDate(-30, 0, 0),
		PasswordHash: "x",
		Roles:        pq.StringArray{},
	}
	for _, role := range roles {
		account.Roles = append(account.Roles, string(role))
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func createClub(t *testing.T, creator *repository.Account, open bool) *repository.Club {
	t.Helper()
	club, err := NewClubService(db, nil).CreateClub(creator, ClubInput{
		Name:       gofakeit.Company() + " " + gofakeit.DigitN(4),
		MinAge:     0,
		MaxAge:     150,
		OpenToJoin: open,
	})
	require.NoError(t, err)
	return club
}

// createRound makes a single range round with the given ends of three arrows.
func createRound(t *testing.T, ends int) *repository.Round {
	t.Helper()
	equipment := &repository.Equipment{Name: "Recurve " + gofakeit.DigitN(5)}
	discipline := &repository.Discipline{Name: "Target " + gofakeit.DigitN(5)}
	division := &repository.AgeDivision{Name: "Open " + gofakeit.DigitN(5), MinAge: 0}
	face := &repository.TargetFace{Name: "122cm " + gofakeit.DigitN(5), DiameterCm: 122, ScoringZones: 10}
	require.NoError(t, db.Create(equipment).Error)
	require.NoError(t, db.Create(discipline).Error)
	require.NoError(t, db.Create(division).Error)
	require.NoError(t, db.Create(face).Error)
	category := &repository.Category{EquipmentId: equipment.Id, DisciplineId: discipline.Id, AgeDivisionId: division.Id}
	require.NoError(t, db.Create(category).Error)

	round, err := repository.NewRoundRepository(db).Create(&repository.Round{
		Name:       "Round " + gofakeit.DigitN(6),
		CategoryId: category.Id,
		Ranges: []*repository.Range{
			{RangeOrder: 1, DistanceM: 70, TargetFaceId: face.Id, NumberOfEnds: ends, ArrowsPerEnd: 3},
		},
	})
	require.NoError(t, err)
	return round
}

// createCompetition hosts an open competition at club and schedules round.
func createCompetition(t *testing.T, host *repository.Account, club *repository.Club, round *repository.Round, groupId *int) (*repository.ClubCompetition, []*repository.EventContext) {
	t.Helper()
	events := NewEventService(db, NewEligibilityService(db), nil)
	competition, err := events.CreateCompetition(host, CompetitionInput{
		Name:              "Cup " + gofakeit.DigitN(4),
		HostClubId:        club.Id,
		EligibleGroupId:   groupId,
		StartDate:         time.Now(),
		EndDate:           time.Now().AddDate(0, 0, 1),
		OpenForEnrollment: true,
	})
	require.NoError(t, err)
	schedule, err := events.ScheduleRound(host, competition.Id, round.Id)
	require.NoError(t, err)
	return competition, schedule
}

func enter(t *testing.T, account *repository.Account, competitionId int, role repository.ParticipationRole) {
	t.Helper()
	require.NoError(t, repository.NewParticipationRepository(db).Add(account.Id, competitionId, role))
}

func reload(t *testing.T, account *repository.Account) *repository.Account {
	t.Helper()
	fresh, err := repository.NewAccountRepository(db).GetById(account.Id)
	require.NoError(t, err)
	return fresh
}

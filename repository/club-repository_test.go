package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func dryRunDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=archery dbname=archery sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		NamingStrategy:       schema.NamingStrategy{TablePrefix: "archery."},
	})
	require.NoError(t, err)
	return db
}

func TestClubInsertKeepsZeroValues(t *testing.T) {
	club := &Club{Name: "Closed Club", CreatorId: 1, MinAge: 0, MaxAge: 0, OpenToJoin: false}

	stmt := dryRunDB(t).Create(club).Statement

	assert.False(t, club.OpenToJoin, "a closed club stays closed")
	assert.Equal(t, 0, club.MaxAge)
	assert.Contains(t, stmt.SQL.String(), "open_to_join")
	assert.Contains(t, stmt.Vars, false)
}

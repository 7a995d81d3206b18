package repositories

import (
	"context"
	"testing"
	"time"

	"gateway-discoveries/internal/adapters/persistence/models"
	"gateway-discoveries/internal/core/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func sightingColumns() []string {
	return []string{"id", "species", "location", "gate", "count", "confidence", "status", "image_url", "reported_at", "created_at"}
}

func TestSightingGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSightingRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "animal_sightings"`).
		WillReturnRows(sqlmock.NewRows(sightingColumns()))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrSightingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSightingUpdateRefreshesReportedAtOnStatusChange(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSightingRepository(db)

	stored := time.Now().Add(-6 * time.Hour)
	mock.ExpectQuery(`SELECT \* FROM "animal_sightings"`).
		WillReturnRows(sqlmock.NewRows(sightingColumns()).
			AddRow("s1", "African Lion", "Skukuza", "Paul Kruger Gate", 3, 95, models.SightingStatusRecent, "", stored, stored))
	mock.ExpectExec(`UPDATE "animal_sightings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.Update(context.Background(), "s1", &models.SightingUpdate{
		Species:    "African Lion",
		Location:   "Skukuza",
		Gate:       "Paul Kruger Gate",
		Count:      3,
		Confidence: 95,
		Status:     models.SightingStatusHistorical,
	})
	require.NoError(t, err)

	assert.Equal(t, models.SightingStatusHistorical, updated.Status)
	assert.True(t, updated.ReportedAt.After(stored), "status change should refresh reported_at")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSightingUpdateKeepsReportedAtOnSameStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSightingRepository(db)

	stored := time.Now().Add(-6 * time.Hour)
	mock.ExpectQuery(`SELECT \* FROM "animal_sightings"`).
		WillReturnRows(sqlmock.NewRows(sightingColumns()).
			AddRow("s1", "African Lion", "Skukuza", "Paul Kruger Gate", 3, 95, models.SightingStatusActive, "", stored, stored))
	mock.ExpectExec(`UPDATE "animal_sightings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.Update(context.Background(), "s1", &models.SightingUpdate{
		Species:    "Leopard",
		Location:   "Lower Sabie River",
		Gate:       "Crocodile Bridge",
		Count:      1,
		Confidence: 80,
		Status:     models.SightingStatusActive,
	})
	require.NoError(t, err)

	// Full replacement of the fields, but the timestamp stays.
	assert.Equal(t, "Leopard", updated.Species)
	assert.True(t, updated.ReportedAt.Equal(stored))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetActiveByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WithArgs("ghost@kruger.co.za", models.UserStatusActive, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "role", "status", "last_login", "created_at", "updated_at"}))

	_, err := repo.GetActiveByEmail(context.Background(), "ghost@kruger.co.za")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/domain/teams"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockTeamRepository creates a GormTeamRepository over a mocked postgres connection
func newMockTeamRepository(t *testing.T) (*GormTeamRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return NewGormTeamRepository(gormDB), mock, mockDB
}

func TestGormTeamRepository_PostgresErrors(t *testing.T) {
	t.Run("unique violation names the unique field", func(t *testing.T) {
		repo, mock, mockDB := newMockTeamRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`INSERT INTO "teams"`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_teams_name"})

		err := repo.Create(context.Background(), teams.NewTeam("Alpha", "", 1, 1, 1))
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeIntegrityConflict, domainErr.Code)
		assert.Equal(t, "name", domainErr.Field)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign key violation is an integrity conflict", func(t *testing.T) {
		repo, mock, mockDB := newMockTeamRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`INSERT INTO "teams"`).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		err := repo.Create(context.Background(), teams.NewTeam("Alpha", "", 1, 1, 1))
		assert.ErrorIs(t, err, shared.ErrIntegrityConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete counts dependents before deleting", func(t *testing.T) {
		repo, mock, mockDB := newMockTeamRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE team_id = \$1`).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		err := repo.Delete(context.Background(), 4)
		assert.ErrorIs(t, err, shared.ErrHasActiveReferences)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete without dependents removes the row", func(t *testing.T) {
		repo, mock, mockDB := newMockTeamRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE team_id = \$1`).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(`DELETE FROM "teams" WHERE id = \$1`).
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 4))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

package main

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gradevo/gradevo-api/internal/config"
	"github.com/gradevo/gradevo-api/internal/schema"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs dbctl with args against a sqlmock database and returns stdout.
func execute(t *testing.T, setup func(mock sqlmock.Sqlmock), args ...string) (string, error) {
	t.Helper()
	rawDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	setup(mock)
	mock.ExpectClose()

	connected := false
	connect := func(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
		connected = true
		return sqlx.NewDb(rawDB, "sqlmock"), nil
	}

	var out bytes.Buffer
	cmd := newRootCmd(connect)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"-c", filepath.Join(t.TempDir(), "none.env")}, args...))

	err = cmd.ExecuteContext(context.Background())
	if connected {
		assert.NoError(t, mock.ExpectationsWereMet())
	}
	return out.String(), err
}

func TestCategoriesCmd(t *testing.T) {
	out, err := execute(t, func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT category FROM portfolio")).
			WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("Brand").AddRow("Tech Solutions"))
	}, "categories")

	require.NoError(t, err)
	assert.Equal(t, "Brand (legacy, run migrate-categories)\nTech Solutions\n", out)
}

func TestMigrateCategoriesCmd(t *testing.T) {
	out, err := execute(t, func(mock sqlmock.Sqlmock) {
		for i, m := range schema.LegacyCategoryMappings {
			affected := int64(0)
			if i == 0 {
				affected = 3
			}
			mock.ExpectExec(regexp.QuoteMeta("UPDATE portfolio SET category = $1 WHERE category = $2")).
				WithArgs(m.To, m.From).
				WillReturnResult(sqlmock.NewResult(0, affected))
		}
	}, "migrate-categories")

	require.NoError(t, err)
	assert.Contains(t, out, `"Brand" -> "Brand Solutions": 3 updated`)
	assert.Contains(t, out, `"E-Commerce" -> "Tech Solutions": 0 updated`)
}

func TestSchemaCmd_Failure(t *testing.T) {
	_, err := execute(t, func(mock sqlmock.Sqlmock) {
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS users")).
			WillReturnError(sql.ErrConnDone)
	}, "schema")

	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestAdminCmd(t *testing.T) {
	out, err := execute(t, func(mock sqlmock.Sqlmock) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (username, password)")).
			WithArgs("editor", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}, "admin", "--username", "editor", "--password", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "Admin \"editor\" saved\n", out)
}

func TestAdminCmd_RequiresPassword(t *testing.T) {
	_, err := execute(t, func(mock sqlmock.Sqlmock) {}, "admin")
	assert.EqualError(t, err, "--username and --password are required")
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	_, err := execute(t, func(mock sqlmock.Sqlmock) {}, "drop-everything")
	assert.Error(t, err)
}

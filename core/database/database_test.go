package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "cama",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	// We cannot test a successful connection without a real database; the
	// loader below covers the query path through sqlmock.
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func TestLoadTable(t *testing.T) {
	t.Run("LoadsRowsAsStrings", func(t *testing.T) {
		db, mock := newMockDB(t)

		rows := sqlmock.NewRows([]string{"PARID", "SFLA", "RMBED"}).
			AddRow("1234001", 1500, 3).
			AddRow("1234002", nil, 2)
		mock.ExpectQuery("SELECT \\* FROM `cama_parcels`").WillReturnRows(rows)

		tbl, err := LoadTable(db, "cama_parcels")
		require.NoError(t, err)

		assert.Equal(t, []string{"PARID", "SFLA", "RMBED"}, tbl.Columns)
		require.Equal(t, 2, tbl.Len())
		assert.Equal(t, "1234001", tbl.Rows[0].Get("PARID"))
		assert.Equal(t, "1500", tbl.Rows[0].Get("SFLA"))
		// NULL renders as the blank string, same as an empty CSV cell.
		assert.Equal(t, "", tbl.Rows[1].Get("SFLA"))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EmptyTable", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery("SELECT \\* FROM `cama_parcels`").
			WillReturnRows(sqlmock.NewRows([]string{"PARID"}))

		tbl, err := LoadTable(db, "cama_parcels")
		require.NoError(t, err)
		assert.Equal(t, 0, tbl.Len())
		assert.True(t, tbl.HasColumn("PARID"))
	})

	t.Run("RejectsInvalidTableName", func(t *testing.T) {
		db, _ := newMockDB(t)

		_, err := LoadTable(db, "cama_parcels; DROP TABLE x")
		assert.Error(t, err)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery("SELECT \\* FROM `missing`").
			WillReturnError(assert.AnError)

		_, err := LoadTable(db, "missing")
		assert.Error(t, err)
	})
}

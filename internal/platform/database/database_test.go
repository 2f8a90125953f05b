package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/config"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/database"
)

func TestOpen(t *testing.T) {
	t.Parallel()

	db, err := database.Open(&config.DatabaseConfig{
		Driver:       "postgres",
		DSN:          "postgres://vm:vm@127.0.0.1:1/vm?sslmode=disable",
		MaxOpenConns: 4,
		MaxIdleConns: 2,
	})
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 4, db.Stats().MaxOpenConnections)
}

func TestOpen_EmptyDSN(t *testing.T) {
	t.Parallel()

	_, err := database.Open(&config.DatabaseConfig{Driver: "postgres"})
	assert.Error(t, err)
}

func TestOpen_UnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := database.Open(&config.DatabaseConfig{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)
}

func TestPinger_HealthCheck(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	p := database.NewPinger(db)
	assert.Equal(t, "database", p.Name())
	assert.NoError(t, p.HealthCheck(context.Background()))
	assert.ErrorContains(t, p.HealthCheck(context.Background()), "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

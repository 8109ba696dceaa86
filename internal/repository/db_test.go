package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	creds := &Credentials{
		Host:              host,
		Port:              port.Int(),
		User:              "testuser",
		Password:          "testpass",
		DBName:            "testdb",
		MigrationsDirPath: "../../migrations",
	}

	db, err := Connect(creds)
	require.NoError(t, err)

	require.NoError(t, RunMigrations(db, creds))

	t.Cleanup(func() {
		db.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	return db
}

func seedCategory(t *testing.T, db *sql.DB, name, description string) int {
	t.Helper()
	var id int
	err := db.QueryRow(
		`INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING category_id`,
		name, description,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedProduct(t *testing.T, db *sql.DB, name, price string, categoryID, stock int) int {
	t.Helper()
	var id int
	err := db.QueryRow(
		`INSERT INTO products (name, price, category_id, description, subcategory, stock, featured, image_url)
		 VALUES ($1, $2, $3, '', '', $4, false, '') RETURNING product_id`,
		name, price, categoryID, stock,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

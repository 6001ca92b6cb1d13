package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/knlox/guitar-tab-api/internal/models"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupUserPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	// No uniqueness constraint on email, duplicates are permitted
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255),
		password VARCHAR(255)
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserWriteRepository_SaveInsert(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &models.UserDB{Email: "alice@example.com", Password: "password123"})
	assert.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, "alice@example.com", saved.Email)
	assert.Equal(t, "password123", saved.Password)
}

func TestUserWriteRepository_SaveOverwritesByID(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, &models.UserDB{Email: "bob@example.com", Password: "old"})
	assert.NoError(t, err)

	overwritten, err := writeRepo.Save(ctx, &models.UserDB{ID: saved.ID, Email: "bob@new.com", Password: "new"})
	assert.NoError(t, err)
	assert.Equal(t, saved.ID, overwritten.ID)
	assert.Equal(t, "bob@new.com", overwritten.Email)
	assert.Equal(t, "new", overwritten.Password)

	user, err := readRepo.GetByEmail(ctx, "bob@new.com")
	assert.NoError(t, err)
	assert.Equal(t, "new", user.Password)
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, &models.UserDB{Email: "charlie@example.com", Password: "secret"})
	assert.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "charlie@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "secret", user.Password)
	})

	t.Run("not found", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, user)
	})

	t.Run("duplicate emails yield a single row", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, &models.UserDB{Email: "dup@example.com", Password: "first"})
		assert.NoError(t, err)
		_, err = writeRepo.Save(ctx, &models.UserDB{Email: "dup@example.com", Password: "second"})
		assert.NoError(t, err)

		user, err := readRepo.GetByEmail(ctx, "dup@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "dup@example.com", user.Email)
	})
}

func TestUserWriteRepository_Delete(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, &models.UserDB{Email: "dave@example.com", Password: "secret2"})
	assert.NoError(t, err)

	assert.NoError(t, writeRepo.Delete(ctx, saved.ID))

	_, err = readRepo.GetByEmail(ctx, "dave@example.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	err = writeRepo.Delete(ctx, saved.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

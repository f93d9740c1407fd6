package testutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"go.uber.org/multierr"
)

type Cleanup func() error

const (
	postgresExpireSeconds = 120
	maxUpwardTraversal    = 10
)

var errFileOrDirectoryNotFound = fmt.Errorf("file or directory not found")

// TestWithPostgres starts a disposable Postgres container with the migrations applied.
func TestWithPostgres(pool *dockertest.Pool) (_ *sqlx.DB, _ Cleanup, err error) {
	if pool == nil {
		pool, err = dockertest.NewPool("")
		if err != nil {
			return nil, nil, fmt.Errorf("could not construct pool: %w", err)
		}
	}

	if err = pool.Client.Ping(); err != nil {
		return nil, nil, fmt.Errorf("could not connect to Docker: %w", err)
	}

	migrationsDir, err := findUpwardFileOrDirectory("migrations")
	if err != nil {
		return nil, nil, fmt.Errorf("could not find migrations: %w", err)
	}

	resource, err := pool.RunWithOptions(
		&dockertest.RunOptions{
			Repository: "postgres",
			Tag:        "16-alpine",
			Env: []string{
				"POSTGRES_DB=messaging",
				"POSTGRES_USER=user",
				"POSTGRES_PASSWORD=password",
			},
			Mounts: []string{
				fmt.Sprintf("%s:/docker-entrypoint-initdb.d", migrationsDir),
			},
		},
		func(config *docker.HostConfig) {
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to run postgres container: %w", err)
	}

	cleanup := func() error {
		if purgeErr := pool.Purge(resource); purgeErr != nil {
			return fmt.Errorf("failed to purge postgres container: %w", purgeErr)
		}
		return nil
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, cleanup())
		}
	}()

	if err = resource.Expire(postgresExpireSeconds); err != nil {
		return nil, nil, fmt.Errorf("failed to set expire time: %w", err)
	}

	dsn := fmt.Sprintf("postgres://user:password@%s/messaging?sslmode=disable", resource.GetHostPort("5432/tcp"))

	var db *sqlx.DB
	err = pool.Retry(func() error {
		var retryErr error
		db, retryErr = sqlx.Connect("postgres", dsn)
		return retryErr
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return db, cleanup, nil
}

func findUpwardFileOrDirectory(s string) (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("could not get working directory: %w", err)
	}

	for i := 0; i < maxUpwardTraversal; i++ {
		path := filepath.Join(currentDir, s)
		if _, err = os.Stat(path); err == nil {
			return path, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("could not stat %s: %w", path, err)
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}
	return "", errFileOrDirectoryNotFound
}

//go:build integration

package integration

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	dbUser = "postgres"
	dbPass = "postgres"
	dbName = "dogcaredb"
)

// pgVectorContainer runs a throwaway Postgres with the pgvector extension.
type pgVectorContainer struct {
	container testcontainers.Container
	Host      string
	Port      string
}

func startPgVector(ctx context.Context) (*pgVectorContainer, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "pgvector/pgvector:pg16",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     dbUser,
				"POSTGRES_PASSWORD": dbPass,
				"POSTGRES_DB":       dbName,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("start pgvector container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, fmt.Errorf("container port: %w", err)
	}

	return &pgVectorContainer{
		container: container,
		Host:      host,
		Port:      port.Port(),
	}, nil
}

func (c *pgVectorContainer) Close() {
	cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	if err := c.container.Terminate(cancelCtx); err != nil {
		log.Printf("failed to terminate pgvector container: %v", err)
	}
}

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/adrianliechti/joborder/pkg/session/postgres"
	"github.com/adrianliechti/joborder/pkg/session/sessiontest"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestStore(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}

	ctx := context.Background()

	server, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		Started: true,

		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "joborder",
				"POSTGRES_PASSWORD": "joborder",
				"POSTGRES_DB":       "joborder",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(time.Minute),
		},
	})

	require.NoError(t, err)

	defer testcontainers.TerminateContainer(server)

	url, err := server.Endpoint(ctx, "")
	require.NoError(t, err)

	s, err := postgres.New(ctx, "postgres://joborder:joborder@"+url+"/joborder?sslmode=disable")
	require.NoError(t, err)

	defer s.Close()

	sessiontest.Run(t, s)

	count, err := s.Prune(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, count, 0)
}

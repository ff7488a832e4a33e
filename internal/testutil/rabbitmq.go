package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const rabbitImage = "rabbitmq:3.13-alpine"

// RabbitMQ is a broker started for a single test.
type RabbitMQ struct {
	URL string
}

// Channel opens a channel on a fresh connection for test-side consumers.
// Both are closed when the test ends.
func (r RabbitMQ) Channel(t *testing.T) *amqp.Channel {
	t.Helper()

	conn, err := amqp.DialConfig(r.URL, amqp.Config{Dial: amqp.DefaultDial(10 * time.Second)})
	require.NoError(t, err)
	ch, err := conn.Channel()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = ch.Close()
		_ = conn.Close()
	})
	return ch
}

// StartRabbitMQ runs a broker container until the test ends and returns its
// AMQP URL.
func StartRabbitMQ(t *testing.T) RabbitMQ {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        rabbitImage,
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor:   wait.ForListeningPort("5672/tcp").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		terminateCtx, terminateCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer terminateCancel()
		_ = container.Terminate(terminateCtx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5672")
	require.NoError(t, err)

	return RabbitMQ{URL: fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())}
}

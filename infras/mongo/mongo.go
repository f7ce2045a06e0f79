package mongo

import (
	"context"
	"fmt"
	"time"

	"todos/config"

	"github.com/rs/zerolog/log"
	goMongo "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	mongoDefaultTimeout = 10 * time.Second
)

// Connection is the process wide store handle. It is created once at startup and shared
// read-only by every request.
type Connection struct {
	Client   *goMongo.Client
	Database *goMongo.Database
	Timeout  time.Duration
}

func New(config *config.Config) *Connection {
	mongoConfig := config.DB.Mongo
	timeout := time.Duration(mongoConfig.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = mongoDefaultTimeout
	}

	client := CreateMongoConnection(
		mongoConfig.URI,
		mongoConfig.MaxPoolSize,
		timeout,
		mongoConfig.MaxRetry,
		mongoConfig.RetryWaitTime,
	)
	if client == nil {
		log.Fatal().Str("dbName", mongoConfig.Name).Msg("Could not connect to MongoDB")
	}

	return NewConnection(client, mongoConfig.Name, timeout)
}

// NewConnection wraps an already connected client.
func NewConnection(client *goMongo.Client, dbName string, timeout time.Duration) *Connection {
	if timeout <= 0 {
		timeout = mongoDefaultTimeout
	}

	return &Connection{
		Client:   client,
		Database: client.Database(dbName),
		Timeout:  timeout,
	}
}

// WithTimeout bounds a single store call by the configured timeout.
func (c *Connection) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.Timeout)
}

// Ping checks that the primary is reachable.
func (c *Connection) Ping(ctx context.Context) error {
	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()

	if err := c.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("pinging mongodb: %w", err)
	}

	return nil
}

// Close disconnects the client, waiting for in-use connections up to ctx's deadline.
func (c *Connection) Close(ctx context.Context) error {
	if err := c.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting mongodb: %w", err)
	}

	log.Info().Msg("Disconnected from MongoDB")

	return nil
}

// CreateMongoConnection connects and pings, retrying up to maxRetry times. It returns nil
// when every attempt failed.
func CreateMongoConnection(uri string, maxPoolSize uint64, timeout time.Duration, maxRetry, waitTime int) *goMongo.Client {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(maxPoolSize).
		SetServerSelectionTimeout(timeout)

	for retry := range max(maxRetry, 1) {
		client, err := connect(clientOptions, timeout)
		if err == nil {
			log.
				Info().
				Strs("hosts", clientOptions.Hosts).
				Uint64("maxPoolSize", maxPoolSize).
				Msg("Connected to MongoDB")

			return client
		}

		log.
			Error().
			Err(err).
			Strs("hosts", clientOptions.Hosts).
			Int("attempt", retry+1).
			Msg("Failed connecting to MongoDB, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}

func connect(clientOptions *options.ClientOptions, timeout time.Duration) (*goMongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := goMongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return client, nil
}

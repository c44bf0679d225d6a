package database

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"product-catalog/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
)

type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var (
	instance *Mongo
	once     sync.Once
)

// Instance dials MongoDB once and reuses the connection. Only called
// when the store driver selects the Mongo backend.
func Instance(globalCtx context.Context, uri, dbName string) (*Mongo, error) {
	var err error

	once.Do(func() {
		log := logger.Instance()

		opts := options.Client().
			ApplyURI(uri).
			SetMonitor(otelmongo.NewMonitor())

		client, connErr := mongo.Connect(globalCtx, opts)
		if connErr != nil {
			log.Error("Failed to connect to MongoDB", slog.String("error", connErr.Error()))
			err = connErr
			return
		}

		pingCtx, cancel := context.WithTimeout(globalCtx, 5*time.Second)
		defer cancel()
		if pingErr := client.Ping(pingCtx, nil); pingErr != nil {
			log.Error("MongoDB ping failed", slog.String("error", pingErr.Error()))
			err = pingErr
			return
		}

		log.Info("Connected to MongoDB successfully")

		instance = &Mongo{
			Client:   client,
			Database: client.Database(dbName),
		}
	})

	return instance, err
}

// Ping satisfies the health probe.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, nil)
}

package config

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// DB holds the document store connection
type DB struct {
	Mongo    *mongo.Client
	Database *mongo.Database
	log      *zap.Logger
}

// InitDB connects to MongoDB and verifies the connection with a ping.
func InitDB(ctx context.Context, cfg *Config, log *zap.Logger) (*DB, error) {
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI environment variable not set")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to MongoDB")
	}

	// Ping the primary to verify connection
	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "failed to ping MongoDB")
	}

	log.Info("connected to MongoDB", zap.String("database", cfg.MongoDatabase))
	return &DB{
		Mongo:    client,
		Database: client.Database(cfg.MongoDatabase),
		log:      log,
	}, nil
}

// CloseDB closes the database connection
func (db *DB) CloseDB() {
	if db == nil || db.Mongo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Mongo.Disconnect(ctx); err != nil {
		db.log.Error("error closing MongoDB connection", zap.Error(err))
		return
	}
	db.log.Info("MongoDB connection closed")
}

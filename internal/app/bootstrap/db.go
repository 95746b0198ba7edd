// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	adminstore "github.com/oniumlabs/oniumadmin/internal/app/store/admins"
	"github.com/oniumlabs/oniumadmin/internal/app/system/authutil"
	"github.com/oniumlabs/oniumadmin/internal/app/system/indexes"
	"github.com/oniumlabs/oniumadmin/internal/app/system/timeouts"
	"github.com/oniumlabs/oniumadmin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection and verifies it with a
// ping before startup proceeds.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	connectCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, timeouts.Ping())
	defer cancelPing()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the collection indexes and seeds the initial
// admin account when configured and none exists yet.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase, logger); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	if err := seedInitialAdmin(ctx, appCfg, deps, logger); err != nil {
		return fmt.Errorf("seed initial admin: %w", err)
	}

	return nil
}

// seedInitialAdmin creates the configured first admin account, but
// only when the admins collection is empty so a wiped config can't
// resurrect an old credential.
func seedInitialAdmin(ctx context.Context, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.InitialAdminEmail == "" || appCfg.InitialAdminPassword == "" {
		return nil
	}

	store := adminstore.New(deps.MongoDatabase)

	n, err := store.Count(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := authutil.HashPassword(appCfg.InitialAdminPassword)
	if err != nil {
		return err
	}

	created, err := store.Create(ctx, models.Admin{
		FullName:     appCfg.InitialAdminName,
		Email:        appCfg.InitialAdminEmail,
		PasswordHash: hash,
	})
	if err != nil {
		return err
	}

	logger.Info("seeded initial admin account",
		zap.String("admin_id", created.ID.Hex()),
		zap.String("email", created.Email))
	return nil
}

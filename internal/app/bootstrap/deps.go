package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/fcunirea/clubsite/internal/app/features/players"
	"github.com/fcunirea/clubsite/internal/app/store/sessions"
	"github.com/fcunirea/clubsite/internal/app/store/users"
	"github.com/fcunirea/clubsite/internal/app/system/auth"
	"github.com/fcunirea/clubsite/internal/app/system/mailer"
)

const connectTimeout = 10 * time.Second

// Deps bundles the backend clients the handlers depend on.
type Deps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
	Mailer        *mailer.Mailer
}

// OpenDeps connects to MongoDB, verifies the connection, and builds the
// mail client from configuration.
func OpenDeps(ctx context.Context, cfg Config, logger *zap.Logger) (*Deps, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	logger.Info("connected to mongodb", zap.String("database", cfg.MongoDatabase))

	m := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Pass:     cfg.SMTPPass,
		From:     cfg.MailFrom,
		FromName: cfg.MailFromName,
	}, logger)

	return &Deps{
		MongoClient:   client,
		MongoDatabase: client.Database(cfg.MongoDatabase),
		Mailer:        m,
	}, nil
}

// Close releases backend connections.
func (d *Deps) Close(ctx context.Context) error {
	return d.MongoClient.Disconnect(ctx)
}

// EnsureSchema creates the indexes the stores rely on. Safe to run on
// every startup; index creation is idempotent.
func EnsureSchema(ctx context.Context, deps *Deps, logger *zap.Logger) error {
	if err := users.New(deps.MongoDatabase).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	if err := sessions.New(deps.MongoDatabase).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("sessions indexes: %w", err)
	}
	if err := players.NewStore(deps.MongoDatabase).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("players indexes: %w", err)
	}
	logger.Info("database indexes ensured")
	return nil
}

// SeedAdmin creates the initial admin account when the users collection
// is empty and seed credentials are configured. Without it a fresh
// deployment has no way to log in to the admin area.
func SeedAdmin(ctx context.Context, deps *Deps, cfg Config, logger *zap.Logger) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	store := users.New(deps.MongoDatabase)
	count, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	name := cfg.SeedAdminName
	if name == "" {
		name = "Administrator"
	}
	_, err = store.Create(ctx, users.User{
		Name:         name,
		Email:        cfg.SeedAdminEmail,
		PasswordHash: hash,
		Role:         users.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("create seed admin: %w", err)
	}
	logger.Info("seeded initial admin account", zap.String("email", cfg.SeedAdminEmail))
	return nil
}

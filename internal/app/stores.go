package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadline-backend/internal/adapter/memory"
	"github.com/heartmarshall/threadline-backend/internal/adapter/postgres"
	"github.com/heartmarshall/threadline-backend/internal/adapter/postgres/comment"
	"github.com/heartmarshall/threadline-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/threadline-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/threadline-backend/internal/config"
	"github.com/heartmarshall/threadline-backend/internal/domain"
	"github.com/heartmarshall/threadline-backend/internal/transport/rest"
	"github.com/heartmarshall/threadline-backend/migrations"
)

type userStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	GetCredentials(ctx context.Context, username string) (*domain.UserCredentials, error)
	Create(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error)
}

type commentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Comment, error)
	ListRoots(ctx context.Context) ([]domain.Comment, error)
	ListReplies(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string, updatedAt time.Time) (*domain.Comment, error)
	UpdateDeletion(ctx context.Context, id uuid.UUID, deletedAt *time.Time) (*domain.Comment, error)
}

type notificationStore interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	ListByRecipient(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Stores bundles the persistence handles the services run on.
type Stores struct {
	Users         userStore
	Comments      commentStore
	Notifications notificationStore
	Tx            txRunner
	// Health lists the components probed by /ready and /health.
	Health []rest.Component
	close  func()
}

// Close releases the underlying connections.
func (s *Stores) Close() {
	if s.close != nil {
		s.close()
	}
}

// MemoryStores returns stores backed by a fresh in-process store.
func MemoryStores() *Stores {
	st := memory.NewStore()
	return &Stores{
		Users:         memory.NewUserRepo(st),
		Comments:      memory.NewCommentRepo(st),
		Notifications: memory.NewNotificationRepo(st),
		Tx:            memory.NewTxManager(),
	}
}

// OpenStores opens the store selected by cfg.Driver.
func OpenStores(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Stores, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory store, data is lost on restart")
		return MemoryStores(), nil
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Stores, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool, migrations.FS)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("database migrated", slog.Int("applied", applied))
	}

	return &Stores{
		Users:         user.New(pool),
		Comments:      comment.New(pool),
		Notifications: notification.New(pool),
		Tx:            postgres.NewTxManager(pool),
		Health:        []rest.Component{{Name: "database", Pinger: pool}},
		close:         pool.Close,
	}, nil
}

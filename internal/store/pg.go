package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/subvault/subvault-api/internal/domain"
	"github.com/subvault/subvault-api/internal/store/schema"
)

// pgUniqueViolation is the SQLSTATE of a unique constraint violation
const pgUniqueViolation = "23505"

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool applies pool settings to the sql.DB behind a gorm connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings fills zero values with defaults
// (20 open, 5 idle, 5m lifetime, 10m idle time) and caps idle at open.
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// isUniqueViolation reports whether err is a unique violation, optionally of a specific constraint
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// Ping checks database connectivity
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// CreateNonce persists an issued nonce
func (s *pgStore) CreateNonce(ctx context.Context, nonce string, createdAt, expiresAt time.Time) error {
	row := schema.AuthNonce{
		Nonce:     nonce,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.ErrDuplicateNonce
		}
		return fmt.Errorf("failed to create nonce: %w", err)
	}
	return nil
}

// ConsumeNonce deletes an unexpired nonce. The single-row delete is the
// redemption: of two concurrent callers only one observes an affected row.
func (s *pgStore) ConsumeNonce(ctx context.Context, nonce string, now time.Time) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("nonce = ? AND expires_at > ?", nonce, now).
		Delete(&schema.AuthNonce{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to consume nonce: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// DeleteExpiredNonces removes a batch of nonces that expired before the cutoff
func (s *pgStore) DeleteExpiredNonces(ctx context.Context, before time.Time, limit int) (int64, error) {
	result := s.db.WithContext(ctx).Exec(`
		DELETE FROM auth_nonces
		WHERE nonce IN (
			SELECT nonce FROM auth_nonces
			WHERE expires_at < ?
			ORDER BY expires_at
			LIMIT ?
		)`, before, limit)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired nonces: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// GetUserByAddress retrieves a user by wallet address
func (s *pgStore) GetUserByAddress(ctx context.Context, address string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).
		Where("address = ?", domain.NormalizeAddress(address)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// CreateUser creates a user and its profile in a single transaction
func (s *pgStore) CreateUser(ctx context.Context, input CreateUserInput) (*schema.User, error) {
	address := domain.NormalizeAddress(input.Address)
	user := schema.User{
		ID:             uuid.New(),
		Address:        address,
		CredentialHash: input.CredentialHash,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Profile", "Vaults").Create(&user).Error; err != nil {
			return err
		}

		profile := schema.UserProfile{
			UserID:  user.ID,
			Address: address,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		user.Profile = &profile
		return nil
	})
	if err != nil {
		if isUniqueViolation(err, "users_address_key") {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// ForOwner returns the data-access capability of a single user
func (s *pgStore) ForOwner(userID uuid.UUID) OwnerScope {
	return &ownerScope{db: s.db, ownerID: userID}
}

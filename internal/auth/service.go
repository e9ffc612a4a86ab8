// Package auth implements the Sign-In with Ethereum handshake: nonce issuance,
// single-use redemption, signature verification and session issuance.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/subvault/subvault-api/internal/adapter"
	"github.com/subvault/subvault-api/internal/domain"
	"github.com/subvault/subvault-api/internal/logger"
	"github.com/subvault/subvault-api/internal/messaging"
	"github.com/subvault/subvault-api/internal/siwe"
	"github.com/subvault/subvault-api/internal/store"
	"github.com/subvault/subvault-api/internal/store/schema"
)

const (
	// NonceBytes is the amount of randomness in a nonce (192 bits)
	NonceBytes = 24

	DefaultNonceTTL   = 5 * time.Minute
	DefaultSessionTTL = 24 * time.Hour
)

// Config holds the authentication settings
type Config struct {
	NonceTTL         time.Duration
	CredentialSecret string
	// ExpectedDomain, when set, must match the domain of every sign-in message
	ExpectedDomain string
	BcryptCost     int
}

// VerifyInput is a sign-in attempt
type VerifyInput struct {
	Address   string
	Message   string
	Signature string
}

// VerifyResult is the outcome of a successful sign-in
type VerifyResult struct {
	UserID    uuid.UUID
	Address   string
	Session   string
	ExpiresAt time.Time
	Created   bool
}

// Service performs the sign-in handshake
//
//go:generate mockgen -source=service.go -destination=../mocks/auth.go -package=mocks -mock_names=Service=MockAuthService
type Service interface {
	// IssueNonce creates and persists a fresh nonce
	IssueNonce(ctx context.Context) (string, error)
	// Verify redeems the nonce in a signed message and returns a session
	Verify(ctx context.Context, input VerifyInput) (*VerifyResult, error)
	// ParseSession validates a session token
	ParseSession(token string) (*Claims, error)
}

type service struct {
	cfg       Config
	store     store.Store
	verifier  siwe.SignatureVerifier
	sessions  *SessionManager
	clock     adapter.Clock
	publisher messaging.Publisher
}

// NewService creates the authentication service
func NewService(cfg Config, st store.Store, verifier siwe.SignatureVerifier, sessions *SessionManager, clock adapter.Clock, publisher messaging.Publisher) (Service, error) {
	if cfg.CredentialSecret == "" {
		return nil, errors.New("credential secret is required")
	}
	if cfg.NonceTTL <= 0 {
		cfg.NonceTTL = DefaultNonceTTL
	}
	if publisher == nil {
		publisher = messaging.NewNoopPublisher()
	}

	return &service{
		cfg:       cfg,
		store:     st,
		verifier:  verifier,
		sessions:  sessions,
		clock:     clock,
		publisher: publisher,
	}, nil
}

// IssueNonce draws NonceBytes from crypto/rand and stores the hex encoding
func (s *service) IssueNonce(ctx context.Context) (string, error) {
	buf := make([]byte, NonceBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	nonce := hex.EncodeToString(buf)

	now := s.clock.Now()
	if err := s.store.CreateNonce(ctx, nonce, now, now.Add(s.cfg.NonceTTL)); err != nil {
		return "", fmt.Errorf("failed to store nonce: %w", err)
	}

	return nonce, nil
}

// Verify validates the request, redeems the nonce, checks the signature and
// resolves the user. Input validation happens before any storage access; the
// nonce is consumed before the signature is checked so that a failed attempt
// still burns it.
func (s *service) Verify(ctx context.Context, input VerifyInput) (*VerifyResult, error) {
	address := strings.TrimSpace(input.Address)
	if address == "" || strings.TrimSpace(input.Message) == "" || strings.TrimSpace(input.Signature) == "" {
		return nil, domain.ErrMissingFields
	}

	msg, err := siwe.Parse(input.Message)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedMessage, err)
	}
	if !common.IsHexAddress(address) || common.HexToAddress(address) != msg.Address {
		return nil, fmt.Errorf("%w: address does not match message", domain.ErrMalformedMessage)
	}
	if !s.verifier.SupportsChain(msg.ChainID) {
		return nil, fmt.Errorf("%w: chain %d: %w", domain.ErrMalformedMessage, msg.ChainID, domain.ErrUnsupportedChain)
	}

	now := s.clock.Now()
	redeemed, err := s.store.ConsumeNonce(ctx, msg.Nonce, now)
	if err != nil {
		return nil, fmt.Errorf("failed to consume nonce: %w", err)
	}
	if !redeemed {
		return nil, domain.ErrInvalidNonce
	}

	normalized := domain.NormalizeAddress(address)
	logFields := []zap.Field{
		zap.Uint64("chainID", msg.ChainID),
		zap.String("address", normalized),
		zap.String("message", input.Message),
	}

	if err := msg.Validate(now, s.cfg.ExpectedDomain); err != nil {
		logger.WarnCtx(ctx, "Sign-in message rejected", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}

	if err := s.verifier.Verify(ctx, msg, input.Message, input.Signature); err != nil {
		switch {
		case errors.Is(err, siwe.ErrInvalidSignature):
			logger.WarnCtx(ctx, "Signature verification failed", append(logFields, zap.Error(err))...)
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
		case errors.Is(err, siwe.ErrUnsupportedChain):
			return nil, fmt.Errorf("%w: %w", domain.ErrMalformedMessage, domain.ErrUnsupportedChain)
		default:
			logger.ErrorCtx(ctx, err, logFields...)
			return nil, fmt.Errorf("failed to verify signature: %w", err)
		}
	}

	user, created, err := s.resolveUser(ctx, normalized)
	if err != nil {
		return nil, err
	}

	session, expiresAt, err := s.sessions.Issue(user.ID, user.Address)
	if err != nil {
		return nil, err
	}

	if created {
		event := messaging.NewEvent(messaging.EventUserCreated, user.ID.String(), user.ID.String(), now,
			map[string]interface{}{"address": user.Address})
		if err := s.publisher.Publish(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish event", zap.String("type", string(event.Type)), zap.Error(err))
		}
	}

	logger.InfoCtx(ctx, "User signed in",
		zap.String("userID", user.ID.String()),
		zap.String("address", user.Address),
		zap.Bool("created", created))

	return &VerifyResult{
		UserID:    user.ID,
		Address:   user.Address,
		Session:   session,
		ExpiresAt: expiresAt,
		Created:   created,
	}, nil
}

// resolveUser returns the user for address, provisioning it on first sign-in
func (s *service) resolveUser(ctx context.Context, address string) (*schema.User, bool, error) {
	credential := DeriveCredential([]byte(s.cfg.CredentialSecret), address)

	user, err := s.store.GetUserByAddress(ctx, address)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get user: %w", err)
	}
	if user != nil {
		if err := CompareCredential(user.CredentialHash, credential); err != nil {
			return nil, false, fmt.Errorf("failed to authenticate user %s: %w", user.ID, err)
		}
		return user, false, nil
	}

	hash, err := HashCredential(credential, s.cfg.BcryptCost)
	if err != nil {
		return nil, false, err
	}

	user, err = s.store.CreateUser(ctx, store.CreateUserInput{
		Address:        address,
		CredentialHash: hash,
	})
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, domain.ErrUserExists) {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	// a concurrent sign-in created the identity first
	user, err = s.store.GetUserByAddress(ctx, address)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, false, fmt.Errorf("user %s vanished after conflict", address)
	}
	return user, false, nil
}

// ParseSession validates a session token
func (s *service) ParseSession(token string) (*Claims, error) {
	return s.sessions.Parse(token)
}

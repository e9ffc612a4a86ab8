package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/subvault/subvault-api/internal/domain"
	"github.com/subvault/subvault-api/internal/handle"
	"github.com/subvault/subvault-api/internal/store/schema"
)

const (
	// vaultHandleConstraint is the unique index on (owner_id, lower(handle))
	vaultHandleConstraint = "vaults_owner_handle_key"

	defaultPaymentLimit = 100
)

type ownerScope struct {
	db      *gorm.DB
	ownerID uuid.UUID
}

// vaults is the scoped root for vault queries
func (s *ownerScope) vaults(tx *gorm.DB) *gorm.DB {
	return tx.Model(&schema.Vault{}).Where("vaults.owner_id = ?", s.ownerID)
}

// payments is the scoped root for payment queries
func (s *ownerScope) payments(tx *gorm.DB) *gorm.DB {
	return tx.Model(&schema.Payment{}).
		Where("payments.vault_id IN (SELECT id FROM vaults WHERE owner_id = ?)", s.ownerID)
}

func (s *ownerScope) OwnerID() uuid.UUID {
	return s.ownerID
}

// CreateVault creates a vault owned by the scope's user
func (s *ownerScope) CreateVault(ctx context.Context, input CreateVaultInput) (*schema.Vault, error) {
	if input.OwnerID != nil && *input.OwnerID != s.ownerID {
		return nil, domain.ErrOwnerMismatch
	}

	vault := schema.Vault{
		ID:          uuid.New(),
		OwnerID:     s.ownerID,
		Name:        input.Name,
		Emoji:       input.Emoji,
		Description: input.Description,
		ChainID:     string(input.ChainID),
	}
	base := handle.Generate(input.Name, input.Handle)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.assignHandle(tx, base, nil, func(sp *gorm.DB, h string) error {
			vault.Handle = h
			return sp.Omit("Payments").Create(&vault).Error
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create vault: %w", err)
	}

	return &vault, nil
}

// assignHandle writes the first free handle candidate for base. Each attempt
// runs in a savepoint, so a unique violation caused by a concurrent writer
// leaves the transaction usable for the next candidate.
func (s *ownerScope) assignHandle(tx *gorm.DB, base string, exclude *uuid.UUID, write func(sp *gorm.DB, h string) error) error {
	q := tx.Model(&schema.Vault{}).Where("owner_id = ?", s.ownerID)
	if exclude != nil {
		q = q.Where("id <> ?", *exclude)
	}

	var existing []string
	if err := q.Pluck("handle", &existing).Error; err != nil {
		return fmt.Errorf("failed to list handles: %w", err)
	}

	taken := make(map[string]struct{}, len(existing))
	for _, h := range existing {
		taken[strings.ToLower(h)] = struct{}{}
	}

	n := 0
	nextFree := func() string {
		for {
			n++
			candidate := handle.WithSuffix(base, n)
			if _, ok := taken[candidate]; !ok {
				return candidate
			}
		}
	}

	operation := func() error {
		candidate := nextFree()
		err := tx.Transaction(func(sp *gorm.DB) error {
			return write(sp, candidate)
		})
		if err == nil {
			return nil
		}
		if isUniqueViolation(err, vaultHandleConstraint) {
			taken[candidate] = struct{}{}
			return err
		}
		return backoff.Permanent(err)
	}

	b := backoff.WithMaxRetries(&backoff.ZeroBackOff{}, handle.MaxHandleAttempts-1)
	if err := backoff.Retry(operation, b); err != nil {
		if isUniqueViolation(err, vaultHandleConstraint) {
			return domain.ErrHandleConflict
		}
		return err
	}
	return nil
}

// GetVault retrieves a vault by ID
func (s *ownerScope) GetVault(ctx context.Context, id uuid.UUID) (*schema.Vault, error) {
	var vault schema.Vault
	err := s.vaults(s.db.WithContext(ctx)).Where("vaults.id = ?", id).First(&vault).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vault: %w", err)
	}
	return &vault, nil
}

// GetVaultByHandle retrieves a vault by handle
func (s *ownerScope) GetVaultByHandle(ctx context.Context, h string) (*schema.Vault, error) {
	var vault schema.Vault
	err := s.vaults(s.db.WithContext(ctx)).Where("lower(vaults.handle) = lower(?)", h).First(&vault).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vault by handle: %w", err)
	}
	return &vault, nil
}

// ListVaults lists the owner's vaults
func (s *ownerScope) ListVaults(ctx context.Context) ([]schema.Vault, error) {
	var vaults []schema.Vault
	err := s.vaults(s.db.WithContext(ctx)).
		Order("vaults.created_at DESC, vaults.id").
		Find(&vaults).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list vaults: %w", err)
	}
	return vaults, nil
}

// UpdateVault applies a partial update to a vault
func (s *ownerScope) UpdateVault(ctx context.Context, id uuid.UUID, input UpdateVaultInput) (*schema.Vault, error) {
	found := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vault schema.Vault
		err := s.vaults(tx).Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("vaults.id = ?", id).
			First(&vault).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to lock vault: %w", err)
		}
		found = true

		updates := map[string]interface{}{
			"updated_at": gorm.Expr("now()"),
		}
		if input.Name != nil {
			updates["name"] = *input.Name
			vault.Name = *input.Name
		}
		if input.Emoji != nil {
			updates["emoji"] = *input.Emoji
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}

		apply := func(sp *gorm.DB) error {
			return sp.Model(&schema.Vault{}).
				Where("id = ? AND owner_id = ?", id, s.ownerID).
				Updates(updates).Error
		}

		// A rename keeps the handle; only an explicit handle is re-uniquified
		if input.Handle == nil {
			return apply(tx)
		}

		base := handle.Generate(vault.Name, input.Handle)
		return s.assignHandle(tx, base, &id, func(sp *gorm.DB, h string) error {
			updates["handle"] = h
			return apply(sp)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update vault: %w", err)
	}
	if !found {
		return nil, nil
	}

	return s.GetVault(ctx, id)
}

// DeleteVault deletes a vault; its payments go with it
func (s *ownerScope) DeleteVault(ctx context.Context, id uuid.UUID) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, s.ownerID).
		Delete(&schema.Vault{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete vault: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// CreatePayments creates the payments of one scheduling request. Several
// execution dates produce one payment each, all sharing a new series ID.
func (s *ownerScope) CreatePayments(ctx context.Context, input CreatePaymentsInput) ([]schema.Payment, error) {
	var payments []schema.Payment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vault schema.Vault
		err := s.vaults(tx).Where("vaults.id = ?", input.VaultID).First(&vault).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get vault: %w", err)
		}

		mode := input.ExecutionMode
		if mode == "" {
			mode = domain.ExecutionModeManual
		}

		dates := make([]*time.Time, 0, len(input.ExecutionDates))
		for i := range input.ExecutionDates {
			d := input.ExecutionDates[i].UTC()
			dates = append(dates, &d)
		}
		if len(dates) == 0 {
			dates = append(dates, nil)
		}

		var seriesID *uuid.UUID
		if len(dates) > 1 {
			id := uuid.New()
			seriesID = &id
		}

		payments = make([]schema.Payment, 0, len(dates))
		for _, d := range dates {
			payments = append(payments, schema.Payment{
				ID:                uuid.New(),
				VaultID:           vault.ID,
				RecipientAddress:  input.RecipientAddress,
				RecipientName:     input.RecipientName,
				TokenAddress:      input.TokenAddress,
				Amount:            input.Amount,
				Status:            domain.PaymentStatusPending,
				ExecutionMode:     mode,
				NextExecutionDate: d,
				SeriesID:          seriesID,
				TransactionHashes: datatypes.JSONSlice[string]{},
				ChainID:           vault.ChainID,
			})
		}

		if err := tx.Create(&payments).Error; err != nil {
			return fmt.Errorf("failed to insert payments: %w", err)
		}

		changes := make([]schema.PaymentStatusChange, 0, len(payments))
		for _, p := range payments {
			changes = append(changes, schema.PaymentStatusChange{
				PaymentID: p.ID,
				ToStatus:  p.Status,
				ChangedBy: s.ownerID,
			})
		}
		if err := tx.Create(&changes).Error; err != nil {
			return fmt.Errorf("failed to record status changes: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payments: %w", err)
	}

	return payments, nil
}

// GetPayment retrieves a payment by ID
func (s *ownerScope) GetPayment(ctx context.Context, id uuid.UUID) (*schema.Payment, error) {
	var payment schema.Payment
	err := s.payments(s.db.WithContext(ctx)).Where("payments.id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

// ListPayments lists payments matching the filter, soonest execution first
func (s *ownerScope) ListPayments(ctx context.Context, filter PaymentFilter) ([]schema.Payment, error) {
	q := s.payments(s.db.WithContext(ctx))
	if filter.VaultID != nil {
		q = q.Where("payments.vault_id = ?", *filter.VaultID)
	}
	if filter.SeriesID != nil {
		q = q.Where("payments.series_id = ?", *filter.SeriesID)
	}
	if len(filter.Statuses) > 0 {
		q = q.Where("payments.status IN ?", filter.Statuses)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPaymentLimit
	}

	var payments []schema.Payment
	err := q.Order("payments.next_execution_date ASC NULLS LAST, payments.created_at DESC, payments.id").
		Limit(limit).
		Offset(filter.Offset).
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// UpdatePayment applies a partial update to a payment
func (s *ownerScope) UpdatePayment(ctx context.Context, id uuid.UUID, input UpdatePaymentInput) (*schema.Payment, error) {
	updates := map[string]interface{}{
		"updated_at": gorm.Expr("now()"),
	}
	if input.RecipientAddress != nil {
		updates["recipient_address"] = *input.RecipientAddress
	}
	if input.RecipientName != nil {
		updates["recipient_name"] = *input.RecipientName
	}
	if input.TokenAddress != nil {
		updates["token_address"] = *input.TokenAddress
	}
	if input.Amount != nil {
		updates["amount"] = *input.Amount
	}
	if input.NextExecutionDate != nil {
		updates["next_execution_date"] = input.NextExecutionDate.UTC()
	}

	var updated *schema.Payment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		payment, err := s.lockPayment(tx, id)
		if err != nil || payment == nil {
			return err
		}
		if payment.Status.Terminal() {
			return fmt.Errorf("%w: %s", domain.ErrPaymentClosed, payment.Status)
		}

		if input.VaultID != nil && *input.VaultID != payment.VaultID {
			// the destination vault must belong to the same owner and settle on the same chain
			var dest schema.Vault
			err := s.vaults(tx).Where("vaults.id = ?", *input.VaultID).First(&dest).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil
				}
				return fmt.Errorf("failed to load destination vault: %w", err)
			}
			if dest.ChainID != payment.ChainID {
				return fmt.Errorf("%w: %s -> %s", domain.ErrChainMismatch, payment.ChainID, dest.ChainID)
			}
			updates["vault_id"] = dest.ID
		}

		err = tx.Model(&schema.Payment{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}

		updated, err = s.reloadPayment(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// UpdatePaymentStatus moves a payment to a new status and appends the audit row
// in the same transaction
func (s *ownerScope) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) (*schema.Payment, error) {
	var updated *schema.Payment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		payment, err := s.lockPayment(tx, id)
		if err != nil || payment == nil {
			return err
		}

		from := payment.Status
		if !from.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusTransition, from, status)
		}

		err = tx.Model(&schema.Payment{}).Where("id = ?", id).Updates(map[string]interface{}{
			"status":     status,
			"updated_at": gorm.Expr("now()"),
		}).Error
		if err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}

		if err := s.recordStatusChange(tx, id, &from, status); err != nil {
			return err
		}

		updated, err = s.reloadPayment(tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	return updated, nil
}

// RecordPaymentExecution appends a reported transaction hash, bumps the
// execution counters and completes the payment
func (s *ownerScope) RecordPaymentExecution(ctx context.Context, id uuid.UUID, txHash string, executedAt time.Time) (*schema.Payment, error) {
	var updated *schema.Payment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		payment, err := s.lockPayment(tx, id)
		if err != nil || payment == nil {
			return err
		}

		for _, h := range payment.TransactionHashes {
			if strings.EqualFold(h, txHash) {
				return domain.ErrDuplicateExecution
			}
		}

		from := payment.Status
		if !from.CanTransitionTo(domain.PaymentStatusCompleted) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusTransition, from, domain.PaymentStatusCompleted)
		}

		hashes := append(datatypes.JSONSlice[string]{}, payment.TransactionHashes...)
		hashes = append(hashes, txHash)

		err = tx.Model(&schema.Payment{}).Where("id = ?", id).Updates(map[string]interface{}{
			"transaction_hashes": hashes,
			"executed_count":     gorm.Expr("executed_count + 1"),
			"last_executed_at":   executedAt.UTC(),
			"status":             domain.PaymentStatusCompleted,
			"updated_at":         gorm.Expr("now()"),
		}).Error
		if err != nil {
			return fmt.Errorf("failed to record execution: %w", err)
		}

		if err := s.recordStatusChange(tx, id, &from, domain.PaymentStatusCompleted); err != nil {
			return err
		}

		updated, err = s.reloadPayment(tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record payment execution: %w", err)
	}

	return updated, nil
}

// lockPayment selects a scoped payment FOR UPDATE; nil means not found
func (s *ownerScope) lockPayment(tx *gorm.DB, id uuid.UUID) (*schema.Payment, error) {
	var payment schema.Payment
	err := s.payments(tx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("payments.id = ?", id).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock payment: %w", err)
	}
	return &payment, nil
}

func (s *ownerScope) reloadPayment(tx *gorm.DB, id uuid.UUID) (*schema.Payment, error) {
	var payment schema.Payment
	if err := tx.Where("id = ?", id).First(&payment).Error; err != nil {
		return nil, fmt.Errorf("failed to reload payment: %w", err)
	}
	return &payment, nil
}

func (s *ownerScope) recordStatusChange(tx *gorm.DB, paymentID uuid.UUID, from *domain.PaymentStatus, to domain.PaymentStatus) error {
	change := schema.PaymentStatusChange{
		PaymentID:  paymentID,
		FromStatus: from,
		ToStatus:   to,
		ChangedBy:  s.ownerID,
	}
	if err := tx.Create(&change).Error; err != nil {
		return fmt.Errorf("failed to record status change: %w", err)
	}
	return nil
}

// DeletePayment deletes a payment
func (s *ownerScope) DeletePayment(ctx context.Context, id uuid.UUID) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND vault_id IN (SELECT id FROM vaults WHERE owner_id = ?)", id, s.ownerID).
		Delete(&schema.Payment{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete payment: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ListPaymentStatusChanges lists the status history of a payment
func (s *ownerScope) ListPaymentStatusChanges(ctx context.Context, paymentID uuid.UUID) ([]schema.PaymentStatusChange, error) {
	payment, err := s.GetPayment(ctx, paymentID)
	if err != nil || payment == nil {
		return nil, err
	}

	changes := []schema.PaymentStatusChange{}
	err = s.db.WithContext(ctx).
		Where("payment_id = ?", payment.ID).
		Order("id").
		Find(&changes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list status changes: %w", err)
	}
	return changes, nil
}

// GetProfile retrieves the owner's profile
func (s *ownerScope) GetProfile(ctx context.Context) (*schema.UserProfile, error) {
	var profile schema.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", s.ownerID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile applies a partial update to the owner's profile
func (s *ownerScope) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*schema.UserProfile, error) {
	updates := map[string]interface{}{
		"updated_at": gorm.Expr("now()"),
	}
	if input.SubAccountAddress != nil {
		updates["sub_account_address"] = *input.SubAccountAddress
	}
	if input.OnboardingComplete != nil {
		updates["onboarding_complete"] = *input.OnboardingComplete
	}

	result := s.db.WithContext(ctx).Model(&schema.UserProfile{}).
		Where("user_id = ?", s.ownerID).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return s.GetProfile(ctx)
}

// ListSpendingSummaries reads the summary view with the owner predicate applied to the view itself
func (s *ownerScope) ListSpendingSummaries(ctx context.Context) ([]schema.VaultSpendingSummary, error) {
	var summaries []schema.VaultSpendingSummary
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", s.ownerID).
		Order("vault_id").
		Find(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list spending summaries: %w", err)
	}
	return summaries, nil
}

// GetSpendingSummary reads the totals of one of the owner's vaults
func (s *ownerScope) GetSpendingSummary(ctx context.Context, vaultID uuid.UUID) (*schema.VaultSpendingSummary, error) {
	var summary schema.VaultSpendingSummary
	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND vault_id = ?", s.ownerID, vaultID).
		Take(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get spending summary: %w", err)
	}
	return &summary, nil
}

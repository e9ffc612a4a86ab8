package executor

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/subvault/subvault-api/internal/adapter"
	"github.com/subvault/subvault-api/internal/api/shared/constants"
	"github.com/subvault/subvault-api/internal/api/shared/dto"
	apierrors "github.com/subvault/subvault-api/internal/api/shared/errors"
	"github.com/subvault/subvault-api/internal/domain"
	"github.com/subvault/subvault-api/internal/logger"
	"github.com/subvault/subvault-api/internal/messaging"
	"github.com/subvault/subvault-api/internal/store"
	"github.com/subvault/subvault-api/internal/store/schema"
)

// ListPaymentsParams narrows a payment listing
type ListPaymentsParams struct {
	VaultID  *uuid.UUID
	SeriesID *uuid.UUID
	Statuses []domain.PaymentStatus
	Limit    int
	Offset   int
}

// Executor is the interface for the API executor. Every method runs inside
// the owner scope of userID; rows of other users are reported as not found.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// Ping checks that the backing store is reachable
	Ping(ctx context.Context) error

	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)

	ListVaults(ctx context.Context, userID uuid.UUID) (*dto.VaultListResponse, error)
	CreateVault(ctx context.Context, userID uuid.UUID, req *dto.CreateVaultRequest) (*dto.VaultResponse, error)
	GetVault(ctx context.Context, userID uuid.UUID, vaultID uuid.UUID) (*dto.VaultResponse, error)
	GetVaultByHandle(ctx context.Context, userID uuid.UUID, handle string) (*dto.VaultResponse, error)
	UpdateVault(ctx context.Context, userID uuid.UUID, vaultID uuid.UUID, req *dto.UpdateVaultRequest) (*dto.VaultResponse, error)
	DeleteVault(ctx context.Context, userID uuid.UUID, vaultID uuid.UUID) error

	CreatePayments(ctx context.Context, userID uuid.UUID, vaultID uuid.UUID, req *dto.CreatePaymentsRequest) (*dto.PaymentListResponse, error)
	ListPayments(ctx context.Context, userID uuid.UUID, params ListPaymentsParams) (*dto.PaymentListResponse, error)
	GetPayment(ctx context.Context, userID uuid.UUID, paymentID uuid.UUID) (*dto.PaymentResponse, error)
	UpdatePayment(ctx context.Context, userID uuid.UUID, paymentID uuid.UUID, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error)
	UpdatePaymentStatus(ctx context.Context, userID uuid.UUID, paymentID uuid.UUID, req *dto.UpdatePaymentStatusRequest) (*dto.PaymentResponse, error)
	RecordPaymentExecution(ctx context.Context, userID uuid.UUID, paymentID uuid.UUID, req *dto.RecordExecutionRequest) (*dto.PaymentResponse, error)
	DeletePayment(ctx context.Context, userID uuid.UUID, paymentID uuid.UUID) error
	GetPaymentHistory(ctx context.Context, userID uuid.UUID, paymentID uuid.UUID) (*dto.StatusChangeListResponse, error)

	GetSpendingSummary(ctx context.Context, userID uuid.UUID, vaultID uuid.UUID) (*dto.SpendingSummaryResponse, error)
	ListSpendingSummaries(ctx context.Context, userID uuid.UUID) (*dto.SpendingSummaryListResponse, error)
}

type executor struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
}

func NewExecutor(store store.Store, publisher messaging.Publisher, clock adapter.Clock) Executor {
	if publisher == nil {
		publisher = messaging.NewNoopPublisher()
	}
	return &executor{store: store, publisher: publisher, clock: clock}
}

func (e *executor) Ping(ctx context.Context) error {
	return e.store.Ping(ctx)
}

func (e *executor) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	profile, err := e.store.ForOwner(userID).GetProfile(ctx)
	if err != nil {
		return nil, translate(err, "failed to get profile")
	}
	if profile == nil {
		return nil, apierrors.NewNotFoundError("Profile not found")
	}
	return dto.MapProfileToDTO(profile), nil
}

func (e *executor) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	input := store.UpdateProfileInput{
		SubAccountAddress:  req.SubAccountAddress,
		OnboardingComplete: req.OnboardingComplete,
	}
	profile, err := e.store.ForOwner(userID).UpdateProfile(ctx, input)
	if err != nil {
		return nil, translate(err, "failed to update profile")
	}
	if profile == nil {
		return nil, apierrors.NewNotFoundError("Profile not found")
	}
	return dto.MapProfileToDTO(profile), nil
}

func (e *executor) ListVaults(ctx context.Context, userID uuid.UUID) (*dto.VaultListResponse, error) {
	vaults, err := e.store.ForOwner(userID).ListVaults(ctx)
	if err != nil {
		return nil, translate(err, "failed to list vaults")
	}
	return dto.MapVaultsToDTO(vaults), nil
}

func (e *executor) CreateVault(ctx context.Context, userID uuid.UUID, req *dto.CreateVaultRequest) (*dto.VaultResponse, error) {
	input := store.CreateVaultInput{
		Name:        strings.TrimSpace(req.Name),
		Handle:      req.Handle,
		Emoji:       req.Emoji,
		Description: req.Description,
		ChainID:     domain.Chain(req.ChainID),
	}
	if req.OwnerID != nil {
		ownerID, err := uuid.Parse(*req.OwnerID)
		if err != nil {
			return nil, apierrors.NewValidationError("owner_id must be a UUID")
		}
		input.OwnerID = &ownerID
	}

	vault, err := e.store.ForOwner(userID).CreateVault(ctx, input)
	if err != nil {
		return nil, translate(err, "failed to create vault")
	}

	e.publish(ctx, messaging.EventVaultCreated, userID, vault.ID, map[string]interface{}{
		"handle":   vault.Handle,
		"chain_id": vault.ChainID,
	})

	return dto.MapVaultToDTO(vault), nil
}

func (e *executor) GetVault(ctx context.Context, userID uuid.UUID, vaultID uuid.UUID) (*dto.VaultResponse, error) {
	vault, err := e.store.ForOwner(userID).GetVault(ctx, vaultID)
	if err != nil {
		return nil, translate(err, "failed to get vault")
	}
	if vault == nil {
		return nil, apierrors.NewNotFoundError("Vault not found")
	}
	return dto.MapVaultToDTO(vault), nil
}

func (e *executor) GetVaultByHandle(ctx context.Context, userID uuid.UUID, handle string) (*dto.VaultResponse, error) {
	vault, err := e.store.ForOwner(userID).GetVaultByHandle(ctx, handle)
	if err != nil {
		return nil, translate(err, "failed to get vault")
	}
	if vault == nil {
		return nil, apierrors.NewNotFoundError("Vault not found")
	}
	return dto.MapVaultToDTO(vault), nil
}

func (e *executor) UpdateVault(ctx context.Context, userID uuid.UUID, vaultID uuid.UUID, req *dto.UpdateVaultRequest) (*dto.VaultResponse, error) {
	input := store.UpdateVaultInput{
		Name:        req.Name,
		Handle:      req.Handle,
		Emoji:       req.Emoji,
		Description: req.Description,
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		input.Name = &name
	}

	vault, err := e.store.ForOwner(userID).UpdateVault(ctx, vaultID, input)
	if err != nil {
		return nil, translate(err, "failed to update vault")
	}
	if vault == nil {
		return nil, apierrors.NewNotFoundError("Vault not found")
	}

	e.publish(ctx, messaging.EventVaultUpdated, userID, vault.ID, map[string]interface{}{
		"handle": vault.Handle,
	})

	return dto.MapVaultToDTO(vault), nil
}

func (e *executor) DeleteVault(ctx context.Context, userID uuid.UUID, vaultID uuid.UUID) error {
	deleted, err := e.store.ForOwner(userID).DeleteVault(ctx, vaultID)
	if err != nil {
		return translate(err, "failed to delete vault")
	}
	if !deleted {
		return apierrors.NewNotFoundError("Vault not found")
	}

	e.publish(ctx, messaging.EventVaultDeleted, userID, vaultID, nil)
	return nil
}

func (e *executor) CreatePayments(ctx context.Context, userID uuid.UUID, vaultID uuid.UUID, req *dto.CreatePaymentsRequest) (*dto.PaymentListResponse, error) {
	scope := e.store.ForOwner(userID)

	vault, err := scope.GetVault(ctx, vaultID)
	if err != nil {
		return nil, translate(err, "failed to get vault")
	}
	if vault == nil {
		return nil, apierrors.NewNotFoundError("Vault not found")
	}

	var tokenAddress string
	if req.TokenAddress != nil {
		tokenAddress = *req.TokenAddress
	} else {
		usdc, ok := domain.USDCAddress(domain.Chain(vault.ChainID))
		if !ok {
			return nil, apierrors.NewValidationError(fmt.Sprintf("token_address is required on chain %s", vault.ChainID))
		}
		tokenAddress = usdc
	}

	payments, err := scope.CreatePayments(ctx, store.CreatePaymentsInput{
		VaultID:          vault.ID,
		RecipientAddress: req.RecipientAddress,
		RecipientName:    req.RecipientName,
		TokenAddress:     tokenAddress,
		Amount:           req.Amount,
		ExecutionMode:    domain.ExecutionModeManual,
		ExecutionDates:   req.ExecutionDates,
	})
	if err != nil {
		return nil, translate(err, "failed to create payments")
	}
	if payments == nil {
		// the vault was deleted concurrently
		return nil, apierrors.NewNotFoundError("Vault not found")
	}

	for _, p := range payments {
		e.publish(ctx, messaging.EventPaymentCreated, userID, p.ID, paymentEventData(&p))
	}

	return dto.MapPaymentsToDTO(payments), nil
}

func (e *executor) ListPayments(ctx context.Context, userID uuid.UUID, params ListPaymentsParams) (*dto.PaymentListResponse, error) {
	scope := e.store.ForOwner(userID)

	if params.VaultID != nil {
		vault, err := scope.GetVault(ctx, *params.VaultID)
		if err != nil {
			return nil, translate(err, "failed to get vault")
		}
		if vault == nil {
			return nil, apierrors.NewNotFoundError("Vault not found")
		}
	}

	limit := params.Limit
	if limit <= 0 {
		limit = constants.DEFAULT_PAYMENTS_LIMIT
	}
	if limit > constants.MAX_PAGE_SIZE {
		limit = constants.MAX_PAGE_SIZE
	}

	payments, err := scope.ListPayments(ctx, store.PaymentFilter{
		VaultID:  params.VaultID,
		SeriesID: params.SeriesID,
		Statuses: params.Statuses,
		Limit:    limit,
		Offset:   params.Offset,
	})
	if err != nil {
		return nil, translate(err, "failed to list payments")
	}

	resp := dto.MapPaymentsToDTO(payments)
	if len(payments) == limit {
		next := params.Offset + limit
		resp.Offset = &next
	}
	return resp, nil
}

func (e *executor) GetPayment(ctx context.Context, userID uuid.UUID, paymentID uuid.UUID) (*dto.PaymentResponse, error) {
	payment, err := e.store.ForOwner(userID).GetPayment(ctx, paymentID)
	if err != nil {
		return nil, translate(err, "failed to get payment")
	}
	if payment == nil {
		return nil, apierrors.NewNotFoundError("Payment not found")
	}
	return dto.MapPaymentToDTO(payment), nil
}

func (e *executor) UpdatePayment(ctx context.Context, userID uuid.UUID, paymentID uuid.UUID, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	input := store.UpdatePaymentInput{
		RecipientAddress:  req.RecipientAddress,
		RecipientName:     req.RecipientName,
		TokenAddress:      req.TokenAddress,
		Amount:            req.Amount,
		NextExecutionDate: req.NextExecutionDate,
	}
	if req.VaultID != nil {
		vaultID, err := uuid.Parse(*req.VaultID)
		if err != nil {
			return nil, apierrors.NewValidationError("vault_id must be a UUID")
		}
		input.VaultID = &vaultID
	}

	payment, err := e.store.ForOwner(userID).UpdatePayment(ctx, paymentID, input)
	if err != nil {
		return nil, translate(err, "failed to update payment")
	}
	if payment == nil {
		return nil, apierrors.NewNotFoundError("Payment not found")
	}

	e.publish(ctx, messaging.EventPaymentUpdated, userID, payment.ID, paymentEventData(payment))
	return dto.MapPaymentToDTO(payment), nil
}

func (e *executor) UpdatePaymentStatus(ctx context.Context, userID uuid.UUID, paymentID uuid.UUID, req *dto.UpdatePaymentStatusRequest) (*dto.PaymentResponse, error) {
	payment, err := e.store.ForOwner(userID).UpdatePaymentStatus(ctx, paymentID, req.Status)
	if err != nil {
		return nil, translate(err, "failed to update payment status")
	}
	if payment == nil {
		return nil, apierrors.NewNotFoundError("Payment not found")
	}

	e.publish(ctx, messaging.EventPaymentStatusChanged, userID, payment.ID, paymentEventData(payment))
	return dto.MapPaymentToDTO(payment), nil
}

func (e *executor) RecordPaymentExecution(ctx context.Context, userID uuid.UUID, paymentID uuid.UUID, req *dto.RecordExecutionRequest) (*dto.PaymentResponse, error) {
	payment, err := e.store.ForOwner(userID).RecordPaymentExecution(ctx, paymentID, req.TransactionHash, e.clock.Now())
	if err != nil {
		return nil, translate(err, "failed to record payment execution")
	}
	if payment == nil {
		return nil, apierrors.NewNotFoundError("Payment not found")
	}

	data := paymentEventData(payment)
	data["transaction_hash"] = req.TransactionHash
	e.publish(ctx, messaging.EventPaymentExecuted, userID, payment.ID, data)

	return dto.MapPaymentToDTO(payment), nil
}

func (e *executor) DeletePayment(ctx context.Context, userID uuid.UUID, paymentID uuid.UUID) error {
	deleted, err := e.store.ForOwner(userID).DeletePayment(ctx, paymentID)
	if err != nil {
		return translate(err, "failed to delete payment")
	}
	if !deleted {
		return apierrors.NewNotFoundError("Payment not found")
	}

	e.publish(ctx, messaging.EventPaymentDeleted, userID, paymentID, nil)
	return nil
}

func (e *executor) GetPaymentHistory(ctx context.Context, userID uuid.UUID, paymentID uuid.UUID) (*dto.StatusChangeListResponse, error) {
	changes, err := e.store.ForOwner(userID).ListPaymentStatusChanges(ctx, paymentID)
	if err != nil {
		return nil, translate(err, "failed to get payment history")
	}
	if changes == nil {
		return nil, apierrors.NewNotFoundError("Payment not found")
	}
	return dto.MapStatusChangesToDTO(changes), nil
}

func (e *executor) GetSpendingSummary(ctx context.Context, userID uuid.UUID, vaultID uuid.UUID) (*dto.SpendingSummaryResponse, error) {
	summary, err := e.store.ForOwner(userID).GetSpendingSummary(ctx, vaultID)
	if err != nil {
		return nil, translate(err, "failed to get spending summary")
	}
	if summary == nil {
		return nil, apierrors.NewNotFoundError("Vault not found")
	}
	return dto.MapSpendingSummaryToDTO(summary), nil
}

func (e *executor) ListSpendingSummaries(ctx context.Context, userID uuid.UUID) (*dto.SpendingSummaryListResponse, error) {
	summaries, err := e.store.ForOwner(userID).ListSpendingSummaries(ctx)
	if err != nil {
		return nil, translate(err, "failed to list spending summaries")
	}
	return dto.MapSpendingSummariesToDTO(summaries), nil
}

// publish emits an activity event. Failures are logged and never fail the request.
func (e *executor) publish(ctx context.Context, eventType messaging.EventType, ownerID uuid.UUID, subjectID uuid.UUID, data map[string]interface{}) {
	event := messaging.NewEvent(eventType, ownerID.String(), subjectID.String(), e.clock.Now(), data)
	if err := e.publisher.Publish(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish event",
			zap.String("type", string(eventType)),
			zap.String("eventID", event.ID),
			zap.Error(err))
	}
}

func paymentEventData(p *schema.Payment) map[string]interface{} {
	return map[string]interface{}{
		"vault_id": p.VaultID.String(),
		"amount":   p.Amount,
		"status":   string(p.Status),
	}
}

// translate maps domain errors to API errors and wraps everything else
func translate(err error, message string) error {
	if apiErr := apierrors.FromDomainError(err); apiErr != nil {
		if apiErr.Details == "" && apiErr.Code != apierrors.ErrCodeNotFound {
			apiErr.Details = err.Error()
		}
		return apiErr
	}
	return fmt.Errorf("%s: %w", message, err)
}

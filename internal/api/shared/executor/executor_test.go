package executor_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subvault/subvault-api/internal/api/shared/dto"
	apierrors "github.com/subvault/subvault-api/internal/api/shared/errors"
	"github.com/subvault/subvault-api/internal/api/shared/executor"
	"github.com/subvault/subvault-api/internal/domain"
	"github.com/subvault/subvault-api/internal/messaging"
	"github.com/subvault/subvault-api/internal/mocks"
	"github.com/subvault/subvault-api/internal/store"
	"github.com/subvault/subvault-api/internal/store/schema"
)

var testNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

// testExecutorMocks contains the mocks behind an executor under test
type testExecutorMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	scope     *mocks.MockOwnerScope
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	userID    uuid.UUID
	executor  executor.Executor
}

func setupTestExecutor(t *testing.T) *testExecutorMocks {
	ctrl := gomock.NewController(t)

	tm := &testExecutorMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		scope:     mocks.NewMockOwnerScope(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
		userID:    uuid.New(),
	}

	tm.store.EXPECT().ForOwner(tm.userID).Return(tm.scope).AnyTimes()
	tm.clock.EXPECT().Now().Return(testNow).AnyTimes()

	tm.executor = executor.NewExecutor(tm.store, tm.publisher, tm.clock)
	return tm
}

func (tm *testExecutorMocks) tearDown() {
	tm.ctrl.Finish()
}

func testVault(ownerID uuid.UUID) *schema.Vault {
	return &schema.Vault{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      "Rent",
		Handle:    "rent",
		ChainID:   string(domain.ChainBaseMainnet),
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

func testPayment(vaultID uuid.UUID, status domain.PaymentStatus) *schema.Payment {
	return &schema.Payment{
		ID:               uuid.New(),
		VaultID:          vaultID,
		RecipientAddress: "0x1111111111111111111111111111111111111111",
		TokenAddress:     "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
		Amount:           "1500000",
		Status:           status,
		ExecutionMode:    domain.ExecutionModeManual,
		ChainID:          string(domain.ChainBaseMainnet),
		CreatedAt:        testNow,
		UpdatedAt:        testNow,
	}
}

func requireAPIError(t *testing.T, err error, code apierrors.ErrorCode) *apierrors.APIError {
	t.Helper()
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	assert.Equal(t, code, apiErr.Code)
	return apiErr
}

func TestExecutor_GetVault(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	vault := testVault(tm.userID)
	tm.scope.EXPECT().GetVault(gomock.Any(), vault.ID).Return(vault, nil)

	resp, err := tm.executor.GetVault(context.Background(), tm.userID, vault.ID)
	require.NoError(t, err)
	assert.Equal(t, vault.ID.String(), resp.ID)
	assert.Equal(t, "rent", resp.Handle)
	assert.Equal(t, tm.userID.String(), resp.OwnerID)
}

func TestExecutor_GetVault_NotFound(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	vaultID := uuid.New()
	tm.scope.EXPECT().GetVault(gomock.Any(), vaultID).Return(nil, nil)

	_, err := tm.executor.GetVault(context.Background(), tm.userID, vaultID)
	apiErr := requireAPIError(t, err, apierrors.ErrCodeNotFound)
	assert.Equal(t, "Vault not found", apiErr.Message)
}

func TestExecutor_GetVault_StoreError(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	vaultID := uuid.New()
	tm.scope.EXPECT().GetVault(gomock.Any(), vaultID).Return(nil, errors.New("connection reset"))

	_, err := tm.executor.GetVault(context.Background(), tm.userID, vaultID)
	require.Error(t, err)

	var apiErr *apierrors.APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "failed to get vault")
}

func TestExecutor_CreateVault(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	vault := testVault(tm.userID)
	tm.scope.EXPECT().
		CreateVault(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateVaultInput) (*schema.Vault, error) {
			assert.Equal(t, "Rent", input.Name)
			assert.Equal(t, domain.ChainBaseMainnet, input.ChainID)
			assert.Nil(t, input.OwnerID)
			return vault, nil
		})
	tm.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *messaging.Event) error {
			assert.Equal(t, messaging.EventVaultCreated, event.Type)
			assert.Equal(t, tm.userID.String(), event.OwnerID)
			assert.Equal(t, vault.ID.String(), event.SubjectID)
			assert.Equal(t, testNow, event.OccurredAt)
			return nil
		})

	resp, err := tm.executor.CreateVault(context.Background(), tm.userID, &dto.CreateVaultRequest{
		Name:    "  Rent ",
		ChainID: string(domain.ChainBaseMainnet),
	})
	require.NoError(t, err)
	assert.Equal(t, vault.ID.String(), resp.ID)
}

func TestExecutor_CreateVault_PublishFailureIsIgnored(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	vault := testVault(tm.userID)
	tm.scope.EXPECT().CreateVault(gomock.Any(), gomock.Any()).Return(vault, nil)
	tm.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("queue full"))

	resp, err := tm.executor.CreateVault(context.Background(), tm.userID, &dto.CreateVaultRequest{
		Name:    "Rent",
		ChainID: string(domain.ChainBaseMainnet),
	})
	require.NoError(t, err)
	assert.Equal(t, vault.ID.String(), resp.ID)
}

func TestExecutor_CreateVault_OwnerMismatch(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	other := uuid.New().String()
	tm.scope.EXPECT().
		CreateVault(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("owner %s: %w", other, domain.ErrOwnerMismatch))

	_, err := tm.executor.CreateVault(context.Background(), tm.userID, &dto.CreateVaultRequest{
		OwnerID: &other,
		Name:    "Rent",
		ChainID: string(domain.ChainBaseMainnet),
	})
	apiErr := requireAPIError(t, err, apierrors.ErrCodeForbidden)
	assert.Contains(t, apiErr.Details, "owner mismatch")
}

func TestExecutor_CreateVault_InvalidOwnerID(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	bad := "not-a-uuid"
	_, err := tm.executor.CreateVault(context.Background(), tm.userID, &dto.CreateVaultRequest{
		OwnerID: &bad,
		Name:    "Rent",
	})
	requireAPIError(t, err, apierrors.ErrCodeValidationFailed)
}

func TestExecutor_DeleteVault(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	vaultID := uuid.New()
	tm.scope.EXPECT().DeleteVault(gomock.Any(), vaultID).Return(true, nil)
	tm.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, tm.executor.DeleteVault(context.Background(), tm.userID, vaultID))

	tm.scope.EXPECT().DeleteVault(gomock.Any(), vaultID).Return(false, nil)
	err := tm.executor.DeleteVault(context.Background(), tm.userID, vaultID)
	requireAPIError(t, err, apierrors.ErrCodeNotFound)
}

func TestExecutor_CreatePayments_DefaultsToUSDC(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	vault := testVault(tm.userID)
	first := testPayment(vault.ID, domain.PaymentStatusPending)
	second := testPayment(vault.ID, domain.PaymentStatusPending)
	dates := []time.Time{testNow.Add(24 * time.Hour), testNow.Add(48 * time.Hour)}

	tm.scope.EXPECT().GetVault(gomock.Any(), vault.ID).Return(vault, nil)
	tm.scope.EXPECT().
		CreatePayments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreatePaymentsInput) ([]schema.Payment, error) {
			usdc, _ := domain.USDCAddress(domain.ChainBaseMainnet)
			assert.Equal(t, usdc, input.TokenAddress)
			assert.Equal(t, vault.ID, input.VaultID)
			assert.Equal(t, domain.ExecutionModeManual, input.ExecutionMode)
			assert.Equal(t, dates, input.ExecutionDates)
			return []schema.Payment{*first, *second}, nil
		})
	tm.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	resp, err := tm.executor.CreatePayments(context.Background(), tm.userID, vault.ID, &dto.CreatePaymentsRequest{
		RecipientAddress: first.RecipientAddress,
		Amount:           "1500000",
		ExecutionDates:   dates,
	})
	require.NoError(t, err)
	require.Len(t, resp.Payments, 2)
	assert.Equal(t, "1.5", resp.Payments[0].AmountDisplay)
	assert.Equal(t, []string{}, resp.Payments[0].TransactionHashes)
}

func TestExecutor_CreatePayments_ExplicitToken(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	vault := testVault(tm.userID)
	token := "0x2222222222222222222222222222222222222222"

	tm.scope.EXPECT().GetVault(gomock.Any(), vault.ID).Return(vault, nil)
	tm.scope.EXPECT().
		CreatePayments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreatePaymentsInput) ([]schema.Payment, error) {
			assert.Equal(t, token, input.TokenAddress)
			return []schema.Payment{*testPayment(vault.ID, domain.PaymentStatusPending)}, nil
		})
	tm.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := tm.executor.CreatePayments(context.Background(), tm.userID, vault.ID, &dto.CreatePaymentsRequest{
		RecipientAddress: "0x1111111111111111111111111111111111111111",
		TokenAddress:     &token,
		Amount:           "1",
	})
	require.NoError(t, err)
}

func TestExecutor_CreatePayments_VaultNotVisible(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	vaultID := uuid.New()
	tm.scope.EXPECT().GetVault(gomock.Any(), vaultID).Return(nil, nil)

	_, err := tm.executor.CreatePayments(context.Background(), tm.userID, vaultID, &dto.CreatePaymentsRequest{
		RecipientAddress: "0x1111111111111111111111111111111111111111",
		Amount:           "1",
	})
	requireAPIError(t, err, apierrors.ErrCodeNotFound)
}

func TestExecutor_ListPayments(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	vault := testVault(tm.userID)
	page := []schema.Payment{
		*testPayment(vault.ID, domain.PaymentStatusActive),
		*testPayment(vault.ID, domain.PaymentStatusActive),
	}

	tm.scope.EXPECT().GetVault(gomock.Any(), vault.ID).Return(vault, nil)
	tm.scope.EXPECT().
		ListPayments(gomock.Any(), store.PaymentFilter{
			VaultID:  &vault.ID,
			Statuses: []domain.PaymentStatus{domain.PaymentStatusActive},
			Limit:    2,
			Offset:   4,
		}).
		Return(page, nil)

	resp, err := tm.executor.ListPayments(context.Background(), tm.userID, executor.ListPaymentsParams{
		VaultID:  &vault.ID,
		Statuses: []domain.PaymentStatus{domain.PaymentStatusActive},
		Limit:    2,
		Offset:   4,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Payments, 2)
	require.NotNil(t, resp.Offset)
	assert.Equal(t, 6, *resp.Offset)
}

func TestExecutor_ListPayments_ClampsLimit(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	tm.scope.EXPECT().
		ListPayments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter store.PaymentFilter) ([]schema.Payment, error) {
			assert.Equal(t, 100, filter.Limit)
			return nil, nil
		})

	resp, err := tm.executor.ListPayments(context.Background(), tm.userID, executor.ListPaymentsParams{Limit: 500})
	require.NoError(t, err)
	assert.Empty(t, resp.Payments)
	assert.Nil(t, resp.Offset)

	tm.scope.EXPECT().
		ListPayments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter store.PaymentFilter) ([]schema.Payment, error) {
			assert.Equal(t, 50, filter.Limit)
			return nil, nil
		})

	_, err = tm.executor.ListPayments(context.Background(), tm.userID, executor.ListPaymentsParams{})
	require.NoError(t, err)
}

func TestExecutor_ListPayments_VaultNotVisible(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	vaultID := uuid.New()
	tm.scope.EXPECT().GetVault(gomock.Any(), vaultID).Return(nil, nil)

	_, err := tm.executor.ListPayments(context.Background(), tm.userID, executor.ListPaymentsParams{VaultID: &vaultID})
	requireAPIError(t, err, apierrors.ErrCodeNotFound)
}

func TestExecutor_UpdatePaymentStatus(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	payment := testPayment(uuid.New(), domain.PaymentStatusPaused)
	tm.scope.EXPECT().UpdatePaymentStatus(gomock.Any(), payment.ID, domain.PaymentStatusPaused).Return(payment, nil)
	tm.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *messaging.Event) error {
			assert.Equal(t, messaging.EventPaymentStatusChanged, event.Type)
			assert.Equal(t, "paused", event.Data["status"])
			return nil
		})

	resp, err := tm.executor.UpdatePaymentStatus(context.Background(), tm.userID, payment.ID,
		&dto.UpdatePaymentStatusRequest{Status: domain.PaymentStatusPaused})
	require.NoError(t, err)
	assert.Equal(t, "paused", resp.Status)
}

func TestExecutor_UpdatePaymentStatus_InvalidTransition(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	paymentID := uuid.New()
	tm.scope.EXPECT().
		UpdatePaymentStatus(gomock.Any(), paymentID, domain.PaymentStatusActive).
		Return(nil, fmt.Errorf("completed -> active: %w", domain.ErrInvalidStatusTransition))

	_, err := tm.executor.UpdatePaymentStatus(context.Background(), tm.userID, paymentID,
		&dto.UpdatePaymentStatusRequest{Status: domain.PaymentStatusActive})
	apiErr := requireAPIError(t, err, apierrors.ErrCodeConflict)
	assert.Contains(t, apiErr.Details, "completed -> active")
}

func TestExecutor_UpdatePayment_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		code     apierrors.ErrorCode
	}{
		{"closed payment", fmt.Errorf("%w: completed", domain.ErrPaymentClosed), apierrors.ErrCodeConflict},
		{"vault on another chain", fmt.Errorf("%w: eip155:8453 -> eip155:84532", domain.ErrChainMismatch), apierrors.ErrCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestExecutor(t)
			defer tm.tearDown()

			paymentID := uuid.New()
			vaultID := uuid.New()
			vaultIDStr := vaultID.String()
			tm.scope.EXPECT().
				UpdatePayment(gomock.Any(), paymentID, store.UpdatePaymentInput{VaultID: &vaultID}).
				Return(nil, tt.storeErr)

			resp, err := tm.executor.UpdatePayment(context.Background(), tm.userID, paymentID,
				&dto.UpdatePaymentRequest{VaultID: &vaultIDStr})
			assert.Nil(t, resp)
			requireAPIError(t, err, tt.code)
		})
	}
}

func TestExecutor_RecordPaymentExecution(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	txHash := "0x" + "ab" + fmt.Sprintf("%062d", 0)
	payment := testPayment(uuid.New(), domain.PaymentStatusCompleted)
	payment.ExecutedCount = 1
	payment.TransactionHashes = []string{txHash}
	payment.LastExecutedAt = &testNow

	tm.scope.EXPECT().RecordPaymentExecution(gomock.Any(), payment.ID, txHash, testNow).Return(payment, nil)
	tm.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *messaging.Event) error {
			assert.Equal(t, messaging.EventPaymentExecuted, event.Type)
			assert.Equal(t, txHash, event.Data["transaction_hash"])
			return nil
		})

	resp, err := tm.executor.RecordPaymentExecution(context.Background(), tm.userID, payment.ID,
		&dto.RecordExecutionRequest{TransactionHash: txHash})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ExecutedCount)
	assert.Equal(t, []string{txHash}, resp.TransactionHashes)
}

func TestExecutor_RecordPaymentExecution_Duplicate(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	paymentID := uuid.New()
	tm.scope.EXPECT().
		RecordPaymentExecution(gomock.Any(), paymentID, gomock.Any(), testNow).
		Return(nil, domain.ErrDuplicateExecution)

	_, err := tm.executor.RecordPaymentExecution(context.Background(), tm.userID, paymentID,
		&dto.RecordExecutionRequest{TransactionHash: "0x01"})
	requireAPIError(t, err, apierrors.ErrCodeConflict)
}

func TestExecutor_GetPaymentHistory(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	paymentID := uuid.New()
	pending := domain.PaymentStatusPending
	tm.scope.EXPECT().ListPaymentStatusChanges(gomock.Any(), paymentID).Return([]schema.PaymentStatusChange{
		{ID: 1, PaymentID: paymentID, ToStatus: domain.PaymentStatusPending, ChangedBy: tm.userID, CreatedAt: testNow},
		{ID: 2, PaymentID: paymentID, FromStatus: &pending, ToStatus: domain.PaymentStatusActive, ChangedBy: tm.userID, CreatedAt: testNow},
	}, nil)

	resp, err := tm.executor.GetPaymentHistory(context.Background(), tm.userID, paymentID)
	require.NoError(t, err)
	require.Len(t, resp.Changes, 2)
	assert.Nil(t, resp.Changes[0].FromStatus)
	require.NotNil(t, resp.Changes[1].FromStatus)
	assert.Equal(t, "pending", *resp.Changes[1].FromStatus)
	assert.Equal(t, "active", resp.Changes[1].ToStatus)

	// a payment outside the scope has no history
	tm.scope.EXPECT().ListPaymentStatusChanges(gomock.Any(), paymentID).Return(nil, nil)
	_, err = tm.executor.GetPaymentHistory(context.Background(), tm.userID, paymentID)
	requireAPIError(t, err, apierrors.ErrCodeNotFound)
}

func TestExecutor_DeletePayment_NotFound(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	paymentID := uuid.New()
	tm.scope.EXPECT().DeletePayment(gomock.Any(), paymentID).Return(false, nil)

	err := tm.executor.DeletePayment(context.Background(), tm.userID, paymentID)
	requireAPIError(t, err, apierrors.ErrCodeNotFound)
}

func TestExecutor_GetSpendingSummary(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.tearDown()

	vaultID := uuid.New()
	tm.scope.EXPECT().GetSpendingSummary(gomock.Any(), vaultID).Return(&schema.VaultSpendingSummary{
		VaultID:              vaultID,
		PaymentCount:         3,
		ExecutedPaymentCount: 1,
		TotalPaid:            "2500000",
		TotalScheduled:       "10000000",
	}, nil)

	resp, err := tm.executor.GetSpendingSummary(context.Background(), tm.userID, vaultID)
	require.NoError(t, err)
	assert.Equal(t, "2.5", resp.TotalPaidDisplay)
	assert.Equal(t, "10", resp.TotalScheduledDisplay)
}

package store

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subvault/subvault-api/internal/domain"
	"github.com/subvault/subvault-api/internal/handle"
	"github.com/subvault/subvault-api/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

var addressSeq atomic.Uint64

// nextAddress returns a distinct lower-case address per call
func nextAddress() string {
	return fmt.Sprintf("0x%040x", addressSeq.Add(1))
}

func createTestUser(t *testing.T, store Store) *schema.User {
	t.Helper()
	user, err := store.CreateUser(context.Background(), CreateUserInput{
		Address:        nextAddress(),
		CredentialHash: "$2a$10$test",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func createTestVault(t *testing.T, scope OwnerScope, name string) *schema.Vault {
	t.Helper()
	vault, err := scope.CreateVault(context.Background(), CreateVaultInput{
		Name:    name,
		Emoji:   "💰",
		ChainID: domain.ChainBaseSepolia,
	})
	require.NoError(t, err)
	require.NotNil(t, vault)
	return vault
}

func buildTestPayments(vaultID uuid.UUID, amount string, dates ...time.Time) CreatePaymentsInput {
	return CreatePaymentsInput{
		VaultID:          vaultID,
		RecipientAddress: "0x1234567890123456789012345678901234567890",
		TokenAddress:     "0x036CbD53842c5426634e7929541eC2318f3dCF7e",
		Amount:           amount,
		ExecutionMode:    domain.ExecutionModeManual,
		ExecutionDates:   dates,
	}
}

func testTxHash(n int) string {
	return fmt.Sprintf("0x%064x", n)
}

// =============================================================================
// Test: Nonces
// =============================================================================

func testNonces(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("nonce is redeemable exactly once", func(t *testing.T) {
		require.NoError(t, store.CreateNonce(ctx, "nonceonce0001", now, now.Add(5*time.Minute)))

		ok, err := store.ConsumeNonce(ctx, "nonceonce0001", now)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.ConsumeNonce(ctx, "nonceonce0001", now)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("expired nonce is not redeemable", func(t *testing.T) {
		require.NoError(t, store.CreateNonce(ctx, "nonceexpired01", now.Add(-10*time.Minute), now.Add(-5*time.Minute)))

		ok, err := store.ConsumeNonce(ctx, "nonceexpired01", now)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown nonce is not redeemable", func(t *testing.T) {
		ok, err := store.ConsumeNonce(ctx, "neverissued0001", now)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("duplicate nonce surfaces as error", func(t *testing.T) {
		require.NoError(t, store.CreateNonce(ctx, "noncedup000001", now, now.Add(time.Minute)))
		err := store.CreateNonce(ctx, "noncedup000001", now, now.Add(time.Minute))
		assert.ErrorIs(t, err, domain.ErrDuplicateNonce)

		// the transaction must remain usable after the violation
		ok, err := store.ConsumeNonce(ctx, "noncedup000001", now)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("delete expired nonces in batches", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			nonce := fmt.Sprintf("noncesweep%04d", i)
			require.NoError(t, store.CreateNonce(ctx, nonce, now.Add(-time.Hour), now.Add(-30*time.Minute)))
		}
		require.NoError(t, store.CreateNonce(ctx, "noncesweeplive", now, now.Add(time.Minute)))

		cutoff := now.Add(-20 * time.Minute)
		deleted, err := store.DeleteExpiredNonces(ctx, cutoff, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		deleted, err = store.DeleteExpiredNonces(ctx, cutoff, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		ok, err := store.ConsumeNonce(ctx, "noncesweeplive", now)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

// =============================================================================
// Test: Users
// =============================================================================

func testUsers(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create user provisions profile", func(t *testing.T) {
		address := "0xABCDEF0000000000000000000000000000000001"
		user, err := store.CreateUser(ctx, CreateUserInput{Address: address, CredentialHash: "$2a$10$hash"})
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(address), user.Address)

		profile, err := store.ForOwner(user.ID).GetProfile(ctx)
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, strings.ToLower(address), profile.Address)
		assert.False(t, profile.OnboardingComplete)
		assert.Nil(t, profile.SubAccountAddress)
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		user := createTestUser(t, store)

		found, err := store.GetUserByAddress(ctx, strings.ToUpper(user.Address[2:]))
		require.NoError(t, err)
		assert.Nil(t, found, "address without 0x prefix must not match")

		found, err = store.GetUserByAddress(ctx, "0x"+strings.ToUpper(user.Address[2:]))
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("duplicate address returns ErrUserExists", func(t *testing.T) {
		user := createTestUser(t, store)
		_, err := store.CreateUser(ctx, CreateUserInput{Address: user.Address, CredentialHash: "x"})
		assert.ErrorIs(t, err, domain.ErrUserExists)
	})

	t.Run("unknown address", func(t *testing.T) {
		found, err := store.GetUserByAddress(ctx, nextAddress())
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

// =============================================================================
// Test: Vaults and handles
// =============================================================================

func testVaultHandles(t *testing.T, store Store) {
	ctx := context.Background()
	ownerA := store.ForOwner(createTestUser(t, store).ID)
	ownerB := store.ForOwner(createTestUser(t, store).ID)

	t.Run("same name yields h then h-2 for one owner", func(t *testing.T) {
		first := createTestVault(t, ownerA, "Marketing Team!!")
		second := createTestVault(t, ownerA, "Marketing Team!!")
		third := createTestVault(t, ownerA, "marketing team")

		assert.Equal(t, "marketing-team", first.Handle)
		assert.Equal(t, "marketing-team-2", second.Handle)
		assert.Equal(t, "marketing-team-3", third.Handle)
	})

	t.Run("handles are independent across owners", func(t *testing.T) {
		vault := createTestVault(t, ownerB, "Marketing Team!!")
		assert.Equal(t, "marketing-team", vault.Handle)
	})

	t.Run("explicit handle wins over name", func(t *testing.T) {
		explicit := "Trip 2026"
		vault, err := ownerA.CreateVault(ctx, CreateVaultInput{Name: "Holiday", Handle: &explicit, ChainID: domain.ChainBaseSepolia})
		require.NoError(t, err)
		assert.Equal(t, "trip-2026", vault.Handle)
	})

	t.Run("empty normalization falls back to random handle", func(t *testing.T) {
		vault := createTestVault(t, ownerA, "!!!")
		assert.Regexp(t, `^vault-[0-9a-f]{8}$`, vault.Handle)
	})

	t.Run("long names stay within max length with suffix", func(t *testing.T) {
		name := strings.Repeat("Long Name ", 10)
		first := createTestVault(t, ownerA, name)
		second := createTestVault(t, ownerA, name)

		assert.LessOrEqual(t, len(first.Handle), handle.MaxLength)
		assert.LessOrEqual(t, len(second.Handle), handle.MaxLength)
		assert.True(t, strings.HasSuffix(second.Handle, "-2"))
		assert.NotEqual(t, first.Handle, second.Handle)
	})

	t.Run("lookup by handle is case-insensitive", func(t *testing.T) {
		vault := createTestVault(t, ownerA, "Groceries")

		found, err := ownerA.GetVaultByHandle(ctx, "GROCERIES")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, vault.ID, found.ID)

		found, err = ownerB.GetVaultByHandle(ctx, "groceries")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("rename keeps handle, explicit handle is re-uniquified", func(t *testing.T) {
		createTestVault(t, ownerA, "Rent")
		vault := createTestVault(t, ownerA, "Utilities")

		newName := "Rent"
		updated, err := ownerA.UpdateVault(ctx, vault.ID, UpdateVaultInput{Name: &newName})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Rent", updated.Name)
		assert.Equal(t, "utilities", updated.Handle)

		newHandle := "RENT"
		updated, err = ownerA.UpdateVault(ctx, vault.ID, UpdateVaultInput{Handle: &newHandle})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "rent-2", updated.Handle)

		// re-supplying its own handle does not bump the suffix
		same := "rent-2"
		updated, err = ownerA.UpdateVault(ctx, vault.ID, UpdateVaultInput{Handle: &same})
		require.NoError(t, err)
		assert.Equal(t, "rent-2", updated.Handle)
	})

	t.Run("create naming another owner is rejected", func(t *testing.T) {
		other := ownerB.OwnerID()
		_, err := ownerA.CreateVault(ctx, CreateVaultInput{OwnerID: &other, Name: "Sneaky", ChainID: domain.ChainBaseSepolia})
		assert.ErrorIs(t, err, domain.ErrOwnerMismatch)

		mine := ownerA.OwnerID()
		vault, err := ownerA.CreateVault(ctx, CreateVaultInput{OwnerID: &mine, Name: "Honest", ChainID: domain.ChainBaseSepolia})
		require.NoError(t, err)
		assert.Equal(t, mine, vault.OwnerID)
	})
}

// =============================================================================
// Test: Ownership isolation
// =============================================================================

func testOwnershipIsolation(t *testing.T, store Store) {
	ctx := context.Background()
	ownerA := store.ForOwner(createTestUser(t, store).ID)
	ownerB := store.ForOwner(createTestUser(t, store).ID)

	vaultA := createTestVault(t, ownerA, "Private")
	vaultB := createTestVault(t, ownerB, "Elsewhere")
	payments, err := ownerA.CreatePayments(ctx, buildTestPayments(vaultA.ID, "1000000"))
	require.NoError(t, err)
	require.Len(t, payments, 1)
	paymentA := payments[0]

	t.Run("reads across owners are empty", func(t *testing.T) {
		vault, err := ownerB.GetVault(ctx, vaultA.ID)
		require.NoError(t, err)
		assert.Nil(t, vault)

		vaults, err := ownerB.ListVaults(ctx)
		require.NoError(t, err)
		require.Len(t, vaults, 1)
		assert.Equal(t, vaultB.ID, vaults[0].ID)

		payment, err := ownerB.GetPayment(ctx, paymentA.ID)
		require.NoError(t, err)
		assert.Nil(t, payment)

		list, err := ownerB.ListPayments(ctx, PaymentFilter{})
		require.NoError(t, err)
		assert.Empty(t, list)

		history, err := ownerB.ListPaymentStatusChanges(ctx, paymentA.ID)
		require.NoError(t, err)
		assert.Nil(t, history)
	})

	t.Run("writes across owners affect zero rows", func(t *testing.T) {
		name := "Hijacked"
		vault, err := ownerB.UpdateVault(ctx, vaultA.ID, UpdateVaultInput{Name: &name})
		require.NoError(t, err)
		assert.Nil(t, vault)

		deleted, err := ownerB.DeleteVault(ctx, vaultA.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		amount := "1"
		payment, err := ownerB.UpdatePayment(ctx, paymentA.ID, UpdatePaymentInput{Amount: &amount})
		require.NoError(t, err)
		assert.Nil(t, payment)

		payment, err = ownerB.UpdatePaymentStatus(ctx, paymentA.ID, domain.PaymentStatusCancelled)
		require.NoError(t, err)
		assert.Nil(t, payment)

		payment, err = ownerB.RecordPaymentExecution(ctx, paymentA.ID, testTxHash(1), time.Now())
		require.NoError(t, err)
		assert.Nil(t, payment)

		deleted, err = ownerB.DeletePayment(ctx, paymentA.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		created, err := ownerB.CreatePayments(ctx, buildTestPayments(vaultA.ID, "5"))
		require.NoError(t, err)
		assert.Nil(t, created)

		// the row is untouched
		original, err := ownerA.GetPayment(ctx, paymentA.ID)
		require.NoError(t, err)
		require.NotNil(t, original)
		assert.Equal(t, "1000000", original.Amount)
		assert.Equal(t, domain.PaymentStatusPending, original.Status)

		current, err := ownerA.GetVault(ctx, vaultA.ID)
		require.NoError(t, err)
		assert.Equal(t, "Private", current.Name)
	})

	t.Run("moving a payment into a foreign vault matches nothing", func(t *testing.T) {
		payment, err := ownerA.UpdatePayment(ctx, paymentA.ID, UpdatePaymentInput{VaultID: &vaultB.ID})
		require.NoError(t, err)
		assert.Nil(t, payment)

		other := createTestVault(t, ownerA, "Second")
		payment, err = ownerA.UpdatePayment(ctx, paymentA.ID, UpdatePaymentInput{VaultID: &other.ID})
		require.NoError(t, err)
		require.NotNil(t, payment)
		assert.Equal(t, other.ID, payment.VaultID)
	})

	t.Run("summaries are filtered by owner", func(t *testing.T) {
		summaries, err := ownerB.ListSpendingSummaries(ctx)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, vaultB.ID, summaries[0].VaultID)

		summary, err := ownerB.GetSpendingSummary(ctx, vaultA.ID)
		require.NoError(t, err)
		assert.Nil(t, summary)
	})

	t.Run("profiles are per owner", func(t *testing.T) {
		sub := "0x9999999999999999999999999999999999999999"
		done := true
		profile, err := ownerA.UpdateProfile(ctx, UpdateProfileInput{SubAccountAddress: &sub, OnboardingComplete: &done})
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, sub, *profile.SubAccountAddress)
		assert.True(t, profile.OnboardingComplete)

		other, err := ownerB.GetProfile(ctx)
		require.NoError(t, err)
		require.NotNil(t, other)
		assert.Nil(t, other.SubAccountAddress)
		assert.False(t, other.OnboardingComplete)
	})
}

// =============================================================================
// Test: Payments
// =============================================================================

func testPayments(t *testing.T, store Store) {
	ctx := context.Background()
	owner := store.ForOwner(createTestUser(t, store).ID)
	vault := createTestVault(t, owner, "Payroll")

	t.Run("multiple execution dates share a series", func(t *testing.T) {
		base := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
		payments, err := owner.CreatePayments(ctx, buildTestPayments(vault.ID, "2500000", base, base.AddDate(0, 1, 0), base.AddDate(0, 2, 0)))
		require.NoError(t, err)
		require.Len(t, payments, 3)

		require.NotNil(t, payments[0].SeriesID)
		for _, p := range payments {
			assert.Equal(t, *payments[0].SeriesID, *p.SeriesID)
			assert.Equal(t, domain.PaymentStatusPending, p.Status)
			assert.Equal(t, domain.ExecutionModeManual, p.ExecutionMode)
			assert.Equal(t, vault.ChainID, p.ChainID)
			assert.Empty(t, p.TransactionHashes)
		}

		series, err := owner.ListPayments(ctx, PaymentFilter{SeriesID: payments[0].SeriesID})
		require.NoError(t, err)
		require.Len(t, series, 3)
		assert.True(t, series[0].NextExecutionDate.Equal(base))
	})

	t.Run("single payment has no series", func(t *testing.T) {
		payments, err := owner.CreatePayments(ctx, buildTestPayments(vault.ID, "1"))
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Nil(t, payments[0].SeriesID)
		assert.Nil(t, payments[0].NextExecutionDate)
	})

	t.Run("status transitions are audited", func(t *testing.T) {
		payments, err := owner.CreatePayments(ctx, buildTestPayments(vault.ID, "10"))
		require.NoError(t, err)
		id := payments[0].ID

		p, err := owner.UpdatePaymentStatus(ctx, id, domain.PaymentStatusActive)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusActive, p.Status)

		p, err = owner.UpdatePaymentStatus(ctx, id, domain.PaymentStatusPaused)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaused, p.Status)

		_, err = owner.UpdatePaymentStatus(ctx, id, domain.PaymentStatusCompleted)
		assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

		history, err := owner.ListPaymentStatusChanges(ctx, id)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Nil(t, history[0].FromStatus)
		assert.Equal(t, domain.PaymentStatusPending, history[0].ToStatus)
		assert.Equal(t, domain.PaymentStatusPending, *history[1].FromStatus)
		assert.Equal(t, domain.PaymentStatusActive, history[1].ToStatus)
		assert.Equal(t, domain.PaymentStatusActive, *history[2].FromStatus)
		assert.Equal(t, domain.PaymentStatusPaused, history[2].ToStatus)
		assert.Equal(t, owner.OwnerID(), history[2].ChangedBy)
	})

	t.Run("recording an execution completes the payment", func(t *testing.T) {
		payments, err := owner.CreatePayments(ctx, buildTestPayments(vault.ID, "750000"))
		require.NoError(t, err)
		id := payments[0].ID
		executedAt := time.Now().UTC().Truncate(time.Second)

		p, err := owner.RecordPaymentExecution(ctx, id, testTxHash(42), executedAt)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, domain.PaymentStatusCompleted, p.Status)
		assert.Equal(t, 1, p.ExecutedCount)
		assert.Equal(t, []string{testTxHash(42)}, []string(p.TransactionHashes))
		require.NotNil(t, p.LastExecutedAt)
		assert.True(t, p.LastExecutedAt.Equal(executedAt))

		_, err = owner.RecordPaymentExecution(ctx, id, testTxHash(42), executedAt)
		assert.ErrorIs(t, err, domain.ErrDuplicateExecution)

		_, err = owner.RecordPaymentExecution(ctx, id, testTxHash(43), executedAt)
		assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

		summary, err := owner.GetSpendingSummary(ctx, vault.ID)
		require.NoError(t, err)
		require.NotNil(t, summary)
		assert.GreaterOrEqual(t, summary.ExecutedPaymentCount, int64(1))
		assert.NotNil(t, summary.LastExecutedAt)
	})

	t.Run("update payment fields", func(t *testing.T) {
		payments, err := owner.CreatePayments(ctx, buildTestPayments(vault.ID, "100"))
		require.NoError(t, err)

		amount := "200"
		name := "Landlord"
		date := time.Date(2027, 1, 15, 9, 0, 0, 0, time.UTC)
		p, err := owner.UpdatePayment(ctx, payments[0].ID, UpdatePaymentInput{Amount: &amount, RecipientName: &name, NextExecutionDate: &date})
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "200", p.Amount)
		assert.Equal(t, "Landlord", *p.RecipientName)
		assert.True(t, p.NextExecutionDate.Equal(date))
	})

	t.Run("completed and cancelled payments reject edits", func(t *testing.T) {
		payments, err := owner.CreatePayments(ctx, buildTestPayments(vault.ID, "300", time.Now(), time.Now().Add(time.Hour)))
		require.NoError(t, err)
		require.Len(t, payments, 2)

		_, err = owner.RecordPaymentExecution(ctx, payments[0].ID, testTxHash(300), time.Now())
		require.NoError(t, err)
		_, err = owner.UpdatePaymentStatus(ctx, payments[1].ID, domain.PaymentStatusCancelled)
		require.NoError(t, err)

		amount := "999"
		for _, p := range payments {
			updated, err := owner.UpdatePayment(ctx, p.ID, UpdatePaymentInput{Amount: &amount})
			assert.ErrorIs(t, err, domain.ErrPaymentClosed)
			assert.Nil(t, updated)

			current, err := owner.GetPayment(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, "300", current.Amount)
		}
	})

	t.Run("moving a payment requires a vault on the same chain", func(t *testing.T) {
		payments, err := owner.CreatePayments(ctx, buildTestPayments(vault.ID, "400"))
		require.NoError(t, err)
		id := payments[0].ID

		mainnet, err := owner.CreateVault(ctx, CreateVaultInput{
			Name:    "Mainnet",
			Emoji:   "🏦",
			ChainID: domain.ChainBaseMainnet,
		})
		require.NoError(t, err)

		p, err := owner.UpdatePayment(ctx, id, UpdatePaymentInput{VaultID: &mainnet.ID})
		assert.ErrorIs(t, err, domain.ErrChainMismatch)
		assert.Nil(t, p)

		current, err := owner.GetPayment(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, vault.ID, current.VaultID)
		assert.Equal(t, vault.ChainID, current.ChainID)

		sibling := createTestVault(t, owner, "Sibling")
		p, err = owner.UpdatePayment(ctx, id, UpdatePaymentInput{VaultID: &sibling.ID})
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, sibling.ID, p.VaultID)
		assert.Equal(t, sibling.ChainID, p.ChainID)
	})

	t.Run("filter by status", func(t *testing.T) {
		list, err := owner.ListPayments(ctx, PaymentFilter{VaultID: &vault.ID, Statuses: []domain.PaymentStatus{domain.PaymentStatusCompleted}})
		require.NoError(t, err)
		require.NotEmpty(t, list)
		for _, p := range list {
			assert.Equal(t, domain.PaymentStatusCompleted, p.Status)
		}
	})
}

// =============================================================================
// Test: Cascades and summaries
// =============================================================================

func testCascadeAndSummary(t *testing.T, store Store) {
	ctx := context.Background()
	owner := store.ForOwner(createTestUser(t, store).ID)

	t.Run("deleting a vault deletes its payments", func(t *testing.T) {
		vault := createTestVault(t, owner, "Temporary")
		payments, err := owner.CreatePayments(ctx, buildTestPayments(vault.ID, "5", time.Now(), time.Now().Add(time.Hour)))
		require.NoError(t, err)
		require.Len(t, payments, 2)

		deleted, err := owner.DeleteVault(ctx, vault.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		for _, p := range payments {
			found, err := owner.GetPayment(ctx, p.ID)
			require.NoError(t, err)
			assert.Nil(t, found)
		}

		deleted, err = owner.DeleteVault(ctx, vault.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("summary totals", func(t *testing.T) {
		vault := createTestVault(t, owner, "Totals")
		payments, err := owner.CreatePayments(ctx, buildTestPayments(vault.ID, "1500000", time.Now(), time.Now().Add(24*time.Hour)))
		require.NoError(t, err)
		_, err = owner.CreatePayments(ctx, buildTestPayments(vault.ID, "999999999999999999"))
		require.NoError(t, err)

		_, err = owner.RecordPaymentExecution(ctx, payments[0].ID, testTxHash(7), time.Now())
		require.NoError(t, err)

		summary, err := owner.GetSpendingSummary(ctx, vault.ID)
		require.NoError(t, err)
		require.NotNil(t, summary)
		assert.Equal(t, int64(3), summary.PaymentCount)
		assert.Equal(t, int64(1), summary.ExecutedPaymentCount)
		assert.Equal(t, "1500000", summary.TotalPaid)
		assert.Equal(t, "1000000000001499999", summary.TotalScheduled)

		empty := createTestVault(t, owner, "Empty")
		summary, err = owner.GetSpendingSummary(ctx, empty.ID)
		require.NoError(t, err)
		require.NotNil(t, summary)
		assert.Equal(t, int64(0), summary.PaymentCount)
		assert.Equal(t, "0", summary.TotalPaid)
		assert.Nil(t, summary.LastExecutedAt)
	})
}

// RunStoreTests runs every store test against a Store created by initDB
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Nonces", testNonces},
		{"Users", testUsers},
		{"VaultHandles", testVaultHandles},
		{"OwnershipIsolation", testOwnershipIsolation},
		{"Payments", testPayments},
		{"CascadeAndSummary", testCascadeAndSummary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}

package dto

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// NonceResponse carries a freshly issued sign-in nonce
type NonceResponse struct {
	Nonce string `json:"nonce"`
}

// VerifyResponse represents a successful sign-in
type VerifyResponse struct {
	OK        bool      `json:"ok"`
	Address   string    `json:"address"`
	Session   string    `json:"session"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ProfileResponse represents the caller's profile
type ProfileResponse struct {
	UserID             string    `json:"user_id"`
	Address            string    `json:"address"`
	SubAccountAddress  *string   `json:"sub_account_address"`
	OnboardingComplete bool      `json:"onboarding_complete"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// VaultResponse represents a vault
type VaultResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Handle      string    `json:"handle"`
	Emoji       string    `json:"emoji"`
	Description *string   `json:"description"`
	ChainID     string    `json:"chain_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VaultListResponse represents a list of vaults
type VaultListResponse struct {
	Vaults []VaultResponse `json:"vaults"`
}

// PaymentResponse represents a payment. AmountDisplay is the amount in whole
// token units.
type PaymentResponse struct {
	ID                string     `json:"id"`
	VaultID           string     `json:"vault_id"`
	RecipientAddress  string     `json:"recipient_address"`
	RecipientName     *string    `json:"recipient_name"`
	TokenAddress      string     `json:"token_address"`
	Amount            string     `json:"amount"`
	AmountDisplay     string     `json:"amount_display"`
	Status            string     `json:"status"`
	ExecutionMode     string     `json:"execution_mode"`
	NextExecutionDate *time.Time `json:"next_execution_date"`
	SeriesID          *string    `json:"series_id"`
	ExecutedCount     int        `json:"executed_count"`
	TransactionHashes []string   `json:"transaction_hashes"`
	ChainID           string     `json:"chain_id"`
	LastExecutedAt    *time.Time `json:"last_executed_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// PaymentListResponse represents a page of payments
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Offset   *int              `json:"offset,omitempty"`
}

// StatusChangeResponse represents a payment status audit entry
type StatusChangeResponse struct {
	ID         int64     `json:"id"`
	PaymentID  string    `json:"payment_id"`
	FromStatus *string   `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedBy  string    `json:"changed_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// StatusChangeListResponse represents the status history of a payment
type StatusChangeListResponse struct {
	Changes []StatusChangeResponse `json:"changes"`
}

// SpendingSummaryResponse represents the spending totals of a vault
type SpendingSummaryResponse struct {
	VaultID               string     `json:"vault_id"`
	PaymentCount          int64      `json:"payment_count"`
	ExecutedPaymentCount  int64      `json:"executed_payment_count"`
	TotalPaid             string     `json:"total_paid"`
	TotalPaidDisplay      string     `json:"total_paid_display"`
	TotalScheduled        string     `json:"total_scheduled"`
	TotalScheduledDisplay string     `json:"total_scheduled_display"`
	LastExecutedAt        *time.Time `json:"last_executed_at"`
}

// SpendingSummaryListResponse represents the spending totals of every vault
type SpendingSummaryListResponse struct {
	Summaries []SpendingSummaryResponse `json:"summaries"`
}

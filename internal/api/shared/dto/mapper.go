package dto

import (
	"github.com/subvault/subvault-api/internal/domain"
	"github.com/subvault/subvault-api/internal/store/schema"
)

// MapProfileToDTO maps a profile row to its response
func MapProfileToDTO(profile *schema.UserProfile) *ProfileResponse {
	return &ProfileResponse{
		UserID:             profile.UserID.String(),
		Address:            profile.Address,
		SubAccountAddress:  profile.SubAccountAddress,
		OnboardingComplete: profile.OnboardingComplete,
		CreatedAt:          profile.CreatedAt,
		UpdatedAt:          profile.UpdatedAt,
	}
}

// MapVaultToDTO maps a vault row to its response
func MapVaultToDTO(vault *schema.Vault) *VaultResponse {
	return &VaultResponse{
		ID:          vault.ID.String(),
		OwnerID:     vault.OwnerID.String(),
		Name:        vault.Name,
		Handle:      vault.Handle,
		Emoji:       vault.Emoji,
		Description: vault.Description,
		ChainID:     vault.ChainID,
		CreatedAt:   vault.CreatedAt,
		UpdatedAt:   vault.UpdatedAt,
	}
}

// MapVaultsToDTO maps vault rows to a list response
func MapVaultsToDTO(vaults []schema.Vault) *VaultListResponse {
	resp := &VaultListResponse{Vaults: make([]VaultResponse, 0, len(vaults))}
	for i := range vaults {
		resp.Vaults = append(resp.Vaults, *MapVaultToDTO(&vaults[i]))
	}
	return resp
}

// MapPaymentToDTO maps a payment row to its response
func MapPaymentToDTO(payment *schema.Payment) *PaymentResponse {
	resp := &PaymentResponse{
		ID:                payment.ID.String(),
		VaultID:           payment.VaultID.String(),
		RecipientAddress:  payment.RecipientAddress,
		RecipientName:     payment.RecipientName,
		TokenAddress:      payment.TokenAddress,
		Amount:            payment.Amount,
		AmountDisplay:     displayAmount(payment.Amount),
		Status:            string(payment.Status),
		ExecutionMode:     string(payment.ExecutionMode),
		NextExecutionDate: payment.NextExecutionDate,
		ExecutedCount:     payment.ExecutedCount,
		TransactionHashes: []string(payment.TransactionHashes),
		ChainID:           payment.ChainID,
		LastExecutedAt:    payment.LastExecutedAt,
		CreatedAt:         payment.CreatedAt,
		UpdatedAt:         payment.UpdatedAt,
	}
	if resp.TransactionHashes == nil {
		resp.TransactionHashes = []string{}
	}
	if payment.SeriesID != nil {
		seriesID := payment.SeriesID.String()
		resp.SeriesID = &seriesID
	}
	return resp
}

// MapPaymentsToDTO maps payment rows to a list response
func MapPaymentsToDTO(payments []schema.Payment) *PaymentListResponse {
	resp := &PaymentListResponse{Payments: make([]PaymentResponse, 0, len(payments))}
	for i := range payments {
		resp.Payments = append(resp.Payments, *MapPaymentToDTO(&payments[i]))
	}
	return resp
}

// MapStatusChangesToDTO maps audit rows to a list response
func MapStatusChangesToDTO(changes []schema.PaymentStatusChange) *StatusChangeListResponse {
	resp := &StatusChangeListResponse{Changes: make([]StatusChangeResponse, 0, len(changes))}
	for _, c := range changes {
		item := StatusChangeResponse{
			ID:        c.ID,
			PaymentID: c.PaymentID.String(),
			ToStatus:  string(c.ToStatus),
			ChangedBy: c.ChangedBy.String(),
			CreatedAt: c.CreatedAt,
		}
		if c.FromStatus != nil {
			from := string(*c.FromStatus)
			item.FromStatus = &from
		}
		resp.Changes = append(resp.Changes, item)
	}
	return resp
}

// MapSpendingSummaryToDTO maps a row of the spending summary view to its response
func MapSpendingSummaryToDTO(summary *schema.VaultSpendingSummary) *SpendingSummaryResponse {
	return &SpendingSummaryResponse{
		VaultID:               summary.VaultID.String(),
		PaymentCount:          summary.PaymentCount,
		ExecutedPaymentCount:  summary.ExecutedPaymentCount,
		TotalPaid:             summary.TotalPaid,
		TotalPaidDisplay:      displayAmount(summary.TotalPaid),
		TotalScheduled:        summary.TotalScheduled,
		TotalScheduledDisplay: displayAmount(summary.TotalScheduled),
		LastExecutedAt:        summary.LastExecutedAt,
	}
}

// MapSpendingSummariesToDTO maps summary rows to a list response
func MapSpendingSummariesToDTO(summaries []schema.VaultSpendingSummary) *SpendingSummaryListResponse {
	resp := &SpendingSummaryListResponse{Summaries: make([]SpendingSummaryResponse, 0, len(summaries))}
	for i := range summaries {
		resp.Summaries = append(resp.Summaries, *MapSpendingSummaryToDTO(&summaries[i]))
	}
	return resp
}

// displayAmount formats a USDC base-unit amount, falling back to the raw value
func displayAmount(amount string) string {
	display, err := domain.FormatUnits(amount, domain.USDC_DECIMALS)
	if err != nil {
		return amount
	}
	return display
}

package rest

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/subvault/subvault-api/internal/api/shared/constants"
	"github.com/subvault/subvault-api/internal/api/shared/executor"
	"github.com/subvault/subvault-api/internal/domain"
)

// ListPaymentsQueryParams holds query parameters for GET /payments and
// GET /vaults/:id/payments
type ListPaymentsQueryParams struct {
	// Filters
	VaultID  string   `form:"vault_id"`
	SeriesID string   `form:"series_id"`
	Statuses []string `form:"status"`

	// Pagination
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ParseListPaymentsQuery parses query parameters for the payment listings.
// Statuses may be repeated or comma separated.
func ParseListPaymentsQuery(c *gin.Context) (*ListPaymentsQueryParams, error) {
	var params ListPaymentsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	var statuses []string
	for _, item := range params.Statuses {
		for _, s := range strings.Split(item, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}
	params.Statuses = statuses

	// Cap limit
	if params.Limit <= 0 {
		params.Limit = constants.DEFAULT_PAYMENTS_LIMIT
	}
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	return &params, nil
}

// ToExecutorParams validates the filters and converts them to executor parameters
func (p *ListPaymentsQueryParams) ToExecutorParams() (executor.ListPaymentsParams, error) {
	result := executor.ListPaymentsParams{
		Limit:  p.Limit,
		Offset: p.Offset,
	}

	if p.VaultID != "" {
		id, err := uuid.Parse(p.VaultID)
		if err != nil {
			return result, fmt.Errorf("invalid vault_id: %s", p.VaultID)
		}
		result.VaultID = &id
	}

	if p.SeriesID != "" {
		id, err := uuid.Parse(p.SeriesID)
		if err != nil {
			return result, fmt.Errorf("invalid series_id: %s", p.SeriesID)
		}
		result.SeriesID = &id
	}

	for _, s := range p.Statuses {
		status := domain.PaymentStatus(s)
		if !status.Valid() {
			return result, fmt.Errorf("invalid status: %s", s)
		}
		result.Statuses = append(result.Statuses, status)
	}

	return result, nil
}

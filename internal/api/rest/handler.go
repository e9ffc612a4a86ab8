package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/subvault/subvault-api/internal/api/middleware"
	"github.com/subvault/subvault-api/internal/api/shared/dto"
	apierrors "github.com/subvault/subvault-api/internal/api/shared/errors"
	"github.com/subvault/subvault-api/internal/api/shared/executor"
	"github.com/subvault/subvault-api/internal/auth"
	"github.com/subvault/subvault-api/internal/logger"
)

const healthCheckTimeout = 2 * time.Second

// Handler defines the interface for REST API handlers
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// IssueNonce issues a single-use sign-in nonce
	// GET /api/v1/auth/nonce
	IssueNonce(c *gin.Context)

	// Verify redeems a signed sign-in message for a session
	// POST /api/v1/auth/verify
	Verify(c *gin.Context)

	// GET /api/v1/me
	GetProfile(c *gin.Context)
	// PATCH /api/v1/me
	UpdateProfile(c *gin.Context)

	// GET /api/v1/vaults
	ListVaults(c *gin.Context)
	// POST /api/v1/vaults
	CreateVault(c *gin.Context)
	// GET /api/v1/vaults/:id
	GetVault(c *gin.Context)
	// PATCH /api/v1/vaults/:id
	UpdateVault(c *gin.Context)
	// DELETE /api/v1/vaults/:id
	DeleteVault(c *gin.Context)
	// GET /api/v1/handles/:handle
	GetVaultByHandle(c *gin.Context)

	// GET /api/v1/vaults/:id/payments?series_id=<id>&status=<s1>,<s2>&limit=<limit>&offset=<offset>
	ListVaultPayments(c *gin.Context)
	// POST /api/v1/vaults/:id/payments
	CreateVaultPayments(c *gin.Context)
	// GET /api/v1/vaults/:id/summary
	GetVaultSummary(c *gin.Context)
	// GET /api/v1/summaries
	ListSpendingSummaries(c *gin.Context)

	// GET /api/v1/payments?vault_id=<id>&series_id=<id>&status=<s1>,<s2>&limit=<limit>&offset=<offset>
	ListPayments(c *gin.Context)
	// GET /api/v1/payments/:id
	GetPayment(c *gin.Context)
	// PATCH /api/v1/payments/:id
	UpdatePayment(c *gin.Context)
	// DELETE /api/v1/payments/:id
	DeletePayment(c *gin.Context)
	// POST /api/v1/payments/:id/status
	UpdatePaymentStatus(c *gin.Context)
	// POST /api/v1/payments/:id/executions
	RecordPaymentExecution(c *gin.Context)
	// GET /api/v1/payments/:id/history
	GetPaymentHistory(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
	auth     auth.Service
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor, authService auth.Service) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
		auth:     authService,
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.executor.Ping(ctx); err != nil {
		logger.WarnCtx(c.Request.Context(), "Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

func (h *handler) IssueNonce(c *gin.Context) {
	nonce, err := h.auth.IssueNonce(c.Request.Context())
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NonceResponse{Nonce: nonce})
}

func (h *handler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.auth.Verify(c.Request.Context(), auth.VerifyInput{
		Address:   req.Address,
		Message:   req.Message,
		Signature: req.Signature,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{
		OK:        true,
		Address:   result.Address,
		Session:   result.Session,
		ExpiresAt: result.ExpiresAt,
	})
}

func (h *handler) GetProfile(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}

	profile, err := h.executor.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to get profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *handler) UpdateProfile(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !bindAndValidate(c, &req) {
		return
	}

	profile, err := h.executor.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *handler) ListVaults(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}

	vaults, err := h.executor.ListVaults(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list vaults")
		return
	}

	c.JSON(http.StatusOK, vaults)
}

func (h *handler) CreateVault(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.CreateVaultRequest
	if !bindAndValidate(c, &req) {
		return
	}

	vault, err := h.executor.CreateVault(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "Failed to create vault")
		return
	}

	c.JSON(http.StatusCreated, vault)
}

func (h *handler) GetVault(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}
	vaultID, ok := pathUUID(c, "id", "vault")
	if !ok {
		return
	}

	vault, err := h.executor.GetVault(c.Request.Context(), userID, vaultID)
	if err != nil {
		respondError(c, err, "Failed to get vault")
		return
	}

	c.JSON(http.StatusOK, vault)
}

func (h *handler) UpdateVault(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}
	vaultID, ok := pathUUID(c, "id", "vault")
	if !ok {
		return
	}

	var req dto.UpdateVaultRequest
	if !bindAndValidate(c, &req) {
		return
	}

	vault, err := h.executor.UpdateVault(c.Request.Context(), userID, vaultID, &req)
	if err != nil {
		respondError(c, err, "Failed to update vault")
		return
	}

	c.JSON(http.StatusOK, vault)
}

func (h *handler) DeleteVault(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}
	vaultID, ok := pathUUID(c, "id", "vault")
	if !ok {
		return
	}

	if err := h.executor.DeleteVault(c.Request.Context(), userID, vaultID); err != nil {
		respondError(c, err, "Failed to delete vault")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) GetVaultByHandle(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}

	handle := c.Param("handle")
	if handle == "" {
		respondBadRequest(c, "Handle is required")
		return
	}

	vault, err := h.executor.GetVaultByHandle(c.Request.Context(), userID, handle)
	if err != nil {
		respondError(c, err, "Failed to get vault")
		return
	}

	c.JSON(http.StatusOK, vault)
}

func (h *handler) ListVaultPayments(c *gin.Context) {
	vaultID, ok := pathUUID(c, "id", "vault")
	if !ok {
		return
	}
	h.listPayments(c, &vaultID)
}

func (h *handler) CreateVaultPayments(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}
	vaultID, ok := pathUUID(c, "id", "vault")
	if !ok {
		return
	}

	var req dto.CreatePaymentsRequest
	if !bindAndValidate(c, &req) {
		return
	}

	payments, err := h.executor.CreatePayments(c.Request.Context(), userID, vaultID, &req)
	if err != nil {
		respondError(c, err, "Failed to create payments")
		return
	}

	c.JSON(http.StatusCreated, payments)
}

func (h *handler) GetVaultSummary(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}
	vaultID, ok := pathUUID(c, "id", "vault")
	if !ok {
		return
	}

	summary, err := h.executor.GetSpendingSummary(c.Request.Context(), userID, vaultID)
	if err != nil {
		respondError(c, err, "Failed to get spending summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *handler) ListSpendingSummaries(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}

	summaries, err := h.executor.ListSpendingSummaries(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list spending summaries")
		return
	}

	c.JSON(http.StatusOK, summaries)
}

func (h *handler) ListPayments(c *gin.Context) {
	h.listPayments(c, nil)
}

// listPayments serves both payment listings; a non-nil vaultID overrides the
// vault_id query parameter
func (h *handler) listPayments(c *gin.Context, vaultID *uuid.UUID) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}

	queryParams, err := ParseListPaymentsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	params, err := queryParams.ToExecutorParams()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if vaultID != nil {
		params.VaultID = vaultID
	}

	payments, err := h.executor.ListPayments(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}

func (h *handler) GetPayment(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}
	paymentID, ok := pathUUID(c, "id", "payment")
	if !ok {
		return
	}

	payment, err := h.executor.GetPayment(c.Request.Context(), userID, paymentID)
	if err != nil {
		respondError(c, err, "Failed to get payment")
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *handler) UpdatePayment(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}
	paymentID, ok := pathUUID(c, "id", "payment")
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}

	payment, err := h.executor.UpdatePayment(c.Request.Context(), userID, paymentID, &req)
	if err != nil {
		respondError(c, err, "Failed to update payment")
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *handler) DeletePayment(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}
	paymentID, ok := pathUUID(c, "id", "payment")
	if !ok {
		return
	}

	if err := h.executor.DeletePayment(c.Request.Context(), userID, paymentID); err != nil {
		respondError(c, err, "Failed to delete payment")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) UpdatePaymentStatus(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}
	paymentID, ok := pathUUID(c, "id", "payment")
	if !ok {
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}

	payment, err := h.executor.UpdatePaymentStatus(c.Request.Context(), userID, paymentID, &req)
	if err != nil {
		respondError(c, err, "Failed to update payment status")
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *handler) RecordPaymentExecution(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}
	paymentID, ok := pathUUID(c, "id", "payment")
	if !ok {
		return
	}

	var req dto.RecordExecutionRequest
	if !bindAndValidate(c, &req) {
		return
	}

	payment, err := h.executor.RecordPaymentExecution(c.Request.Context(), userID, paymentID, &req)
	if err != nil {
		respondError(c, err, "Failed to record payment execution")
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *handler) GetPaymentHistory(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}
	paymentID, ok := pathUUID(c, "id", "payment")
	if !ok {
		return
	}

	history, err := h.executor.GetPaymentHistory(c.Request.Context(), userID, paymentID)
	if err != nil {
		respondError(c, err, "Failed to get payment history")
		return
	}

	c.JSON(http.StatusOK, history)
}

// caller returns the authenticated user. The routes are mounted behind the
// auth middleware, so a missing identity is a routing mistake.
func (h *handler) caller(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication required").Response())
		return uuid.Nil, false
	}
	return userID, true
}

func pathUUID(c *gin.Context, param string, kind string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid %s ID", kind), c.Param(param))
		return uuid.Nil, false
	}
	return id, true
}

type validatable interface {
	Validate() error
}

// bindAndValidate decodes the JSON body into req and validates it
func bindAndValidate(c *gin.Context, req validatable) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return false
	}

	return true
}

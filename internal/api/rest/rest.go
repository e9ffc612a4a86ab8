package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/subvault/subvault-api/internal/api/middleware"
	"github.com/subvault/subvault-api/internal/ratelimit"
)

const (
	// Rate limit policy names
	POLICY_NONCE  = "nonce"
	POLICY_VERIFY = "verify"
)

// SetupRoutes configures all REST API routes. A nil limiter disables rate limiting.
func SetupRoutes(router *gin.Engine, handler Handler, sessions middleware.SessionParser, limiter ratelimit.Limiter) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Sign-in handshake (open, rate limited per client IP)
		v1.GET("/auth/nonce", middleware.RateLimit(limiter, POLICY_NONCE), handler.IssueNonce)
		v1.POST("/auth/verify", middleware.RateLimit(limiter, POLICY_VERIFY), handler.Verify)

		// Everything else requires a session
		authed := v1.Group("", middleware.Auth(sessions))

		authed.GET("/me", handler.GetProfile)
		authed.PATCH("/me", handler.UpdateProfile)

		authed.GET("/vaults", handler.ListVaults)
		authed.POST("/vaults", handler.CreateVault)
		authed.GET("/vaults/:id", handler.GetVault)
		authed.PATCH("/vaults/:id", handler.UpdateVault)
		authed.DELETE("/vaults/:id", handler.DeleteVault)
		authed.GET("/vaults/:id/payments", handler.ListVaultPayments)
		authed.POST("/vaults/:id/payments", handler.CreateVaultPayments)
		authed.GET("/vaults/:id/summary", handler.GetVaultSummary)
		authed.GET("/handles/:handle", handler.GetVaultByHandle)
		authed.GET("/summaries", handler.ListSpendingSummaries)

		authed.GET("/payments", handler.ListPayments)
		authed.GET("/payments/:id", handler.GetPayment)
		authed.PATCH("/payments/:id", handler.UpdatePayment)
		authed.DELETE("/payments/:id", handler.DeletePayment)
		authed.POST("/payments/:id/status", handler.UpdatePaymentStatus)
		authed.POST("/payments/:id/executions", handler.RecordPaymentExecution)
		authed.GET("/payments/:id/history", handler.GetPaymentHistory)
	}
}

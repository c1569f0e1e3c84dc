package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/mma_audit/internal/core/domain"
	portssvc "github.com/SscSPs/mma_audit/internal/core/ports/services"
	"github.com/SscSPs/mma_audit/internal/dto"
	"github.com/SscSPs/mma_audit/internal/middleware"
	"github.com/SscSPs/mma_audit/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// verificationHandler handles integrity token verification requests.
type verificationHandler struct {
	verificationService portssvc.VerificationSvc
	posthogClient       *utils.PosthogClientWrapper
}

// RegisterVerificationRoutes registers the verification endpoint. A nil
// limiter disables rate limiting.
func RegisterVerificationRoutes(rg *gin.RouterGroup, svc portssvc.VerificationSvc, limiterInstance *limiter.Limiter, posthogClient *utils.PosthogClientWrapper) {
	h := &verificationHandler{
		verificationService: svc,
		posthogClient:       posthogClient,
	}

	chain := []gin.HandlerFunc{}
	if limiterInstance != nil {
		chain = append(chain, middleware.RateLimit(limiterInstance))
	}
	chain = append(chain, h.verifyToken)
	rg.POST("/verifications", chain...)
}

// outcomeStatus maps each verification outcome to an HTTP status. A token
// that matches nothing is a normal answer, not an error.
var outcomeStatus = map[domain.VerificationOutcome]int{
	domain.OutcomeVerified:     http.StatusOK,
	domain.OutcomeNotFound:     http.StatusOK,
	domain.OutcomeInvalidToken: http.StatusBadRequest,
	domain.OutcomeLookupFailed: http.StatusInternalServerError,
	domain.OutcomeNotPersisted: http.StatusInternalServerError,
}

// verifyToken godoc
// @Summary Verify an integrity token
// @Description Looks the token up among the caller's ledger records, marks a match verified and records the outcome
// @Tags verifications
// @Accept  json
// @Produce  json
// @Param   request body dto.VerifyTokenRequest true "Token to verify"
// @Success 200 {object} dto.VerificationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} dto.VerificationResponse "Verification could not be completed"
// @Security BearerAuth
// @Router /verifications [post]
func (h *verificationHandler) verifyToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for VerifyToken", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result := h.verificationService.Verify(c.Request.Context(), userID, req.Token)

	middleware.PosthogEvent(c, h.posthogClient, "integrity_token_verified", map[string]any{
		"outcome": string(result.Outcome),
		"matched": result.Matched,
		"audited": result.Audited,
	})

	status, known := outcomeStatus[result.Outcome]
	if !known {
		status = http.StatusInternalServerError
	}
	c.JSON(status, dto.ToVerificationResponse(result))
}

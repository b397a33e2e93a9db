// Package handler provides HTTP handlers for the healthinfo feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"greycare_backend/internal/feature/healthinfo/transport/http/dto"
	"greycare_backend/internal/feature/healthinfo/usecase"
)

// HealthInfoUsecase defines the usecase for health-info submissions.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type HealthInfoUsecase interface {
	Submit(ctx context.Context, in usecase.SubmitInput) error
}

// HealthInfoHandler handles HTTP requests for health-info submissions.
type HealthInfoHandler struct {
	uc HealthInfoUsecase
}

// NewHealthInfoHandler creates a new HealthInfoHandler.
func NewHealthInfoHandler(uc HealthInfoUsecase) *HealthInfoHandler {
	return &HealthInfoHandler{uc: uc}
}

// Submit handles the health-information intake endpoint.
// Missing or malformed fields return 400; persistence failures return 500
// without leaking internal detail. The form has always received a plain 200
// on success, so this stays 200 rather than 201.
func (h *HealthInfoHandler) Submit(c *gin.Context) {
	var req dto.HealthInfoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("health info validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	in := usecase.SubmitInput{
		BMI:                 req.BMI,
		Hypertension:        req.Hypertension,
		SmokingHistory:      req.SmokingHistory,
		BloodGroup:          req.BloodGroup,
		GlucoseLevel:        req.GlucoseLevel,
		HasSeriousDiagnosis: req.HasSeriousDiagnosis,
	}
	if err := h.uc.Submit(c.Request.Context(), in); err != nil {
		slog.Error("health info submission failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("health info submitted", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"message": "health info submitted successfully"})
}

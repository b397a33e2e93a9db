// Package handler provides HTTP handlers for the triage feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"greycare_backend/internal/feature/triage/domain/entity"
	"greycare_backend/internal/feature/triage/transport/http/dto"
)

// TriageUsecase defines the usecase for instant-clinic submissions.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TriageUsecase interface {
	Submit(ctx context.Context, sub *entity.TriageSubmission) error
}

// TriageHandler handles HTTP requests for instant-clinic submissions.
type TriageHandler struct {
	uc TriageUsecase
}

// NewTriageHandler creates a new TriageHandler.
func NewTriageHandler(uc TriageUsecase) *TriageHandler {
	return &TriageHandler{uc: uc}
}

// Submit handles the instant-clinic triage endpoint.
// An unknown condition or missing body returns 400; persistence failures
// return 500 without leaking internal detail; success returns 201.
func (h *TriageHandler) Submit(c *gin.Context) {
	var req dto.TriageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("triage validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sub := &entity.TriageSubmission{
		Condition:         req.Condition,
		HeartRate:         req.HeartRate,
		BloodPressure:     req.BloodPressure,
		HighBP:            req.HighBP,
		Stroke:            req.Stroke,
		HighCholesterol:   req.HighCholesterol,
		CholesterolCheck:  req.CholesterolCheck,
		PhysicalActivity:  req.PhysicalActivity,
		HasDiabetes:       req.HasDiabetes,
		HbA1cLevel:        req.HbA1cLevel,
		BloodGlucoseLevel: req.BloodGlucoseLevel,
	}
	if err := h.uc.Submit(c.Request.Context(), sub); err != nil {
		slog.Error("triage submission failed", "error", err, "condition", req.Condition, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("triage submitted", "condition", req.Condition, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"message": "triage submitted successfully"})
}

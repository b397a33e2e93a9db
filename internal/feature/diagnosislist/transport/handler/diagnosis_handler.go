package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"greycare_backend/internal/feature/diagnosislist/domain/entity"
	"greycare_backend/internal/feature/diagnosislist/transport/http/dto"
)

// DiagnosisUsecase は診断カタログに関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type DiagnosisUsecase interface {
	ListDiagnoses(ctx context.Context) ([]entity.Diagnosis, error)
}

// DiagnosisHandler は診断カタログに関するHTTPリクエストを処理します。
type DiagnosisHandler struct {
	uc DiagnosisUsecase
}

// NewDiagnosisHandler は新しい DiagnosisHandler を作成します。
func NewDiagnosisHandler(uc DiagnosisUsecase) *DiagnosisHandler {
	return &DiagnosisHandler{uc: uc}
}

// List は診断カタログの一覧を取得するAPIです。
// Usecaseを呼び出して一覧を取得し、DTOに変換してJSONレスポンスとして返します。
// Usecaseでエラーが発生した場合は500 Internal Server Errorを返します。
func (h *DiagnosisHandler) List(c *gin.Context) {
	diagnoses, err := h.uc.ListDiagnoses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	out := make([]dto.DiagnosisItem, 0, len(diagnoses))
	for _, d := range diagnoses {
		out = append(out, dto.DiagnosisItem{Code: d.Code, Name: d.Name})
	}
	c.JSON(http.StatusOK, out)
}

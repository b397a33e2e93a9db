package router

import (
	diagnosishandler "greycare_backend/internal/feature/diagnosislist/transport/handler"
	healthinfohandler "greycare_backend/internal/feature/healthinfo/transport/handler"
	identityhandler "greycare_backend/internal/feature/identity/transport/handler"
	triagehandler "greycare_backend/internal/feature/triage/transport/handler"
	"greycare_backend/internal/interface/handler"

	"github.com/gin-gonic/gin"
)

func NewRouter(auth *identityhandler.AuthHandler, healthInfo *healthinfohandler.HealthInfoHandler,
	diagnosis *diagnosishandler.DiagnosisHandler, triage *triagehandler.TriageHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規アカウント登録
	r.POST("/signup", auth.Signup)
	// ログイン
	r.POST("/login", auth.Login)
	// 健康情報フォームの送信
	r.POST("/health-info", healthInfo.Submit)
	// 健康情報フォームが参照する重篤既往歴カタログ
	r.GET("/diagnosis-list", diagnosis.List)
	// インスタントクリニックのトリアージ送信
	r.POST("/instant-clinic", triage.Submit)

	return r
}

package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"greycare_backend/internal/app/router"
	diagnosisadapters "greycare_backend/internal/feature/diagnosislist/adapters"
	diagnosishandler "greycare_backend/internal/feature/diagnosislist/transport/handler"
	diagnosisusecase "greycare_backend/internal/feature/diagnosislist/usecase"
	healthinfoadapters "greycare_backend/internal/feature/healthinfo/adapters"
	healthinfohandler "greycare_backend/internal/feature/healthinfo/transport/handler"
	healthinfousecase "greycare_backend/internal/feature/healthinfo/usecase"
	identityadapters "greycare_backend/internal/feature/identity/adapters"
	identityhandler "greycare_backend/internal/feature/identity/transport/handler"
	identityusecase "greycare_backend/internal/feature/identity/usecase"
	triageadapters "greycare_backend/internal/feature/triage/adapters"
	triagehandler "greycare_backend/internal/feature/triage/transport/handler"
	triageusecase "greycare_backend/internal/feature/triage/usecase"
	"greycare_backend/internal/platform/cache"
	platformdb "greycare_backend/internal/platform/db"
	platformredis "greycare_backend/internal/platform/redis"
)

func main() {
	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := identityadapters.NewUserRepository(db)
	healthInfoRepo := healthinfoadapters.NewHealthInfoRepository(db)
	diagnosisRepo := diagnosisadapters.NewDiagnosisRepository(db)
	triageRepo := triageadapters.NewTriageRepository(db)

	// 診断カタログはRedisキャッシュでラップ（マイグレーション時にしか変わらない）
	cachedDiagnosisRepo := cache.NewCachingDiagnosisRepository(rdb, time.Hour, diagnosisRepo, "diagnoses")

	// Usecase
	authUC := identityusecase.NewAuthUsecase(userRepo)
	healthInfoUC := healthinfousecase.NewHealthInfoUsecase(healthInfoRepo)
	diagnosisUC := diagnosisusecase.NewDiagnosisUsecase(cachedDiagnosisRepo)
	triageUC := triageusecase.NewTriageUsecase(triageRepo)

	// Handler
	authH := identityhandler.NewAuthHandler(authUC)
	healthInfoH := healthinfohandler.NewHealthInfoHandler(healthInfoUC)
	diagnosisH := diagnosishandler.NewDiagnosisHandler(diagnosisUC)
	triageH := triagehandler.NewTriageHandler(triageUC)

	// ルータ生成
	router := router.NewRouter(authH, healthInfoH, diagnosisH, triageH)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}

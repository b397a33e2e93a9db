package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	diagnosisentity "greycare_backend/internal/feature/diagnosislist/domain/entity"
	healthinfoentity "greycare_backend/internal/feature/healthinfo/domain/entity"
	identityentity "greycare_backend/internal/feature/identity/domain/entity"
	triageentity "greycare_backend/internal/feature/triage/domain/entity"
)

// Config はデータベース接続設定を保持します。
type Config struct {
	Driver   string // "mysql"（デフォルト）または "postgres"
	User     string
	Password string
	Name     string
	Host     string
	Port     string
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "mysql"
	}
	return Config{
		Driver:   driver,
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
	}
}

// BuildDSN は設定からドライバーに応じたDSN文字列を生成します。
func BuildDSN(cfg Config) string {
	if cfg.Driver == "postgres" {
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Local",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// Opener はDSNからgorm.DBを開く関数です。テストで差し替え可能にします。
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry はタイムアウトまで接続をリトライします。
// 起動直後はDBコンテナが先に上がっていないことがあるためです。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// openerFor はドライバー名に応じたOpenerを返します。
func openerFor(driver string) Opener {
	if driver == "postgres" {
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		}
	}
	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gmysql.Open(dsn), &gorm.Config{})
	}
}

// OpenDB は環境変数の設定でデータベース接続を開きます。
// RUN_MIGRATIONS=true の場合はマイグレーションとカタログのシードを実行します。
func OpenDB() *gorm.DB {
	cfg := LoadConfigFromEnv()

	db, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, openerFor(cfg.Driver))
	if err != nil {
		log.Fatalf("%v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&identityentity.User{},
			&healthinfoentity.HealthInfo{},
			&diagnosisentity.Diagnosis{},
			&triageentity.TriageSubmission{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
		if err := seedDiagnoses(db); err != nil {
			log.Fatalf("failed to seed diagnoses: %v", err)
		}
	}

	return db
}

// defaultDiagnoses は重篤既往歴カタログの初期データです。
var defaultDiagnoses = []diagnosisentity.Diagnosis{
	{Code: "diabetes", Name: "Diabetes", SortKey: 10},
	{Code: "hypertension", Name: "Hypertension", SortKey: 20},
	{Code: "heart-disease", Name: "Heart Disease", SortKey: 30},
	{Code: "stroke", Name: "Stroke", SortKey: 40},
	{Code: "copd", Name: "Chronic Obstructive Pulmonary Disease", SortKey: 50},
	{Code: "kidney-disease", Name: "Chronic Kidney Disease", SortKey: 60},
	{Code: "cancer", Name: "Cancer", SortKey: 70},
	{Code: "dementia", Name: "Dementia", SortKey: 80},
}

// seedDiagnoses はカタログの初期データを冪等に投入します。
func seedDiagnoses(db *gorm.DB) error {
	for i := range defaultDiagnoses {
		d := defaultDiagnoses[i]
		if err := db.Where("code = ?", d.Code).FirstOrCreate(&d).Error; err != nil {
			return err
		}
	}
	return nil
}

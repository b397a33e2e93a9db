// Package adapters はidentityフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"greycare_backend/internal/feature/identity/domain/entity"
	"greycare_backend/internal/feature/identity/usecase"
)

// userSQL はUserRepositoryインターフェースのGORM実装です。
// MySQLとPostgreSQLの両方（テストではSQLite）で動作します。
type userSQL struct {
	db *gorm.DB
}

// userSQLがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userSQL)(nil)

// NewUserRepository は指定されたgorm.DB接続でuserSQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserRepository(db *gorm.DB) *userSQL {
	return &userSQL{db: db}
}

// Create はアカウントをデータベースに追加します。
// emailのユニーク制約に違反した場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userSQL) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでアカウントを取得します。
// アカウントが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userSQL) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByPhone は電話番号でアカウントを取得します。
// アカウントが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userSQL) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// isDuplicateKey はユニーク制約違反をドライバ横断で判定します。
func isDuplicateKey(err error) bool {
	// MySQLエラー1062: ユニークキーの重複エントリ
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	// PostgreSQL SQLSTATE 23505: unique_violation
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// SQLite（テスト用インメモリDB）は専用のエラー型を公開しないため文字列で判定
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

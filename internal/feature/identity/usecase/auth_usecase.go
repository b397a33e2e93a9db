package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"greycare_backend/internal/feature/identity/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// dbTimeout は1回の永続化呼び出しに許容する最大時間です。
// DBが停止してもリクエストが無期限にぶら下がらないようにします。
const dbTimeout = 5 * time.Second

// UserRepository はアカウントエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいアカウントをストレージに永続化します。
	// 同じメールアドレスのアカウントが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するアカウントを取得します。
	// アカウントが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByPhone は指定された電話番号に一致するアカウントを取得します。
	// アカウントが存在しない場合、ErrUserNotFoundを返します。
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users UserRepository
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository) *authUsecase {
	return &authUsecase{users: users}
}

// Signup は全フィールドを検証し、ハッシュ化されたパスワードで新規アカウントを登録します。
// 既存メールアドレスの事前チェックは親切なエラーを早く返すためのもので、
// 同時リクエストの競合に対する本当の防御はDBのユニーク制約（リポジトリが
// ErrEmailAlreadyExistsに変換）です。
func (u *authUsecase) Signup(ctx context.Context, in SignupInput) error {
	if err := validateSignup(in); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:          in.Name,
		Phone:         in.Phone,
		Age:           in.Age,
		Gender:        in.Gender,
		Email:         in.Email,
		GuardianEmail: in.GuardianEmail,
		GuardianPhone: in.GuardianPhone,
		Password:      string(hashed),
	}
	return u.users.Create(ctx, user)
}

// Login はアカウントを認証し、成功時にアカウントを返します。
// 正本の識別子はemailで、phoneは互換用エイリアスです。両方指定された場合は
// emailを優先します。アカウント未検出はErrUserNotFound、パスワード不一致は
// ErrInvalidCredentialsを返します。
func (u *authUsecase) Login(ctx context.Context, email, phone, password string) (*entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	var (
		user *entity.User
		err  error
	)
	switch {
	case email != "":
		user, err = u.users.FindByEmail(ctx, email)
	case phone != "":
		user, err = u.users.FindByPhone(ctx, phone)
	default:
		return nil, &ValidationError{Field: "email", Message: "email or phone is required"}
	}
	if err != nil {
		return nil, err
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

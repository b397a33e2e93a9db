// Package handler はidentityフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"greycare_backend/internal/feature/identity/domain/entity"
	"greycare_backend/internal/feature/identity/transport/http/dto"
	"greycare_backend/internal/feature/identity/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は入力を検証し、新規アカウントを登録します。
	Signup(ctx context.Context, in usecase.SignupInput) error
	// Login はアカウントを認証し、成功時にアカウントを返します。
	Login(ctx context.Context, email, phone, password string) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup はアカウント登録APIエンドポイントを処理します。
// - リクエストJSONをSignupReqにバインド
// - フィールド欠落・フォーマット違反・メール重複時は400を返却
// - 永続化層の障害時は詳細を隠して500を返却
// - 成功時は201を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	in := usecase.SignupInput{
		Name:          req.Name,
		Phone:         req.Phone,
		Age:           req.Age,
		Gender:        req.Gender,
		Email:         req.Email,
		GuardianEmail: req.GuardianEmail,
		GuardianPhone: req.GuardianPhone,
		Password:      req.Password,
	}
	if err := h.auth.Signup(c.Request.Context(), in); err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.As(err, &vErr):
			slog.Warn("signup validation failed", "field", vErr.Field, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: vErr.Error()})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("signup rejected: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "user already exists"})
		default:
			// 内部障害の詳細はクライアントに公開しない
			slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "user registered successfully"})
}

// Login はログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - アカウント未検出時は404、パスワード不一致時は401を返却
// - 成功時は非機密フィールドのみを含めて200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Phone, req.Password)
	if err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: vErr.Error()})
		case errors.Is(err, usecase.ErrUserNotFound):
			slog.Warn("login failed: user not found", "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			slog.Warn("login failed: invalid credentials", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid credentials"})
		default:
			slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "login successful",
		User: dto.UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Phone: user.Phone,
			Email: user.Email,
		},
	})
}

// Package dto はidentityフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
// 識別子の正本はemailで、phoneは旧クライアント互換のエイリアスです。
// 両方が指定された場合はemailが優先されます。どちらかは必須です。
type LoginReq struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// RegisterReq は/api/auth/registerエンドポイントのリクエストボディを表します。
// 必須フィールド、メール形式、パスワード長のバリデーションを含みます。
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,max=255"`
	Password string `json:"password" binding:"required,min=8,max=255"`
}

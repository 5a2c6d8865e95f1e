// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeLoginFailed        = "LOGIN_FAILED"
	ErrCodeTokenNotProvided   = "TOKEN_NOT_PROVIDED"
	ErrCodeInvalidToken       = "INVALID_TOKEN"
	ErrCodeUnknownTokenUser   = "UNKNOWN_TOKEN_USER"
)

// NewMissingFieldError は必須フィールド欠落エラーを生成する。
func NewMissingFieldError(fields string) *APIError {
	return &APIError{
		Code:     ErrCodeMissingField,
		Message:  fmt.Sprintf("必須項目が不足しています: %s", fields),
		Category: "validation",
		Action:   "不足している項目を指定して再度お試しください。",
	}
}

// NewLoginFailedError はログイン失敗エラーを生成する。
// ユーザー名不一致とパスワード不一致を区別しない（列挙攻撃対策）。
func NewLoginFailedError() *APIError {
	return &APIError{
		Code:     ErrCodeLoginFailed,
		Message:  "ユーザー名またはパスワードが正しくありません。",
		Category: "auth",
		Action:   "認証情報を確認して再度ログインしてください。",
	}
}

// NewTokenNotProvidedError は認証トークン未提示エラーを生成する。
func NewTokenNotProvidedError() *APIError {
	return &APIError{
		Code:     ErrCodeTokenNotProvided,
		Message:  "認証トークンが提供されていません。",
		Category: "auth",
		Action:   "Authorizationヘッダーにベアラートークンを指定してください。",
	}
}

// NewInvalidTokenError は無効なトークンエラーを生成する。
func NewInvalidTokenError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidToken,
		Message:  "無効なトークンです。",
		Category: "auth",
		Action:   "再度ログインしてトークンを取得し直してください。",
	}
}

// NewUnknownTokenUserError はトークンは解読できたがユーザーが存在しない場合のエラーを生成する。
func NewUnknownTokenUserError() *APIError {
	return &APIError{
		Code:     ErrCodeUnknownTokenUser,
		Message:  "無効なトークンです。ユーザーが存在しません。",
		Category: "auth",
		Action:   "再度ログインしてトークンを取得し直してください。",
	}
}

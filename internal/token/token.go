// Package token はデモ用ベアラートークンの発行と検証を提供する。
//
// トークンは固定マーカーにユーザーIDを連結しただけの可逆エンコードであり、
// 暗号学的な保証は一切ない（自明に偽造可能）。本番利用では署名付き・
// 有効期限付きトークンへの置き換えが必須。保持する契約は
// 「発行したトークンを解決すると元のユーザーIDに戻る」ことのみ。
package token

import (
	"errors"
	"strings"

	"github.com/hitoshi/assessman/internal/model"
)

// markerPrefix はトークンの固定マーカー。
const markerPrefix = "mock-token-for-"

// ErrInvalidToken はマーカーを持たないトークンに対して返される。
var ErrInvalidToken = errors.New("invalid token: marker prefix missing")

// Issuer はトークンの発行と解決を行う。
// secretは署名方式へ移行する際のプレースホルダーで、現方式では未使用。
type Issuer struct {
	secret string
}

// NewIssuer はIssuerを生成する。
func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: secret}
}

// Issue はユーザーIDを決定的にエンコードしたトークンを返す。
func (i *Issuer) Issue(user *model.User) string {
	return markerPrefix + user.ID
}

// Resolve はトークンからユーザーID候補を取り出す。
// マーカーで始まらないトークンにはErrInvalidTokenを返す。
// 取り出したIDのユーザーが実在するかの確認は呼び出し側（アクセスガード）の責務。
func (i *Issuer) Resolve(tok string) (string, error) {
	if !strings.HasPrefix(tok, markerPrefix) {
		return "", ErrInvalidToken
	}
	return strings.TrimPrefix(tok, markerPrefix), nil
}

// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hitoshi/assessman/internal/model"
)

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// userContextKey はリクエストコンテキストに認証済みユーザーを格納するためのキー。
var userContextKey = contextKey("auth_user")

// TokenResolver はトークンからユーザーID候補を取り出すインターフェース。
// token.Issuerの部分集合として定義する。
type TokenResolver interface {
	Resolve(tok string) (string, error)
}

// UserFinder はユーザーの検索に必要なインターフェース。
// repository.UserRepositoryの部分集合として定義する。
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// NewAuthMiddleware はAuthorizationヘッダーのベアラートークンを検証する
// ミドルウェアを返す。検証は次の順で行い、各失敗は即時終了となる。
//
//  1. ベアラーセグメントがない → 401 Unauthorized
//  2. トークンが解決できない → 403 Forbidden
//  3. 解決したIDのユーザーが存在しない → 403 Forbidden
//  4. 成功 → 認証済みユーザーをリクエストコンテキストに注入して続行
func NewAuthMiddleware(resolver TokenResolver, userFinder UserFinder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Authorizationヘッダーからベアラーセグメントを取得
			tok := bearerToken(r.Header.Get("Authorization"))
			if tok == "" {
				slog.Warn("token not provided",
					slog.String("path", r.URL.Path),
				)
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewTokenNotProvidedError())
				return
			}

			// 2. トークンの解決
			userID, err := resolver.Resolve(tok)
			if err != nil {
				slog.Warn("invalid token format",
					slog.String("path", r.URL.Path),
				)
				WriteErrorResponse(w, http.StatusForbidden, model.NewInvalidTokenError())
				return
			}

			// 3. ユーザーの実在確認
			user, err := userFinder.FindByID(r.Context(), userID)
			if err != nil {
				slog.Error("failed to find user for token",
					slog.String("error", err.Error()),
				)
				WriteErrorResponse(w, http.StatusForbidden, model.NewUnknownTokenUserError())
				return
			}
			if user == nil {
				slog.Warn("token resolved to unknown user",
					slog.String("path", r.URL.Path),
				)
				WriteErrorResponse(w, http.StatusForbidden, model.NewUnknownTokenUserError())
				return
			}

			// 4. 認証済みユーザーをコンテキストに注入
			ctx := context.WithValue(r.Context(), userContextKey, user)
			setLogUserID(ctx, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken はAuthorizationヘッダー値からトークンセグメントを取り出す。
// ヘッダーが空、またはスキームに続くセグメントがない場合は空文字列を返す。
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// ErrUserNotInContext は認証ミドルウェアを通過していないコンテキストを示す。
var ErrUserNotInContext = errors.New("authenticated user not found in context")

// UserFromContext はリクエストコンテキストから認証済みユーザーを取得する。
// 認証ミドルウェアを通過したリクエストでのみ有効。
func UserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(userContextKey).(*model.User)
	if !ok || user == nil {
		return nil, fmt.Errorf("%w", ErrUserNotInContext)
	}
	return user, nil
}

// ContextWithUser はコンテキストに認証済みユーザーを注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

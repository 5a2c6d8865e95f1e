package config

import (
	"os"
	"strconv"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
// デモ用途のため必須環境変数はなく、すべてデフォルト値を持つ。
type Config struct {
	// Server
	ServerPort string

	// Token
	// TokenSecret は署名付きトークンへ移行する際のためのプレースホルダー。
	// 現在のモックトークン方式では使用しない。
	TokenSecret string

	// Greeting
	GreetingMessage string

	// Rate Limit
	RateLimitGeneral int
	RateLimitSubmit  int

	// CORS
	CORSAllowedOrigin string
}

// Load は環境変数からConfigを読み込む。
// SERVER_PORTが未設定の場合はPaaS互換のためPORTも参照する。
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.ServerPort = getEnvString("SERVER_PORT", getEnvString("PORT", "8080"))
	cfg.TokenSecret = getEnvString("TOKEN_SECRET", "your-very-secret-key-for-dev")
	cfg.GreetingMessage = getEnvString("GREETING_MESSAGE", "画像評価システムAPIへようこそ！（バックエンド稼働中）")
	cfg.RateLimitGeneral = getEnvInt("RATE_LIMIT_GENERAL", 120)
	cfg.RateLimitSubmit = getEnvInt("RATE_LIMIT_SUBMIT", 30)
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "*")

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

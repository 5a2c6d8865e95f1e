package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/assessman/internal/metrics"
	"github.com/hitoshi/assessman/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	TokenResolver     middleware.TokenResolver
	UserFinder        middleware.UserFinder
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	Logger            *slog.Logger

	// メトリクス（nil可: テストでは省略できる）
	MetricsRecorder middleware.HTTPMetricsRecorder
	Gatherer        prometheus.Gatherer

	// グリーティング
	GreetingMessage string

	// サービス
	AuthService       AuthServiceInterface
	ImageService      ImageServiceInterface
	AssessmentService AssessmentServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → SecurityHeaders → CORS → Metrics → Logging → (保護ルートのみ) Auth → RateLimit
//
// グリーティング（GET /api）とログイン（POST /api/auth/login）、
// /health、/metrics は認証ミドルウェアの外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	if deps.MetricsRecorder != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.MetricsRecorder))
	}
	if deps.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	}

	systemHandler := NewSystemHandler(deps.GreetingMessage)
	authHandler := NewAuthHandler(deps.AuthService)
	imageHandler := NewImageHandler(deps.ImageService)
	assessmentHandler := NewAssessmentHandler(deps.AssessmentService)

	// --- 認証不要のルート ---

	r.Get("/api", systemHandler.Greeting)
	r.Post("/api/auth/login", authHandler.Login)
	r.Get("/health", systemHandler.Health)
	if deps.Gatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.Gatherer))
	}

	// --- 認証が必要なルート ---
	// ミドルウェアスタック: Auth → RateLimit(General)
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(deps.TokenResolver, deps.UserFinder))
		r.Use(deps.RateLimiter.GeneralMiddleware())

		// 画像割当
		r.Get("/api/images/my-images", imageHandler.MyImages)

		// 評価提出（提出専用レート制限を追加）
		r.With(deps.RateLimiter.SubmitMiddleware()).Post("/api/assessments", assessmentHandler.Submit)
	})

	return r
}

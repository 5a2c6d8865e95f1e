package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/hitoshi/assessman/internal/assessment"
	"github.com/hitoshi/assessman/internal/auth"
	"github.com/hitoshi/assessman/internal/config"
	"github.com/hitoshi/assessman/internal/handler"
	"github.com/hitoshi/assessman/internal/image"
	"github.com/hitoshi/assessman/internal/logger"
	"github.com/hitoshi/assessman/internal/metrics"
	"github.com/hitoshi/assessman/internal/middleware"
	"github.com/hitoshi/assessman/internal/repository"
	"github.com/hitoshi/assessman/internal/security"
	"github.com/hitoshi/assessman/internal/token"
)

// Init はアプリケーションの初期化を行う。
// 環境変数からConfigを読み込み、JSON構造化ログをセットアップする。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(w)

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで起動する。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck は軽量サブコマンドのため、フル初期化をスキップする
	if cmd == CommandHealthcheck {
		return runHealthcheck(healthcheckPort())
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
	)

	return runServe(cfg)
}

// buildRouter は全依存関係をワイヤリングしてルーターを構築する。
// ストアはインメモリのため、呼び出しごとにシードデータから初期状態を再構築する。
// 返されたRateLimiterは呼び出し側がStopする。
func buildRouter(cfg *config.Config) (http.Handler, *middleware.RateLimiter) {
	// 1. リポジトリの初期化（シードデータ投入）
	userRepo := repository.NewMemoryUserRepo(repository.SeedUsers())
	imageRepo := repository.NewMemoryImageRepo(repository.SeedImages(), repository.SeedAssignments())
	assessmentRepo := repository.NewMemoryAssessmentRepo()

	slog.Info("in-memory store seeded",
		slog.Int("users", len(repository.SeedUsers())),
		slog.Int("images", len(repository.SeedImages())),
		slog.Int("assignments", len(repository.SeedAssignments())),
	)

	// 2. トークン発行器とメトリクスの初期化
	// メトリクスレジストリは呼び出しごとに独立させる
	issuer := token.NewIssuer(cfg.TokenSecret)
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// 3. ドメインサービスの初期化
	sanitizer := security.NewTextSanitizer()
	authService := auth.NewService(userRepo, issuer, collector)
	imageService := image.NewService(imageRepo)
	assessmentService := assessment.NewService(assessmentRepo, sanitizer, collector)

	// 4. レート制限の構築（configはreq/min単位、rate.Limitはreq/sec単位）
	rateLimiterCfg := middleware.DefaultRateLimiterConfig()
	rateLimiterCfg.GeneralRate = rate.Limit(float64(cfg.RateLimitGeneral) / 60.0)
	rateLimiterCfg.GeneralBurst = cfg.RateLimitGeneral
	rateLimiterCfg.SubmitRate = rate.Limit(float64(cfg.RateLimitSubmit) / 60.0)
	rateLimiterCfg.SubmitBurst = cfg.RateLimitSubmit
	rateLimiter := middleware.NewRateLimiter(rateLimiterCfg)

	// 5. ルーターの構築
	deps := &handler.RouterDeps{
		TokenResolver:     issuer,
		UserFinder:        userRepo,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		RateLimiter:       rateLimiter,
		Logger:            slog.Default(),

		MetricsRecorder: collector,
		Gatherer:        registry,

		GreetingMessage: cfg.GreetingMessage,

		AuthService:       authService,
		ImageService:      imageService,
		AssessmentService: assessmentService,
	}

	return handler.NewRouter(deps), rateLimiter
}

// runServe はAPIサーバーモードで起動する。
// SIGINTまたはSIGTERMシグナルを受信するとグレースフルシャットダウンを行う。
func runServe(cfg *config.Config) error {
	router, rateLimiter := buildRouter(cfg)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// グレースフルシャットダウンのためのシグナルハンドリング
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("API server starting",
			slog.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server listen error", slog.String("error", err.Error()))
		}
	}()

	<-stop
	slog.Info("shutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("API server stopped gracefully")
	return nil
}

// healthcheckPort はヘルスチェック対象のポートを決定する。
// サーバー側のconfig.Loadと同じ優先順位（SERVER_PORT → PORT → 8080）で解決する。
func healthcheckPort() string {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		return port
	}
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

// runHealthcheck はヘルスチェックを実行する。
// distroless環境でのDockerヘルスチェック用サブコマンド。
// /health エンドポイントにHTTPリクエストを送り、結果を返す。
func runHealthcheck(port string) error {
	url := fmt.Sprintf("http://localhost:%s/health", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

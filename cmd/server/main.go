package main

import (
	"log"
	"log/slog"

	"todo_backend/internal/app/router"
	authadapters "todo_backend/internal/feature/auth/adapters"
	authhandler "todo_backend/internal/feature/auth/transport/handler"
	authusecase "todo_backend/internal/feature/auth/usecase"
	taskadapters "todo_backend/internal/feature/tasks/adapters"
	taskhandler "todo_backend/internal/feature/tasks/transport/handler"
	taskusecase "todo_backend/internal/feature/tasks/usecase"
	"todo_backend/internal/platform/config"
	infradb "todo_backend/internal/platform/db"
	jwtmw "todo_backend/internal/platform/jwt"
	"todo_backend/internal/shared/ratelimiter"
)

func main() {
	// 設定は起動時に一度だけ読み込み、以降は参照渡しする
	cfg := config.Load()

	// JWT_SECRETチェック（開発用フォールバックのまま本番に出さないこと）
	if cfg.Auth.JWTSecret == config.DefaultDevSecret {
		slog.Warn("JWT_SECRET is not set, using the development fallback. Set a strong secret in production.")
	}

	// db
	db, err := infradb.Open(cfg.Database)
	if err != nil {
		log.Fatal(err)
	}

	// Token issuer / verifier
	tokens := jwtmw.NewGenerator(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	taskRepo := taskadapters.NewTaskRepository(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	tasksUC := taskusecase.NewTasksUsecase(taskRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	taskH := taskhandler.NewTaskHandler(tasksUC)

	// 認証エンドポイント用レートリミッター
	authLimiter := ratelimiter.NewFixedWindow(cfg.Auth.RateLimit, cfg.Auth.RateWindow)

	// ルータ生成
	r := router.NewRouter(cfg.Server.CORSOrigins, tokens, authLimiter, authH, taskH)

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}

package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "todo_backend/internal/feature/auth/transport/handler"
	taskhandler "todo_backend/internal/feature/tasks/transport/handler"
	"todo_backend/internal/platform/http/handler"
	jwtmw "todo_backend/internal/platform/jwt"
	"todo_backend/internal/shared/ratelimiter"
)

// NewRouter はすべてのルートを構成したGinエンジンを返します。
// 認証必須のルートは例外なくAuthRequiredミドルウェアを通過します。
func NewRouter(corsOrigins []string, verifier jwtmw.Verifier, authLimiter ratelimiter.Limiter,
	authHandler *authhandler.AuthHandler, taskHandler *taskhandler.TaskHandler) *gin.Engine {
	r := gin.Default()

	// ブラウザのフロントエンドからのアクセスを許可する
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 登録・ログインは総当たり対策のレートリミッターを通す
	public := r.Group("/api/auth")
	public.Use(ratelimiter.Middleware(authLimiter))
	{
		public.POST("/register", authHandler.Register)
		public.POST("/login", authHandler.Login)
	}

	// 認証必須のルート
	// AuthRequiredミドルウェアがトークンを検証し、ユーザーIDをコンテキストに設定する
	auth := r.Group("/api")
	auth.Use(jwtmw.AuthRequired(verifier))
	{
		auth.GET("/auth/me", authHandler.Me)

		auth.POST("/tasks", taskHandler.Create)
		auth.GET("/tasks", taskHandler.List)
		auth.GET("/tasks/:id", taskHandler.Get)
		auth.PATCH("/tasks/:id", taskHandler.Update)
		auth.DELETE("/tasks/:id", taskHandler.Delete)
	}

	return r
}

// Package ratelimiter は認証エンドポイントへの総当たり攻撃を抑止する固定ウィンドウ方式のリミッターを提供します。
package ratelimiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Limiter は、キーごとの操作頻度を制限するインターフェースです。
type Limiter interface {
	Allow(key string) bool
}

// window は1つのキーの現在ウィンドウ内のカウントを保持します。
type window struct {
	count   int
	resetAt time.Time
}

// FixedWindow は、キー（クライアントIP等）ごとに固定ウィンドウでリクエスト数を制限します。
// 上限超過時は待機せず即座に拒否します。
type FixedWindow struct {
	mu       sync.Mutex
	limit    int           // ウィンドウあたりの上限
	interval time.Duration // どの単位でリセットするか
	windows  map[string]*window
}

var _ Limiter = (*FixedWindow)(nil)

// NewFixedWindow は新しいFixedWindowのインスタンスを生成します。
func NewFixedWindow(limit int, interval time.Duration) *FixedWindow {
	return &FixedWindow{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
	}
}

// Allow はキーの現在ウィンドウに空きがあるかを判定し、カウントを進めます。
// limitが0以下の場合リミッターは無効で、常にtrueを返します。
func (rl *FixedWindow) Allow(key string) bool {
	if rl.limit <= 0 {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]
	// interval を過ぎたらカウントリセット
	if !ok || now.After(w.resetAt) {
		rl.windows[key] = &window{count: 1, resetAt: now.Add(rl.interval)}
		return true
	}

	w.count++
	return w.count <= rl.limit
}

// Middleware は上限超過のリクエストを429で拒否するGinミドルウェアを返します。
// キーにはクライアントIPを使用します。
func Middleware(rl Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

// Package db はGORMによるリレーショナルストアへの接続を管理します。
package db

import (
	"fmt"
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "todo_backend/internal/feature/auth/domain/entity"
	taskentity "todo_backend/internal/feature/tasks/domain/entity"
	"todo_backend/internal/platform/config"
)

// Open は設定に応じてSQLiteまたはPostgresの接続を確立します。
// Postgresは起動直後にまだ受け付け可能でない場合があるため、60秒を上限にリトライします。
// タイムスタンプはドライバに依存せずUTCで記録します。
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		// 重複キー等のドライバ固有エラーをgormの共通エラーに変換する
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	dialector := dialectorFor(cfg)

	var (
		conn *gorm.DB
		err  error
	)
	deadline := time.Now().Add(60 * time.Second)
	for {
		conn, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after 60s: %w", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		// マイグレーション（User, Task）
		if err := conn.AutoMigrate(
			&authentity.User{},
			&taskentity.Task{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return conn, nil
}

// dialectorFor はDATABASE_URLのスキームからGORMダイアレクタを選択します。
func dialectorFor(cfg config.DatabaseConfig) gorm.Dialector {
	if cfg.IsSQLite() {
		return gsqlite.Open(cfg.SQLitePath())
	}
	return gpostgres.Open(cfg.URL)
}

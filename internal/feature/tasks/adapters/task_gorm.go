// Package adapters はtasksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo_backend/internal/feature/tasks/domain/entity"
	"todo_backend/internal/feature/tasks/usecase"
)

// taskGorm はTaskRepositoryインターフェースのGORM実装です。
// すべてのクエリは所有者IDを述語に含めるため、他ユーザーの行は存在しないのと
// 同じに見えます。これが所有権の唯一の強制メカニズムです。
type taskGorm struct {
	db *gorm.DB
}

// taskGormがTaskRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TaskRepository = (*taskGorm)(nil)

// NewTaskRepository は指定されたgorm.DB接続でtaskGormの新しいインスタンスを生成します。
func NewTaskRepository(db *gorm.DB) *taskGorm {
	return &taskGorm{db: db}
}

// Create はタスクをデータベースに追加します。
// IDとタイムスタンプはgormが設定します。
func (r *taskGorm) Create(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FindByID はIDと所有者の両方に一致するタスクを取得します。
// 一致する行がない場合、usecase.ErrTaskNotFoundを返します。
func (r *taskGorm) FindByID(ctx context.Context, userID string, id uint) (*entity.Task, error) {
	var t entity.Task
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List は所有者のタスクをフィルタと並び順を適用して返します。
// 並び順はどのキーでも決定的になるよう、常に作成時刻とIDで二次ソートします。
func (r *taskGorm) List(ctx context.Context, userID string, filter usecase.ListFilter) ([]entity.Task, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	// ステータスフィルタ（未知の値はフィルタなし）
	switch filter.Status {
	case usecase.StatusPending:
		query = query.Where("completed = ?", false)
	case usecase.StatusCompleted:
		query = query.Where("completed = ?", true)
	}

	// 並び順
	switch filter.Sort {
	case usecase.SortTitle:
		query = query.Order("title ASC").Order("created_at DESC").Order("id DESC")
	case usecase.SortCompleted:
		// 未完了を先に、同グループ内は新しい順
		query = query.Order("completed ASC").Order("created_at DESC").Order("id DESC")
	default:
		// デフォルトは作成時刻の新しい順
		query = query.Order("created_at DESC").Order("id DESC")
	}

	var tasks []entity.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Save はタスクの全フィールドを保存します。
// gormが更新タイムスタンプをリフレッシュするため、フィールドの変更が
// なくてもupdated_atは進みます。
func (r *taskGorm) Save(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// Delete はIDと所有者の両方に一致するタスクを物理削除します。
// 一致する行がない場合、usecase.ErrTaskNotFoundを返します。
func (r *taskGorm) Delete(ctx context.Context, userID string, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrTaskNotFound
	}
	return nil
}

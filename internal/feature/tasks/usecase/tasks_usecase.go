// Package usecase はtasksフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"todo_backend/internal/feature/tasks/domain/entity"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 1000
)

// list絞り込みに使用するステータスフィルタの値。
// 未知の値はStatusAllと同様に扱われます（フィルタなし）。
const (
	StatusAll       = "all"
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// listの並び順のキー。未知の値はSortCreatedと同様に扱われます。
const (
	SortCreated   = "created"
	SortTitle     = "title"
	SortCompleted = "completed"
)

// ListFilter はタスク一覧取得の絞り込みと並び順の指定を保持します。
type ListFilter struct {
	Status string
	Sort   string
}

// TaskPatch は部分更新で変更するフィールドを保持します。
// nilのフィールドは変更されません。
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TaskRepository はタスクエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
// すべての読み書きは所有者IDで絞り込まれます。
type TaskRepository interface {
	// Create は新しいタスクをストレージに永続化します。
	Create(ctx context.Context, task *entity.Task) error

	// FindByID はIDと所有者の両方に一致するタスクを取得します。
	// 一致する行がない場合、ErrTaskNotFoundを返します。
	FindByID(ctx context.Context, userID string, id uint) (*entity.Task, error)

	// List は所有者のタスクをフィルタと並び順を適用して返します。
	List(ctx context.Context, userID string, filter ListFilter) ([]entity.Task, error)

	// Save はタスクの全フィールドを保存し、更新タイムスタンプをリフレッシュします。
	Save(ctx context.Context, task *entity.Task) error

	// Delete はIDと所有者の両方に一致するタスクを削除します。
	// 一致する行がない場合、ErrTaskNotFoundを返します。
	Delete(ctx context.Context, userID string, id uint) error
}

// tasksUsecase はタスクのCRUDビジネスロジックを実装します。
type tasksUsecase struct {
	tasks TaskRepository
}

// NewTasksUsecase はtasksUsecaseの新しいインスタンスを生成します。
func NewTasksUsecase(tasks TaskRepository) *tasksUsecase {
	return &tasksUsecase{tasks: tasks}
}

// validateTitle はタイトルをトリムし、トリム後1〜200文字であることを検証します。
func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

// validateDescription は説明が1000文字以内であることを検証します。
func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// CreateTask は所有者のタスクを新規作成します。
// completedはfalseで初期化され、タイムスタンプはストアが設定します。
func (u *tasksUsecase) CreateTask(ctx context.Context, userID, title, description string) (*entity.Task, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	task := &entity.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Completed:   false,
	}
	if err := u.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// GetTask はIDと所有者に一致するタスクを1件取得します。
func (u *tasksUsecase) GetTask(ctx context.Context, userID string, id uint) (*entity.Task, error) {
	return u.tasks.FindByID(ctx, userID, id)
}

// ListTasks は所有者のタスク一覧を返します。
// statusは"pending"/"completed"で絞り込み、未知の値は全件を返します。
// sortは"title"/"completed"/"created"（デフォルト、新しい順）を受け付けます。
func (u *tasksUsecase) ListTasks(ctx context.Context, userID, status, sort string) ([]entity.Task, error) {
	return u.tasks.List(ctx, userID, ListFilter{Status: status, Sort: sort})
}

// UpdateTask はタスクを部分更新します。
// patchのnilフィールドは変更せず、行が見つかった場合はフィールドの変更が
// なくても更新タイムスタンプをリフレッシュします。
func (u *tasksUsecase) UpdateTask(ctx context.Context, userID string, id uint, patch TaskPatch) (*entity.Task, error) {
	task, err := u.tasks.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		title, err := validateTitle(*patch.Title)
		if err != nil {
			return nil, err
		}
		task.Title = title
	}
	if patch.Description != nil {
		if err := validateDescription(*patch.Description); err != nil {
			return nil, err
		}
		task.Description = *patch.Description
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}

	if err := u.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask はタスクを物理削除し、削除した行のタイトルを返します。
func (u *tasksUsecase) DeleteTask(ctx context.Context, userID string, id uint) (string, error) {
	task, err := u.tasks.FindByID(ctx, userID, id)
	if err != nil {
		return "", err
	}
	if err := u.tasks.Delete(ctx, userID, id); err != nil {
		return "", err
	}
	return task.Title, nil
}

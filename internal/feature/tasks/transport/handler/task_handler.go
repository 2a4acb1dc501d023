// Package handler はtasksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/feature/tasks/domain/entity"
	"todo_backend/internal/feature/tasks/transport/http/dto"
	"todo_backend/internal/feature/tasks/usecase"
	jwtmw "todo_backend/internal/platform/jwt"
)

// TasksUsecase はタスク操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type TasksUsecase interface {
	CreateTask(ctx context.Context, userID, title, description string) (*entity.Task, error)
	GetTask(ctx context.Context, userID string, id uint) (*entity.Task, error)
	ListTasks(ctx context.Context, userID, status, sort string) ([]entity.Task, error)
	UpdateTask(ctx context.Context, userID string, id uint, patch usecase.TaskPatch) (*entity.Task, error)
	DeleteTask(ctx context.Context, userID string, id uint) (string, error)
}

// TaskHandler はタスクCRUDのHTTPリクエストを処理します。
// 所有者IDは必ずAuthRequiredミドルウェアが検証したトークンから解決します。
type TaskHandler struct {
	uc TasksUsecase
}

// NewTaskHandler は指定されたusecaseでTaskHandlerの新しいインスタンスを生成します。
func NewTaskHandler(uc TasksUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// ownerID はミドルウェアがコンテキストに設定した検証済みユーザーIDを返します。
func ownerID(c *gin.Context) string {
	return c.GetString(jwtmw.ContextUserID)
}

// taskID はパスパラメータからタスクIDをパースします。
func taskID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// isValidationErr は入力値起因のエラーかどうかを判定します。
func isValidationErr(err error) bool {
	return errors.Is(err, usecase.ErrTitleRequired) ||
		errors.Is(err, usecase.ErrTitleTooLong) ||
		errors.Is(err, usecase.ErrDescriptionTooLong)
}

// Create はタスク作成APIエンドポイントを処理します。
//
// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.TaskCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.uc.CreateTask(c.Request.Context(), ownerID(c), req.Title, req.Description)
	if err != nil {
		if isValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("create task failed", "error", err, "user_id", ownerID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, dto.TaskCreateRes{TaskID: task.ID, Status: "created", Title: task.Title})
}

// List はタスク一覧取得APIエンドポイントを処理します。
// 適用したフィルタと並び順をレスポンスにエコーバックします。
//
// GET /api/tasks?status=pending&sort=title
func (h *TaskHandler) List(c *gin.Context) {
	status := c.Query("status")
	sort := c.Query("sort")

	tasks, err := h.uc.ListTasks(c.Request.Context(), ownerID(c), status, sort)
	if err != nil {
		slog.Error("list tasks failed", "error", err, "user_id", ownerID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tasks"})
		return
	}

	out := make([]dto.TaskRes, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskRes(&t))
	}
	c.JSON(http.StatusOK, dto.TaskListRes{
		Tasks:        out,
		Total:        len(out),
		StatusFilter: status,
		SortOrder:    sort,
	})
}

// Get はタスク1件取得APIエンドポイントを処理します。
//
// GET /api/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	id, err := taskID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	task, err := h.uc.GetTask(c.Request.Context(), ownerID(c), id)
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		slog.Error("get task failed", "error", err, "user_id", ownerID(c), "task_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch task"})
		return
	}

	c.JSON(http.StatusOK, toTaskRes(task))
}

// Update はタスク部分更新APIエンドポイントを処理します。
// リクエストに含まれないフィールドは変更されません。
//
// PATCH /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := taskID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	var req dto.TaskUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := usecase.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
	task, err := h.uc.UpdateTask(c.Request.Context(), ownerID(c), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		case isValidationErr(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("update task failed", "error", err, "user_id", ownerID(c), "task_id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.TaskUpdateRes{
		TaskID:    task.ID,
		Status:    "updated",
		Title:     task.Title,
		Completed: task.Completed,
	})
}

// Delete はタスク削除APIエンドポイントを処理します。
// 削除した行のタイトルをレスポンスにエコーバックします。
//
// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := taskID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	title, err := h.uc.DeleteTask(c.Request.Context(), ownerID(c), id)
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		slog.Error("delete task failed", "error", err, "user_id", ownerID(c), "task_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, dto.TaskDeleteRes{TaskID: id, Status: "deleted", Title: title})
}

// toTaskRes はエンティティをレスポンスDTOに変換します。
func toTaskRes(t *entity.Task) dto.TaskRes {
	return dto.TaskRes{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

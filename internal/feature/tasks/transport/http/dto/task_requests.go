// Package dto はtasksフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// TaskCreateReq は POST /api/tasks のリクエストボディを表します。
type TaskCreateReq struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

// TaskUpdateReq は PATCH /api/tasks/:id のリクエストボディを表します。
// nilのフィールドは「変更しない」を意味するため、すべてポインタで受けます。
type TaskUpdateReq struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Completed   *bool   `json:"completed"`
}

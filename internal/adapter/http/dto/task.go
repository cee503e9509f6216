package dto

type AssigneeItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TaskItem struct {
	ID          int64         `json:"id"`
	ProjectID   int64         `json:"projectId"`
	Title       string        `json:"title"`
	Description *string       `json:"description,omitempty"`
	Status      string        `json:"status"`
	Priority    string        `json:"priority"`
	Position    int           `json:"position"`
	DueDate     *string       `json:"dueDate,omitempty"`
	Assignee    *AssigneeItem `json:"assignee,omitempty"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Status      *string `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	ProjectID   int64   `json:"projectId" binding:"required,gt=0"`
	AssigneeID  *int64  `json:"assigneeId" binding:"omitempty,gt=0"`
	DueDate     *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateTaskRequest is decoded from the raw body alongside a field-presence
// map; validation lives in the validation package so explicit nulls and
// absent fields can be told apart.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Position    *int    `json:"position"`
	AssigneeID  *int64  `json:"assigneeId"`
	DueDate     *string `json:"dueDate"`
}

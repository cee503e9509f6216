package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// TaskStatuses lists the board columns in display order.
var TaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task is a card on the board. ProjectID is immutable after creation; Position
// is kept dense (0..n-1) within each (ProjectID, Status) column.
type Task struct {
	ID          int64
	ProjectID   int64
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	Position    int
	DueDate     *time.Time
	AssigneeID  *int64
	Assignee    *UserRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskWithOwner carries the parent project's owner alongside the task so a
// single read can feed the ownership check.
type TaskWithOwner struct {
	Task
	ProjectOwnerID int64
}

type CreateTaskInput struct {
	ProjectID   int64
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	AssigneeID  *int64
}

// UpdateTaskInput is a partial patch. The *Set flags distinguish an explicit
// JSON null (clear the field) from an absent field (leave untouched).
// Position is never written verbatim; the service derives final positions
// through the ordering engine and passes them down as ColumnOrder values.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	Priority       *TaskPriority
	Position       *int
	AssigneeID     *int64
	AssigneeIDSet  bool
	DueDate        *time.Time
	DueDateSet     bool
}

// ColumnOrder is a full renumbering of one board column: OrderedIDs[i] gets
// position i. Applied atomically with the triggering mutation.
type ColumnOrder struct {
	ProjectID  int64
	Status     TaskStatus
	OrderedIDs []int64
}

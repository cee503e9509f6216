package domain

import "time"

// TaskCounts is derived from live task rows on every read, never stored.
type TaskCounts struct {
	Total      int
	Todo       int
	InProgress int
	Done       int
}

// Project groups tasks under a single owner. OwnerID is immutable after creation.
type Project struct {
	ID          int64
	Name        string
	Description *string
	OwnerID     int64
	CreatedAt   time.Time
	TaskCounts  TaskCounts
}

type CreateProjectInput struct {
	Name        string
	Description *string
}

package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

const (
	maxTitleLength       = 200
	maxDescriptionLength = 1000
)

// BuildUpdateTaskInput turns a raw partial-update body into a domain patch.
// The raw field map distinguishes explicit null (clear description, assignee
// or due date) from an absent field (leave it untouched).
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Title)
		// Length limits count runes, matching the binding tags on create.
		if value == "" || utf8.RuneCountInString(value) > maxTitleLength {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") {
		if req.Status == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := domain.TaskStatus(*req.Status)
		if !value.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		status = &value
	}

	var priority *domain.TaskPriority
	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := domain.TaskPriority(*req.Priority)
		if !value.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		priority = &value
	}

	if hasJSONField(raw, "position") {
		if req.Position == nil || *req.Position < 0 {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) {
		if req.Description == nil || utf8.RuneCountInString(*req.Description) > maxDescriptionLength {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	assigneeIDSet := hasJSONField(raw, "assigneeId")
	if assigneeIDSet && !isJSONNull(raw["assigneeId"]) {
		if req.AssigneeID == nil || *req.AssigneeID <= 0 {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	var dueDate *time.Time
	dueDateSet := hasJSONField(raw, "dueDate")
	if dueDateSet && !isJSONNull(raw["dueDate"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsedDueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsedDueDate
	}

	return domain.UpdateTaskInput{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		Status:         status,
		Priority:       priority,
		Position:       req.Position,
		AssigneeID:     req.AssigneeID,
		AssigneeIDSet:  assigneeIDSet,
		DueDate:        dueDate,
		DueDateSet:     dueDateSet,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "position") ||
		hasJSONField(raw, "assigneeId") ||
		hasJSONField(raw, "dueDate")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

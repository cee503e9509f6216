package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/http/validation"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	status := domain.TaskStatusTodo
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		priority = domain.TaskPriority(*req.Priority)
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsedDueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
			return
		}
		dueDate = &parsedDueDate
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), domain.CreateTaskInput{
		ProjectID:   req.ProjectID,
		Title:       title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
		AssigneeID:  req.AssigneeID,
	}, middleware.Principal(c))
	if err != nil {
		respondError(c, err, "failed to create task", zap.Int64("project_id", req.ProjectID))
		return
	}

	c.JSON(http.StatusCreated, dto.Success(mapper.ToTaskItem(*task)))
}

// UpdateTask applies a partial patch. The body is decoded twice: once into
// the request struct and once into a raw field map, so an explicit null can
// be told apart from an absent field.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	var req dto.UpdateTaskRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	patch, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, patch, middleware.Principal(c))
	if err != nil {
		respondError(c, err, "failed to update task", zap.Int64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, dto.Success(mapper.ToTaskItem(*task)))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID, middleware.Principal(c)); err != nil {
		respondError(c, err, "failed to delete task", zap.Int64("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

func parseTaskID(c *gin.Context) (int64, bool) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || taskID <= 0 {
		lang := middleware.GetLang(c)
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskID, lang))
		return 0, false
	}
	return taskID, true
}

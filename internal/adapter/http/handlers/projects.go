package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

type ProjectHandler struct {
	projectService ports.ProjectService
	taskService    ports.TaskService
}

func NewProjectHandler(projectService ports.ProjectService, taskService ports.TaskService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, taskService: taskService}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		respondError(c, err, "failed to list projects")
		return
	}

	c.JSON(http.StatusOK, dto.Success(mapper.ToProjectItems(projects)))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), domain.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	}, middleware.Principal(c))
	if err != nil {
		respondError(c, err, "failed to create project")
		return
	}

	c.JSON(http.StatusCreated, dto.Success(mapper.ToProjectItem(*project)))
}

// ListTasks serves the board for one project, columns in fixed order.
func (h *ProjectHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || projectID <= 0 {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidProjectID, lang))
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), projectID, middleware.Principal(c))
	if err != nil {
		respondError(c, err, "failed to list project tasks", zap.Int64("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, dto.Success(mapper.ToTaskItems(tasks)))
}

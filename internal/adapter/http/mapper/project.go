package mapper

import (
	"time"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	item := dto.ProjectItem{
		ID:        project.ID,
		Name:      project.Name,
		OwnerID:   project.OwnerID,
		CreatedAt: project.CreatedAt.Format(time.RFC3339),
		TaskCounts: dto.TaskCounts{
			Total:      project.TaskCounts.Total,
			Todo:       project.TaskCounts.Todo,
			InProgress: project.TaskCounts.InProgress,
			Done:       project.TaskCounts.Done,
		},
	}

	if project.Description != nil {
		value := *project.Description
		item.Description = &value
	}

	return item
}

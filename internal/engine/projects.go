package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
)

// AddProject creates a project with an optional task checklist.
func (e *Engine) AddProject(name, description, githubLink, milestoneDate string, taskDescriptions []string) (models.Project, error) {
	tasks := make([]models.ProjectTask, 0, len(taskDescriptions))
	for _, desc := range taskDescriptions {
		tasks = append(tasks, models.ProjectTask{ID: uuid.NewString(), Description: desc})
	}

	project := models.Project{
		ID:            uuid.NewString(),
		Name:          name,
		Description:   description,
		Status:        models.StatusNotStarted,
		GithubLink:    githubLink,
		Tasks:         tasks,
		MilestoneDate: milestoneDate,
	}

	next := e.snap
	projects := make([]models.Project, len(e.snap.Projects), len(e.snap.Projects)+1)
	copy(projects, e.snap.Projects)
	next.Projects = append(projects, project)
	if err := e.commit(next); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// SetProjectStatus moves a project along the Not Started / In Progress /
// Completed board.
func (e *Engine) SetProjectStatus(projectID string, status models.ProjectStatus) error {
	switch status {
	case models.StatusNotStarted, models.StatusInProgress, models.StatusCompleted:
	default:
		return fmt.Errorf("unknown project status: %s", status)
	}

	next := e.snap
	projects := make([]models.Project, len(e.snap.Projects))
	copy(projects, e.snap.Projects)
	for i := range projects {
		if projects[i].ID == projectID {
			projects[i].Status = status
			next.Projects = projects
			return e.commit(next)
		}
	}
	return fmt.Errorf("project not found: %s", projectID)
}

// ToggleProjectTask flips one checklist item.
func (e *Engine) ToggleProjectTask(projectID, taskID string) error {
	next := e.snap
	projects := make([]models.Project, len(e.snap.Projects))
	copy(projects, e.snap.Projects)
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		tasks := make([]models.ProjectTask, len(projects[i].Tasks))
		copy(tasks, projects[i].Tasks)
		for j := range tasks {
			if tasks[j].ID == taskID {
				tasks[j].IsCompleted = !tasks[j].IsCompleted
				projects[i].Tasks = tasks
				next.Projects = projects
				return e.commit(next)
			}
		}
		return fmt.Errorf("project task not found: %s", taskID)
	}
	return fmt.Errorf("project not found: %s", projectID)
}

// DeleteProject removes a project outright.
func (e *Engine) DeleteProject(projectID string) error {
	next := e.snap
	projects := make([]models.Project, 0, len(e.snap.Projects))
	found := false
	for _, project := range e.snap.Projects {
		if project.ID == projectID {
			found = true
			continue
		}
		projects = append(projects, project)
	}
	if !found {
		return fmt.Errorf("project not found: %s", projectID)
	}
	next.Projects = projects
	return e.commit(next)
}

package models

type ProjectStatus string

const (
	StatusNotStarted ProjectStatus = "Not Started"
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
)

type ProjectTask struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
}

type Project struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Status        ProjectStatus `json:"status"`
	GithubLink    string        `json:"githubLink,omitempty"`
	Tasks         []ProjectTask `json:"tasks"`
	MilestoneDate string        `json:"milestoneDate,omitempty"` // YYYY-MM-DD
}

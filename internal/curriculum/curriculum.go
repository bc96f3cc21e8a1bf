// Package curriculum holds the long-range learning plan: a month → week →
// day → task tree, the completion statistics derived from it, and the
// conversion of a plan week into a weekly schedule.
package curriculum

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
)

// Task is a template task in the long-range plan, distinct from its
// scheduled instance in a given week.
type Task struct {
	ID          string
	Domain      string
	Topic       string
	Description string
	Hours       float64
}

type Day struct {
	Day   models.Weekday
	Tasks []Task
}

type Week struct {
	Number int
	Title  string
	Days   []Day
	Goals  []string
}

type Month struct {
	Number int
	Title  string
	Phase  string
	Goal   string
	Weeks  []Week
}

// Stats summarizes leaf-task completion within one month.
type Stats struct {
	Month     int
	Title     string
	Total     int
	Completed int
	Percent   int
}

// MonthStats counts total vs completed leaf tasks for a month. A month with
// no tasks yields zero percent.
func MonthStats(month Month, completed map[string]bool) Stats {
	stats := Stats{Month: month.Number, Title: month.Title}
	countWeeks(month.Weeks, completed, &stats)
	if stats.Total > 0 {
		stats.Percent = int(float64(stats.Completed)/float64(stats.Total)*100 + 0.5)
	}
	return stats
}

func countWeeks(weeks []Week, completed map[string]bool, stats *Stats) {
	for _, week := range weeks {
		for _, day := range week.Days {
			for _, task := range day.Tasks {
				stats.Total++
				if completed[task.ID] {
					stats.Completed++
				}
			}
		}
	}
}

// AllStats computes per-month stats across the whole plan.
func AllStats(plan []Month, completed map[string]bool) []Stats {
	out := make([]Stats, 0, len(plan))
	for _, month := range plan {
		out = append(out, MonthStats(month, completed))
	}
	return out
}

// FindWeek locates a plan week by number.
func FindWeek(plan []Month, number int) (Week, error) {
	for _, month := range plan {
		for _, week := range month.Weeks {
			if week.Number == number {
				return week, nil
			}
		}
	}
	return Week{}, fmt.Errorf("week %d not found in the plan", number)
}

// ScheduleForWeek converts a plan week into a full weekly schedule. Every
// weekday is present even when the plan has no tasks for it, and each task
// instance links back to its template id.
func ScheduleForWeek(week Week) []models.DailySchedule {
	byDay := make(map[models.Weekday][]models.ScheduleTask)
	for _, day := range week.Days {
		tasks := make([]models.ScheduleTask, 0, len(day.Tasks))
		for _, task := range day.Tasks {
			tasks = append(tasks, models.ScheduleTask{
				ID:               uuid.NewString(),
				Name:             fmt.Sprintf("%s: %s - %s", task.Domain, task.Topic, task.Description),
				EstimatedHours:   task.Hours,
				Notes:            fmt.Sprintf("Source: week %d (%s)", week.Number, week.Title),
				ExternalSourceID: task.ID,
			})
		}
		byDay[day.Day] = tasks
	}

	schedule := make([]models.DailySchedule, 0, len(models.Weekdays))
	for _, day := range models.Weekdays {
		tasks := byDay[day]
		if tasks == nil {
			tasks = []models.ScheduleTask{}
		}
		schedule = append(schedule, models.DailySchedule{Day: day, Tasks: tasks})
	}
	return schedule
}

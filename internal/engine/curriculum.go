package engine

import (
	"fmt"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/curriculum"
)

// SyncWeek replaces the weekly schedule with the named curriculum week.
// Synced tasks start uncompleted, so any curriculum ids previously marked
// done through the old schedule instances are cleared by the mirror.
func (e *Engine) SyncWeek(weekNumber int) error {
	week, err := curriculum.FindWeek(curriculum.Plan(), weekNumber)
	if err != nil {
		return err
	}

	next := e.snap
	next.WeeklySchedule = curriculum.ScheduleForWeek(week)
	mirrorScheduleToCompleted(&next)
	e.applyLearningCheck(&next)
	return e.commit(next)
}

// SetCurriculumTaskDone marks a curriculum template task completed (or not)
// and mirrors the flag into any scheduled instance linked to it, keeping
// curriculum and dashboard views consistent.
func (e *Engine) SetCurriculumTaskDone(taskID string, done bool) error {
	if !taskExists(taskID) {
		return fmt.Errorf("curriculum task not found: %s", taskID)
	}

	next := e.snap
	set := e.snap.CompletedIDSet()
	if done {
		set[taskID] = true
	} else {
		delete(set, taskID)
	}
	next.SetCompletedIDs(set)

	next.WeeklySchedule = cloneSchedule(e.snap.WeeklySchedule)
	for _, day := range next.WeeklySchedule {
		for i := range day.Tasks {
			if day.Tasks[i].ExternalSourceID == taskID {
				day.Tasks[i].IsCompleted = done
			}
		}
	}

	e.applyLearningCheck(&next)
	return e.commit(next)
}

// CurriculumStats reports per-month completion over the built-in plan.
func (e *Engine) CurriculumStats() []curriculum.Stats {
	return curriculum.AllStats(curriculum.Plan(), e.snap.CompletedIDSet())
}

func taskExists(taskID string) bool {
	for _, month := range curriculum.Plan() {
		for _, week := range month.Weeks {
			for _, day := range week.Days {
				for _, task := range day.Tasks {
					if task.ID == taskID {
						return true
					}
				}
			}
		}
	}
	return false
}

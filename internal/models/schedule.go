package models

import "time"

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists the seven canonical weekdays in schedule order (Monday first).
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayOf maps a time.Weekday onto the schedule's Monday-first ordering.
func WeekdayOf(wd time.Weekday) Weekday {
	switch wd {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// Index returns the weekday's position with Monday as 0 and Sunday as 6,
// or -1 for an unknown weekday name.
func (w Weekday) Index() int {
	for i, d := range Weekdays {
		if d == w {
			return i
		}
	}
	return -1
}

// ScheduleTask is a single scheduled item within a day. ExternalSourceID
// links the instance back to a curriculum template task when the task was
// synced from the roadmap.
type ScheduleTask struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	EstimatedHours   float64 `json:"estimatedDurationHours"`
	IsCompleted      bool    `json:"isCompleted"`
	Notes            string  `json:"notes,omitempty"`
	VideoLink        string  `json:"videoLink,omitempty"`
	ExternalSourceID string  `json:"externalSourceId,omitempty"`
}

// DailySchedule holds the ordered tasks for one weekday. A weekly schedule
// has exactly one DailySchedule per weekday name.
type DailySchedule struct {
	Day   Weekday        `json:"day"`
	Tasks []ScheduleTask `json:"tasks"`
}

// FindDay returns a pointer into schedule for the named day, or nil.
func FindDay(schedule []DailySchedule, day Weekday) *DailySchedule {
	for i := range schedule {
		if schedule[i].Day == day {
			return &schedule[i]
		}
	}
	return nil
}

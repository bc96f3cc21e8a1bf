package cli

import (
	"fmt"
	"strings"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/engine"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *engine.Engine
	UserID string
}

// open brings the engine up to date (rollover, streak checks) before a
// command reads or mutates the snapshot.
func (ctx *Context) open() error {
	return ctx.Engine.Open()
}

func parseWeekday(s string) (models.Weekday, error) {
	dayMap := map[string]models.Weekday{
		"mon": models.Monday, "monday": models.Monday,
		"tue": models.Tuesday, "tuesday": models.Tuesday,
		"wed": models.Wednesday, "wednesday": models.Wednesday,
		"thu": models.Thursday, "thursday": models.Thursday,
		"fri": models.Friday, "friday": models.Friday,
		"sat": models.Saturday, "saturday": models.Saturday,
		"sun": models.Sunday, "sunday": models.Sunday,
	}
	if wd, ok := dayMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		return wd, nil
	}
	return "", fmt.Errorf("invalid weekday: %s", s)
}

func parseDifficulty(s string) (models.Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return models.Easy, nil
	case "medium":
		return models.Medium, nil
	case "hard":
		return models.Hard, nil
	}
	return "", fmt.Errorf("invalid difficulty: %s (expected easy, medium or hard)", s)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

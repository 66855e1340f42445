// ABOUTME: Fixed enumerations for note category, color and priority.
// ABOUTME: Parsing is case-insensitive and rejects unknown values.

package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidPriority = errors.New("invalid priority")
)

type Category string

const (
	CategoryPersonal Category = "Personal"
	CategoryWork     Category = "Work"
	CategoryStudy    Category = "Study"
	CategoryIdeas    Category = "Ideas"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryPersonal, CategoryWork, CategoryStudy, CategoryIdeas}

type Color string

const (
	ColorYellow Color = "yellow"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorPink   Color = "pink"
	ColorPurple Color = "purple"
)

var Colors = []Color{ColorYellow, ColorBlue, ColorGreen, ColorPink, ColorPurple}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

func ParseColor(s string) (Color, error) {
	for _, c := range Colors {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}

package domain

import "fmt"

type Shift string

const (
	ShiftMorning Shift = "morning"
	ShiftEvening Shift = "evening"
)

// ParseShift accepts the long names and the am/pm shorthands.
func ParseShift(s string) (Shift, error) {
	switch s {
	case "morning", "am", "AM", "m":
		return ShiftMorning, nil
	case "evening", "pm", "PM", "e":
		return ShiftEvening, nil
	}
	return "", fmt.Errorf("unknown shift %q (use morning or evening)", s)
}

type OverrideKind string

const (
	OverrideSkip   OverrideKind = "skip"
	OverrideAdjust OverrideKind = "adjust"
)

// RowSource records which layer produced an effective row.
type RowSource string

const (
	SourceSchedule RowSource = "schedule"
	SourceSkip     RowSource = "skip"
	SourceAdjust   RowSource = "adjust"
)

// DefaultProfileID is the singleton key for the customer profile row.
const DefaultProfileID = "default"

package service

import (
	"time"
	"unicode/utf8"
)

const (
	maxNameLen    = 6
	maxCommentLen = 40
)

// ValidationError reports client input that violates a constraint. Always a
// 400-equivalent, never fatal.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(msg string) error { return &ValidationError{Msg: msg} }

func validateMeeting(in CreateMeetingInput) error {
	if in.Title == "" {
		return invalid("title is required")
	}
	if len(in.TimeSlots) == 0 {
		return invalid("at least one time slot is required")
	}
	for _, slot := range in.TimeSlots {
		if slot.Date == "" || slot.StartTime == "" || slot.EndTime == "" {
			return invalid("each time slot needs date, startTime and endTime")
		}
		// startTime < endTime is intentionally not checked.
	}
	return nil
}

func validateParticipant(in AddParticipantInput) error {
	if in.Name == "" {
		return invalid("name is required")
	}
	if utf8.RuneCountInString(in.Name) > maxNameLen {
		return invalid("name must be 6 characters or fewer")
	}
	if utf8.RuneCountInString(in.Comment) > maxCommentLen {
		return invalid("comment must be 40 characters or fewer")
	}
	if len(in.Responses) == 0 {
		return invalid("at least one response is required")
	}
	for _, r := range in.Responses {
		if !r.Availability.Valid() {
			return invalid("availability must be available, tentative or unavailable")
		}
		// Whether the slot belongs to the meeting is intentionally not checked.
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, invalid("date must be in YYYY-MM-DD form")
	}
	return d, nil
}

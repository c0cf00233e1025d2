package model

import "time"

// Availability is one respondent's answer for one time slot.
type Availability string

const (
	Available   Availability = "available"
	Tentative   Availability = "tentative"
	Unavailable Availability = "unavailable"
)

func (a Availability) Valid() bool {
	switch a {
	case Available, Tentative, Unavailable:
		return true
	}
	return false
}

type Meeting struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	TimeSlots    []TimeSlot    `json:"timeSlots"`
	Participants []Participant `json:"participants,omitempty"`
}

type TimeSlot struct {
	ID        string    `json:"id"`
	MeetingID string    `json:"meetingId"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"startTime"` // "HH:MM", opaque
	EndTime   string    `json:"endTime"`
}

type Participant struct {
	ID        string     `json:"id"`
	MeetingID string     `json:"meetingId"`
	Name      string     `json:"name"`
	Comment   string     `json:"comment,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	Responses []Response `json:"responses,omitempty"`
}

type Response struct {
	ID            string       `json:"id"`
	ParticipantID string       `json:"participantId"`
	TimeSlotID    string       `json:"timeSlotId"`
	Availability  Availability `json:"availability"`
	// TimeSlot is filled only when listing participants with slot detail.
	TimeSlot *TimeSlot `json:"timeSlot,omitempty"`
}

// Package service implements the core meeting-scheduling operations on top
// of a storage collaborator.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/StudioAP/kaigi-scheduler/internal/consensus"
	"github.com/StudioAP/kaigi-scheduler/internal/model"
	"github.com/StudioAP/kaigi-scheduler/internal/store"
)

// Store is the persistence collaborator. Multi-row creates must be atomic:
// either every row of a call commits or none do.
type Store interface {
	CreateMeeting(ctx context.Context, m *model.Meeting) error
	GetMeeting(ctx context.Context, id string) (*model.Meeting, error)
	ListMeetings(ctx context.Context) ([]model.Meeting, error)
	MeetingExists(ctx context.Context, id string) (bool, error)
	CreateParticipant(ctx context.Context, p *model.Participant) error
	ListParticipants(ctx context.Context, meetingID string) ([]model.Participant, error)
}

type Service struct {
	store Store
}

func New(st Store) *Service {
	return &Service{store: st}
}

type TimeSlotInput struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type CreateMeetingInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	TimeSlots   []TimeSlotInput `json:"timeSlots"`
}

type ResponseInput struct {
	TimeSlotID   string             `json:"timeSlotId"`
	Availability model.Availability `json:"availability"`
}

type AddParticipantInput struct {
	Name      string          `json:"name"`
	Comment   string          `json:"comment"`
	Responses []ResponseInput `json:"responses"`
}

// CreateMeeting validates the input and persists the meeting together with
// its candidate slots as one unit.
func (s *Service) CreateMeeting(ctx context.Context, in CreateMeetingInput) (*model.Meeting, error) {
	if err := validateMeeting(in); err != nil {
		return nil, err
	}

	m := &model.Meeting{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	m.TimeSlots = make([]model.TimeSlot, len(in.TimeSlots))
	for i, slot := range in.TimeSlots {
		date, err := parseDate(slot.Date)
		if err != nil {
			return nil, err
		}
		m.TimeSlots[i] = model.TimeSlot{
			ID:        uuid.New().String(),
			MeetingID: m.ID,
			Date:      date,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
	}

	if err := s.store.CreateMeeting(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetMeeting fetches a meeting with its ordered slots and its participants,
// most recent first, each with responses. Returns store.ErrNotFound when the
// id does not resolve.
func (s *Service) GetMeeting(ctx context.Context, id string) (*model.Meeting, error) {
	return s.store.GetMeeting(ctx, id)
}

func (s *Service) ListMeetings(ctx context.Context) ([]model.Meeting, error) {
	return s.store.ListMeetings(ctx)
}

// AddParticipant validates the submission, confirms the meeting exists and
// persists the participant with all responses as one unit. Validation runs
// first, so bad input on a missing meeting reports the input error.
func (s *Service) AddParticipant(ctx context.Context, meetingID string, in AddParticipantInput) (*model.Participant, error) {
	if err := validateParticipant(in); err != nil {
		return nil, err
	}

	ok, err := s.store.MeetingExists(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, store.ErrNotFound
	}

	p := &model.Participant{
		ID:        uuid.New().String(),
		MeetingID: meetingID,
		Name:      in.Name,
		Comment:   in.Comment,
		CreatedAt: time.Now().UTC(),
	}
	p.Responses = make([]model.Response, len(in.Responses))
	for i, r := range in.Responses {
		p.Responses[i] = model.Response{
			ID:            uuid.New().String(),
			ParticipantID: p.ID,
			TimeSlotID:    r.TimeSlotID,
			Availability:  r.Availability,
		}
	}

	if err := s.store.CreateParticipant(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListParticipants(ctx context.Context, meetingID string) ([]model.Participant, error) {
	return s.store.ListParticipants(ctx, meetingID)
}

type SlotResult struct {
	TimeSlot model.TimeSlot     `json:"timeSlot"`
	Counts   consensus.Tally    `json:"counts"`
	Category consensus.Category `json:"category"`
}

type MeetingResults struct {
	MeetingID        string       `json:"meetingId"`
	ParticipantCount int          `json:"participantCount"`
	Slots            []SlotResult `json:"slots"`
}

// MeetingResults aggregates the meeting's responses per slot and classifies
// each slot. Always computed fresh from the stored responses.
func (s *Service) MeetingResults(ctx context.Context, meetingID string) (*MeetingResults, error) {
	m, err := s.store.GetMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	bySlot := make(map[string][]model.Response)
	for _, p := range m.Participants {
		for _, r := range p.Responses {
			bySlot[r.TimeSlotID] = append(bySlot[r.TimeSlotID], r)
		}
	}

	total := len(m.Participants)
	out := &MeetingResults{
		MeetingID:        m.ID,
		ParticipantCount: total,
		Slots:            make([]SlotResult, len(m.TimeSlots)),
	}
	for i, slot := range m.TimeSlots {
		tally := consensus.Count(bySlot[slot.ID])
		out.Slots[i] = SlotResult{
			TimeSlot: slot,
			Counts:   tally,
			Category: consensus.Classify(tally, total),
		}
	}
	return out, nil
}

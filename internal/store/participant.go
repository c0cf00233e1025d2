package store

import (
	"context"

	"github.com/StudioAP/kaigi-scheduler/internal/model"
)

func (s *Store) CreateParticipant(ctx context.Context, p *model.Participant) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO participants (id, meeting_id, name, comment, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		p.ID, p.MeetingID, p.Name, p.Comment, p.CreatedAt,
	)
	if err != nil {
		return err
	}

	for _, r := range p.Responses {
		_, err = tx.Exec(ctx,
			`INSERT INTO responses (id, participant_id, time_slot_id, availability)
			 VALUES ($1,$2,$3,$4)`,
			r.ID, r.ParticipantID, r.TimeSlotID, r.Availability,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// ListParticipants returns a meeting's participants, most recent first, each
// response carrying its slot detail.
func (s *Store) ListParticipants(ctx context.Context, meetingID string) ([]model.Participant, error) {
	participants, err := s.participantsForMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT r.id, r.participant_id, r.time_slot_id, r.availability,
		        t.id, t.meeting_id, t.date, t.start_time, t.end_time
		 FROM responses r
		 JOIN participants p ON p.id = r.participant_id
		 JOIN time_slots t ON t.id = r.time_slot_id
		 WHERE p.meeting_id = $1`, meetingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byParticipant := make(map[string][]model.Response)
	for rows.Next() {
		var r model.Response
		var slot model.TimeSlot
		if err := rows.Scan(
			&r.ID, &r.ParticipantID, &r.TimeSlotID, &r.Availability,
			&slot.ID, &slot.MeetingID, &slot.Date, &slot.StartTime, &slot.EndTime,
		); err != nil {
			return nil, err
		}
		r.TimeSlot = &slot
		byParticipant[r.ParticipantID] = append(byParticipant[r.ParticipantID], r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range participants {
		participants[i].Responses = byParticipant[participants[i].ID]
	}
	return participants, nil
}

func (s *Store) participantsForMeeting(ctx context.Context, meetingID string) ([]model.Participant, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, meeting_id, name, comment, created_at
		 FROM participants
		 WHERE meeting_id = $1
		 ORDER BY created_at DESC`, meetingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Participant
	for rows.Next() {
		var p model.Participant
		if err := rows.Scan(&p.ID, &p.MeetingID, &p.Name, &p.Comment, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) attachResponses(ctx context.Context, meetingID string, participants []model.Participant) error {
	rows, err := s.pool.Query(ctx,
		`SELECT r.id, r.participant_id, r.time_slot_id, r.availability
		 FROM responses r
		 JOIN participants p ON p.id = r.participant_id
		 WHERE p.meeting_id = $1`, meetingID)
	if err != nil {
		return err
	}
	defer rows.Close()

	byParticipant := make(map[string][]model.Response)
	for rows.Next() {
		var r model.Response
		if err := rows.Scan(&r.ID, &r.ParticipantID, &r.TimeSlotID, &r.Availability); err != nil {
			return err
		}
		byParticipant[r.ParticipantID] = append(byParticipant[r.ParticipantID], r)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range participants {
		participants[i].Responses = byParticipant[participants[i].ID]
	}
	return nil
}

package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/StudioAP/kaigi-scheduler/internal/model"
)

func (s *Store) CreateMeeting(ctx context.Context, m *model.Meeting) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO meetings (id, title, description, created_at)
		 VALUES ($1,$2,$3,$4)`,
		m.ID, m.Title, m.Description, m.CreatedAt,
	)
	if err != nil {
		return err
	}

	for _, slot := range m.TimeSlots {
		_, err = tx.Exec(ctx,
			`INSERT INTO time_slots (id, meeting_id, date, start_time, end_time)
			 VALUES ($1,$2,$3,$4,$5)`,
			slot.ID, slot.MeetingID, slot.Date, slot.StartTime, slot.EndTime,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (s *Store) GetMeeting(ctx context.Context, id string) (*model.Meeting, error) {
	m := &model.Meeting{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, description, created_at FROM meetings WHERE id = $1`, id,
	).Scan(&m.ID, &m.Title, &m.Description, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if m.TimeSlots, err = s.slotsForMeeting(ctx, id); err != nil {
		return nil, err
	}

	participants, err := s.participantsForMeeting(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachResponses(ctx, id, participants); err != nil {
		return nil, err
	}
	m.Participants = participants
	return m, nil
}

func (s *Store) ListMeetings(ctx context.Context) ([]model.Meeting, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, description, created_at
		 FROM meetings ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Meeting
	for rows.Next() {
		var m model.Meeting
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if out[i].TimeSlots, err = s.slotsForMeeting(ctx, out[i].ID); err != nil {
			return nil, err
		}
		if out[i].Participants, err = s.participantsForMeeting(ctx, out[i].ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *Store) MeetingExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM meetings WHERE id = $1)`, id,
	).Scan(&exists)
	return exists, err
}

func (s *Store) slotsForMeeting(ctx context.Context, meetingID string) ([]model.TimeSlot, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, meeting_id, date, start_time, end_time
		 FROM time_slots
		 WHERE meeting_id = $1
		 ORDER BY date, start_time`, meetingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.TimeSlot
	for rows.Next() {
		var slot model.TimeSlot
		if err := rows.Scan(&slot.ID, &slot.MeetingID, &slot.Date, &slot.StartTime, &slot.EndTime); err != nil {
			return nil, err
		}
		out = append(out, slot)
	}
	return out, rows.Err()
}

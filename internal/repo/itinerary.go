package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wayfarer-travel/wayfarer/backend/internal/domain"
)

// ItineraryRepo defines the persistence operations for generated itineraries.
// Days and their activities are written together; regeneration replaces the
// previous itinerary wholesale.
type ItineraryRepo interface {
	// ReplaceForTrip deletes any existing itinerary for the trip and inserts
	// the given days with their activities, all in one transaction. Returns
	// the persisted days with DB-generated IDs populated.
	ReplaceForTrip(ctx context.Context, tripID uuid.UUID, days []domain.ItineraryDay) ([]domain.ItineraryDay, error)

	// ListByTripID returns the trip's itinerary days in day-number order,
	// each with its activities in slot order. Returns an empty slice when no
	// itinerary has been generated yet.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryDay, error)

	// DeleteByTripID removes the trip's itinerary days (activities cascade).
	// Deleting an absent itinerary is not an error.
	DeleteByTripID(ctx context.Context, tripID uuid.UUID) error
}

// pgItineraryRepo is the Postgres implementation of ItineraryRepo.
type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx —
// ReplaceForTrip then runs in a savepoint inside the test transaction.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

func (r *pgItineraryRepo) ReplaceForTrip(ctx context.Context, tripID uuid.UUID, days []domain.ItineraryDay) ([]domain.ItineraryDay, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ReplaceForTrip: begin: %w", err)
	}
	defer tx.Rollback(ctx) // no-op after a successful commit

	const deleteQ = `DELETE FROM itinerary_days WHERE trip_id = @trip_id`
	if _, err := tx.Exec(ctx, deleteQ, pgx.NamedArgs{"trip_id": tripID}); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ReplaceForTrip: delete: %w", err)
	}

	const dayQ = `
		INSERT INTO itinerary_days (trip_id, day_number, date, day_of_week, theme, total_cost)
		VALUES (@trip_id, @day_number, @date, @day_of_week, @theme, @total_cost)
		RETURNING id, created_at`

	const activityQ = `
		INSERT INTO activities (day_id, slot_index, time_slot, title, description,
		                        start_time, end_time, duration_minutes, location, category,
		                        estimated_cost, reservation_required, difficulty, accessibility, tips)
		VALUES (@day_id, @slot_index, @time_slot, @title, @description,
		        @start_time, @end_time, @duration_minutes, @location, @category,
		        @estimated_cost, @reservation_required, @difficulty, @accessibility, @tips)
		RETURNING id`

	persisted := make([]domain.ItineraryDay, 0, len(days))
	for _, day := range days {
		day.TripID = tripID

		var dayID pgtype.UUID
		args := pgx.NamedArgs{
			"trip_id":     tripID,
			"day_number":  day.DayNumber,
			"date":        day.Date,
			"day_of_week": day.DayOfWeek,
			"theme":       day.Theme,
			"total_cost":  day.TotalCost,
		}
		if err := tx.QueryRow(ctx, dayQ, args).Scan(&dayID, &day.CreatedAt); err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.ReplaceForTrip: insert day %d: %w", day.DayNumber, err)
		}
		day.ID = uuid.UUID(dayID.Bytes)

		for i := range day.Activities {
			act := &day.Activities[i]
			act.DayID = day.ID

			var actID pgtype.UUID
			actArgs := pgx.NamedArgs{
				"day_id":               day.ID,
				"slot_index":           act.SlotIndex,
				"time_slot":            act.TimeSlot,
				"title":                act.Title,
				"description":          act.Description,
				"start_time":           act.StartTime,
				"end_time":             act.EndTime,
				"duration_minutes":     act.DurationMinutes,
				"location":             act.Location,
				"category":             act.Category,
				"estimated_cost":       act.EstimatedCost,
				"reservation_required": act.ReservationRequired,
				"difficulty":           act.Difficulty,
				"accessibility":        act.Accessibility,
				"tips":                 act.Tips,
			}
			if err := tx.QueryRow(ctx, activityQ, actArgs).Scan(&actID); err != nil {
				return nil, fmt.Errorf("repo.ItineraryRepo.ReplaceForTrip: insert activity day %d slot %d: %w",
					day.DayNumber, act.SlotIndex, err)
			}
			act.ID = uuid.UUID(actID.Bytes)
		}

		persisted = append(persisted, day)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ReplaceForTrip: commit: %w", err)
	}
	return persisted, nil
}

func (r *pgItineraryRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryDay, error) {
	const dayQ = `
		SELECT id, trip_id, day_number, date, day_of_week, theme, total_cost, created_at
		FROM itinerary_days
		WHERE trip_id = @trip_id
		ORDER BY day_number ASC`

	rows, err := r.db.Query(ctx, dayQ, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var days []domain.ItineraryDay
	for rows.Next() {
		d, err := scanItineraryDay(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.ListByTripID: scan day: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByTripID: rows: %w", err)
	}

	for i := range days {
		acts, err := r.listActivities(ctx, days[i].ID)
		if err != nil {
			return nil, err
		}
		days[i].Activities = acts
	}

	return days, nil
}

func (r *pgItineraryRepo) DeleteByTripID(ctx context.Context, tripID uuid.UUID) error {
	const q = `DELETE FROM itinerary_days WHERE trip_id = @trip_id`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_id": tripID}); err != nil {
		return fmt.Errorf("repo.ItineraryRepo.DeleteByTripID: %w", err)
	}
	return nil
}

// listActivities returns one day's activities in slot order.
func (r *pgItineraryRepo) listActivities(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT id, day_id, slot_index, time_slot, title, description,
		       start_time, end_time, duration_minutes, location, category,
		       estimated_cost, reservation_required, difficulty, accessibility, tips
		FROM activities
		WHERE day_id = @day_id
		ORDER BY slot_index ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"day_id": dayID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.listActivities: %w", err)
	}
	defer rows.Close()

	var acts []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.listActivities: scan: %w", err)
		}
		acts = append(acts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.listActivities: rows: %w", err)
	}

	return acts, nil
}

func scanItineraryDay(s scanner) (domain.ItineraryDay, error) {
	var (
		d      domain.ItineraryDay
		id     pgtype.UUID
		tripID pgtype.UUID
		date   pgtype.Date
	)

	err := s.Scan(&id, &tripID, &d.DayNumber, &date, &d.DayOfWeek, &d.Theme, &d.TotalCost, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ItineraryDay{}, domain.ErrNotFound
		}
		return domain.ItineraryDay{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	d.TripID = uuid.UUID(tripID.Bytes)
	d.Date = date.Time
	return d, nil
}

func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a     domain.Activity
		id    pgtype.UUID
		dayID pgtype.UUID
	)

	err := s.Scan(&id, &dayID, &a.SlotIndex, &a.TimeSlot, &a.Title, &a.Description,
		&a.StartTime, &a.EndTime, &a.DurationMinutes, &a.Location, &a.Category,
		&a.EstimatedCost, &a.ReservationRequired, &a.Difficulty, &a.Accessibility, &a.Tips)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.DayID = uuid.UUID(dayID.Bytes)
	return a, nil
}

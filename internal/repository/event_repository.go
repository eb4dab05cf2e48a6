package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
)

// EventRepository provides data access methods for the event table.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new EventRepository with the provided database connection.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// InsertEvent inserts a new event row.
func (r *EventRepository) InsertEvent(ctx context.Context, e model.Event) error {
	query := `
        INSERT INTO event (id, category, level, message, entity_id)
        VALUES (?, ?, ?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Category,
		e.Level,
		e.Message,
		e.EntityID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return nil
}

// GetEvents retrieves events matching the filters, newest first unless the
// sort direction says otherwise. Cursor pagination: the cursor is the ID of
// the last event from the previous page; results resume strictly after it
// in the chosen sort order.
//
//nolint:gocyclo // Filter assembly is repetitive but flat
func (r *EventRepository) GetEvents(filters model.EventFilters) ([]model.Event, error) {
	query := `
        SELECT id, category, level, message, entity_id, created_at
        FROM event
        WHERE 1=1
    `
	var args []any

	if len(filters.Levels) > 0 {
		placeholders := make([]string, len(filters.Levels))
		for i, level := range filters.Levels {
			placeholders[i] = "?"
			args = append(args, level)
		}
		query += " AND level IN (" + strings.Join(placeholders, ",") + ")"
	}

	if len(filters.Categories) > 0 {
		placeholders := make([]string, len(filters.Categories))
		for i, category := range filters.Categories {
			placeholders[i] = "?"
			args = append(args, category)
		}
		query += " AND category IN (" + strings.Join(placeholders, ",") + ")"
	}

	if !filters.StartDate.IsZero() {
		query += " AND created_at >= ?"
		args = append(args, filters.StartDate.Format("2006-01-02 15:04:05"))
	}

	if !filters.EndDate.IsZero() {
		query += " AND created_at <= ?"
		args = append(args, filters.EndDate.Format("2006-01-02 15:04:05"))
	}

	if filters.Message != "" {
		query += " AND message LIKE ?"
		args = append(args, "%"+filters.Message+"%")
	}

	sortDir := "DESC"
	cursorOp := "<"
	if filters.SortDir == "asc" {
		sortDir = "ASC"
		cursorOp = ">"
	}

	if filters.Cursor != "" {
		query += ` AND created_at ` + cursorOp + ` (SELECT created_at FROM event WHERE id = ?)`
		args = append(args, filters.Cursor)
	}

	query += " ORDER BY created_at " + sortDir

	perPage := filters.PerPage
	if perPage <= 0 {
		perPage = 50
	}
	query += " LIMIT ?"
	args = append(args, perPage)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query event table: %w", err)
	}
	defer rows.Close()

	events := []model.Event{}

	for rows.Next() {
		var e model.Event
		var entityID sql.NullString
		var createdAtStr string

		err := rows.Scan(
			&e.ID,
			&e.Category,
			&e.Level,
			&e.Message,
			&entityID,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event table results: %w", err)
		}

		e.EntityID = entityID.String
		e.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		events = append(events, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event table: %w", err)
	}

	return events, nil
}

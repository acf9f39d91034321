package waitlist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nothingbetterhealth/nbh-site/internal/db"
)

// ErrAlreadyJoined is returned when the email is already on the list for
// the same target.
var ErrAlreadyJoined = errors.New("already on the waitlist")

// Store manages persistence of waitlist entries.
type Store struct {
	db *db.DB
}

// NewStore creates a new waitlist store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create adds a signup. Emails are compared case-insensitively.
func (s *Store) Create(ctx context.Context, e Entry) (*Entry, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.Email = strings.ToLower(strings.TrimSpace(e.Email))
	e.Name = strings.TrimSpace(e.Name)
	e.CreatedAt = time.Now().UTC()
	if e.Source == "" {
		e.Source = "web"
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO waitlist_entries (id, email, name, kind, target, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(email, kind, target) DO NOTHING`,
		e.ID, e.Email, e.Name, e.Kind, e.Target, e.Source, e.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting waitlist entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking insert: %w", err)
	}
	if n == 0 {
		return nil, ErrAlreadyJoined
	}
	return &e, nil
}

// List returns entries matching the filter, oldest first.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]Entry, error) {
	query := `SELECT id, email, name, kind, target, source, created_at
		 FROM waitlist_entries WHERE 1=1`
	args := []interface{}{}

	if filter.Kind != "" {
		query += " AND kind = ?"
		args = append(args, filter.Kind)
	}
	if filter.Target != "" {
		query += " AND target = ?"
		args = append(args, filter.Target)
	}

	query += " ORDER BY created_at ASC, id ASC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing waitlist: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Email, &e.Name, &e.Kind, &e.Target, &e.Source, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning waitlist entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Stats returns the total signup count and a per-target breakdown ordered
// by count, largest first.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, target, COUNT(*) FROM waitlist_entries
		 GROUP BY kind, target ORDER BY COUNT(*) DESC, kind, target`)
	if err != nil {
		return Stats{}, fmt.Errorf("counting waitlist: %w", err)
	}
	defer rows.Close()

	stats := Stats{ByTarget: []TargetCount{}}
	for rows.Next() {
		var tc TargetCount
		if err := rows.Scan(&tc.Kind, &tc.Target, &tc.Count); err != nil {
			return Stats{}, fmt.Errorf("scanning waitlist count: %w", err)
		}
		stats.Total += tc.Count
		stats.ByTarget = append(stats.ByTarget, tc)
	}
	return stats, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"conferencecompanion/internal/domain"
)

type snapshotRepository struct {
	DB *sql.DB
}

func NewSnapshotRepository(db *sql.DB) domain.SnapshotRepository {
	return &snapshotRepository{
		DB: db,
	}
}

func (r *snapshotRepository) Save(ctx context.Context, s *domain.FeedSnapshot) error {
	query := `
		INSERT INTO feed_snapshots (id, conference_code, payload, fetched_at)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	return r.DB.QueryRowContext(ctx, query, s.ID, s.ConferenceCode, s.Payload, s.FetchedAt).Scan(&s.CreatedAt)
}

func (r *snapshotRepository) GetLatest(ctx context.Context, conferenceCode string) (*domain.FeedSnapshot, error) {
	query := `
		SELECT id, conference_code, payload, fetched_at, created_at
		FROM feed_snapshots
		WHERE conference_code = $1
		ORDER BY fetched_at DESC
		LIMIT 1
	`
	s := &domain.FeedSnapshot{}
	err := r.DB.QueryRowContext(ctx, query, conferenceCode).Scan(
		&s.ID, &s.ConferenceCode, &s.Payload, &s.FetchedAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *snapshotRepository) List(ctx context.Context, conferenceCode string, params domain.PaginationParams) ([]*domain.FeedSnapshot, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM feed_snapshots WHERE conference_code = $1`
	if err := r.DB.QueryRowContext(ctx, countQuery, conferenceCode).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count snapshots: %w", err)
	}

	// Listing omits the payload column: snapshots can be large and the
	// listing only needs metadata.
	query := `
		SELECT id, conference_code, fetched_at, created_at
		FROM feed_snapshots
		WHERE conference_code = $1
		ORDER BY fetched_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, conferenceCode, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	snapshots := []*domain.FeedSnapshot{}
	for rows.Next() {
		s := &domain.FeedSnapshot{}
		if err := rows.Scan(&s.ID, &s.ConferenceCode, &s.FetchedAt, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return snapshots, total, nil
}

func (r *snapshotRepository) DeleteByConference(ctx context.Context, conferenceCode string) error {
	query := `DELETE FROM feed_snapshots WHERE conference_code = $1`
	_, err := r.DB.ExecContext(ctx, query, conferenceCode)
	return err
}

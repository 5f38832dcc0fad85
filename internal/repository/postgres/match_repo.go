package postgres

import (
	"context"

	"go-care-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type matchRepo struct {
	db *pgxpool.Pool
}

func NewMatchRepository(db *pgxpool.Pool) domain.MatchRepository {
	return &matchRepo{db: db}
}

func (r *matchRepo) Create(ctx context.Context, match *domain.Match) error {
	query := `INSERT INTO matches (id, care_request_id, carer_id, score, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		match.ID, match.CareRequestID, match.CarerID, match.Score, match.Status,
		match.CreatedAt, match.UpdatedAt,
	)
	return err
}

const matchWithCarerColumns = `
	m.id, m.care_request_id, m.carer_id, m.score, m.status, m.created_at, m.updated_at,
	c.display_name, c.specializations, c.years_experience,
	(SELECT cr.rate FROM carer_rates cr
	 JOIN care_requests req ON req.id = m.care_request_id
	 WHERE cr.carer_id = m.carer_id AND cr.care_type = req.care_type),
	(SELECT AVG(rv.rating)::float8 FROM reviews rv WHERE rv.carer_id = m.carer_id),
	(SELECT COUNT(*) FROM reviews rv WHERE rv.carer_id = m.carer_id)`

func (r *matchRepo) FetchByRequestID(ctx context.Context, careRequestID string) ([]domain.MatchWithCarer, error) {
	query := `
		SELECT ` + matchWithCarerColumns + `
		FROM matches m
		JOIN carers c ON c.user_id = m.carer_id
		WHERE m.care_request_id = $1
		ORDER BY m.score DESC, m.created_at ASC`

	rows, err := r.db.Query(ctx, query, careRequestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []domain.MatchWithCarer
	for rows.Next() {
		var m domain.MatchWithCarer
		var specializations []string
		if err := rows.Scan(
			&m.ID, &m.CareRequestID, &m.CarerID, &m.Score, &m.Status, &m.CreatedAt, &m.UpdatedAt,
			&m.CarerName, pq.Array(&specializations), &m.YearsExperience,
			&m.Rate, &m.AvgRating, &m.ReviewCount,
		); err != nil {
			return nil, err
		}
		m.Specializations = specializations
		matches = append(matches, m)
	}

	return matches, rows.Err()
}

func (r *matchRepo) ExistsForRequest(ctx context.Context, careRequestID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM matches WHERE care_request_id = $1)`, careRequestID,
	).Scan(&exists)
	return exists, err
}

func (r *matchRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	query := `UPDATE matches SET status = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *matchRepo) FetchAll(ctx context.Context, limit, offset int) ([]domain.MatchWithCarer, int64, error) {
	query := `
		SELECT ` + matchWithCarerColumns + `
		FROM matches m
		JOIN carers c ON c.user_id = m.carer_id
		ORDER BY m.created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var matches []domain.MatchWithCarer
	for rows.Next() {
		var m domain.MatchWithCarer
		var specializations []string
		if err := rows.Scan(
			&m.ID, &m.CareRequestID, &m.CarerID, &m.Score, &m.Status, &m.CreatedAt, &m.UpdatedAt,
			&m.CarerName, pq.Array(&specializations), &m.YearsExperience,
			&m.Rate, &m.AvgRating, &m.ReviewCount,
		); err != nil {
			return nil, 0, err
		}
		m.Specializations = specializations
		matches = append(matches, m)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM matches`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return matches, total, nil
}

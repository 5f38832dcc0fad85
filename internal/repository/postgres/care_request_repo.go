package postgres

import (
	"context"
	"errors"

	"go-care-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type careRequestRepo struct {
	db *pgxpool.Pool
}

func NewCareRequestRepository(db *pgxpool.Pool) domain.CareRequestRepository {
	return &careRequestRepo{db: db}
}

func (r *careRequestRepo) Create(ctx context.Context, req *domain.CareRequest) error {
	query := `INSERT INTO care_requests (id, family_id, recipient_id, care_type, schedule_type, start_date, budget_min, budget_max, latitude, longitude, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		req.ID, req.FamilyID, req.RecipientID, req.CareType, req.ScheduleType, req.StartDate,
		req.BudgetMin, req.BudgetMax, req.Latitude, req.Longitude, req.Status,
		req.CreatedAt, req.UpdatedAt,
	)
	return err
}

func (r *careRequestRepo) GetByID(ctx context.Context, id string) (*domain.CareRequest, error) {
	query := `SELECT id, family_id, recipient_id, care_type, schedule_type, start_date, budget_min, budget_max, latitude, longitude, status, created_at, updated_at
              FROM care_requests WHERE id = $1`
	var req domain.CareRequest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.FamilyID, &req.RecipientID, &req.CareType, &req.ScheduleType, &req.StartDate,
		&req.BudgetMin, &req.BudgetMax, &req.Latitude, &req.Longitude, &req.Status,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *careRequestRepo) FetchByFamilyID(ctx context.Context, familyID string, limit, offset int) ([]domain.CareRequest, int64, error) {
	query := `SELECT id, family_id, recipient_id, care_type, schedule_type, start_date, budget_min, budget_max, latitude, longitude, status, created_at, updated_at
              FROM care_requests WHERE family_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, familyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []domain.CareRequest
	for rows.Next() {
		var req domain.CareRequest
		if err := rows.Scan(
			&req.ID, &req.FamilyID, &req.RecipientID, &req.CareType, &req.ScheduleType, &req.StartDate,
			&req.BudgetMin, &req.BudgetMax, &req.Latitude, &req.Longitude, &req.Status,
			&req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM care_requests WHERE family_id = $1`, familyID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *careRequestRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	query := `UPDATE care_requests SET status = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

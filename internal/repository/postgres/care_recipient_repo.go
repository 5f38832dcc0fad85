package postgres

import (
	"context"
	"errors"

	"go-care-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type careRecipientRepo struct {
	db *pgxpool.Pool
}

func NewCareRecipientRepository(db *pgxpool.Pool) domain.CareRecipientRepository {
	return &careRecipientRepo{db: db}
}

func (r *careRecipientRepo) Create(ctx context.Context, recipient *domain.CareRecipient) error {
	query := `INSERT INTO care_recipients (id, family_id, name, medical_conditions, mobility_level, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		recipient.ID, recipient.FamilyID, recipient.Name, recipient.MedicalConditions,
		recipient.MobilityLevel, recipient.CreatedAt, recipient.UpdatedAt,
	)
	return err
}

func (r *careRecipientRepo) GetByID(ctx context.Context, id string) (*domain.CareRecipient, error) {
	query := `SELECT id, family_id, name, medical_conditions, mobility_level, created_at, updated_at
              FROM care_recipients WHERE id = $1`
	var recipient domain.CareRecipient
	err := r.db.QueryRow(ctx, query, id).Scan(
		&recipient.ID, &recipient.FamilyID, &recipient.Name, &recipient.MedicalConditions,
		&recipient.MobilityLevel, &recipient.CreatedAt, &recipient.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &recipient, nil
}

func (r *careRecipientRepo) FetchByFamilyID(ctx context.Context, familyID string) ([]domain.CareRecipient, error) {
	query := `SELECT id, family_id, name, medical_conditions, mobility_level, created_at, updated_at
              FROM care_recipients WHERE family_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, familyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipients []domain.CareRecipient
	for rows.Next() {
		var recipient domain.CareRecipient
		if err := rows.Scan(
			&recipient.ID, &recipient.FamilyID, &recipient.Name, &recipient.MedicalConditions,
			&recipient.MobilityLevel, &recipient.CreatedAt, &recipient.UpdatedAt,
		); err != nil {
			return nil, err
		}
		recipients = append(recipients, recipient)
	}

	return recipients, nil
}

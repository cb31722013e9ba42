package repository

import (
	"context"
	"fmt"

	"hangar-booking/internal/data/entity"
	"hangar-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type HangarRepository interface {
	Create(ctx context.Context, hangar *entity.Hangar) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hangar, error)
	FindAll(ctx context.Context) ([]*entity.Hangar, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, pricePerDay float64, currency string) error
}

type hangarRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHangarRepository(db database.PgxIface, log *zap.Logger) HangarRepository {
	return &hangarRepository{
		db:  db,
		log: log.With(zap.String("repository", "hangar")),
	}
}

func (r *hangarRepository) Create(ctx context.Context, hangar *entity.Hangar) error {
	query := `
		INSERT INTO hangars (id, owner_id, name, location, description,
		                     price_per_day, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		hangar.ID,
		hangar.OwnerID,
		hangar.Name,
		hangar.Location,
		hangar.Description,
		hangar.PricePerDay,
		hangar.Currency,
		hangar.CreatedAt,
		hangar.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create hangar",
			zap.Error(err),
			zap.String("name", hangar.Name),
		)
		return fmt.Errorf("create hangar %s: %w", hangar.Name, err)
	}

	return nil
}

func (r *hangarRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hangar, error) {
	query := `
		SELECT id, owner_id, name, location, description,
		       price_per_day, currency, created_at, updated_at
		FROM hangars
		WHERE id = $1
	`

	var hangar entity.Hangar
	err := r.db.QueryRow(ctx, query, id).Scan(
		&hangar.ID,
		&hangar.OwnerID,
		&hangar.Name,
		&hangar.Location,
		&hangar.Description,
		&hangar.PricePerDay,
		&hangar.Currency,
		&hangar.CreatedAt,
		&hangar.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hangar by ID",
			zap.Error(err),
			zap.String("hangar_id", id.String()),
		)
		return nil, fmt.Errorf("find hangar by ID %s: %w", id.String(), err)
	}

	return &hangar, nil
}

func (r *hangarRepository) FindAll(ctx context.Context) ([]*entity.Hangar, error) {
	query := `
		SELECT id, owner_id, name, location, description,
		       price_per_day, currency, created_at, updated_at
		FROM hangars
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list hangars", zap.Error(err))
		return nil, fmt.Errorf("list hangars: %w", err)
	}
	defer rows.Close()

	var hangars []*entity.Hangar
	for rows.Next() {
		var hangar entity.Hangar
		err := rows.Scan(
			&hangar.ID,
			&hangar.OwnerID,
			&hangar.Name,
			&hangar.Location,
			&hangar.Description,
			&hangar.PricePerDay,
			&hangar.Currency,
			&hangar.CreatedAt,
			&hangar.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan hangar row", zap.Error(err))
			return nil, fmt.Errorf("scan hangar row: %w", err)
		}
		hangars = append(hangars, &hangar)
	}

	return hangars, nil
}

func (r *hangarRepository) UpdatePrice(ctx context.Context, id uuid.UUID, pricePerDay float64, currency string) error {
	query := `UPDATE hangars SET price_per_day = $2, currency = $3, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, pricePerDay, currency)
	if err != nil {
		r.log.Error("Failed to update hangar price",
			zap.Error(err),
			zap.String("hangar_id", id.String()),
			zap.Float64("price_per_day", pricePerDay),
		)
		return fmt.Errorf("update hangar %s price: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hangar %s not found", id.String())
	}

	return nil
}

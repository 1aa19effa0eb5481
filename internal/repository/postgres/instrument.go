package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avoronov/musicschool-server/internal/model"
)

var _ model.InstrumentStore = (*InstrumentRepository)(nil)

type InstrumentRepository struct {
	db *Connection
}

func NewInstrumentRepository(db *Connection) *InstrumentRepository {
	return &InstrumentRepository{
		db: db,
	}
}

const instrumentColumns = `id, name, type, brand, condition, created_at`

// Searchable fields: name, type, brand, condition.
const instrumentSearchFilter = `($1 = '' OR name ILIKE $2 OR type ILIKE $2 OR brand ILIKE $2 OR condition ILIKE $2)`

func (r *InstrumentRepository) GetByID(ctx context.Context, id int64) (model.Instrument, error) {
	query := `SELECT ` + instrumentColumns + ` FROM instruments WHERE id = $1`

	var instrument model.Instrument
	err := r.db.QueryRow(ctx, query, id).Scan(
		&instrument.ID, &instrument.Name, &instrument.Type,
		&instrument.Brand, &instrument.Condition, &instrument.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Instrument{}, model.ErrNotFound
		}
		return model.Instrument{}, fmt.Errorf("failed to get instrument by id: %w", err)
	}

	return instrument, nil
}

func (r *InstrumentRepository) List(ctx context.Context, params model.ListParams) ([]model.Instrument, int64, error) {
	countQuery := `SELECT count(*) FROM instruments WHERE ` + instrumentSearchFilter
	pattern := likePattern(params.Search)

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, params.Search, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count instruments: %w", err)
	}

	query := `SELECT ` + instrumentColumns + ` FROM instruments WHERE ` + instrumentSearchFilter + `
			  ORDER BY id LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, params.Search, pattern, params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list instruments: %w", err)
	}
	defer rows.Close()

	var instruments []model.Instrument
	for rows.Next() {
		var instrument model.Instrument
		err := rows.Scan(
			&instrument.ID, &instrument.Name, &instrument.Type,
			&instrument.Brand, &instrument.Condition, &instrument.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan instrument: %w", err)
		}
		instruments = append(instruments, instrument)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read instruments: %w", err)
	}

	return instruments, total, nil
}

func (r *InstrumentRepository) Create(ctx context.Context, in model.InstrumentCreate) (model.Instrument, error) {
	query := `INSERT INTO instruments (name, type, brand, condition)
			  VALUES ($1, $2, $3, $4)
			  RETURNING ` + instrumentColumns

	var instrument model.Instrument
	err := r.db.QueryRow(ctx, query,
		in.Name, in.Type, in.Brand, in.Condition,
	).Scan(
		&instrument.ID, &instrument.Name, &instrument.Type,
		&instrument.Brand, &instrument.Condition, &instrument.CreatedAt,
	)
	if err != nil {
		return model.Instrument{}, fmt.Errorf("failed to create instrument: %w", err)
	}

	return instrument, nil
}

func (r *InstrumentRepository) Update(ctx context.Context, id int64, in model.InstrumentUpdate) (model.Instrument, error) {
	query := `UPDATE instruments SET
				name = COALESCE($2, name),
				type = COALESCE($3, type),
				brand = COALESCE($4, brand),
				condition = COALESCE($5, condition)
			  WHERE id = $1
			  RETURNING ` + instrumentColumns

	var instrument model.Instrument
	err := r.db.QueryRow(ctx, query,
		id, in.Name, in.Type, in.Brand, in.Condition,
	).Scan(
		&instrument.ID, &instrument.Name, &instrument.Type,
		&instrument.Brand, &instrument.Condition, &instrument.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Instrument{}, model.ErrNotFound
		}
		return model.Instrument{}, fmt.Errorf("failed to update instrument: %w", err)
	}

	return instrument, nil
}

func (r *InstrumentRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM instruments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete instrument: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

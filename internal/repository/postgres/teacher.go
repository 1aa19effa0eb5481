package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avoronov/musicschool-server/internal/model"
)

var _ model.TeacherStore = (*TeacherRepository)(nil)

type TeacherRepository struct {
	db *Connection
}

func NewTeacherRepository(db *Connection) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

const teacherColumns = `id, first_name, last_name, email, phone, specialization, created_at`

// Searchable fields: first_name, last_name, email, phone, specialization.
const teacherSearchFilter = `($1 = '' OR first_name ILIKE $2 OR last_name ILIKE $2 OR email ILIKE $2 OR phone ILIKE $2 OR specialization ILIKE $2)`

func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (model.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE id = $1`

	var teacher model.Teacher
	err := r.db.QueryRow(ctx, query, id).Scan(
		&teacher.ID, &teacher.FirstName, &teacher.LastName, &teacher.Email,
		&teacher.Phone, &teacher.Specialization, &teacher.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Teacher{}, model.ErrNotFound
		}
		return model.Teacher{}, fmt.Errorf("failed to get teacher by id: %w", err)
	}

	return teacher, nil
}

func (r *TeacherRepository) GetByEmail(ctx context.Context, email string) (model.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE email = $1`

	var teacher model.Teacher
	err := r.db.QueryRow(ctx, query, email).Scan(
		&teacher.ID, &teacher.FirstName, &teacher.LastName, &teacher.Email,
		&teacher.Phone, &teacher.Specialization, &teacher.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Teacher{}, model.ErrNotFound
		}
		return model.Teacher{}, fmt.Errorf("failed to get teacher by email: %w", err)
	}

	return teacher, nil
}

func (r *TeacherRepository) List(ctx context.Context, params model.ListParams) ([]model.Teacher, int64, error) {
	countQuery := `SELECT count(*) FROM teachers WHERE ` + teacherSearchFilter
	pattern := likePattern(params.Search)

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, params.Search, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count teachers: %w", err)
	}

	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE ` + teacherSearchFilter + `
			  ORDER BY id LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, params.Search, pattern, params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list teachers: %w", err)
	}
	defer rows.Close()

	var teachers []model.Teacher
	for rows.Next() {
		var teacher model.Teacher
		err := rows.Scan(
			&teacher.ID, &teacher.FirstName, &teacher.LastName, &teacher.Email,
			&teacher.Phone, &teacher.Specialization, &teacher.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan teacher: %w", err)
		}
		teachers = append(teachers, teacher)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read teachers: %w", err)
	}

	return teachers, total, nil
}

func (r *TeacherRepository) Create(ctx context.Context, in model.TeacherCreate) (model.Teacher, error) {
	query := `INSERT INTO teachers (first_name, last_name, email, phone, specialization)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + teacherColumns

	var teacher model.Teacher
	err := r.db.QueryRow(ctx, query,
		in.FirstName, in.LastName, in.Email, in.Phone, in.Specialization,
	).Scan(
		&teacher.ID, &teacher.FirstName, &teacher.LastName, &teacher.Email,
		&teacher.Phone, &teacher.Specialization, &teacher.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Teacher{}, &model.ConflictError{Field: "email", Value: in.Email}
		}
		return model.Teacher{}, fmt.Errorf("failed to create teacher: %w", err)
	}

	return teacher, nil
}

func (r *TeacherRepository) Update(ctx context.Context, id int64, in model.TeacherUpdate) (model.Teacher, error) {
	query := `UPDATE teachers SET
				first_name = COALESCE($2, first_name),
				last_name = COALESCE($3, last_name),
				email = COALESCE($4, email),
				phone = COALESCE($5, phone),
				specialization = COALESCE($6, specialization)
			  WHERE id = $1
			  RETURNING ` + teacherColumns

	var teacher model.Teacher
	err := r.db.QueryRow(ctx, query,
		id, in.FirstName, in.LastName, in.Email, in.Phone, in.Specialization,
	).Scan(
		&teacher.ID, &teacher.FirstName, &teacher.LastName, &teacher.Email,
		&teacher.Phone, &teacher.Specialization, &teacher.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Teacher{}, model.ErrNotFound
		}
		if isUniqueViolation(err) {
			email := ""
			if in.Email != nil {
				email = *in.Email
			}
			return model.Teacher{}, &model.ConflictError{Field: "email", Value: email}
		}
		return model.Teacher{}, fmt.Errorf("failed to update teacher: %w", err)
	}

	return teacher, nil
}

// Delete removes a teacher; dependent schedule rows cascade at the
// store level.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete teacher: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avoronov/musicschool-server/internal/model"
)

var _ model.StudentStore = (*StudentRepository)(nil)

type StudentRepository struct {
	db *Connection
}

func NewStudentRepository(db *Connection) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `id, first_name, last_name, email, phone, to_char(birth_date, 'YYYY-MM-DD'), created_at`

// Searchable fields: first_name, last_name, email, phone.
const studentSearchFilter = `($1 = '' OR first_name ILIKE $2 OR last_name ILIKE $2 OR email ILIKE $2 OR phone ILIKE $2)`

func (r *StudentRepository) GetByID(ctx context.Context, id int64) (model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	var student model.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.Email,
		&student.Phone, &student.BirthDate, &student.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Student{}, model.ErrNotFound
		}
		return model.Student{}, fmt.Errorf("failed to get student by id: %w", err)
	}

	return student, nil
}

func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`

	var student model.Student
	err := r.db.QueryRow(ctx, query, email).Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.Email,
		&student.Phone, &student.BirthDate, &student.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Student{}, model.ErrNotFound
		}
		return model.Student{}, fmt.Errorf("failed to get student by email: %w", err)
	}

	return student, nil
}

// List returns one page of students ordered by id along with the total
// count of the filtered set. Counting and paging share the same filter.
func (r *StudentRepository) List(ctx context.Context, params model.ListParams) ([]model.Student, int64, error) {
	countQuery := `SELECT count(*) FROM students WHERE ` + studentSearchFilter
	pattern := likePattern(params.Search)

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, params.Search, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	query := `SELECT ` + studentColumns + ` FROM students WHERE ` + studentSearchFilter + `
			  ORDER BY id LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, params.Search, pattern, params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var student model.Student
		err := rows.Scan(
			&student.ID, &student.FirstName, &student.LastName, &student.Email,
			&student.Phone, &student.BirthDate, &student.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read students: %w", err)
	}

	return students, total, nil
}

func (r *StudentRepository) Create(ctx context.Context, in model.StudentCreate) (model.Student, error) {
	query := `INSERT INTO students (first_name, last_name, email, phone, birth_date)
			  VALUES ($1, $2, $3, $4, $5::date)
			  RETURNING ` + studentColumns

	var student model.Student
	err := r.db.QueryRow(ctx, query,
		in.FirstName, in.LastName, in.Email, in.Phone, in.BirthDate,
	).Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.Email,
		&student.Phone, &student.BirthDate, &student.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Student{}, &model.ConflictError{Field: "email", Value: in.Email}
		}
		return model.Student{}, fmt.Errorf("failed to create student: %w", err)
	}

	return student, nil
}

// Update applies only the supplied fields; nil pointers keep the stored
// value.
func (r *StudentRepository) Update(ctx context.Context, id int64, in model.StudentUpdate) (model.Student, error) {
	query := `UPDATE students SET
				first_name = COALESCE($2, first_name),
				last_name = COALESCE($3, last_name),
				email = COALESCE($4, email),
				phone = COALESCE($5, phone),
				birth_date = COALESCE($6::date, birth_date)
			  WHERE id = $1
			  RETURNING ` + studentColumns

	var student model.Student
	err := r.db.QueryRow(ctx, query,
		id, in.FirstName, in.LastName, in.Email, in.Phone, in.BirthDate,
	).Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.Email,
		&student.Phone, &student.BirthDate, &student.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Student{}, model.ErrNotFound
		}
		if isUniqueViolation(err) {
			email := ""
			if in.Email != nil {
				email = *in.Email
			}
			return model.Student{}, &model.ConflictError{Field: "email", Value: email}
		}
		return model.Student{}, fmt.Errorf("failed to update student: %w", err)
	}

	return student, nil
}

// Delete removes a student; dependent schedule rows cascade at the
// store level.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

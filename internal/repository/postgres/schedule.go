package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/avoronov/musicschool-server/internal/model"
)

var _ model.ScheduleStore = (*ScheduleRepository)(nil)

type ScheduleRepository struct {
	db *Connection
}

func NewScheduleRepository(db *Connection) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
	}
}

const scheduleColumns = `s.id, s.student_id, s.teacher_id,
	st.first_name || ' ' || st.last_name,
	t.first_name || ' ' || t.last_name,
	s.day_of_week, to_char(s.start_time, 'HH24:MI:SS'), to_char(s.end_time, 'HH24:MI:SS'),
	s.room, s.created_at`

const scheduleJoin = `FROM schedule s
	JOIN students st ON st.id = s.student_id
	JOIN teachers t ON t.id = s.teacher_id`

// Searchable fields: day_of_week, room, plus the joined student and
// teacher names.
const scheduleSearchFilter = `($1 = '' OR s.day_of_week ILIKE $2 OR s.room ILIKE $2
	OR st.first_name ILIKE $2 OR st.last_name ILIKE $2
	OR t.first_name ILIKE $2 OR t.last_name ILIKE $2)`

func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (model.ScheduleEntry, error) {
	query := `SELECT ` + scheduleColumns + ` ` + scheduleJoin + ` WHERE s.id = $1`

	var entry model.ScheduleEntry
	err := r.db.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.StudentID, &entry.TeacherID,
		&entry.StudentName, &entry.TeacherName,
		&entry.DayOfWeek, &entry.StartTime, &entry.EndTime,
		&entry.Room, &entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ScheduleEntry{}, model.ErrNotFound
		}
		return model.ScheduleEntry{}, fmt.Errorf("failed to get schedule entry by id: %w", err)
	}

	return entry, nil
}

func (r *ScheduleRepository) List(ctx context.Context, params model.ListParams) ([]model.ScheduleEntry, int64, error) {
	countQuery := `SELECT count(*) ` + scheduleJoin + ` WHERE ` + scheduleSearchFilter
	pattern := likePattern(params.Search)

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, params.Search, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count schedule entries: %w", err)
	}

	query := `SELECT ` + scheduleColumns + ` ` + scheduleJoin + ` WHERE ` + scheduleSearchFilter + `
			  ORDER BY s.id LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, params.Search, pattern, params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []model.ScheduleEntry
	for rows.Next() {
		var entry model.ScheduleEntry
		err := rows.Scan(
			&entry.ID, &entry.StudentID, &entry.TeacherID,
			&entry.StudentName, &entry.TeacherName,
			&entry.DayOfWeek, &entry.StartTime, &entry.EndTime,
			&entry.Room, &entry.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read schedule entries: %w", err)
	}

	return entries, total, nil
}

func (r *ScheduleRepository) Create(ctx context.Context, in model.ScheduleCreate) (model.ScheduleEntry, error) {
	query := `INSERT INTO schedule (student_id, teacher_id, day_of_week, start_time, end_time, room)
			  VALUES ($1, $2, $3, $4::time, $5::time, $6)
			  RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		in.StudentID, in.TeacherID, in.DayOfWeek, in.StartTime, in.EndTime, in.Room,
	).Scan(&id)
	if err != nil {
		if ref, ok := r.badReference(err, in.StudentID, in.TeacherID); ok {
			return model.ScheduleEntry{}, ref
		}
		return model.ScheduleEntry{}, fmt.Errorf("failed to create schedule entry: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *ScheduleRepository) Update(ctx context.Context, id int64, in model.ScheduleUpdate) (model.ScheduleEntry, error) {
	query := `UPDATE schedule SET
				student_id = COALESCE($2, student_id),
				teacher_id = COALESCE($3, teacher_id),
				day_of_week = COALESCE($4, day_of_week),
				start_time = COALESCE($5::time, start_time),
				end_time = COALESCE($6::time, end_time),
				room = COALESCE($7, room)
			  WHERE id = $1
			  RETURNING id`

	var updatedID int64
	err := r.db.QueryRow(ctx, query,
		id, in.StudentID, in.TeacherID, in.DayOfWeek, in.StartTime, in.EndTime, in.Room,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ScheduleEntry{}, model.ErrNotFound
		}
		var studentID, teacherID int64
		if in.StudentID != nil {
			studentID = *in.StudentID
		}
		if in.TeacherID != nil {
			teacherID = *in.TeacherID
		}
		if ref, ok := r.badReference(err, studentID, teacherID); ok {
			return model.ScheduleEntry{}, ref
		}
		return model.ScheduleEntry{}, fmt.Errorf("failed to update schedule entry: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

func (r *ScheduleRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM schedule WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// badReference translates a foreign key violation into the domain error
// naming the missing side of the relation.
func (r *ScheduleRepository) badReference(err error, studentID, teacherID int64) (error, bool) {
	constraint, ok := foreignKeyConstraint(err)
	if !ok {
		return nil, false
	}
	if strings.Contains(constraint, "teacher") {
		return &model.BadReferenceError{Entity: "teacher", ID: teacherID}, true
	}
	return &model.BadReferenceError{Entity: "student", ID: studentID}, true
}

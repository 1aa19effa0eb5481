package model

import (
	"context"
	"time"
)

// StudentStore defines persistence operations for students.
type StudentStore interface {
	GetByID(ctx context.Context, id int64) (Student, error)
	GetByEmail(ctx context.Context, email string) (Student, error)
	List(ctx context.Context, params ListParams) ([]Student, int64, error)
	Create(ctx context.Context, in StudentCreate) (Student, error)
	Update(ctx context.Context, id int64, in StudentUpdate) (Student, error)
	Delete(ctx context.Context, id int64) error
}

// Student represents an enrolled pupil.
type Student struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	BirthDate string
	CreatedAt time.Time
}

// StudentCreate carries the fields of a new student.
type StudentCreate struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	BirthDate string
}

// StudentUpdate carries a partial update. Nil means the field was not
// provided and keeps its stored value.
type StudentUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	BirthDate *string
}

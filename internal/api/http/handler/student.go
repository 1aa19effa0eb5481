package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/avoronov/musicschool-server/internal/logger"
	"github.com/avoronov/musicschool-server/internal/model"
	"github.com/avoronov/musicschool-server/internal/validate"
)

// StudentService defines student operations used by the handler.
type StudentService interface {
	List(ctx context.Context, params model.ListParams) ([]model.Student, int64, error)
	GetByID(ctx context.Context, id int64) (model.Student, error)
	Create(ctx context.Context, in model.StudentCreate) (model.Student, error)
	Update(ctx context.Context, id int64, in model.StudentUpdate) (model.Student, error)
	Delete(ctx context.Context, id int64) error
}

// Student handles HTTP endpoints for students.
type Student struct {
	service StudentService
	logger  *logger.Logger
}

// NewStudent creates a new Student handler.
func NewStudent(service StudentService, logger *logger.Logger) *Student {
	return &Student{
		service: service,
		logger:  logger,
	}
}

const studentNotFound = "Student not found"

type studentPayload struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	BirthDate *string `json:"birth_date"`
}

// validate checks each provided field; when required is set, absent
// fields are violations too.
func (p *studentPayload) validate(required bool) error {
	errs := validate.Errors{}
	checkString(errs, "first_name", p.FirstName, required, func(v string) {
		validate.Length(errs, "first_name", v, 2, 100)
	})
	checkString(errs, "last_name", p.LastName, required, func(v string) {
		validate.Length(errs, "last_name", v, 2, 100)
	})
	checkString(errs, "email", p.Email, required, func(v string) {
		validate.Email(errs, "email", v)
	})
	checkString(errs, "phone", p.Phone, required, func(v string) {
		validate.Phone(errs, "phone", v)
	})
	checkString(errs, "birth_date", p.BirthDate, required, func(v string) {
		validate.Date(errs, "birth_date", v)
	})
	return errs.OrNil()
}

type studentResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	BirthDate string    `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
}

func newStudentResponse(s model.Student) studentResponse {
	return studentResponse{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		Phone:     s.Phone,
		BirthDate: s.BirthDate,
		CreatedAt: s.CreatedAt,
	}
}

// List returns one page of students, optionally filtered by search.
func (h *Student) List(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		handleError(w, h.logger, err, studentNotFound)
		return
	}

	students, total, err := h.service.List(r.Context(), params)
	if err != nil {
		handleError(w, h.logger, err, studentNotFound)
		return
	}

	items := make([]studentResponse, 0, len(students))
	for _, s := range students {
		items = append(items, newStudentResponse(s))
	}

	writeJSON(w, http.StatusOK, newPageResponse(items, total, params))
}

func (h *Student) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, studentNotFound)
		return
	}

	student, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err, studentNotFound)
		return
	}

	writeJSON(w, http.StatusOK, newStudentResponse(student))
}

func (h *Student) Create(w http.ResponseWriter, r *http.Request) {
	var payload studentPayload
	if err := decodeJSON(r, &payload); err != nil {
		handleError(w, h.logger, err, studentNotFound)
		return
	}
	if err := payload.validate(true); err != nil {
		handleError(w, h.logger, err, studentNotFound)
		return
	}

	student, err := h.service.Create(r.Context(), model.StudentCreate{
		FirstName: *payload.FirstName,
		LastName:  *payload.LastName,
		Email:     *payload.Email,
		Phone:     *payload.Phone,
		BirthDate: *payload.BirthDate,
	})
	if err != nil {
		handleError(w, h.logger, err, studentNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, newStudentResponse(student))
}

// Update applies the provided fields only; absent fields keep their
// stored values.
func (h *Student) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, studentNotFound)
		return
	}

	var payload studentPayload
	if err := decodeJSON(r, &payload); err != nil {
		handleError(w, h.logger, err, studentNotFound)
		return
	}
	if err := payload.validate(false); err != nil {
		handleError(w, h.logger, err, studentNotFound)
		return
	}

	student, err := h.service.Update(r.Context(), id, model.StudentUpdate{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		BirthDate: payload.BirthDate,
	})
	if err != nil {
		handleError(w, h.logger, err, studentNotFound)
		return
	}

	writeJSON(w, http.StatusOK, newStudentResponse(student))
}

func (h *Student) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, studentNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, h.logger, err, studentNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

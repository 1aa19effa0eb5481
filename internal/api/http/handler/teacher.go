package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/avoronov/musicschool-server/internal/logger"
	"github.com/avoronov/musicschool-server/internal/model"
	"github.com/avoronov/musicschool-server/internal/validate"
)

// TeacherService defines teacher operations used by the handler.
type TeacherService interface {
	List(ctx context.Context, params model.ListParams) ([]model.Teacher, int64, error)
	GetByID(ctx context.Context, id int64) (model.Teacher, error)
	Create(ctx context.Context, in model.TeacherCreate) (model.Teacher, error)
	Update(ctx context.Context, id int64, in model.TeacherUpdate) (model.Teacher, error)
	Delete(ctx context.Context, id int64) error
}

// Teacher handles HTTP endpoints for teachers.
type Teacher struct {
	service TeacherService
	logger  *logger.Logger
}

// NewTeacher creates a new Teacher handler.
func NewTeacher(service TeacherService, logger *logger.Logger) *Teacher {
	return &Teacher{
		service: service,
		logger:  logger,
	}
}

const teacherNotFound = "Teacher not found"

type teacherPayload struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Specialization *string `json:"specialization"`
}

func (p *teacherPayload) validate(required bool) error {
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
	checkString(errs, "specialization", p.Specialization, required, func(v string) {
		validate.Length(errs, "specialization", v, 2, 100)
	})
	return errs.OrNil()
}

type teacherResponse struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Specialization string    `json:"specialization"`
	CreatedAt      time.Time `json:"created_at"`
}

func newTeacherResponse(t model.Teacher) teacherResponse {
	return teacherResponse{
		ID:             t.ID,
		FirstName:      t.FirstName,
		LastName:       t.LastName,
		Email:          t.Email,
		Phone:          t.Phone,
		Specialization: t.Specialization,
		CreatedAt:      t.CreatedAt,
	}
}

func (h *Teacher) List(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		handleError(w, h.logger, err, teacherNotFound)
		return
	}

	teachers, total, err := h.service.List(r.Context(), params)
	if err != nil {
		handleError(w, h.logger, err, teacherNotFound)
		return
	}

	items := make([]teacherResponse, 0, len(teachers))
	for _, t := range teachers {
		items = append(items, newTeacherResponse(t))
	}

	writeJSON(w, http.StatusOK, newPageResponse(items, total, params))
}

func (h *Teacher) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, teacherNotFound)
		return
	}

	teacher, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err, teacherNotFound)
		return
	}

	writeJSON(w, http.StatusOK, newTeacherResponse(teacher))
}

func (h *Teacher) Create(w http.ResponseWriter, r *http.Request) {
	var payload teacherPayload
	if err := decodeJSON(r, &payload); err != nil {
		handleError(w, h.logger, err, teacherNotFound)
		return
	}
	if err := payload.validate(true); err != nil {
		handleError(w, h.logger, err, teacherNotFound)
		return
	}

	teacher, err := h.service.Create(r.Context(), model.TeacherCreate{
		FirstName:      *payload.FirstName,
		LastName:       *payload.LastName,
		Email:          *payload.Email,
		Phone:          *payload.Phone,
		Specialization: *payload.Specialization,
	})
	if err != nil {
		handleError(w, h.logger, err, teacherNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, newTeacherResponse(teacher))
}

func (h *Teacher) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, teacherNotFound)
		return
	}

	var payload teacherPayload
	if err := decodeJSON(r, &payload); err != nil {
		handleError(w, h.logger, err, teacherNotFound)
		return
	}
	if err := payload.validate(false); err != nil {
		handleError(w, h.logger, err, teacherNotFound)
		return
	}

	teacher, err := h.service.Update(r.Context(), id, model.TeacherUpdate{
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		Email:          payload.Email,
		Phone:          payload.Phone,
		Specialization: payload.Specialization,
	})
	if err != nil {
		handleError(w, h.logger, err, teacherNotFound)
		return
	}

	writeJSON(w, http.StatusOK, newTeacherResponse(teacher))
}

func (h *Teacher) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, teacherNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, h.logger, err, teacherNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

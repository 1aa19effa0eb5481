package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/avoronov/musicschool-server/internal/logger"
	"github.com/avoronov/musicschool-server/internal/model"
	"github.com/avoronov/musicschool-server/internal/validate"
)

// ScheduleService defines lesson slot operations used by the handler.
type ScheduleService interface {
	List(ctx context.Context, params model.ListParams) ([]model.ScheduleEntry, int64, error)
	GetByID(ctx context.Context, id int64) (model.ScheduleEntry, error)
	Create(ctx context.Context, in model.ScheduleCreate) (model.ScheduleEntry, error)
	Update(ctx context.Context, id int64, in model.ScheduleUpdate) (model.ScheduleEntry, error)
	Delete(ctx context.Context, id int64) error
}

// Schedule handles HTTP endpoints for the weekly lesson schedule.
type Schedule struct {
	service ScheduleService
	logger  *logger.Logger
}

// NewSchedule creates a new Schedule handler.
func NewSchedule(service ScheduleService, logger *logger.Logger) *Schedule {
	return &Schedule{
		service: service,
		logger:  logger,
	}
}

const scheduleNotFound = "Schedule not found"

type schedulePayload struct {
	StudentID *int64  `json:"student_id"`
	TeacherID *int64  `json:"teacher_id"`
	DayOfWeek *string `json:"day_of_week"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Room      *string `json:"room"`
}

func (p *schedulePayload) validate(required bool) error {
	errs := validate.Errors{}
	if required && p.StudentID == nil {
		errs.Add("student_id", "field required")
	}
	if required && p.TeacherID == nil {
		errs.Add("teacher_id", "field required")
	}
	checkString(errs, "day_of_week", p.DayOfWeek, required, func(v string) {
		validate.Length(errs, "day_of_week", v, 2, 20)
	})
	checkString(errs, "start_time", p.StartTime, required, func(v string) {
		validate.TimeOfDay(errs, "start_time", v)
	})
	checkString(errs, "end_time", p.EndTime, required, func(v string) {
		validate.TimeOfDay(errs, "end_time", v)
	})
	checkString(errs, "room", p.Room, required, func(v string) {
		validate.Length(errs, "room", v, 1, 50)
	})
	return errs.OrNil()
}

type scheduleResponse struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"student_id"`
	TeacherID   int64     `json:"teacher_id"`
	StudentName string    `json:"student_name"`
	TeacherName string    `json:"teacher_name"`
	DayOfWeek   string    `json:"day_of_week"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Room        string    `json:"room"`
	CreatedAt   time.Time `json:"created_at"`
}

func newScheduleResponse(e model.ScheduleEntry) scheduleResponse {
	return scheduleResponse{
		ID:          e.ID,
		StudentID:   e.StudentID,
		TeacherID:   e.TeacherID,
		StudentName: e.StudentName,
		TeacherName: e.TeacherName,
		DayOfWeek:   e.DayOfWeek,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Room:        e.Room,
		CreatedAt:   e.CreatedAt,
	}
}

func (h *Schedule) List(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		handleError(w, h.logger, err, scheduleNotFound)
		return
	}

	entries, total, err := h.service.List(r.Context(), params)
	if err != nil {
		handleError(w, h.logger, err, scheduleNotFound)
		return
	}

	items := make([]scheduleResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, newScheduleResponse(e))
	}

	writeJSON(w, http.StatusOK, newPageResponse(items, total, params))
}

func (h *Schedule) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, scheduleNotFound)
		return
	}

	entry, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err, scheduleNotFound)
		return
	}

	writeJSON(w, http.StatusOK, newScheduleResponse(entry))
}

func (h *Schedule) Create(w http.ResponseWriter, r *http.Request) {
	var payload schedulePayload
	if err := decodeJSON(r, &payload); err != nil {
		handleError(w, h.logger, err, scheduleNotFound)
		return
	}
	if err := payload.validate(true); err != nil {
		handleError(w, h.logger, err, scheduleNotFound)
		return
	}

	entry, err := h.service.Create(r.Context(), model.ScheduleCreate{
		StudentID: *payload.StudentID,
		TeacherID: *payload.TeacherID,
		DayOfWeek: *payload.DayOfWeek,
		StartTime: *payload.StartTime,
		EndTime:   *payload.EndTime,
		Room:      *payload.Room,
	})
	if err != nil {
		handleError(w, h.logger, err, scheduleNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, newScheduleResponse(entry))
}

func (h *Schedule) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, scheduleNotFound)
		return
	}

	var payload schedulePayload
	if err := decodeJSON(r, &payload); err != nil {
		handleError(w, h.logger, err, scheduleNotFound)
		return
	}
	if err := payload.validate(false); err != nil {
		handleError(w, h.logger, err, scheduleNotFound)
		return
	}

	entry, err := h.service.Update(r.Context(), id, model.ScheduleUpdate{
		StudentID: payload.StudentID,
		TeacherID: payload.TeacherID,
		DayOfWeek: payload.DayOfWeek,
		StartTime: payload.StartTime,
		EndTime:   payload.EndTime,
		Room:      payload.Room,
	})
	if err != nil {
		handleError(w, h.logger, err, scheduleNotFound)
		return
	}

	writeJSON(w, http.StatusOK, newScheduleResponse(entry))
}

func (h *Schedule) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, scheduleNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, h.logger, err, scheduleNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

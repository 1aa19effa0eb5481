package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/musicschool-server/internal/logger"
	"github.com/avoronov/musicschool-server/internal/model"
)

type scheduleServiceMock struct {
	mock.Mock
}

func (m *scheduleServiceMock) List(ctx context.Context, params model.ListParams) ([]model.ScheduleEntry, int64, error) {
	args := m.Called(ctx, params)
	var entries []model.ScheduleEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]model.ScheduleEntry)
	}
	return entries, args.Get(1).(int64), args.Error(2)
}

func (m *scheduleServiceMock) GetByID(ctx context.Context, id int64) (model.ScheduleEntry, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.ScheduleEntry), args.Error(1)
}

func (m *scheduleServiceMock) Create(ctx context.Context, in model.ScheduleCreate) (model.ScheduleEntry, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.ScheduleEntry), args.Error(1)
}

func (m *scheduleServiceMock) Update(ctx context.Context, id int64, in model.ScheduleUpdate) (model.ScheduleEntry, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(model.ScheduleEntry), args.Error(1)
}

func (m *scheduleServiceMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestSchedule_Create(t *testing.T) {
	svc := &scheduleServiceMock{}
	svc.On("Create", mock.Anything, model.ScheduleCreate{
		StudentID: 1,
		TeacherID: 2,
		DayOfWeek: "Monday",
		StartTime: "14:00:00",
		EndTime:   "14:45:00",
		Room:      "101",
	}).Return(model.ScheduleEntry{
		ID:          10,
		StudentID:   1,
		TeacherID:   2,
		StudentName: "Anna Petrova",
		TeacherName: "Igor Sokolov",
		DayOfWeek:   "Monday",
	}, nil)

	h := NewSchedule(svc, logger.New(0))

	req := httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader(
		`{"student_id":1,"teacher_id":2,"day_of_week":"Monday","start_time":"14:00:00","end_time":"14:45:00","room":"101"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Anna Petrova", body["student_name"])
	assert.Equal(t, "Igor Sokolov", body["teacher_name"])
}

func TestSchedule_Create_UnknownTeacher(t *testing.T) {
	svc := &scheduleServiceMock{}
	svc.On("Create", mock.Anything, mock.AnythingOfType("model.ScheduleCreate")).
		Return(model.ScheduleEntry{}, &model.BadReferenceError{Entity: "teacher", ID: 404})

	h := NewSchedule(svc, logger.New(0))

	req := httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader(
		`{"student_id":1,"teacher_id":404,"day_of_week":"Monday","start_time":"14:00","end_time":"14:45","room":"101"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Teacher not found", decodeBody(t, rec)["detail"])
}

func TestSchedule_Create_UnknownStudent(t *testing.T) {
	svc := &scheduleServiceMock{}
	svc.On("Create", mock.Anything, mock.AnythingOfType("model.ScheduleCreate")).
		Return(model.ScheduleEntry{}, &model.BadReferenceError{Entity: "student", ID: 404})

	h := NewSchedule(svc, logger.New(0))

	req := httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader(
		`{"student_id":404,"teacher_id":2,"day_of_week":"Monday","start_time":"14:00","end_time":"14:45","room":"101"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Student not found", decodeBody(t, rec)["detail"])
}

func TestSchedule_Create_InvalidTimes(t *testing.T) {
	svc := &scheduleServiceMock{}
	h := NewSchedule(svc, logger.New(0))

	req := httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader(
		`{"student_id":1,"teacher_id":2,"day_of_week":"Monday","start_time":"2pm","end_time":"25:00","room":"101"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	detail := decodeBody(t, rec)["detail"].(map[string]any)
	assert.Contains(t, detail, "start_time")
	assert.Contains(t, detail, "end_time")
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSchedule_Update_Reassign(t *testing.T) {
	teacherID := int64(3)
	svc := &scheduleServiceMock{}
	svc.On("Update", mock.Anything, int64(10), model.ScheduleUpdate{TeacherID: &teacherID}).
		Return(model.ScheduleEntry{ID: 10, TeacherID: 3, TeacherName: "Olga Lebedeva"}, nil)

	h := NewSchedule(svc, logger.New(0))

	req := withID(httptest.NewRequest(http.MethodPut, "/api/schedule/10",
		strings.NewReader(`{"teacher_id":3}`)), "10")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Olga Lebedeva", decodeBody(t, rec)["teacher_name"])
}

func TestSchedule_Get_NotFound(t *testing.T) {
	svc := &scheduleServiceMock{}
	svc.On("GetByID", mock.Anything, int64(404)).Return(model.ScheduleEntry{}, model.ErrNotFound)

	h := NewSchedule(svc, logger.New(0))

	req := withID(httptest.NewRequest(http.MethodGet, "/api/schedule/404", nil), "404")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Schedule not found", decodeBody(t, rec)["detail"])
}

func TestSchedule_List(t *testing.T) {
	svc := &scheduleServiceMock{}
	svc.On("List", mock.Anything, model.ListParams{Page: 1, PerPage: 10, Search: "monday"}).
		Return([]model.ScheduleEntry{{ID: 10, DayOfWeek: "Monday"}}, int64(1), nil)

	h := NewSchedule(svc, logger.New(0))

	req := httptest.NewRequest(http.MethodGet, "/api/schedule?search=monday", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total"])
	assert.Len(t, body["items"], 1)
}

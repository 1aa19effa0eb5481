package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/musicschool-server/internal/logger"
	"github.com/avoronov/musicschool-server/internal/model"
)

type studentServiceMock struct {
	mock.Mock
}

func (m *studentServiceMock) List(ctx context.Context, params model.ListParams) ([]model.Student, int64, error) {
	args := m.Called(ctx, params)
	var students []model.Student
	if args.Get(0) != nil {
		students = args.Get(0).([]model.Student)
	}
	return students, args.Get(1).(int64), args.Error(2)
}

func (m *studentServiceMock) GetByID(ctx context.Context, id int64) (model.Student, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Student), args.Error(1)
}

func (m *studentServiceMock) Create(ctx context.Context, in model.StudentCreate) (model.Student, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Student), args.Error(1)
}

func (m *studentServiceMock) Update(ctx context.Context, id int64, in model.StudentUpdate) (model.Student, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(model.Student), args.Error(1)
}

func (m *studentServiceMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func withID(r *http.Request, id string) *http.Request {
	return mux.SetURLVars(r, map[string]string{"id": id})
}

func TestStudent_List_Envelope(t *testing.T) {
	svc := &studentServiceMock{}
	svc.On("List", mock.Anything, model.ListParams{Page: 1, PerPage: 10}).
		Return([]model.Student{{ID: 1, FirstName: "Anna"}}, int64(23), nil)

	h := NewStudent(svc, logger.New(0))

	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(23), body["total"])
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(10), body["per_page"])
	assert.Equal(t, float64(3), body["pages"])
	assert.Len(t, body["items"], 1)
}

func TestStudent_List_EmptyPage(t *testing.T) {
	svc := &studentServiceMock{}
	svc.On("List", mock.Anything, model.ListParams{Page: 1, PerPage: 10}).
		Return(nil, int64(0), nil)

	h := NewStudent(svc, logger.New(0))

	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["pages"])
	items, ok := body["items"].([]any)
	require.True(t, ok)
	assert.Empty(t, items)
}

func TestStudent_List_QueryParams(t *testing.T) {
	svc := &studentServiceMock{}
	svc.On("List", mock.Anything, model.ListParams{Page: 3, PerPage: 25, Search: "ann"}).
		Return([]model.Student{}, int64(0), nil)

	h := NewStudent(svc, logger.New(0))

	req := httptest.NewRequest(http.MethodGet, "/api/students?page=3&per_page=25&search=ann", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestStudent_List_InvalidPagination(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{name: "zero page", query: "page=0", field: "page"},
		{name: "non-numeric page", query: "page=abc", field: "page"},
		{name: "per_page above cap", query: "per_page=101", field: "per_page"},
		{name: "zero per_page", query: "per_page=0", field: "per_page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &studentServiceMock{}
			h := NewStudent(svc, logger.New(0))

			req := httptest.NewRequest(http.MethodGet, "/api/students?"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.List(rec, req)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			detail := decodeBody(t, rec)["detail"].(map[string]any)
			assert.Contains(t, detail, tt.field)
			svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
		})
	}
}

func TestStudent_Get(t *testing.T) {
	svc := &studentServiceMock{}
	svc.On("GetByID", mock.Anything, int64(5)).
		Return(model.Student{ID: 5, FirstName: "Anna", BirthDate: "2010-06-15"}, nil)

	h := NewStudent(svc, logger.New(0))

	req := withID(httptest.NewRequest(http.MethodGet, "/api/students/5", nil), "5")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Anna", body["first_name"])
	assert.Equal(t, "2010-06-15", body["birth_date"])
}

func TestStudent_Get_NotFound(t *testing.T) {
	svc := &studentServiceMock{}
	svc.On("GetByID", mock.Anything, int64(404)).Return(model.Student{}, model.ErrNotFound)

	h := NewStudent(svc, logger.New(0))

	req := withID(httptest.NewRequest(http.MethodGet, "/api/students/404", nil), "404")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Student not found", decodeBody(t, rec)["detail"])
}

func TestStudent_Create(t *testing.T) {
	svc := &studentServiceMock{}
	svc.On("Create", mock.Anything, model.StudentCreate{
		FirstName: "Anna",
		LastName:  "Petrova",
		Email:     "anna@school.edu",
		Phone:     "+12025550134",
		BirthDate: "2010-06-15",
	}).Return(model.Student{ID: 1, FirstName: "Anna"}, nil)

	h := NewStudent(svc, logger.New(0))

	req := httptest.NewRequest(http.MethodPost, "/api/students", strings.NewReader(
		`{"first_name":"Anna","last_name":"Petrova","email":"anna@school.edu","phone":"+12025550134","birth_date":"2010-06-15"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["id"])
}

func TestStudent_Create_MissingFields(t *testing.T) {
	svc := &studentServiceMock{}
	h := NewStudent(svc, logger.New(0))

	req := httptest.NewRequest(http.MethodPost, "/api/students",
		strings.NewReader(`{"first_name":"Anna"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	detail := decodeBody(t, rec)["detail"].(map[string]any)
	assert.Contains(t, detail, "last_name")
	assert.Contains(t, detail, "email")
	assert.Contains(t, detail, "phone")
	assert.Contains(t, detail, "birth_date")
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStudent_Create_DuplicateEmail(t *testing.T) {
	svc := &studentServiceMock{}
	svc.On("Create", mock.Anything, mock.AnythingOfType("model.StudentCreate")).
		Return(model.Student{}, &model.ConflictError{Field: "email", Value: "anna@school.edu"})

	h := NewStudent(svc, logger.New(0))

	req := httptest.NewRequest(http.MethodPost, "/api/students", strings.NewReader(
		`{"first_name":"Anna","last_name":"Petrova","email":"anna@school.edu","phone":"+12025550134","birth_date":"2010-06-15"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already exists", decodeBody(t, rec)["detail"])
}

func TestStudent_Update_Partial(t *testing.T) {
	phone := "+12025550199"
	svc := &studentServiceMock{}
	svc.On("Update", mock.Anything, int64(5), model.StudentUpdate{Phone: &phone}).
		Return(model.Student{ID: 5, Phone: phone}, nil)

	h := NewStudent(svc, logger.New(0))

	req := withID(httptest.NewRequest(http.MethodPut, "/api/students/5",
		strings.NewReader(`{"phone":"+12025550199"}`)), "5")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, phone, decodeBody(t, rec)["phone"])
}

func TestStudent_Update_InvalidProvidedField(t *testing.T) {
	svc := &studentServiceMock{}
	h := NewStudent(svc, logger.New(0))

	req := withID(httptest.NewRequest(http.MethodPut, "/api/students/5",
		strings.NewReader(`{"email":"not-an-email"}`)), "5")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	detail := decodeBody(t, rec)["detail"].(map[string]any)
	assert.Contains(t, detail, "email")
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestStudent_Delete(t *testing.T) {
	svc := &studentServiceMock{}
	svc.On("Delete", mock.Anything, int64(5)).Return(nil)

	h := NewStudent(svc, logger.New(0))

	req := withID(httptest.NewRequest(http.MethodDelete, "/api/students/5", nil), "5")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestStudent_Delete_NotFound(t *testing.T) {
	svc := &studentServiceMock{}
	svc.On("Delete", mock.Anything, int64(404)).Return(model.ErrNotFound)

	h := NewStudent(svc, logger.New(0))

	req := withID(httptest.NewRequest(http.MethodDelete, "/api/students/404", nil), "404")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Student not found", decodeBody(t, rec)["detail"])
}

// Package router wires handlers and middleware into the HTTP API.
package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avoronov/musicschool-server/internal/api/http/handler"
	"github.com/avoronov/musicschool-server/internal/api/http/middleware"
)

// Router assembles the HTTP API from its handlers and middleware.
type Router struct {
	auth        *handler.Auth
	students    *handler.Student
	teachers    *handler.Teacher
	instruments *handler.Instrument
	schedule    *handler.Schedule

	authenticate *middleware.Authenticate
	logging      *middleware.Logging
	cors         *middleware.CORS
}

// New creates a new Router instance.
func New(
	auth *handler.Auth,
	students *handler.Student,
	teachers *handler.Teacher,
	instruments *handler.Instrument,
	schedule *handler.Schedule,
	authenticate *middleware.Authenticate,
	logging *middleware.Logging,
	cors *middleware.CORS,
) *Router {
	return &Router{
		auth:         auth,
		students:     students,
		teachers:     teachers,
		instruments:  instruments,
		schedule:     schedule,
		authenticate: authenticate,
		logging:      logging,
		cors:         cors,
	}
}

// Register builds the route table. Register, login and health are open;
// everything else sits behind the bearer token gate.
func (r *Router) Register() http.Handler {
	m := mux.NewRouter()

	m.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	api := m.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/register", r.auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", r.auth.Login).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(r.authenticate.Middleware)
	protected.HandleFunc("/auth/me", r.auth.Me).Methods(http.MethodGet)

	registerCRUD(protected, "/students", crudHandlers{
		list: r.students.List, get: r.students.Get, create: r.students.Create,
		update: r.students.Update, delete: r.students.Delete,
	})
	registerCRUD(protected, "/teachers", crudHandlers{
		list: r.teachers.List, get: r.teachers.Get, create: r.teachers.Create,
		update: r.teachers.Update, delete: r.teachers.Delete,
	})
	registerCRUD(protected, "/instruments", crudHandlers{
		list: r.instruments.List, get: r.instruments.Get, create: r.instruments.Create,
		update: r.instruments.Update, delete: r.instruments.Delete,
	})
	registerCRUD(protected, "/schedule", crudHandlers{
		list: r.schedule.List, get: r.schedule.Get, create: r.schedule.Create,
		update: r.schedule.Update, delete: r.schedule.Delete,
	})

	// CORS sits outside the mux so preflight requests are answered
	// before route matching; logging wraps everything.
	return r.logging.Middleware(r.cors.Middleware(m))
}

type crudHandlers struct {
	list   http.HandlerFunc
	get    http.HandlerFunc
	create http.HandlerFunc
	update http.HandlerFunc
	delete http.HandlerFunc
}

func registerCRUD(m *mux.Router, prefix string, h crudHandlers) {
	m.HandleFunc(prefix, h.list).Methods(http.MethodGet)
	m.HandleFunc(prefix, h.create).Methods(http.MethodPost)
	m.HandleFunc(prefix+"/{id}", h.get).Methods(http.MethodGet)
	m.HandleFunc(prefix+"/{id}", h.update).Methods(http.MethodPut)
	m.HandleFunc(prefix+"/{id}", h.delete).Methods(http.MethodDelete)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}

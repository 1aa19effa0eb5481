package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/avoronov/musicschool-server/internal/logger"
	"github.com/avoronov/musicschool-server/internal/model"
	"github.com/avoronov/musicschool-server/internal/validate"
)

// InstrumentService defines instrument operations used by the handler.
type InstrumentService interface {
	List(ctx context.Context, params model.ListParams) ([]model.Instrument, int64, error)
	GetByID(ctx context.Context, id int64) (model.Instrument, error)
	Create(ctx context.Context, in model.InstrumentCreate) (model.Instrument, error)
	Update(ctx context.Context, id int64, in model.InstrumentUpdate) (model.Instrument, error)
	Delete(ctx context.Context, id int64) error
}

// Instrument handles HTTP endpoints for instruments.
type Instrument struct {
	service InstrumentService
	logger  *logger.Logger
}

// NewInstrument creates a new Instrument handler.
func NewInstrument(service InstrumentService, logger *logger.Logger) *Instrument {
	return &Instrument{
		service: service,
		logger:  logger,
	}
}

const instrumentNotFound = "Instrument not found"

type instrumentPayload struct {
	Name      *string `json:"name"`
	Type      *string `json:"type"`
	Brand     *string `json:"brand"`
	Condition *string `json:"condition"`
}

func (p *instrumentPayload) validate(required bool) error {
	errs := validate.Errors{}
	checkString(errs, "name", p.Name, required, func(v string) {
		validate.Length(errs, "name", v, 2, 100)
	})
	checkString(errs, "type", p.Type, required, func(v string) {
		validate.Length(errs, "type", v, 2, 50)
	})
	checkString(errs, "brand", p.Brand, required, func(v string) {
		validate.Length(errs, "brand", v, 2, 100)
	})
	checkString(errs, "condition", p.Condition, required, func(v string) {
		validate.Length(errs, "condition", v, 2, 50)
	})
	return errs.OrNil()
}

type instrumentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Brand     string    `json:"brand"`
	Condition string    `json:"condition"`
	CreatedAt time.Time `json:"created_at"`
}

func newInstrumentResponse(i model.Instrument) instrumentResponse {
	return instrumentResponse{
		ID:        i.ID,
		Name:      i.Name,
		Type:      i.Type,
		Brand:     i.Brand,
		Condition: i.Condition,
		CreatedAt: i.CreatedAt,
	}
}

func (h *Instrument) List(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		handleError(w, h.logger, err, instrumentNotFound)
		return
	}

	instruments, total, err := h.service.List(r.Context(), params)
	if err != nil {
		handleError(w, h.logger, err, instrumentNotFound)
		return
	}

	items := make([]instrumentResponse, 0, len(instruments))
	for _, i := range instruments {
		items = append(items, newInstrumentResponse(i))
	}

	writeJSON(w, http.StatusOK, newPageResponse(items, total, params))
}

func (h *Instrument) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, instrumentNotFound)
		return
	}

	instrument, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err, instrumentNotFound)
		return
	}

	writeJSON(w, http.StatusOK, newInstrumentResponse(instrument))
}

func (h *Instrument) Create(w http.ResponseWriter, r *http.Request) {
	var payload instrumentPayload
	if err := decodeJSON(r, &payload); err != nil {
		handleError(w, h.logger, err, instrumentNotFound)
		return
	}
	if err := payload.validate(true); err != nil {
		handleError(w, h.logger, err, instrumentNotFound)
		return
	}

	instrument, err := h.service.Create(r.Context(), model.InstrumentCreate{
		Name:      *payload.Name,
		Type:      *payload.Type,
		Brand:     *payload.Brand,
		Condition: *payload.Condition,
	})
	if err != nil {
		handleError(w, h.logger, err, instrumentNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, newInstrumentResponse(instrument))
}

func (h *Instrument) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, instrumentNotFound)
		return
	}

	var payload instrumentPayload
	if err := decodeJSON(r, &payload); err != nil {
		handleError(w, h.logger, err, instrumentNotFound)
		return
	}
	if err := payload.validate(false); err != nil {
		handleError(w, h.logger, err, instrumentNotFound)
		return
	}

	instrument, err := h.service.Update(r.Context(), id, model.InstrumentUpdate{
		Name:      payload.Name,
		Type:      payload.Type,
		Brand:     payload.Brand,
		Condition: payload.Condition,
	})
	if err != nil {
		handleError(w, h.logger, err, instrumentNotFound)
		return
	}

	writeJSON(w, http.StatusOK, newInstrumentResponse(instrument))
}

func (h *Instrument) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, instrumentNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, h.logger, err, instrumentNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

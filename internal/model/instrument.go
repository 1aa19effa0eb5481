package model

import (
	"context"
	"time"
)

// InstrumentStore defines persistence operations for instruments.
type InstrumentStore interface {
	GetByID(ctx context.Context, id int64) (Instrument, error)
	List(ctx context.Context, params ListParams) ([]Instrument, int64, error)
	Create(ctx context.Context, in InstrumentCreate) (Instrument, error)
	Update(ctx context.Context, id int64, in InstrumentUpdate) (Instrument, error)
	Delete(ctx context.Context, id int64) error
}

// Instrument represents a school-owned instrument.
type Instrument struct {
	ID        int64
	Name      string
	Type      string
	Brand     string
	Condition string
	CreatedAt time.Time
}

// InstrumentCreate carries the fields of a new instrument.
type InstrumentCreate struct {
	Name      string
	Type      string
	Brand     string
	Condition string
}

// InstrumentUpdate carries a partial update. Nil means the field was not
// provided and keeps its stored value.
type InstrumentUpdate struct {
	Name      *string
	Type      *string
	Brand     *string
	Condition *string
}

package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStudentRepository(t *testing.T) {
	db := &Connection{}
	repo := NewStudentRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewTeacherRepository(t *testing.T) {
	db := &Connection{}
	repo := NewTeacherRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewInstrumentRepository(t *testing.T) {
	db := &Connection{}
	repo := NewInstrumentRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewScheduleRepository(t *testing.T) {
	db := &Connection{}
	repo := NewScheduleRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/avoronov/musicschool-server/internal/model"
	repo "github.com/avoronov/musicschool-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "musicschool_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/musicschool_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	t.Run("user_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)

		saved, err := ur.Create(ctx, "admin@school.edu", "$2a$10$fakehash")
		require.NoError(t, err)
		require.NotZero(t, saved.ID)

		byEmail, err := ur.GetByEmail(ctx, "admin@school.edu")
		require.NoError(t, err)
		require.Equal(t, saved.ID, byEmail.ID)

		byID, err := ur.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, "admin@school.edu", byID.Email)

		_, err = ur.Create(ctx, "admin@school.edu", "$2a$10$otherhash")
		var conflict *model.ConflictError
		require.ErrorAs(t, err, &conflict)

		_, err = ur.GetByEmail(ctx, "nobody@school.edu")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("student_repository", func(t *testing.T) {
		sr := repo.NewStudentRepository(conn)

		anna, err := sr.Create(ctx, model.StudentCreate{
			FirstName: "Anna",
			LastName:  "Petrova",
			Email:     "anna@school.edu",
			Phone:     "+12025550134",
			BirthDate: "2010-06-15",
		})
		require.NoError(t, err)
		require.NotZero(t, anna.ID)
		require.Equal(t, "2010-06-15", anna.BirthDate)

		_, err = sr.Create(ctx, model.StudentCreate{
			FirstName: "Other",
			LastName:  "Student",
			Email:     "anna@school.edu",
			Phone:     "+12025550199",
			BirthDate: "2011-01-01",
		})
		var conflict *model.ConflictError
		require.ErrorAs(t, err, &conflict)

		_, err = sr.Create(ctx, model.StudentCreate{
			FirstName: "Boris",
			LastName:  "Ivanov",
			Email:     "boris@school.edu",
			Phone:     "+12025550177",
			BirthDate: "2009-03-20",
		})
		require.NoError(t, err)

		students, total, err := sr.List(ctx, model.ListParams{Page: 1, PerPage: 10, Search: "petrova"})
		require.NoError(t, err)
		require.Equal(t, int64(1), total)
		require.Len(t, students, 1)
		assert.Equal(t, "Anna", students[0].FirstName)

		_, total, err = sr.List(ctx, model.ListParams{Page: 1, PerPage: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		phone := "+12025550200"
		updated, err := sr.Update(ctx, anna.ID, model.StudentUpdate{Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, phone, updated.Phone)
		// untouched fields keep their values
		assert.Equal(t, "Anna", updated.FirstName)
		assert.Equal(t, "2010-06-15", updated.BirthDate)

		_, err = sr.Update(ctx, 999999, model.StudentUpdate{Phone: &phone})
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("teacher_repository", func(t *testing.T) {
		tr := repo.NewTeacherRepository(conn)

		igor, err := tr.Create(ctx, model.TeacherCreate{
			FirstName:      "Igor",
			LastName:       "Sokolov",
			Email:          "igor@school.edu",
			Phone:          "+12025550101",
			Specialization: "piano",
		})
		require.NoError(t, err)

		teachers, total, err := tr.List(ctx, model.ListParams{Page: 1, PerPage: 10, Search: "piano"})
		require.NoError(t, err)
		require.Equal(t, int64(1), total)
		assert.Equal(t, igor.ID, teachers[0].ID)
	})

	t.Run("instrument_repository", func(t *testing.T) {
		ir := repo.NewInstrumentRepository(conn)

		piano, err := ir.Create(ctx, model.InstrumentCreate{
			Name:      "Yamaha U1",
			Type:      "piano",
			Brand:     "Yamaha",
			Condition: "good",
		})
		require.NoError(t, err)

		condition := "needs repair"
		updated, err := ir.Update(ctx, piano.ID, model.InstrumentUpdate{Condition: &condition})
		require.NoError(t, err)
		assert.Equal(t, condition, updated.Condition)
		assert.Equal(t, "Yamaha U1", updated.Name)

		require.NoError(t, ir.Delete(ctx, piano.ID))
		require.ErrorIs(t, ir.Delete(ctx, piano.ID), model.ErrNotFound)
	})

	t.Run("schedule_repository", func(t *testing.T) {
		sr := repo.NewStudentRepository(conn)
		tr := repo.NewTeacherRepository(conn)
		scr := repo.NewScheduleRepository(conn)

		student, err := sr.Create(ctx, model.StudentCreate{
			FirstName: "Vera",
			LastName:  "Morozova",
			Email:     "vera@school.edu",
			Phone:     "+12025550155",
			BirthDate: "2012-09-01",
		})
		require.NoError(t, err)
		teacher, err := tr.GetByEmail(ctx, "igor@school.edu")
		require.NoError(t, err)

		entry, err := scr.Create(ctx, model.ScheduleCreate{
			StudentID: student.ID,
			TeacherID: teacher.ID,
			DayOfWeek: "Monday",
			StartTime: "14:00:00",
			EndTime:   "14:45:00",
			Room:      "101",
		})
		require.NoError(t, err)
		assert.Equal(t, "Vera Morozova", entry.StudentName)
		assert.Equal(t, "Igor Sokolov", entry.TeacherName)
		assert.Equal(t, "14:00:00", entry.StartTime)

		_, err = scr.Create(ctx, model.ScheduleCreate{
			StudentID: 999999,
			TeacherID: teacher.ID,
			DayOfWeek: "Monday",
			StartTime: "15:00:00",
			EndTime:   "15:45:00",
			Room:      "101",
		})
		var badRef *model.BadReferenceError
		require.ErrorAs(t, err, &badRef)
		assert.Equal(t, "student", badRef.Entity)

		entries, total, err := scr.List(ctx, model.ListParams{Page: 1, PerPage: 10, Search: "morozova"})
		require.NoError(t, err)
		require.Equal(t, int64(1), total)
		assert.Equal(t, entry.ID, entries[0].ID)

		room := "202"
		updated, err := scr.Update(ctx, entry.ID, model.ScheduleUpdate{Room: &room})
		require.NoError(t, err)
		assert.Equal(t, room, updated.Room)
		assert.Equal(t, "Vera Morozova", updated.StudentName)

		// deleting the student cascades to the schedule
		require.NoError(t, sr.Delete(ctx, student.ID))
		_, err = scr.GetByID(ctx, entry.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

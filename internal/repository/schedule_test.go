package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
)

func TestScheduleRepository_CreateAndQuery(t *testing.T) {
	conn := newTestDB(t)
	createUser(t, NewUserRepository(conn), "alice", "a@b.co")
	require.NoError(t, NewRoomRepository(conn).Seed([]model.Room{{Name: "Classroom", RoomID: 1}}))
	repo := NewScheduleRepository(conn)

	first := &model.Booking{RoomName: "Classroom", OrderBy: "alice", OrderDate: "02.03.2026", OrderInterval: "08:00 - 10:00"}
	require.NoError(t, repo.Create(first))
	assert.NotZero(t, first.ID)
	require.NoError(t, repo.Create(&model.Booking{RoomName: "Classroom", OrderBy: "alice", OrderDate: "02.03.2026", OrderInterval: "12:00 - 14:00"}))
	require.NoError(t, repo.Create(&model.Booking{RoomName: "Classroom", OrderBy: "alice", OrderDate: "03.03.2026", OrderInterval: "08:00 - 10:00"}))

	day, err := repo.ByRoomAndDate("Classroom", "02.03.2026")
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, "08:00 - 10:00", day[0].OrderInterval)
	assert.Equal(t, "12:00 - 14:00", day[1].OrderInterval)

	empty, err := repo.ByRoomAndDate("Classroom", "04.03.2026")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestScheduleRepository_RequiresKnownRoomAndUser(t *testing.T) {
	repo := NewScheduleRepository(newTestDB(t))

	err := repo.Create(&model.Booking{RoomName: "Attic", OrderBy: "ghost", OrderDate: "02.03.2026", OrderInterval: "08:00 - 10:00"})
	assert.Error(t, err)
}

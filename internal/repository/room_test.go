package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
)

func pictureSet(prefix string) model.PictureSet {
	var set model.PictureSet
	for i := range set {
		set[i] = []byte{prefix[0], byte('1' + i)}
	}
	return set
}

func TestRoomRepository_SeedAndRead(t *testing.T) {
	repo := NewRoomRepository(newTestDB(t))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	rooms := []model.Room{{Name: "Classroom", RoomID: 1}, {Name: "Submarine", RoomID: 2}}
	require.NoError(t, repo.Seed(rooms))
	require.NoError(t, repo.SavePictures(rooms[1], pictureSet("s")))

	count, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := repo.Rooms()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Classroom", got[0].Name)
	assert.Equal(t, 2, got[1].RoomID)

	room, err := repo.ByName("Submarine")
	require.NoError(t, err)
	assert.Equal(t, 2, room.RoomID)

	pics, err := repo.Pictures("Submarine")
	require.NoError(t, err)
	assert.Equal(t, []byte("s1"), pics[0])
	assert.Equal(t, []byte("s5"), pics[4])
}

func TestRoomRepository_NotFound(t *testing.T) {
	repo := NewRoomRepository(newTestDB(t))

	_, err := repo.ByName("Attic")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = repo.Pictures("Attic")
	assert.ErrorIs(t, err, ErrPicturesNotFound)
}

func TestRoomRepository_WithoutPictures(t *testing.T) {
	repo := NewRoomRepository(newTestDB(t))

	rooms := []model.Room{{Name: "Classroom", RoomID: 1}, {Name: "Submarine", RoomID: 2}, {Name: "Roofroom", RoomID: 3}}
	require.NoError(t, repo.Seed(rooms))
	require.NoError(t, repo.SavePictures(rooms[1], pictureSet("s")))

	pending, err := repo.WithoutPictures()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "Classroom", pending[0].Name)
	assert.Equal(t, "Roofroom", pending[1].Name)

	_, err = repo.Pictures("Classroom")
	assert.ErrorIs(t, err, ErrPicturesNotFound)

	err = repo.SavePictures(rooms[1], pictureSet("x"))
	assert.ErrorIs(t, err, ErrDuplicatePictures)
}

func TestRoomRepository_SeedIsAllOrNothing(t *testing.T) {
	repo := NewRoomRepository(newTestDB(t))

	rooms := []model.Room{{Name: "Classroom", RoomID: 1}, {Name: "Classroom", RoomID: 2}}
	assert.Error(t, repo.Seed(rooms))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

package rotation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	calls []string
	fail  map[string]error
}

func (f *fakeSource) Pictures(_ context.Context, room string) ([][]byte, error) {
	f.calls = append(f.calls, room)
	if err := f.fail[room]; err != nil {
		return nil, err
	}
	var pics [][]byte
	for i := 1; i <= 5; i++ {
		pics = append(pics, []byte(room+string(rune('0'+i))))
	}
	return pics, nil
}

type fakeSink struct {
	saved [][]byte
}

func (f *fakeSink) SaveCurrentPicture(_ context.Context, picture []byte) error {
	f.saved = append(f.saved, picture)
	return nil
}

func TestBrowser_InitializeSelectsFirstRoomAndPicture(t *testing.T) {
	src := &fakeSource{}
	sink := &fakeSink{}
	b := NewBrowser(src, sink)

	room, err := b.Initialize(context.Background(), []string{"Classroom", "Submarine", "Roofroom"})
	require.NoError(t, err)
	assert.Equal(t, "Classroom", room)

	pic, err := b.Picture()
	require.NoError(t, err)
	assert.Equal(t, []byte("Classroom1"), pic)
	assert.Equal(t, 1, b.PictureIndex())
	assert.Equal(t, []string{"Classroom"}, src.calls)
	assert.Equal(t, [][]byte{[]byte("Classroom1")}, sink.saved)
}

func TestBrowser_PictureNavigationDoesNotRefetch(t *testing.T) {
	src := &fakeSource{}
	b := NewBrowser(src, nil)
	ctx := context.Background()
	_, err := b.Initialize(ctx, []string{"Classroom", "Submarine"})
	require.NoError(t, err)

	pic, err := b.PrevPicture(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("Classroom5"), pic)

	pic, err = b.NextPicture(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("Classroom1"), pic)

	room, err := b.Room()
	require.NoError(t, err)
	assert.Equal(t, "Classroom", room)
	assert.Len(t, src.calls, 1)
}

func TestBrowser_RoomNavigationRebuildsPictures(t *testing.T) {
	src := &fakeSource{}
	b := NewBrowser(src, nil)
	ctx := context.Background()
	_, err := b.Initialize(ctx, []string{"A", "B", "C"})
	require.NoError(t, err)

	_, err = b.NextPicture(ctx)
	require.NoError(t, err)
	_, err = b.NextPicture(ctx)
	require.NoError(t, err)

	room, err := b.NextRoom(ctx)
	require.NoError(t, err)
	assert.Equal(t, "B", room)

	pic, err := b.Picture()
	require.NoError(t, err)
	assert.Equal(t, []byte("B1"), pic)
	assert.Equal(t, 1, b.PictureIndex())

	room, err = b.PrevRoom(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", room)
	room, err = b.PrevRoom(ctx)
	require.NoError(t, err)
	assert.Equal(t, "C", room)

	assert.Equal(t, []string{"A", "B", "A", "C"}, src.calls)
}

func TestBrowser_Errors(t *testing.T) {
	ctx := context.Background()
	b := NewBrowser(&fakeSource{}, nil)

	_, err := b.NextRoom(ctx)
	assert.ErrorIs(t, err, ErrNoCursor)
	_, err = b.NextPicture(ctx)
	assert.ErrorIs(t, err, ErrNoCursor)
	_, err = b.Room()
	assert.ErrorIs(t, err, ErrNoCursor)

	_, err = b.Initialize(ctx, nil)
	assert.ErrorIs(t, err, ErrEmptyRing)

}

func TestBrowser_FailedRoomMoveKeepsSelection(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	sink := &fakeSink{}
	b := NewBrowser(&fakeSource{fail: map[string]error{"B": boom, "C": boom}}, sink)

	_, err := b.Initialize(ctx, []string{"A", "B", "C"})
	require.NoError(t, err)
	_, err = b.NextPicture(ctx)
	require.NoError(t, err)

	_, err = b.NextRoom(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = b.PrevRoom(ctx)
	assert.ErrorIs(t, err, boom)

	room, err := b.Room()
	require.NoError(t, err)
	assert.Equal(t, "A", room)
	pic, err := b.Picture()
	require.NoError(t, err)
	assert.Equal(t, []byte("A2"), pic)
	assert.Equal(t, 2, b.PictureIndex())
	assert.Len(t, sink.saved, 2)

	pic, err = b.NextPicture(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("A3"), pic)
}

func TestBrowser_FailedInitializeKeepsPreviousRooms(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	b := NewBrowser(&fakeSource{fail: map[string]error{"X": boom}}, nil)

	_, err := b.Initialize(ctx, []string{"A", "B"})
	require.NoError(t, err)

	_, err = b.Initialize(ctx, []string{"X", "Y"})
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, []string{"A", "B"}, b.Rooms())
	pic, err := b.Picture()
	require.NoError(t, err)
	assert.Equal(t, []byte("A1"), pic)
}

package rotation

import (
	"context"
	"fmt"
	"log/slog"
)

// PictureSource fetches the pictures of a room, first picture first.
type PictureSource interface {
	Pictures(ctx context.Context, room string) ([][]byte, error)
}

// PictureSink receives every picture that becomes current.
type PictureSink interface {
	SaveCurrentPicture(ctx context.Context, picture []byte) error
}

// Browser pairs a ring of room names with a ring of the selected room's pictures.
// Changing room rebuilds the picture ring from scratch; changing picture never
// touches the room ring and never refetches.
type Browser struct {
	source   PictureSource
	sink     PictureSink
	rooms    *Ring[string]
	pictures *Ring[[]byte]
}

// NewBrowser creates a browser. sink may be nil.
func NewBrowser(source PictureSource, sink PictureSink) *Browser {
	return &Browser{source: source, sink: sink}
}

// Initialize builds the room ring in list order and selects the first room.
func (b *Browser) Initialize(ctx context.Context, roomNames []string) (string, error) {
	rooms := NewRing(roomNames)
	room, err := rooms.First()
	if err != nil {
		return "", err
	}

	pictures, err := b.fetch(ctx, room)
	if err != nil {
		return "", err
	}

	b.rooms = rooms
	b.show(ctx, pictures)
	return room, nil
}

// Room returns the selected room.
func (b *Browser) Room() (string, error) {
	if b.rooms == nil {
		return "", ErrNoCursor
	}
	return b.rooms.Current()
}

// Rooms returns the room names in ring order.
func (b *Browser) Rooms() []string {
	if b.rooms == nil {
		return nil
	}
	return b.rooms.Values()
}

func (b *Browser) NextRoom(ctx context.Context) (string, error) {
	return b.moveRoom(ctx, (*Ring[string]).Next)
}

func (b *Browser) PrevRoom(ctx context.Context) (string, error) {
	return b.moveRoom(ctx, (*Ring[string]).Prev)
}

// Picture returns the current picture of the selected room.
func (b *Browser) Picture() ([]byte, error) {
	if b.pictures == nil {
		return nil, ErrNoCursor
	}
	return b.pictures.Current()
}

// PictureIndex returns the 1-based position of the current picture.
func (b *Browser) PictureIndex() int {
	if b.pictures == nil {
		return 0
	}
	return b.pictures.cursor + 1
}

func (b *Browser) NextPicture(ctx context.Context) ([]byte, error) {
	return b.movePicture(ctx, (*Ring[[]byte]).Next)
}

func (b *Browser) PrevPicture(ctx context.Context) ([]byte, error) {
	return b.movePicture(ctx, (*Ring[[]byte]).Prev)
}

func (b *Browser) moveRoom(ctx context.Context, move func(*Ring[string]) (string, error)) (string, error) {
	if b.rooms == nil {
		return "", ErrNoCursor
	}

	// A failed fetch leaves both the room and the picture where they were.
	cursor := b.rooms.cursor
	room, err := move(b.rooms)
	if err != nil {
		return "", err
	}

	pictures, err := b.fetch(ctx, room)
	if err != nil {
		b.rooms.cursor = cursor
		return "", err
	}

	b.show(ctx, pictures)
	return room, nil
}

func (b *Browser) movePicture(ctx context.Context, move func(*Ring[[]byte]) ([]byte, error)) ([]byte, error) {
	if b.pictures == nil {
		return nil, ErrNoCursor
	}

	picture, err := move(b.pictures)
	if err != nil {
		return nil, err
	}

	b.publish(ctx, picture)
	return picture, nil
}

// fetch builds a fresh picture ring for room, positioned on its first picture.
func (b *Browser) fetch(ctx context.Context, room string) (*Ring[[]byte], error) {
	pictures, err := b.source.Pictures(ctx, room)
	if err != nil {
		return nil, fmt.Errorf("failed to load pictures for %s: %w", room, err)
	}

	ring := NewRing(pictures)
	_, err = ring.First()
	if err != nil {
		return nil, fmt.Errorf("room %s has no pictures: %w", room, err)
	}

	return ring, nil
}

// show replaces the picture ring and publishes its current picture.
func (b *Browser) show(ctx context.Context, pictures *Ring[[]byte]) {
	b.pictures = pictures
	picture, err := pictures.Current()
	if err == nil {
		b.publish(ctx, picture)
	}
}

func (b *Browser) publish(ctx context.Context, picture []byte) {
	if b.sink == nil {
		return
	}

	err := b.sink.SaveCurrentPicture(ctx, picture)
	if err != nil {
		slog.Warn("failed to save current picture", "error", err)
	}
}

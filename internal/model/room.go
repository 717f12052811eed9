package model

import "strings"

// PicturesPerRoom is the fixed size of every room's picture set.
const PicturesPerRoom = 5

type Room struct {
	ID     int64  `db:"id"`
	Name   string `db:"room_name"`
	RoomID int    `db:"room_id"`
}

// Folder is the lower-case directory holding the room's pictures.
func (r Room) Folder() string {
	return strings.ToLower(r.Name)
}

// PictureSet holds the five images of a room in display order.
type PictureSet [PicturesPerRoom][]byte

// Slice returns the pictures as a slice, first picture first.
func (p PictureSet) Slice() [][]byte {
	out := make([][]byte, 0, PicturesPerRoom)
	for _, pic := range p {
		out = append(out, pic)
	}
	return out
}

// SeedRoom is a room created on first run.
type SeedRoom struct {
	Name   string
	RoomID int
}

// Folder is the lower-case directory holding the room's pictures.
func (r SeedRoom) Folder() string {
	return strings.ToLower(r.Name)
}

var SeedRooms = []SeedRoom{
	{Name: "classroom", RoomID: 1},
	{Name: "submarine", RoomID: 2},
	{Name: "roofroom", RoomID: 3},
}

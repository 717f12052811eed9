package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
)

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrPicturesNotFound  = errors.New("pictures not found")
	ErrDuplicatePictures = errors.New("pictures already stored")
)

type RoomRepository interface {
	Count() (int, error)
	Rooms() ([]model.Room, error)
	ByName(name string) (*model.Room, error)
	Pictures(roomName string) (model.PictureSet, error)
	Seed(rooms []model.Room) error
	WithoutPictures() ([]model.Room, error)
	SavePictures(room model.Room, set model.PictureSet) error
}

type roomRepository struct {
	db *sqlx.DB
}

func NewRoomRepository(db *sqlx.DB) RoomRepository {
	return &roomRepository{db: db}
}

type pictureRow struct {
	Picture1 []byte `db:"picture_1"`
	Picture2 []byte `db:"picture_2"`
	Picture3 []byte `db:"picture_3"`
	Picture4 []byte `db:"picture_4"`
	Picture5 []byte `db:"picture_5"`
}

func (r *roomRepository) Count() (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM rooms`)
	return count, err
}

func (r *roomRepository) Rooms() ([]model.Room, error) {
	var rooms []model.Room
	query := `SELECT id, room_name, room_id FROM rooms ORDER BY room_id ASC`

	err := r.db.Select(&rooms, query)
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *roomRepository) ByName(name string) (*model.Room, error) {
	room := &model.Room{}
	query := `SELECT id, room_name, room_id FROM rooms WHERE room_name = $1`

	err := r.db.Get(room, query, name)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}

	return room, nil
}

func (r *roomRepository) Pictures(roomName string) (model.PictureSet, error) {
	var row pictureRow
	query := `SELECT picture_1, picture_2, picture_3, picture_4, picture_5 FROM pictures WHERE room_name = $1`

	err := r.db.Get(&row, query, roomName)
	if err == sql.ErrNoRows {
		return model.PictureSet{}, ErrPicturesNotFound
	}
	if err != nil {
		return model.PictureSet{}, err
	}

	return model.PictureSet{row.Picture1, row.Picture2, row.Picture3, row.Picture4, row.Picture5}, nil
}

// Seed inserts the rooms in one transaction.
func (r *roomRepository) Seed(rooms []model.Room) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, room := range rooms {
		_, err = tx.Exec(`INSERT INTO rooms (room_name, room_id) VALUES ($1, $2)`, room.Name, room.RoomID)
		if err != nil {
			return fmt.Errorf("failed to insert room %s: %w", room.Name, err)
		}
	}

	return tx.Commit()
}

// WithoutPictures lists the rooms that have no picture set yet, in room id order.
func (r *roomRepository) WithoutPictures() ([]model.Room, error) {
	var rooms []model.Room
	query := `
		SELECT r.id, r.room_name, r.room_id
		FROM rooms r
		LEFT JOIN pictures p ON p.room_id = r.room_id
		WHERE p.id IS NULL
		ORDER BY r.room_id ASC
	`

	err := r.db.Select(&rooms, query)
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *roomRepository) SavePictures(room model.Room, set model.PictureSet) error {
	query := `
		INSERT INTO pictures (room_id, room_name, picture_1, picture_2, picture_3, picture_4, picture_5)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(query, room.RoomID, room.Name, set[0], set[1], set[2], set[3], set[4])
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("pictures for room %s: %w", room.Name, ErrDuplicatePictures)
		}
		return fmt.Errorf("failed to insert pictures for room %s: %w", room.Name, err)
	}

	return nil
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/repository"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/storage"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/validation"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CurrentPicturePath is where the picture on display is exported.
const CurrentPicturePath = "current_image/current_picture.png"

// CurrentPictureStore keeps the picture on display between runs.
type CurrentPictureStore interface {
	SaveCurrentPicture(ctx context.Context, picture []byte) error
	CurrentPicture(ctx context.Context) ([]byte, error)
}

type RoomService struct {
	roomRepository repository.RoomRepository
	storage        storage.Storage
	current        CurrentPictureStore
}

func NewRoomService(roomRepository repository.RoomRepository, storage storage.Storage, current CurrentPictureStore) *RoomService {
	return &RoomService{
		roomRepository: roomRepository,
		storage:        storage,
		current:        current,
	}
}

// Seed stores the reference rooms on first run, then the pictures of every
// room that has none yet. Pictures are read from <room>/<room>N.png in storage.
// Rooms are stored even when pictures are missing; those are retried on the
// next call and reported as storage.ErrObjectNotFound.
func (s *RoomService) Seed(ctx context.Context) error {
	count, err := s.roomRepository.Count()
	if err != nil {
		return fmt.Errorf("failed to count rooms: %w", err)
	}

	if count == 0 {
		title := cases.Title(language.English)
		rooms := make([]model.Room, 0, len(model.SeedRooms))
		for _, seed := range model.SeedRooms {
			rooms = append(rooms, model.Room{Name: title.String(seed.Name), RoomID: seed.RoomID})
		}

		err = s.roomRepository.Seed(rooms)
		if err != nil {
			return fmt.Errorf("failed to seed rooms: %w", err)
		}
		slog.Info("rooms seeded", "count", len(rooms))
	}

	pending, err := s.roomRepository.WithoutPictures()
	if err != nil {
		return fmt.Errorf("failed to list rooms without pictures: %w", err)
	}

	var missing error
	for _, room := range pending {
		set, err := s.loadPictures(ctx, room)
		if errors.Is(err, storage.ErrObjectNotFound) {
			if missing == nil {
				missing = err
			}
			continue
		}
		if err != nil {
			return err
		}

		err = s.roomRepository.SavePictures(room, set)
		if err != nil {
			return fmt.Errorf("failed to seed pictures: %w", err)
		}
		slog.Info("room pictures seeded", "room", room.Name)
	}

	if missing != nil {
		return fmt.Errorf("failed to load picture: %w", missing)
	}
	return nil
}

func (s *RoomService) loadPictures(ctx context.Context, room model.Room) (model.PictureSet, error) {
	folder := room.Folder()

	var set model.PictureSet
	for i := range set {
		path := fmt.Sprintf("%s/%s%d.png", folder, folder, i+1)

		data, err := s.storage.Load(ctx, path)
		if err != nil {
			return set, err
		}

		err = validation.ValidatePicture(path, data, validation.RoomPictureConstraints)
		if err != nil {
			return set, err
		}
		set[i] = data
	}

	return set, nil
}

func (s *RoomService) Rooms(ctx context.Context) ([]model.Room, error) {
	return s.roomRepository.Rooms()
}

// RoomNames lists the rooms in room id order.
func (s *RoomService) RoomNames(ctx context.Context) ([]string, error) {
	rooms, err := s.roomRepository.Rooms()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rooms))
	for _, room := range rooms {
		names = append(names, room.Name)
	}
	return names, nil
}

// Pictures returns the five pictures of room, first picture first.
func (s *RoomService) Pictures(ctx context.Context, room string) ([][]byte, error) {
	set, err := s.roomRepository.Pictures(room)
	if err != nil {
		if !errors.Is(err, repository.ErrPicturesNotFound) {
			return nil, fmt.Errorf("failed to get pictures: %w", err)
		}

		_, err = s.roomRepository.ByName(room)
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get room: %w", err)
		}
		return nil, ErrPicturesMissing
	}
	return set.Slice(), nil
}

// SaveCurrentPicture records the picture on display and exports it to storage.
func (s *RoomService) SaveCurrentPicture(ctx context.Context, picture []byte) error {
	err := s.current.SaveCurrentPicture(ctx, picture)
	if err != nil {
		return fmt.Errorf("failed to save current picture: %w", err)
	}

	err = s.storage.Save(ctx, CurrentPicturePath, bytes.NewReader(picture))
	if err != nil {
		return fmt.Errorf("failed to export current picture: %w", err)
	}

	return nil
}

// ClearCurrentPicture removes the exported picture. A missing export is not an error.
func (s *RoomService) ClearCurrentPicture(ctx context.Context) error {
	err := s.storage.Delete(ctx, CurrentPicturePath)
	if err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		return fmt.Errorf("failed to remove current picture: %w", err)
	}
	return nil
}

func (s *RoomService) CurrentPicture(ctx context.Context) ([]byte, error) {
	return s.current.CurrentPicture(ctx)
}

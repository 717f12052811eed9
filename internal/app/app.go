package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/config"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/db"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/repository"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/rotation"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/service"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/session"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/storage"
)

type App struct {
	Cfg                  *config.Config
	DB                   *sqlx.DB
	Session              *session.Store
	Storage              storage.Storage
	AuthService          *service.AuthService
	PasswordResetService *service.PasswordResetService
	RoomService          *service.RoomService
	ScheduleService      *service.ScheduleService
	EmailService         *service.EmailService
	State                *State
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	tokenRepository := repository.NewTokenRepository(database)
	roomRepository := repository.NewRoomRepository(database)
	scheduleRepository := repository.NewScheduleRepository(database)

	// Storage
	pictureStorage, err := storage.New(cfg)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Local session
	sessionStore, err := session.Open(cfg.SessionPath)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppName,
		cfg.TokenPasswordResetExpiry,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry)
	passwordResetService := service.NewPasswordResetService(
		userRepository,
		tokenRepository,
		emailService,
		cfg.TokenPasswordResetExpiry,
	)
	roomService := service.NewRoomService(roomRepository, pictureStorage, sessionStore)
	scheduleService := service.NewScheduleService(scheduleRepository, roomRepository, emailService)

	a := &App{
		Cfg:                  cfg,
		DB:                   database,
		Session:              sessionStore,
		Storage:              pictureStorage,
		AuthService:          authService,
		PasswordResetService: passwordResetService,
		RoomService:          roomService,
		ScheduleService:      scheduleService,
		EmailService:         emailService,
		State:                &State{},
	}

	if cfg.SeedOnStart {
		err = roomService.Seed(context.Background())
		if errors.Is(err, storage.ErrObjectNotFound) {
			// Rooms are stored and bookable; their pictures are retried on the next start.
			slog.Warn("room pictures missing", "error", err, "images_path", cfg.ImagesPath)
		} else if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to seed rooms: %w", err)
		}
	}

	return a, nil
}

// RestoreSession signs in the user of the stored session token, if any.
// A stale or invalid token is cleared.
func (a *App) RestoreSession(ctx context.Context) error {
	token, err := a.Session.Token(ctx)
	if errors.Is(err, session.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	user, err := a.AuthService.UserFromJWT(ctx, token)
	if err != nil {
		slog.Info("stored session rejected", "error", err)
		return a.Session.ClearToken(ctx)
	}

	a.State.User = user
	return nil
}

// SignIn makes user the current identity and persists it for the next run.
func (a *App) SignIn(ctx context.Context, user *model.User) error {
	token, err := a.AuthService.GenerateJWT(user)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	err = a.Session.SaveToken(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	a.State.User = user
	slog.Info("signed in", "username", user.Username)
	return nil
}

func (a *App) SignOut(ctx context.Context) error {
	a.State.User = nil
	a.State.Browser = nil

	err := a.RoomService.ClearCurrentPicture(ctx)
	if err != nil {
		slog.Warn("failed to remove exported picture", "error", err)
	}
	return a.Session.ClearToken(ctx)
}

// NewBrowser creates a room browser that records every picture shown.
func (a *App) NewBrowser(ctx context.Context) (*rotation.Browser, error) {
	names, err := a.RoomService.RoomNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	browser := rotation.NewBrowser(a.RoomService, a.RoomService)
	room, err := browser.Initialize(ctx, names)
	if err != nil {
		return nil, err
	}

	err = a.Session.SaveCurrentRoom(ctx, room)
	if err != nil {
		slog.Warn("failed to save current room", "error", err)
	}

	a.State.Browser = browser
	return browser, nil
}

func (a *App) Close() error {
	var errs []error
	if a.Session != nil {
		errs = append(errs, a.Session.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/db"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/repository"
)

const testTokenExpiry = 10 * time.Minute

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	conn, err := db.Init("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(conn) })

	require.NoError(t, db.RunMigrations(conn.DB, "sqlite"))
	return conn
}

type sentToken struct {
	To, Username, Token string
}

type sentBooking struct {
	To, Room, Date, Interval string
}

// fakeNotifier records emails and fails with err when set.
type fakeNotifier struct {
	mu       sync.Mutex
	tokens   []sentToken
	bookings []sentBooking
	err      error
}

func (f *fakeNotifier) SendTokenEmail(_ context.Context, to, username, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, sentToken{to, username, token})
	return f.err
}

func (f *fakeNotifier) SendBookingConfirmation(_ context.Context, to, room, date, interval string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, sentBooking{to, room, date, interval})
	return f.err
}

func (f *fakeNotifier) lastToken(t *testing.T) string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.tokens, "no token email sent")
	return f.tokens[len(f.tokens)-1].Token
}

// testClock is a settable clock for services holding a now func.
type testClock struct {
	current time.Time
}

func (c *testClock) now() time.Time {
	return c.current
}

func (c *testClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

type env struct {
	db       *sqlx.DB
	users    repository.UserRepository
	tokens   repository.TokenRepository
	rooms    repository.RoomRepository
	schedule repository.ScheduleRepository
	notifier *fakeNotifier
	clock    *testClock
	auth     *AuthService
	reset    *PasswordResetService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	conn := newTestDB(t)
	e := &env{
		db:       conn,
		users:    repository.NewUserRepository(conn),
		tokens:   repository.NewTokenRepository(conn),
		rooms:    repository.NewRoomRepository(conn),
		schedule: repository.NewScheduleRepository(conn),
		notifier: &fakeNotifier{},
		clock:    &testClock{current: time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC)},
	}

	e.auth = NewAuthService(e.users, "test-secret", time.Hour)
	e.reset = NewPasswordResetService(e.users, e.tokens, e.notifier, testTokenExpiry)
	e.reset.now = e.clock.now
	return e
}

func (e *env) register(t *testing.T, username, email, password string) *model.User {
	t.Helper()

	user, err := e.auth.Register(context.Background(), username, email, password, password)
	require.NoError(t, err)
	return user
}

func (e *env) tokenRows(t *testing.T) int {
	t.Helper()

	var count int
	require.NoError(t, e.db.Get(&count, `SELECT COUNT(*) FROM tokens`))
	return count
}

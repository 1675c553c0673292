package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pagewatch/pagewatch"
)

// Compile-time interface verification.
var _ pagewatch.UserService = (*UserService)(nil)

// UserService implements pagewatch.UserService using SQLite.
type UserService struct {
	db *DB
}

// NewUserService creates a new UserService.
func NewUserService(db *DB) *UserService {
	return &UserService{db: db}
}

// CreateUser creates a new user. Alerts default to enabled.
func (s *UserService) CreateUser(ctx context.Context, user *pagewatch.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	user.ID = uuid.New().String()
	user.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, email_alerts, created_at)
		VALUES (?, ?, ?, ?)
	`, user.ID, user.Email, boolToInt(user.EmailAlerts), user.CreatedAt.Format(time.RFC3339))

	if isUniqueViolation(err) {
		return pagewatch.Errorf(pagewatch.ECONFLICT, "email already registered: %s", user.Email)
	}
	return err
}

// FindUserByID retrieves a user by ID.
func (s *UserService) FindUserByID(ctx context.Context, id string) (*pagewatch.User, error) {
	return s.findUser(ctx, "id", id)
}

// FindUserByEmail retrieves a user by email.
func (s *UserService) FindUserByEmail(ctx context.Context, email string) (*pagewatch.User, error) {
	return s.findUser(ctx, "email", email)
}

func (s *UserService) findUser(ctx context.Context, column, value string) (*pagewatch.User, error) {
	var user pagewatch.User
	var emailAlerts int
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, email_alerts, created_at
		FROM users
		WHERE `+column+` = ?
	`, value).Scan(&user.ID, &user.Email, &emailAlerts, &createdAt)

	if err == sql.ErrNoRows {
		return nil, pagewatch.Errorf(pagewatch.ENOTFOUND, "user not found")
	}
	if err != nil {
		return nil, err
	}

	user.EmailAlerts = emailAlerts != 0
	user.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &user, nil
}

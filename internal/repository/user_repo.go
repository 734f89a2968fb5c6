package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"fintrack/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (name, username, password_hash) VALUES (?, ?, ?)`
	// Usernames carry no uniqueness constraint; when duplicates exist the
	// oldest row wins, matching the login behavior.
	selectUserByUsernameSQL = `SELECT user_id, name, username, password_hash FROM users WHERE username = ? ORDER BY user_id ASC LIMIT 1`
	selectUserByIDSQL       = `SELECT user_id, name, username, password_hash FROM users WHERE user_id = ?`
)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(name, username, passwordHash string) (int, error) {
	res, err := r.db.Exec(insertUserSQL, name, username, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(selectUserByUsernameSQL, username).Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// GetByID fetches a user by primary key. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(selectUserByIDSQL, id).Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user id %d: %w", id, err)
	}
	return &u, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/photoflow/photoflow/internal/utils"
)

// Photographer mirrors the 'photographers' table.  Identity is the one
// piece of state kept in MySQL: accounts must survive restarts even
// though gallery state does not.
type Photographer struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrEmailExists = errors.New("email already exists")

// Create inserts a photographer account and returns its ID.
func (r *UserRepo) Create(ctx context.Context, name, email, password, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO photographers (name, email, password_hash, role) VALUES (?,?,?,?)",
		name, email, hash, role)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a photographer by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (Photographer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var p Photographer
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,role,is_active,created_at,updated_at FROM photographers WHERE email=? LIMIT 1",
		email).Scan(&p.ID, &p.Name, &p.Email, &p.PasswordHash, &p.Role, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// GetByID fetches a photographer by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (Photographer, error) {
	var p Photographer
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,role,is_active,created_at,updated_at FROM photographers WHERE id=? LIMIT 1",
		id).Scan(&p.ID, &p.Name, &p.Email, &p.PasswordHash, &p.Role, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// File: internal/store/user.go
package store

import (
	"context"
	"errors"
	"fmt"

	"ride-auth/internal/database"
	"ride-auth/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// newID 產生使用者 ID，測試可覆寫
var newID = uuid.NewString

// UserStore 以 PostgreSQL users 資料表實作使用者存取
type UserStore struct {
	db database.DB
}

func NewUserStore(db database.DB) *UserStore {
	return &UserStore{db: db}
}

// Create 寫入新使用者並回填 ID 與 created_at
func (s *UserStore) Create(ctx context.Context, u *model.User) (*model.User, error) {
	if u.ID == "" {
		u.ID = newID()
	}
	row := s.db.QueryRow(ctx,
		`INSERT INTO users (id, name, email, password, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		u.ID,
		u.Name,
		u.Email,
		u.Password,
		string(u.Role),
	)
	if err := row.Scan(&u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, oops.Code("USER_EMAIL_TAKEN").
				With("email", u.Email).
				With("constraint", pgErr.ConstraintName).
				Wrap(fmt.Errorf("%w: %w", ErrDuplicateEmail, err))
		}
		return nil, oops.Code("USER_CREATE_FAILED").
			With("operation", "insert user").
			With("email", u.Email).
			Wrap(err)
	}
	return u, nil
}

// FindByEmail 依 email 取得唯一一筆使用者；查無資料回傳 ErrNotFound
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, name, email, password, role, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	var role string
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Password,
		&role,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, oops.Code("USER_NOT_FOUND").
				With("email", email).
				Wrap(ErrNotFound)
		}
		return nil, oops.Code("USER_LOOKUP_FAILED").
			With("operation", "select user by email").
			With("email", email).
			Wrap(err)
	}
	u.Role = model.Role(role)
	return u, nil
}

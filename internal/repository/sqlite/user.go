package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dayoon-dev/health-tracker/internal/apperror"
	"github.com/dayoon-dev/health-tracker/internal/model"
	"github.com/dayoon-dev/health-tracker/internal/repository"
)

// Compile-time check that *UserRepo satisfies the interface. If a method
// goes missing the compiler flags it here, not at some distant call site.
var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implements repository.UserRepository over the shared connection.
// Each entity gets its own small repo struct; they all borrow the pool owned
// by DB rather than opening connections of their own.
type UserRepo struct {
	db *DB
}

func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// First returns the user with the lowest id. The app treats that row as
// "the" user — provisioning (service.UserService) creates it on first
// access and every later call lands here.
func (r *UserRepo) First(ctx context.Context) (*model.User, error) {
	var user model.User
	err := r.db.conn.QueryRowContext(ctx,
		`SELECT id, name, height_cm, weight_kg, created_at
		 FROM users
		 ORDER BY id ASC
		 LIMIT 1`,
	).Scan(
		&user.ID,
		&user.Name,
		&user.HeightCM,
		&user.WeightKG,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			// Empty table — translated to the domain error so the service
			// knows to provision rather than fail.
			return nil, apperror.NotFound("user", 0)
		}
		return nil, fmt.Errorf("sqlite: getting first user: %w", err)
	}
	return &user, nil
}

// Create inserts a user and fills in the generated id and creation time.
// HeightCM and WeightKG may be nil; database/sql stores nil pointers as NULL.
func (r *UserRepo) Create(ctx context.Context, user *model.User) error {
	user.CreatedAt = time.Now()

	result, err := r.db.conn.ExecContext(ctx,
		`INSERT INTO users (name, height_cm, weight_kg, created_at)
		 VALUES (?, ?, ?, ?)`,
		user.Name,
		user.HeightCM,
		user.WeightKG,
		user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating user: %w", err)
	}

	// AUTOINCREMENT assigned the id; read it back so the caller sees the
	// persisted identity.
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading user id: %w", err)
	}
	user.ID = id
	return nil
}

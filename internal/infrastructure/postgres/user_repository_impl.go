package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mesto-app/mesto-api/internal/domain/entity"
	"github.com/mesto-app/mesto-api/internal/domain/repository"
	"github.com/mesto-app/mesto-api/pkg/apperror"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, about, avatar, email, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text, created_at, updated_at
	`, u.Name, u.About, u.Avatar, u.Email, u.Password)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if pgCode(err) == codeUniqueViolation {
			return apperror.Conflict("A user with this email is already registered")
		}
		if isConstraintViolation(err) {
			return apperror.BadRequest("Invalid data provided")
		}
		return err
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, about, avatar, email, created_at, updated_at
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []entity.User{}
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid user id")
	}

	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT id::text, name, about, avatar, email, created_at, updated_at
		FROM users
		WHERE id = $1
	`, uid)

	if err := row.Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return u, nil
}

// GetByEmail is the only read that loads the password hash.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT id::text, name, about, avatar, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)

	if err := row.Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.Password,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id, name, about string) (*entity.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid user id")
	}

	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET name = $2, about = $3, updated_at = now()
		WHERE id = $1
		RETURNING id::text, name, about, avatar, email, created_at, updated_at
	`, uid, name, about)

	if err := row.Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("User not found")
		}
		if isConstraintViolation(err) {
			return nil, apperror.BadRequest("Invalid data provided")
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*entity.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid user id")
	}

	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET avatar = $2, updated_at = now()
		WHERE id = $1
		RETURNING id::text, name, about, avatar, email, created_at, updated_at
	`, uid, avatar)

	if err := row.Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("User not found")
		}
		if isConstraintViolation(err) {
			return nil, apperror.BadRequest("Invalid data provided")
		}
		return nil, err
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)

package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/td051191/MinhPhat/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserFilter struct {
	ID    uint64
	Email string
}

type UserRepository interface {
	// Get returns (nil, nil) when no user matches the filter.
	Get(ctx context.Context, filter *UserFilter) (*model.UserEntity, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

func (s *SQL) Get(ctx context.Context, filter *UserFilter) (*model.UserEntity, error) {
	query := "SELECT id, name, email, password_hash, created_at, updated_at FROM users WHERE "
	var arg interface{}
	switch {
	case filter.ID != 0:
		query += "id = ?"
		arg = filter.ID
	case filter.Email != "":
		query += "email = ?"
		arg = filter.Email
	default:
		return nil, errors.New("empty user filter")
	}

	var u model.UserEntity
	err := s.conn.QueryRowxContext(ctx, query, arg).StructScan(&u)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

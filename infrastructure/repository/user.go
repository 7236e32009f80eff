package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sectorres/vendas-insights-wa/infrastructure/database/postgres"
	"github.com/sectorres/vendas-insights-wa/internal/domain"
)

const usersTable = "users"

type UserRepository interface {
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(id int) (*domain.User, error)
	CreateUser(user *domain.User) (*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	query, args, err := squirrel.
		Select("id, name, email, password_hash, active, created_at").
		From(usersTable).
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanUser(r.conn.QueryRow(query, args...))
}

func (r *userRepository) GetUserByID(id int) (*domain.User, error) {
	query, args, err := squirrel.
		Select("id, name, email, password_hash, active, created_at").
		From(usersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanUser(r.conn.QueryRow(query, args...))
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	query, args, err := squirrel.
		Insert(usersTable).
		Columns("name", "email", "password_hash", "active").
		Values(user.Name, user.Email, user.PasswordHash, user.Active).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, fmt.Errorf("usuário já existe com o email %s", user.Email)
		}
		return nil, fmt.Errorf("erro ao inserir usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
	}

	return user, nil
}

package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// DesignMeta is a saved design run without its payload.
type DesignMeta struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Design is a saved design run: the full request/result snapshot as JSON.
type Design struct {
	DesignMeta
	Payload json.RawMessage `json:"payload"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	SaveDesign(ctx context.Context, userID int, name string, payload []byte) (int, error)
	ListDesigns(ctx context.Context, userID int) ([]DesignMeta, error)
	GetDesign(ctx context.Context, userID, designID int) (Design, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveDesign(ctx context.Context, userID int, name string, payload []byte) (int, error) {
	var id int
	query := "INSERT INTO designs (user_id, name, payload, created_at) VALUES ($1, $2, $3, NOW()) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, name, payload).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListDesigns(ctx context.Context, userID int) ([]DesignMeta, error) {
	query := "SELECT id, name, created_at FROM designs WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DesignMeta
	for rows.Next() {
		var m DesignMeta
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetDesign(ctx context.Context, userID, designID int) (Design, error) {
	var d Design
	query := "SELECT id, name, created_at, payload FROM designs WHERE user_id=$1 AND id=$2"
	err := r.db.QueryRowContext(ctx, query, userID, designID).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.Payload)
	return d, err
}

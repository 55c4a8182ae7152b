package postgres

import (
	"context"

	"github.com/chenmo1212/foodorder/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucsky/cuid"
)

type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	if msg.ID == "" {
		msg.ID = cuid.New()
	}
	_, err := r.pool.Exec(ctx, `
        INSERT INTO messages (id, name, email, content, website, agent, create_time, is_show, is_delete)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Content,
		msg.Website,
		msg.Agent,
		msg.CreateTime,
		msg.IsShow,
		msg.IsDelete,
	)
	return err
}

func (r *MessageRepository) GetAll(ctx context.Context, limit, skip int) ([]*models.Message, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM messages WHERE NOT is_delete").Scan(&total); err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
        SELECT id, name, email, content, website, agent, create_time, is_show, is_delete
        FROM messages WHERE NOT is_delete
        ORDER BY create_time DESC LIMIT $1 OFFSET $2`, limit, skip)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var msgs []*models.Message
	for rows.Next() {
		msg := &models.Message{}
		err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Content,
			&msg.Website,
			&msg.Agent,
			&msg.CreateTime,
			&msg.IsShow,
			&msg.IsDelete,
		)
		if err != nil {
			return nil, 0, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, total, rows.Err()
}

package bookctx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	pgxV5 "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"promptgen-server/internal/models"
)

const (
	createBookContextsTableQuery = `
        CREATE TABLE IF NOT EXISTS book_contexts (
            book_id    TEXT PRIMARY KEY,
            data       JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )
    `
	getBookContextQuery = `SELECT data FROM book_contexts WHERE book_id = $1`
	saveBookContextQuery = `
        INSERT INTO book_contexts (book_id, data, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (book_id) DO UPDATE SET
            data = EXCLUDED.data,
            updated_at = EXCLUDED.updated_at
    `
)

// PostgresRepository - durable-хранилище контекстов книг поверх pgxpool.
// Контекст хранится целиком как JSONB: читается редко, мутируется через
// Store.Update, реляционная декомпозиция не нужна.
type PostgresRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

var _ Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(pool *pgxpool.Pool, logger *zap.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool:   pool,
		logger: logger.Named("BookContextRepo"),
	}
}

// EnsureSchema создает таблицу контекстов, если ее еще нет. Вызывается
// один раз при старте сервиса.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createBookContextsTableQuery); err != nil {
		return fmt.Errorf("создание таблицы book_contexts: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, bookID string) (*models.BookContext, error) {
	log := r.logger.With(zap.String("bookID", bookID))

	var data []byte
	err := pgxscan.Get(ctx, r.pool, &data, getBookContextQuery, bookID)
	if err != nil {
		if errors.Is(err, pgxV5.ErrNoRows) {
			log.Debug("Контекст книги в БД не найден")
			return nil, ErrNotFound
		}
		log.Error("Ошибка чтения контекста книги", zap.Error(err))
		return nil, fmt.Errorf("чтение контекста книги %s: %w", bookID, err)
	}

	var bctx models.BookContext
	if err := json.Unmarshal(data, &bctx); err != nil {
		return nil, fmt.Errorf("десериализация контекста книги %s: %w", bookID, err)
	}
	return &bctx, nil
}

func (r *PostgresRepository) Save(ctx context.Context, bctx *models.BookContext) error {
	log := r.logger.With(zap.String("bookID", bctx.BookID))

	data, err := json.Marshal(bctx)
	if err != nil {
		return fmt.Errorf("сериализация контекста книги %s: %w", bctx.BookID, err)
	}

	if _, err := r.pool.Exec(ctx, saveBookContextQuery, bctx.BookID, data, time.Now().UTC()); err != nil {
		log.Error("Ошибка сохранения контекста книги", zap.Error(err))
		return fmt.Errorf("сохранение контекста книги %s: %w", bctx.BookID, err)
	}

	log.Debug("Контекст книги сохранен", zap.Int64("version", bctx.Version))
	return nil
}

package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

const documentsTable = "cms_documents"

var psqlDocument = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresStore keeps the document as one JSONB row keyed by name.
type PostgresStore struct {
	db     *pgxpool.Pool
	name   string
	logger logger.Logger
}

func NewPostgresStore(db *pgxpool.Pool, name string, log logger.Logger) *PostgresStore {
	return &PostgresStore{db: db, name: name, logger: log}
}

// Init creates the table and seeds an empty document when the row is missing.
func (s *PostgresStore) Init(ctx context.Context) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS cms_documents (
			name       TEXT PRIMARY KEY,
			body       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := s.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create %s table: %w", documentsTable, err)
	}

	data, err := content.Encode(content.NewDocument())
	if err != nil {
		return err
	}
	query, args, err := psqlDocument.Insert(documentsTable).
		Columns("name", "body").
		Values(s.name, string(data)).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build seed query: %w", err)
	}
	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("seed content row: %w", err)
	}
	if tag.RowsAffected() > 0 {
		s.logger.Info("Seeded empty content document", zap.String("name", s.name))
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (*content.Document, error) {
	query, args, err := psqlDocument.Select("body").
		From(documentsTable).
		Where(sq.Eq{"name": s.name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load query: %w", err)
	}

	var body []byte
	if err := s.db.QueryRow(ctx, query, args...).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("content row %q does not exist", s.name)
		}
		return nil, fmt.Errorf("query content row: %w", err)
	}
	return content.Decode(body)
}

func (s *PostgresStore) Save(ctx context.Context, doc *content.Document) error {
	data, err := content.Encode(doc)
	if err != nil {
		return err
	}

	query, args, err := psqlDocument.Insert(documentsTable).
		Columns("name", "body", "updated_at").
		Values(s.name, string(data), sq.Expr("NOW()")).
		Suffix("ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save query: %w", err)
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert content row: %w", err)
	}
	return nil
}

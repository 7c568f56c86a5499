package history

import (
	"context"
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, record *Record) (*Record, error) {

	query :=
		`INSERT INTO translations (user_id, original_text, translated_text, src_lang, tgt_lang)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		record.UserID, record.OriginalText, record.TranslatedText,
		record.SourceLang, record.TargetLang).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return record, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Record, error) {
	query :=
		`SELECT id, user_id, original_text, translated_text, src_lang, tgt_lang, created_at
		 FROM translations
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		record := &Record{}
		err := rows.Scan(&record.ID, &record.UserID, &record.OriginalText,
			&record.TranslatedText, &record.SourceLang, &record.TargetLang, &record.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}

	return records, nil
}

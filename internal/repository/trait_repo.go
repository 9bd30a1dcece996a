package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"passion-match/internal/domain"
)

type TraitRepository interface {
	Upsert(ctx context.Context, traits domain.Traits) error
	GetByUserID(ctx context.Context, userID string) (domain.Traits, error)
}

type PgTraitRepository struct {
	pool *pgxpool.Pool
}

func NewPgTraitRepository(pool *pgxpool.Pool) *PgTraitRepository {
	return &PgTraitRepository{pool: pool}
}

func (r *PgTraitRepository) Upsert(ctx context.Context, traits domain.Traits) error {
	const query = `
		INSERT INTO traits (user_id, big5, passion_score, archetype, tags, deep_hooks, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id)
		DO UPDATE SET
			big5 = EXCLUDED.big5,
			passion_score = EXCLUDED.passion_score,
			archetype = EXCLUDED.archetype,
			tags = EXCLUDED.tags,
			deep_hooks = EXCLUDED.deep_hooks,
			updated_at = EXCLUDED.updated_at
	`

	big5, err := json.Marshal(traits.Big5)
	if err != nil {
		return fmt.Errorf("marshal big5: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		traits.UserID,
		big5,
		traits.PassionScore,
		string(traits.Archetype),
		nonNil(traits.Tags),
		nonNil(traits.DeepHooks),
		traits.UpdatedAt,
	)
	return err
}

func (r *PgTraitRepository) GetByUserID(ctx context.Context, userID string) (domain.Traits, error) {
	const query = `
		SELECT user_id, big5, passion_score, archetype, tags, deep_hooks, updated_at
		FROM traits
		WHERE user_id = $1
	`

	var (
		t         domain.Traits
		big5      []byte
		archetype string
	)
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&t.UserID,
		&big5,
		&t.PassionScore,
		&archetype,
		&t.Tags,
		&t.DeepHooks,
		&t.UpdatedAt,
	)
	if err != nil {
		return domain.Traits{}, err
	}
	if err := json.Unmarshal(big5, &t.Big5); err != nil {
		return domain.Traits{}, fmt.Errorf("unmarshal big5: %w", err)
	}
	t.Archetype = domain.Archetype(archetype)
	return t, nil
}

// nonNil evita guardar NULL en columnas text[] NOT NULL.
func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

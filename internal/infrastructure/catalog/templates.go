package catalog

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/turtacn/retrosynth/internal/chem"
	"github.com/turtacn/retrosynth/internal/platform/logging"
	"github.com/turtacn/retrosynth/pkg/errors"
)

// Template is one entry of the reference adapter's reaction-template corpus:
// a reaction pattern, the fingerprint of the product it was mined from, and
// the prior probability D1's ranking starts from before reweighing by
// product-fingerprint similarity.
type Template struct {
	ID                 int64
	ReactionSMARTS     string
	ProductFingerprint *chem.Fingerprint
	RelevancePrior     float64
}

// Repository holds the full template corpus in memory after a single
// startup load from Postgres. predict_templates (D1) reads only from here —
// it never blocks on SQL during a rollout.
type Repository struct {
	log       logging.Logger
	templates []*Template
}

// NewRepository loads the entire templates table into memory. Call once at
// startup; the engine's lifetime is assumed short enough that the corpus
// never needs a live refresh.
func NewRepository(ctx context.Context, pool *pgxpool.Pool, log logging.Logger) (*Repository, error) {
	rows, err := pool.Query(ctx, `
		SELECT id, reaction_smarts, product_fingerprint, fingerprint_type, fingerprint_length, relevance_prior
		FROM templates
		ORDER BY id
	`)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to query template corpus")
	}
	defer rows.Close()

	var templates []*Template
	for rows.Next() {
		var (
			id        int64
			smarts    string
			fpBytes   []byte
			fpType    string
			fpLength  int
			relevance float64
		)
		if err := rows.Scan(&id, &smarts, &fpBytes, &fpType, &fpLength, &relevance); err != nil {
			return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to scan template row")
		}

		templates = append(templates, &Template{
			ID:                 id,
			ReactionSMARTS:     smarts,
			ProductFingerprint: chem.FingerprintFromBytes(chem.FingerprintType(fpType), fpBytes, fpLength),
			RelevancePrior:     relevance,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "error iterating template rows")
	}

	sort.Slice(templates, func(i, j int) bool { return templates[i].ID < templates[j].ID })

	log.Info("loaded template corpus", logging.Int("count", len(templates)))

	return &Repository{log: log, templates: templates}, nil
}

// All returns every template in the corpus, in ascending ID order. The
// returned slice must not be mutated by callers.
func (r *Repository) All() []*Template {
	return r.templates
}

// Count returns the number of templates in the loaded corpus.
func (r *Repository) Count() int {
	return len(r.templates)
}

// Get returns the template with the given index into All(), or an error if
// out of range. D1's apply_template addresses templates by this index.
func (r *Repository) Get(index int) (*Template, error) {
	if index < 0 || index >= len(r.templates) {
		return nil, errors.New(errors.CodeTemplateNotFound, "template index out of range")
	}
	return r.templates[index], nil
}

// InsertTemplate adds one template to the corpus, for migration/seeding
// tooling. It does not update the in-memory Repository snapshot.
func InsertTemplate(ctx context.Context, pool *pgxpool.Pool, smarts string, fp *chem.Fingerprint, relevancePrior float64) (int64, error) {
	var id int64
	err := WithTransaction(ctx, pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO templates (reaction_smarts, product_fingerprint, fingerprint_type, fingerprint_length, relevance_prior)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, smarts, fp.ToBytes(), string(fp.Type), fp.Length, relevancePrior).Scan(&id)
	})
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeDatabaseError, "failed to insert template")
	}
	return id, nil
}

//Personal.AI order the ending

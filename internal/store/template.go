package store

import (
	"context"
	"fmt"

	"github.com/abhisek/gauntlet/ent"
	"github.com/abhisek/gauntlet/ent/prompttemplate"
)

// templateRepo implements TemplateRepo backed by ent.
type templateRepo struct {
	client *ent.Client
}

func (r *templateRepo) Get(ctx context.Context, key string) (string, error) {
	row, err := r.client.PromptTemplate.Query().
		Where(prompttemplate.Key(key)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get template: %w", err)
	}
	return row.Body, nil
}

func (r *templateRepo) Upsert(ctx context.Context, key, body string) error {
	existing, err := r.client.PromptTemplate.Query().
		Where(prompttemplate.Key(key)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err := r.client.PromptTemplate.Create().
			SetKey(key).
			SetBody(body).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create template: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query template: %w", err)
	}

	if _, err := existing.Update().SetBody(body).Save(ctx); err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	return nil
}

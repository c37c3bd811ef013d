// Package storage persists generated site projects. Projects are addressed
// two ways: an edit token that grants regeneration, and a public share slug
// that grants read-only viewing.
package storage

import (
	"context"
	"errors"
	"time"

	"weblive_server/internal/types"
)

var (
	ErrNotFound = errors.New("project not found")
	ErrExpired  = errors.New("project has expired")
)

// Project is one stored generation result together with the input that
// produced it, so the site can be regenerated with a fresh seed.
type Project struct {
	ID        string            `json:"id"`
	Input     types.WizardInput `json:"input"`
	SiteSpec  *types.SiteSpec   `json:"site_spec"`
	Seo       *types.SeoPayload `json:"seo,omitempty"`
	Seed      int64             `json:"seed"`
	Status    string            `json:"status"`
	ShareSlug string            `json:"share_slug"`
	EditToken string            `json:"edit_token"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// Expired reports whether the project's lifetime has passed. Stores keep
// expired records around for a grace period so lookups can distinguish
// "gone" from "never existed".
func (p *Project) Expired(now time.Time) bool {
	return !p.ExpiresAt.IsZero() && now.After(p.ExpiresAt)
}

type Store interface {
	Create(ctx context.Context, project *Project) error
	GetByEditToken(ctx context.Context, token string) (*Project, error)
	GetByShareSlug(ctx context.Context, slug string) (*Project, error)
	// UpdateSite replaces the generated artifacts of an existing project.
	UpdateSite(ctx context.Context, project *Project) error
}

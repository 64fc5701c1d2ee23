package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"behavior-analytics/internal/models"
)

var (
	ErrSiteNotFound = errors.New("site not found")
)

// Site rows are append-and-supersede: every update or soft deletion is a
// new physical row with a higher updated_at version. Resolution reads the
// latest version per site_id and treats a latest-version is_deleted row
// as absent.

// querySiteLatest resolves the latest version of one site.
const querySiteLatest = `
	SELECT site_id, user_id, name, domain, is_deleted, created_at, updated_at
	FROM (
		SELECT DISTINCT ON (site_id)
			site_id, user_id, name, domain, is_deleted, created_at, updated_at
		FROM sites
		WHERE site_id = $1
		ORDER BY site_id, updated_at DESC
	) latest
	WHERE is_deleted = FALSE
`

// querySiteLatestOwned additionally requires the owner's user_id to match.
const querySiteLatestOwned = `
	SELECT site_id, user_id, name, domain, is_deleted, created_at, updated_at
	FROM (
		SELECT DISTINCT ON (site_id)
			site_id, user_id, name, domain, is_deleted, created_at, updated_at
		FROM sites
		WHERE site_id = $1
		ORDER BY site_id, updated_at DESC
	) latest
	WHERE is_deleted = FALSE AND user_id = $2
`

//go:generate mockgen -source=site_store.go -destination=./mocks/site_store_mock.go -package=mocks
type SiteStore interface {
	// ResolveSite returns the latest non-deleted version of a site, or
	// ErrSiteNotFound when the site is absent or soft-deleted.
	ResolveSite(ctx context.Context, siteID string) (*models.Site, error)
	// ResolveOwnedSite is ResolveSite restricted to one owner identity.
	ResolveOwnedSite(ctx context.Context, siteID, userID string) (*models.Site, error)
}

type siteStore struct {
	db *sql.DB
}

func NewSiteStore(db *sql.DB) SiteStore {
	return &siteStore{db: db}
}

func (s *siteStore) ResolveSite(ctx context.Context, siteID string) (*models.Site, error) {
	return s.scanSite(s.db.QueryRowContext(ctx, querySiteLatest, siteID))
}

func (s *siteStore) ResolveOwnedSite(ctx context.Context, siteID, userID string) (*models.Site, error) {
	return s.scanSite(s.db.QueryRowContext(ctx, querySiteLatestOwned, siteID, userID))
}

func (s *siteStore) scanSite(row *sql.Row) (*models.Site, error) {
	var site models.Site
	err := row.Scan(
		&site.SiteID,
		&site.UserID,
		&site.Name,
		&site.Domain,
		&site.IsDeleted,
		&site.CreatedAt,
		&site.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSiteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve site: %w", err)
	}
	return &site, nil
}

package models

import "time"

// Site is a registered website whose telemetry is isolated by SiteID.
// Site rows use the same append-and-supersede model as session state:
// updates and soft deletions append a new row with a higher updated_at
// version, and resolution always reads the latest version.
type Site struct {
	SiteID    string
	UserID    string
	Name      string
	Domain    string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

package models

import (
	"database/sql"
	"time"
)

const (
	PublicationStatusPublished = "published"
	PublicationStatusFailed    = "failed"
)

const (
	PublicationSourcePlatforms   = "platforms"
	PublicationSourceReliability = "reliability"
)

// Publication is an append-only record that a message was published.
type Publication struct {
	ID            int64          `db:"id" json:"id"`
	CountryCode   sql.NullString `db:"country_code" json:"country_code,omitempty"`
	PlatformName  string         `db:"platform_name" json:"platform_name"`
	Source        string         `db:"source" json:"source"`
	Status        string         `db:"status" json:"status"`
	GatewayClient sql.NullString `db:"gateway_client" json:"gateway_client,omitempty"`
	DateCreated   time.Time      `db:"date_created" json:"date_created"`
}

// PublicationFilter narrows a publication query. Empty strings are ignored.
type PublicationFilter struct {
	StartDate     time.Time
	EndDate       time.Time
	CountryCode   string
	PlatformName  string
	Source        string
	Status        string
	GatewayClient string
}

// PublicationTotals summarizes a filtered publication query.
type PublicationTotals struct {
	Total     int64 `db:"total"`
	Published int64 `db:"published"`
	Failed    int64 `db:"failed"`
}

// PublicationEntry is what a caller hands to the recorder. Empty optional fields are
// stored as NULL.
type PublicationEntry struct {
	PlatformName  string
	Source        string
	Status        string
	CountryCode   string
	GatewayClient string
}

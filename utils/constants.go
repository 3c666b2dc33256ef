package utils

import (
	"time"
)

// Token and session time constants
const (
	// AccessTokenTTL is the time-to-live for access tokens (24 hours)
	AccessTokenTTL = 24 * time.Hour

	// RefreshTokenTTL is the time-to-live for refresh tokens (7 days)
	RefreshTokenTTL = 7 * 24 * time.Hour

)

// Calendar and cache constants
const (
	// SnapshotTTL is how long a cached monthly aggregation snapshot stays
	// valid without being refreshed.
	SnapshotTTL = 6 * time.Hour

	// DefaultPageSize for paginated repository scans
	DefaultPageSize = 100
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

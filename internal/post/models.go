package post

import (
	"fmt"
	"time"

	"github.com/securewithdom/Dom-Creator-Dashboard/internal/platform"
)

type Post struct {
	ID              string            `json:"id"`
	Platform        platform.Platform `json:"platform"`
	Caption         string            `json:"caption"`
	ScheduledAt     time.Time         `json:"scheduled_datetime"`
	LinkOrAssetNote string            `json:"link_or_asset_note"`
	IsPosted        bool              `json:"is_posted"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// Patch carries a partial update; nil fields keep their stored value.
type Patch struct {
	Platform        *string
	Caption         *string
	ScheduledAt     *time.Time
	LinkOrAssetNote *string
	IsPosted        *bool
}

var scheduleLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseScheduledAt accepts RFC 3339 timestamps as well as the value an HTML
// datetime-local input submits.
func ParseScheduledAt(s string) (time.Time, error) {
	for _, layout := range scheduleLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q, use ISO format: YYYY-MM-DDTHH:mm", s)
}

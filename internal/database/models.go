package database

import (
	"time"
)

// CampaignSummary is one row of the campaign list
type CampaignSummary struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	FactionCode string    `db:"faction_code"`
	Date        time.Time `db:"campaign_date"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// OptionsSnapshot is one committed version of a campaign's options
type OptionsSnapshot struct {
	ID            int64     `db:"id"`
	CampaignID    int64     `db:"campaign_id"`
	ChangedFields []string  `db:"changed_fields"`
	OptionsINI    string    `db:"options_ini"`
	RecordedAt    time.Time `db:"recorded_at"`
}

// documents are the encoded option records stored beside a campaign row
type documents struct {
	optionsINI string
	rules      string
	abilities  string
	skillTable string
}

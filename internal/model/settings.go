package model

// Lead-days bounds for the reminder slider
const (
	MinLeadDays     = 1
	MaxLeadDays     = 14
	DefaultLeadDays = 3
)

// Settings holds the user's alert configuration. It is a process-wide
// singleton persisted wholesale as one JSON blob.
type Settings struct {
	BrowserAlerts bool `json:"browserAlerts"`
	LeadDays      int  `json:"leadDays"`
}

// DefaultSettings returns the first-run configuration
func DefaultSettings() Settings {
	return Settings{
		BrowserAlerts: true,
		LeadDays:      DefaultLeadDays,
	}
}

// ClampLeadDays forces a lead-days value into the supported range
func ClampLeadDays(days int) int {
	if days < MinLeadDays {
		return MinLeadDays
	}
	if days > MaxLeadDays {
		return MaxLeadDays
	}
	return days
}

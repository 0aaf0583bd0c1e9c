package model

// ExpiryStatus represents the urgency band of an item derived from its
// expiry date. It is computed on demand and never persisted.
type ExpiryStatus string

const (
	// StatusSafe means the item expires in 7 or more days
	StatusSafe ExpiryStatus = "SAFE"

	// StatusWarning means the item expires within the next 7 days (today included)
	StatusWarning ExpiryStatus = "WARNING"

	// StatusExpired means the expiry date has passed
	StatusExpired ExpiryStatus = "EXPIRED"
)

// String returns the string representation of ExpiryStatus
func (es ExpiryStatus) String() string {
	return string(es)
}

// IsExpired returns true if the item is past its expiry date
func (es ExpiryStatus) IsExpired() bool {
	return es == StatusExpired
}

// NeedsAttention returns true if the item should be visually highlighted
func (es ExpiryStatus) NeedsAttention() bool {
	return es == StatusWarning || es == StatusExpired
}

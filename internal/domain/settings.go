package domain

import "time"

// UserSettings holds the per-user pointer into the 12-day cycle.
// There is exactly one logical record per user, addressed by a
// deterministic id so concurrent upserts collapse onto one document.
type UserSettings struct {
	ID         string    `bson:"_id" json:"id"`
	Type       string    `bson:"type" json:"-"`
	UserID     string    `bson:"userId" json:"userId"`
	CurrentDay int       `bson:"currentDay" json:"currentDay"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SettingsID derives the single settings document id for a user.
func SettingsID(userID string) string {
	return "settings_" + userID
}

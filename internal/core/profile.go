package core

import "time"

// Defaults applied to new profiles. The deployment is a Japanese household,
// hence yen and JST.
const (
	DefaultCurrency = "JPY"
	DefaultTimezone = "Asia/Tokyo"
)

// UserProfile holds a user's display preferences.
type UserProfile struct {
	UserID      UserID    `json:"user_id"`
	DisplayName *string   `json:"display_name,omitempty"`
	Currency    string    `json:"currency"`
	Timezone    string    `json:"timezone"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewUserProfile creates a profile with default currency and timezone.
func NewUserProfile(userID UserID) *UserProfile {
	now := time.Now().UTC()
	return &UserProfile{
		UserID:    userID,
		Currency:  DefaultCurrency,
		Timezone:  DefaultTimezone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update applies the non-nil fields and refreshes UpdatedAt. The timestamp
// moves even when every argument is nil.
func (p *UserProfile) Update(displayName, currency, timezone *string) {
	if displayName != nil {
		p.DisplayName = displayName
	}
	if currency != nil {
		p.Currency = *currency
	}
	if timezone != nil {
		p.Timezone = *timezone
	}
	p.UpdatedAt = time.Now().UTC()
}

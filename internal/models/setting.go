package models

import "time"

// SettingAutoApprove controls whether newly submitted profiles go live
// without manual review. It is the only setting the application consumes.
const SettingAutoApprove = "auto_approve_profiles"

// AdminSetting is a generic key/boolean toggle managed from the admin surface.
type AdminSetting struct {
	Key       string    `json:"key" db:"key"`
	Value     bool      `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// internal/domain/models/profile.go
package models

import "time"

// Profile is a user of the school portal. The currently signed-in profile
// is the Viewer of every dashboard.
type Profile struct {
	ID           string    `bson:"_id" json:"id"`
	FullName     string    `bson:"full_name" json:"full_name"`
	Email        string    `bson:"email" json:"email"`
	Role         Role      `bson:"role" json:"role"`
	AvatarURL    string    `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	PasswordHash string    `bson:"password_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

package models

import "time"

// User is the administrative account. PasswordHash holds a bcrypt hash and is never serialized.
type User struct {
	ID           string    `json:"id" bson:"id" gorm:"type:varchar(36);primaryKey;not null"`
	Username     string    `json:"username" bson:"username" gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `json:"-" bson:"password" gorm:"column:password;type:text;not null"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at" gorm:"not null;autoCreateTime:false"`
}

package models

import "time"

// Category groups posts by name. Names are not required to be unique.
type Category struct {
	ID          string    `json:"id" bson:"id" gorm:"type:varchar(36);primaryKey;not null"`
	Name        string    `json:"name" bson:"name" gorm:"type:text;not null;index"`
	Description string    `json:"description" bson:"description" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" gorm:"not null;autoCreateTime:false"`
}

type CategoryDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

package models

import (
	"time"
)

// Post represents a blog post as stored in the posts collection
type Post struct {
	ID        string    `json:"id" bson:"id" gorm:"type:varchar(36);primaryKey;not null"`
	Title     string    `json:"title" bson:"title" gorm:"type:text;not null"`
	Content   string    `json:"content" bson:"content" gorm:"type:text;not null"`
	Excerpt   string    `json:"excerpt" bson:"excerpt" gorm:"type:text;not null"`
	Category  string    `json:"category" bson:"category" gorm:"type:text;not null;index"`
	ImageURL  string    `json:"image_url" bson:"image_url" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at" gorm:"not null;autoUpdateTime:false"`
	// no gorm default: a default tag would turn an explicit false into true on insert
	Published bool `json:"published" bson:"published" gorm:"not null;index"`
}

// PostDraft is the payload accepted when creating a post
type PostDraft struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	Category  string `json:"category"`
	ImageURL  string `json:"image_url"`
	Published *bool  `json:"published"`
}

// IsPublished reports the draft's published flag, which defaults to true.
func (d PostDraft) IsPublished() bool {
	return d.Published == nil || *d.Published
}

// PostPatch is a partial update. Absent fields leave the stored value untouched;
// present fields overwrite it even when empty.
type PostPatch struct {
	Title     Optional[string] `json:"title"`
	Content   Optional[string] `json:"content"`
	Excerpt   Optional[string] `json:"excerpt"`
	Category  Optional[string] `json:"category"`
	ImageURL  Optional[string] `json:"image_url"`
	Published Optional[bool]   `json:"published"`
}

package models

import (
	"time"
)

type Post struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"size:100;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	DatePosted time.Time `json:"date_posted" gorm:"not null;index"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`

	// Relationship
	Author User `gorm:"foreignKey:UserID" json:"author"`
}

type CreatePostParams struct {
	Title   string
	Content string
	UserID  uint
}

type PostPatch struct {
	Title   *string
	Content *string
}

func (p PostPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 2)
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Content != nil {
		cols["content"] = *p.Content
	}
	return cols
}

func (p PostPatch) Apply(post *Post) {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
}

package schemas

import (
	"time"

	"github.com/krishkalaria12/blog-serve/models"
)

type PostCreate struct {
	Title   string `json:"title" validate:"required,min=1,max=100"`
	Content string `json:"content" validate:"required,min=1"`
	UserID  *uint  `json:"user_id" validate:"required"`
}

func (in PostCreate) Params() models.CreatePostParams {
	var userID uint
	if in.UserID != nil {
		userID = *in.UserID
	}
	return models.CreatePostParams{Title: in.Title, Content: in.Content, UserID: userID}
}

type PostUpdate struct {
	Title   *string `json:"title" validate:"omitnil,min=1,max=100"`
	Content *string `json:"content" validate:"omitnil,min=1"`
}

func (in PostUpdate) Patch() models.PostPatch {
	return models.PostPatch{Title: in.Title, Content: in.Content}
}

type PostResponse struct {
	ID         uint         `json:"id"`
	Title      string       `json:"title"`
	Content    string       `json:"content"`
	UserID     uint         `json:"user_id"`
	DatePosted time.Time    `json:"date_posted"`
	Author     UserResponse `json:"author"`
}

func NewPostResponse(p *models.Post, imageURL ImageURLFunc) PostResponse {
	return PostResponse{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		UserID:     p.UserID,
		DatePosted: p.DatePosted,
		Author:     NewUserResponse(&p.Author, imageURL),
	}
}

func NewPostResponses(posts []models.Post, imageURL ImageURLFunc) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, NewPostResponse(&posts[i], imageURL))
	}
	return out
}

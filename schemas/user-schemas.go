package schemas

import (
	"github.com/krishkalaria12/blog-serve/models"
)

type UserCreate struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	Email    string `json:"email" validate:"required,max=200,email"`
}

func (in UserCreate) Params() models.CreateUserParams {
	return models.CreateUserParams{Username: in.Username, Email: in.Email}
}

// UserUpdate is the PATCH body; absent or null fields are left untouched.
type UserUpdate struct {
	Username  *string `json:"username" validate:"omitnil,min=1,max=50"`
	Email     *string `json:"email" validate:"omitnil,max=200,email"`
	ImageFile *string `json:"image_file" validate:"omitnil,min=1,max=200"`
}

func (in UserUpdate) Patch() models.UserPatch {
	return models.UserPatch{
		Username:  in.Username,
		Email:     in.Email,
		ImageFile: in.ImageFile,
	}
}

type UserResponse struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	ImageFile *string `json:"image_file"`
	ImagePath string  `json:"image_path"`
}

// ImageURLFunc maps a stored picture name to its public URL.
type ImageURLFunc func(name string) string

func NewUserResponse(u *models.User, imageURL ImageURLFunc) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		ImageFile: u.ImageFile,
		ImagePath: u.ImagePath(imageURL),
	}
}

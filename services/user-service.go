package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/krishkalaria12/blog-serve/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// newestFirst orders posts by date_posted, latest first.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("date_posted DESC").Order("id DESC")
}

func valueTaken(tx *gorm.DB, column, value string) (bool, error) {
	var count int64
	err := tx.Model(&models.User{}).Where(column+" = ?", value).Count(&count).Error
	return count > 0, err
}

func findUser(tx *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create checks username then email for collisions before inserting.
func (s *UserService) Create(ctx context.Context, params models.CreateUserParams) (*models.User, error) {
	user := models.User{Username: params.Username, Email: params.Email}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := valueTaken(tx, "username", params.Username)
		if err != nil {
			return err
		}
		if taken {
			return conflict("Username already exists")
		}

		taken, err = valueTaken(tx, "email", params.Email)
		if err != nil {
			return err
		}
		if taken {
			return conflict("Email already exists")
		}

		if err := tx.Omit(clause.Associations).Create(&user).Error; err != nil {
			return fromStorage(err, "Username or email already exists")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Get returns the user with their posts, newest first.
func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Preload("Posts", newestFirst).First(&user, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errUserNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetPosts(ctx context.Context, id uint) ([]models.Post, error) {
	var posts []models.Post

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findUser(tx, id); err != nil {
			return err
		}
		return tx.Preload("Author").Where("user_id = ?", id).Scopes(newestFirst).Find(&posts).Error
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdateFull overwrites username and email without pre-checking them; the
// unique indexes still reject a collision, which is reported as a conflict.
func (s *UserService) UpdateFull(ctx context.Context, id uint, params models.CreateUserParams) (*models.User, error) {
	var user *models.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if user, err = findUser(tx, id); err != nil {
			return err
		}

		err = tx.Model(user).Updates(map[string]interface{}{
			"username": params.Username,
			"email":    params.Email,
		}).Error
		if err != nil {
			return fromStorage(err, "Username or email already exists")
		}

		user.Username = params.Username
		user.Email = params.Email
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePartial applies only the supplied fields. Every changed unique field
// is checked before anything is written.
func (s *UserService) UpdatePartial(ctx context.Context, id uint, patch models.UserPatch) (*models.User, error) {
	var user *models.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if user, err = findUser(tx, id); err != nil {
			return err
		}

		for _, change := range patch.UniqueChanges(user) {
			taken, err := valueTaken(tx, change.Column, change.Value)
			if err != nil {
				return err
			}
			if taken {
				return conflict(fmt.Sprintf("%s already exists", change.Column))
			}
		}

		if cols := patch.Columns(); len(cols) > 0 {
			if err := tx.Model(user).Updates(cols).Error; err != nil {
				return fromStorage(err, "Username or email already exists")
			}
		}

		patch.Apply(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SetPicture stores a new picture name and returns the user along with the
// picture it replaced, if any.
func (s *UserService) SetPicture(ctx context.Context, id uint, imageFile string) (*models.User, *string, error) {
	var (
		user     *models.User
		previous *string
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if user, err = findUser(tx, id); err != nil {
			return err
		}

		if user.ImageFile != nil {
			old := *user.ImageFile
			previous = &old
		}
		if err := tx.Model(user).Update("image_file", imageFile).Error; err != nil {
			return err
		}
		user.ImageFile = &imageFile
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return user, previous, nil
}

// Delete removes the user and every post they own.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := findUser(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
}

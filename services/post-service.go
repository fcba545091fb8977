package services

import (
	"context"
	"errors"
	"time"

	"github.com/krishkalaria12/blog-serve/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostService struct {
	db  *gorm.DB
	now func() time.Time
}

type PostOption func(*PostService)

// WithClock overrides the clock used for date_posted.
func WithClock(now func() time.Time) PostOption {
	return func(s *PostService) { s.now = now }
}

func NewPostService(db *gorm.DB, opts ...PostOption) *PostService {
	s := &PostService{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func findPost(tx *gorm.DB, id uint, withAuthor bool) (*models.Post, error) {
	if withAuthor {
		tx = tx.Preload("Author")
	}

	var post models.Post
	if err := tx.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create fails with a not-found error when params.UserID has no user.
func (s *PostService) Create(ctx context.Context, params models.CreatePostParams) (*models.Post, error) {
	var post models.Post

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		author, err := findUser(tx, params.UserID)
		if err != nil {
			return err
		}

		post = models.Post{
			Title:      params.Title,
			Content:    params.Content,
			DatePosted: s.now().UTC(),
			UserID:     author.ID,
		}
		if err := tx.Omit(clause.Associations).Create(&post).Error; err != nil {
			return fromStorage(err, "Post already exists")
		}

		post.Author = *author
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Preload("Author").Scopes(newestFirst).Find(&posts).Error
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, id uint) (*models.Post, error) {
	var post *models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		post, err = findPost(tx, id, true)
		return err
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePartial changes title and/or content. Ownership is never touched.
func (s *PostService) UpdatePartial(ctx context.Context, id uint, patch models.PostPatch) (*models.Post, error) {
	var post *models.Post

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := findPost(tx, id, true)
		if err != nil {
			return err
		}

		if cols := patch.Columns(); len(cols) > 0 {
			if err := tx.Model(current).Updates(cols).Error; err != nil {
				return err
			}
		}

		patch.Apply(current)
		post = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// UpdateFull replaces title, content and owner. A new owner must exist.
func (s *PostService) UpdateFull(ctx context.Context, id uint, params models.CreatePostParams) (*models.Post, error) {
	var post *models.Post

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := findPost(tx, id, false)
		if err != nil {
			return err
		}

		if params.UserID != current.UserID {
			if _, err := findUser(tx, params.UserID); err != nil {
				return err
			}
		}

		err = tx.Model(current).Updates(map[string]interface{}{
			"title":   params.Title,
			"content": params.Content,
			"user_id": params.UserID,
		}).Error
		if err != nil {
			return fromStorage(err, "Post already exists")
		}

		post, err = findPost(tx, id, true)
		return err
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errPostNotFound
		}
		return nil
	})
}

package store

import (
	"context"
	"errors"
	"fmt"

	"team-awesome/internal/model"

	"gorm.io/gorm"
)

type postRow struct {
	model.Post
	CategoryName string
}

// GetAllPosts lists non-deleted posts, pinned first then newest.
func (s *Store) GetAllPosts(ctx context.Context) []model.PostView {
	return fetch(s, ctx, "posts.list", fallbackPosts, func(db *gorm.DB) ([]model.PostView, error) {
		var rows []postRow
		err := db.Table("posts").
			Select("posts.*, board_categories.name AS category_name").
			Joins("JOIN board_categories ON board_categories.id = posts.category_id").
			Where("posts.is_deleted = ?", false).
			Order("posts.is_pinned DESC, posts.created_at DESC").
			Scan(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("query posts: %w", err)
		}
		views := make([]model.PostView, 0, len(rows))
		for _, r := range rows {
			views = append(views, postView(r))
		}
		return views, nil
	})
}

// GetPostByID bumps view_count and returns the post, or nil when it does
// not exist or is soft-deleted.
func (s *Store) GetPostByID(ctx context.Context, id int) *model.PostView {
	fallback := func() *model.PostView {
		for _, p := range fallbackPosts() {
			if p.ID == id {
				p := p
				return &p
			}
		}
		return nil
	}
	return fetch(s, ctx, "posts.get", fallback, func(db *gorm.DB) (*model.PostView, error) {
		if err := db.Model(&model.Post{}).Where("id = ?", id).
			UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
			return nil, fmt.Errorf("bump view count: %w", err)
		}
		var row postRow
		err := db.Table("posts").
			Select("posts.*, board_categories.name AS category_name").
			Joins("JOIN board_categories ON board_categories.id = posts.category_id").
			Where("posts.id = ? AND posts.is_deleted = ?", id, false).
			Take(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("query post: %w", err)
		}
		v := postView(row)
		return &v, nil
	})
}

// CreatePost resolves the category by name and inserts the post, returning
// the new id.
func (s *Store) CreatePost(ctx context.Context, in model.PostInput) (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("posts.create: %w", ErrNoDatabase)
	}
	db := s.db.WithContext(ctx)
	var cat model.BoardCategory
	if err := db.First(&cat, "name = ?", in.Category).Error; err != nil {
		return 0, fmt.Errorf("posts.create: category %q: %w", in.Category, err)
	}
	p := model.Post{
		Title:      in.Title,
		Content:    in.Content,
		AuthorID:   in.AuthorID,
		AuthorName: in.Author,
		CategoryID: cat.ID,
	}
	if err := db.Create(&p).Error; err != nil {
		return 0, fmt.Errorf("posts.create: %w", err)
	}
	return p.ID, nil
}

func (s *Store) UpdatePost(ctx context.Context, id int, in model.PostInput) error {
	return s.exec(ctx, "posts.update", func(db *gorm.DB) error {
		return db.Model(&model.Post{}).
			Where("id = ? AND is_deleted = ?", id, false).
			Updates(map[string]interface{}{"title": in.Title, "content": in.Content}).Error
	})
}

// DeletePost is a soft delete: the row and its comments stay in place,
// reads just stop seeing them.
func (s *Store) DeletePost(ctx context.Context, id int) error {
	return s.exec(ctx, "posts.delete", func(db *gorm.DB) error {
		return db.Model(&model.Post{}).Where("id = ?", id).
			Update("is_deleted", true).Error
	})
}

func (s *Store) GetBoardCategories(ctx context.Context) []model.BoardCategory {
	return fetch(s, ctx, "board.categories", fallbackBoardCategories, func(db *gorm.DB) ([]model.BoardCategory, error) {
		var cats []model.BoardCategory
		if err := db.Order("id").Find(&cats).Error; err != nil {
			return nil, fmt.Errorf("query board categories: %w", err)
		}
		return cats, nil
	})
}

func (s *Store) GetComments(ctx context.Context, postID int) []model.Comment {
	return fetch(s, ctx, "comments.list", func() []model.Comment { return []model.Comment{} },
		func(db *gorm.DB) ([]model.Comment, error) {
			var comments []model.Comment
			err := db.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error
			if err != nil {
				return nil, fmt.Errorf("query comments: %w", err)
			}
			if comments == nil {
				comments = []model.Comment{}
			}
			return comments, nil
		})
}

// AddComment appends a comment and returns the stored row, including the
// server-assigned id and timestamp, so the UI can insert it without a
// reload. Comments are never updated or deleted.
func (s *Store) AddComment(ctx context.Context, postID int, in model.CommentInput) (*model.Comment, error) {
	if s.db == nil {
		return nil, fmt.Errorf("comments.add: %w", ErrNoDatabase)
	}
	c := model.Comment{PostID: postID, AuthorName: in.AuthorName, Content: in.Content}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, fmt.Errorf("comments.add: %w", err)
	}
	return &c, nil
}

func postView(r postRow) model.PostView {
	return model.PostView{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		AuthorID:  r.AuthorID,
		Author:    r.AuthorName,
		ViewCount: r.ViewCount,
		IsPinned:  r.IsPinned,
		Date:      r.CreatedAt.Format("2006-01-02"),
		Category:  r.CategoryName,
	}
}

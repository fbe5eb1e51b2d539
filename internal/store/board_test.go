package store

import (
	"context"
	"testing"
	"time"

	"team-awesome/internal/model"

	"github.com/stretchr/testify/require"
)

func seedPost(t *testing.T, s *Store, title string) int {
	t.Helper()
	id, err := s.CreatePost(context.Background(), model.PostInput{
		Title:    title,
		Content:  "본문",
		Author:   "김진성",
		Category: "free",
	})
	require.NoError(t, err)
	return id
}

func TestCreatePostResolvesCategoryByName(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	id := seedPost(t, s, "첫 글")
	var row model.Post
	require.NoError(t, db.First(&row, id).Error)
	require.Equal(t, 4, row.CategoryID) // "free"

	p := s.GetPostByID(ctx, id)
	require.NotNil(t, p)
	require.Equal(t, "free", p.Category)

	_, err := s.CreatePost(ctx, model.PostInput{Title: "x", Content: "y", Category: "nope"})
	require.Error(t, err)
}

func TestGetPostBumpsViewCount(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	id := seedPost(t, s, "조회수")

	p := s.GetPostByID(ctx, id)
	require.Equal(t, 1, p.ViewCount)
	p = s.GetPostByID(ctx, id)
	require.Equal(t, 2, p.ViewCount)
}

func TestDeletePostIsSoft(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	id := seedPost(t, s, "지울 글")
	_, err := s.AddComment(ctx, id, model.CommentInput{AuthorName: "김윤성", Content: "댓글"})
	require.NoError(t, err)

	require.NoError(t, s.DeletePost(ctx, id))

	require.Empty(t, s.GetAllPosts(ctx))
	require.Nil(t, s.GetPostByID(ctx, id))

	// the row and its comments survive the delete
	var row model.Post
	require.NoError(t, db.First(&row, id).Error)
	require.True(t, row.IsDeleted)
	var n int64
	require.NoError(t, db.Model(&model.Comment{}).Where("post_id = ?", id).Count(&n).Error)
	require.EqualValues(t, 1, n)
}

func TestUpdatePostSkipsDeleted(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	id := seedPost(t, s, "원제목")
	require.NoError(t, s.DeletePost(ctx, id))

	require.NoError(t, s.UpdatePost(ctx, id, model.PostInput{Title: "바뀐 제목", Content: "x", Category: "free"}))

	var row model.Post
	require.NoError(t, db.First(&row, id).Error)
	require.Equal(t, "원제목", row.Title)
}

func TestListPostsPinnedFirstThenNewest(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	old := seedPost(t, s, "옛 글")
	recent := seedPost(t, s, "새 글")
	pinned := seedPost(t, s, "공지")

	base := time.Now()
	require.NoError(t, db.Model(&model.Post{}).Where("id = ?", old).
		Update("created_at", base.Add(-2*time.Hour)).Error)
	require.NoError(t, db.Model(&model.Post{}).Where("id = ?", recent).
		Update("created_at", base.Add(-time.Hour)).Error)
	require.NoError(t, db.Model(&model.Post{}).Where("id = ?", pinned).
		Updates(map[string]interface{}{"created_at": base.Add(-3 * time.Hour), "is_pinned": true}).Error)

	posts := s.GetAllPosts(ctx)
	require.Len(t, posts, 3)
	require.Equal(t, []string{"공지", "새 글", "옛 글"}, []string{posts[0].Title, posts[1].Title, posts[2].Title})
}

func TestCommentsAppendInOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	id := seedPost(t, s, "댓글 글")

	first, err := s.AddComment(ctx, id, model.CommentInput{AuthorName: "김진성", Content: "첫 댓글"})
	require.NoError(t, err)
	require.NotZero(t, first.ID)
	require.False(t, first.CreatedAt.IsZero())

	second, err := s.AddComment(ctx, id, model.CommentInput{AuthorName: "김윤성", Content: "둘째 댓글"})
	require.NoError(t, err)

	comments := s.GetComments(ctx, id)
	require.Len(t, comments, 2)
	require.Equal(t, first.ID, comments[0].ID)
	require.Equal(t, second.ID, comments[1].ID)
}

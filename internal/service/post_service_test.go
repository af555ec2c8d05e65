package service

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/model"
	"Ronghua/internal/pkg/consts"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreateExtractsTags(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostService(env.posts, env.users)
	ctx := context.Background()
	u := env.seedUser(t, "poster", base)

	id, err := svc.CreatePost(ctx, u.ID, &dto.CreatePostDTO{Title: "第一朵绒花", Content: "终于做好了 #绒花 #手作。", Category: "作品"})
	require.NoError(t, err)

	detail, err := svc.GetPost(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"绒花", "手作"}, detail.Tags)
	assert.Equal(t, "poster", detail.Author)
	assert.Equal(t, consts.PostStatusPublished, detail.Status)
	assert.Equal(t, []string{}, detail.Images)

	_, err = svc.CreatePost(ctx, 9999, &dto.CreatePostDTO{Title: "x", Content: "x", Category: "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPostService_StatusViewDelete(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostService(env.posts, env.users)
	ctx := context.Background()
	u := env.seedUser(t, "poster", base)
	p := env.seedPost(t, u, "待审核", consts.PostStatusDraft)

	_, err := svc.ViewPost(ctx, p.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	assert.ErrorIs(t, svc.UpdateStatus(ctx, p.ID, "deleted"), ErrStatusInvalid)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, 9999, consts.PostStatusHidden), ErrPostNotFound)
	require.NoError(t, svc.UpdateStatus(ctx, p.ID, consts.PostStatusPublished))

	viewed, err := svc.ViewPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, viewed.ViewCount)

	page, err := svc.ListPosts(ctx, dto.ListQuery{Status: consts.PostStatusPublished})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	require.NoError(t, svc.DeletePost(ctx, p.ID))
	assert.ErrorIs(t, svc.DeletePost(ctx, p.ID), ErrPostNotFound)
}

func TestCommentService_TreeAndSubtreeDelete(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCommentService(env.comments, env.posts, env.users)
	ctx := context.Background()
	u := env.seedUser(t, "reader", base)
	post := env.seedPost(t, u, "讨论", consts.PostStatusPublished)
	other := env.seedPost(t, u, "另一帖", consts.PostStatusPublished)

	root, err := svc.AddComment(ctx, post.ID, u.ID, &dto.CreateCommentDTO{Content: "顶层"})
	require.NoError(t, err)
	reply, err := svc.AddComment(ctx, post.ID, u.ID, &dto.CreateCommentDTO{Content: "回复", ParentID: &root})
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, post.ID, u.ID, &dto.CreateCommentDTO{Content: "再回复", ParentID: &reply})
	require.NoError(t, err)
	sibling, err := svc.AddComment(ctx, post.ID, u.ID, &dto.CreateCommentDTO{Content: "另一条"})
	require.NoError(t, err)

	_, err = svc.AddComment(ctx, other.ID, u.ID, &dto.CreateCommentDTO{Content: "跨帖回复", ParentID: &root})
	assert.ErrorIs(t, err, ErrCommentParent)
	assertKind(t, KindValidation, err)
	missing := uint64(9999)
	_, err = svc.AddComment(ctx, post.ID, u.ID, &dto.CreateCommentDTO{Content: "x", ParentID: &missing})
	assert.ErrorIs(t, err, ErrCommentParent)

	tree, err := svc.ListTree(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, root, tree[0].ID)
	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, reply, tree[0].Replies[0].ID)
	require.Len(t, tree[0].Replies[0].Replies, 1)
	assert.Empty(t, tree[1].Replies)

	var got model.Post
	require.NoError(t, env.db.First(&got, post.ID).Error)
	assert.Equal(t, 4, got.CommentCount)

	deleted, err := svc.DeleteComment(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	tree, err = svc.ListTree(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, sibling, tree[0].ID)

	require.NoError(t, env.db.First(&got, post.ID).Error)
	assert.Equal(t, 1, got.CommentCount)

	_, err = svc.DeleteComment(ctx, root)
	assert.ErrorIs(t, err, ErrCommentNotFound)
	_, err = svc.ListTree(ctx, 9999)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCommentService_RejectsUnpublishedPost(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCommentService(env.comments, env.posts, env.users)
	ctx := context.Background()
	u := env.seedUser(t, "lurker", base)

	for _, status := range []string{consts.PostStatusHidden, consts.PostStatusDraft} {
		post := env.seedPost(t, u, "不可见-"+status, status)
		_, err := svc.AddComment(ctx, post.ID, u.ID, &dto.CreateCommentDTO{Content: "看得到吗"})
		assert.ErrorIs(t, err, ErrPostNotFound, status)
		assertKind(t, KindNotFound, err)
	}

	var n int64
	require.NoError(t, env.db.Model(&model.Comment{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCommentArena_OrphanBecomesRoot(t *testing.T) {
	gone := uint64(42)
	arena := newCommentArena([]*model.Comment{
		{ID: 1, Content: "a"},
		{ID: 2, Content: "b", ParentID: &gone},
	})
	tree := arena.tree()
	require.Len(t, tree, 2)
	assert.Equal(t, consts.AnonymousAuthor, tree[0].Author)
	assert.Nil(t, arena.subtree(99))
	assert.Equal(t, []uint64{2}, arena.subtree(2))
}

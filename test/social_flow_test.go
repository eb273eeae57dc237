package test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"weiblog/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================
// 关注 / 粉丝 / 博客 / 评论全流程
// ============================================

// TestFollowFlow alice 发博客，bob 关注后 alice 的粉丝数变为 1
func TestFollowFlow(t *testing.T) {
	app := newTestApp(t)

	aliceClient := app.signup(t, "alice", "abc123")
	resp, _ := app.postForm(t, aliceClient, "/blog/add", url.Values{"content": {"hello"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	alice, err := app.svc.Users.GetByUsername("alice")
	require.NoError(t, err)

	bobClient := app.signup(t, "bob", "abc123")
	resp, body := app.get(t, bobClient, fmt.Sprintf("/follow/%d", alice.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// 关注后落回 alice 的主页，粉丝数已是 1
	assert.Contains(t, body, "alice 的主页")
	assert.Contains(t, body, "粉丝 1")

	aliceNow, err := app.svc.Users.Get(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, aliceNow.FanCount)

	bob, err := app.svc.Users.GetByUsername("bob")
	require.NoError(t, err)
	assert.Equal(t, 1, bob.FollowCount)

	// 关注列表和粉丝列表
	_, body = app.get(t, bobClient, fmt.Sprintf("/follow/list/%d", bob.ID))
	assert.Contains(t, body, "alice")

	_, body = app.get(t, bobClient, fmt.Sprintf("/fan/list/%d", alice.ID))
	assert.Contains(t, body, "bob")
}

// TestFollowFlow_Repeat 重复关注不会产生重复边
func TestFollowFlow_Repeat(t *testing.T) {
	app := newTestApp(t)

	app.signup(t, "alice", "abc123")
	alice, err := app.svc.Users.GetByUsername("alice")
	require.NoError(t, err)

	bobClient := app.signup(t, "bob", "abc123")
	for i := 0; i < 2; i++ {
		resp, _ := app.get(t, bobClient, fmt.Sprintf("/follow/%d", alice.ID))
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var edges int64
	require.NoError(t, app.db.Model(&model.Follow{}).Count(&edges).Error)
	assert.EqualValues(t, 1, edges)

	bob, err := app.svc.Users.GetByUsername("bob")
	require.NoError(t, err)
	assert.Equal(t, 1, bob.FollowCount)
}

// TestUnfollow_MissingEdge 没关注过就取关返回 404
func TestUnfollow_MissingEdge(t *testing.T) {
	app := newTestApp(t)

	app.signup(t, "alice", "abc123")
	alice, err := app.svc.Users.GetByUsername("alice")
	require.NoError(t, err)

	bobClient := app.signup(t, "bob", "abc123")
	resp, _ := app.get(t, bobClient, fmt.Sprintf("/unfollow/%d", alice.ID))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// TestCommentFlow alice 发博客，bob 评论，alice 回复，com_count 跟着评论总数走
func TestCommentFlow(t *testing.T) {
	app := newTestApp(t)

	aliceClient := app.signup(t, "alice", "abc123")
	resp, _ := app.postForm(t, aliceClient, "/blog/add", url.Values{"content": {"hello"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	alice, err := app.svc.Users.GetByUsername("alice")
	require.NoError(t, err)
	blogs, err := app.svc.Blogs.Timeline(alice.ID)
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	blogID := blogs[0].ID

	// bob 发顶层评论
	bobClient := app.signup(t, "bob", "abc123")
	resp, body := app.postForm(t, bobClient, fmt.Sprintf("/comment/add/%d", blogID), url.Values{
		"content": {"nice post"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "nice post")

	blogNow, err := app.svc.Blogs.Get(blogID)
	require.NoError(t, err)
	assert.Equal(t, 1, blogNow.ComCount)

	// alice 回复 bob 的评论
	topLevel, _, err := app.svc.Comments.ListByBlog(blogID)
	require.NoError(t, err)
	require.Len(t, topLevel, 1)

	resp, body = app.postForm(t, aliceClient, fmt.Sprintf("/reply/add/%d", topLevel[0].ID), url.Values{
		"content": {"thanks"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "thanks")

	blogNow, err = app.svc.Blogs.Get(blogID)
	require.NoError(t, err)
	assert.Equal(t, 2, blogNow.ComCount, "回复也计入 com_count")

	// 页面上顶层评论和回复分组展示
	_, body = app.get(t, bobClient, fmt.Sprintf("/blog/%d", blogID))
	assert.Contains(t, body, "nice post")
	assert.Contains(t, body, "回复：thanks")
}

// TestReplyView 回复页展示被回复的评论
func TestReplyView(t *testing.T) {
	app := newTestApp(t)

	aliceClient := app.signup(t, "alice", "abc123")
	_, _ = app.postForm(t, aliceClient, "/blog/add", url.Values{"content": {"hello"}})

	alice, err := app.svc.Users.GetByUsername("alice")
	require.NoError(t, err)
	blogs, err := app.svc.Blogs.Timeline(alice.ID)
	require.NoError(t, err)

	comment, err := app.svc.Comments.Create(blogs[0].ID, "bob", "question?", 0)
	require.NoError(t, err)

	resp, body := app.get(t, aliceClient, fmt.Sprintf("/reply/add/%d", comment.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "回复 bob")
	assert.Contains(t, body, "question?")

	// 回复不存在的评论
	resp, _ = app.get(t, aliceClient, "/reply/add/99999")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

package handler

import (
	"errors"
	"strconv"

	"weiblog/middleware"
	"weiblog/model"
	"weiblog/service"
	"weiblog/utils"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogSvc    *service.BlogService
	commentSvc *service.CommentService
	userSvc    *service.UserService
	followSvc  *service.FollowService
}

func NewBlogHandler(blogSvc *service.BlogService, commentSvc *service.CommentService,
	userSvc *service.UserService, followSvc *service.FollowService) *BlogHandler {
	return &BlogHandler{
		blogSvc:    blogSvc,
		commentSvc: commentSvc,
		userSvc:    userSvc,
		followSvc:  followSvc,
	}
}

// TimelineView 显示某个用户的主页
// 目标用户不存在返回 404，未登录返回 401
func (h *BlogHandler) TimelineView(c *gin.Context) {
	target, err := h.userSvc.GetByUsername(c.Param("username"))
	if errors.Is(err, service.ErrUserNotFound) {
		utils.AbortNotFound(c)
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	userNow, ok := middleware.CurrentUser(c)
	if !ok {
		utils.AbortUnauthorized(c)
		return
	}

	blogs, err := h.blogSvc.Timeline(target.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	// 看别人的主页时带上关注状态，决定显示"关注"还是"取关"
	following := false
	if userNow.ID != target.ID {
		following, err = h.followSvc.IsFollowing(userNow.ID, target.ID)
		if err != nil {
			_ = c.Error(err)
			return
		}
	}

	utils.Render(c, "timeline.html", gin.H{
		"user_now":  userNow,
		"target":    target,
		"blogs":     blogs,
		"following": following,
		"is_self":   userNow.ID == target.ID,
	})
}

// AddView 显示写博客页
func (h *BlogHandler) AddView(c *gin.Context) {
	userNow, _ := middleware.CurrentUser(c)
	utils.Render(c, "blog_add.html", gin.H{"user_now": userNow})
}

// Add 处理发博客请求
func (h *BlogHandler) Add(c *gin.Context) {
	userNow, _ := middleware.CurrentUser(c)

	if _, err := h.blogSvc.Create(userNow.ID, c.PostForm("content")); err != nil {
		_ = c.Error(err)
		return
	}
	utils.Redirect(c, "/timeline/"+userNow.Username)
}

// View 显示博客详情，评论分成顶层和回复两组
func (h *BlogHandler) View(c *gin.Context) {
	blog, ok := h.pathBlog(c)
	if !ok {
		return
	}

	owner, err := h.userSvc.Get(blog.UserID)
	if err != nil && !errors.Is(err, service.ErrUserNotFound) {
		_ = c.Error(err)
		return
	}

	topLevel, replies, err := h.commentSvc.ListByBlog(blog.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	userNow, _ := middleware.CurrentUser(c)
	utils.Render(c, "blog_view.html", gin.H{
		"user_now": userNow,
		"blog":     blog,
		"owner":    owner,
		"comments": topLevel,
		"replies":  replies,
	})
}

// UpdateView 显示编辑博客页（博主或管理员）
func (h *BlogHandler) UpdateView(c *gin.Context) {
	blog, ok := h.modifiableBlog(c)
	if !ok {
		return
	}

	userNow, _ := middleware.CurrentUser(c)
	utils.Render(c, "blog_update.html", gin.H{
		"user_now": userNow,
		"blog":     blog,
	})
}

// Update 处理编辑博客请求（博主或管理员）
func (h *BlogHandler) Update(c *gin.Context) {
	blog, ok := h.modifiableBlog(c)
	if !ok {
		return
	}

	if err := h.blogSvc.Update(blog.ID, c.PostForm("content")); err != nil {
		_ = c.Error(err)
		return
	}
	utils.Redirect(c, "/blog/"+strconv.FormatInt(blog.ID, 10))
}

// Delete 处理删除博客请求（博主或管理员）
func (h *BlogHandler) Delete(c *gin.Context) {
	blog, ok := h.modifiableBlog(c)
	if !ok {
		return
	}

	if err := h.blogSvc.Delete(blog.ID); err != nil {
		_ = c.Error(err)
		return
	}

	userNow, _ := middleware.CurrentUser(c)
	utils.Redirect(c, "/timeline/"+userNow.Username)
}

// pathBlog 解析路径里的博客 ID，找不到返回 404
func (h *BlogHandler) pathBlog(c *gin.Context) (*model.Blog, bool) {
	id, err := strconv.ParseInt(c.Param("blog_id"), 10, 64)
	if err != nil {
		utils.AbortNotFound(c)
		return nil, false
	}

	blog, err := h.blogSvc.Get(id)
	if errors.Is(err, service.ErrBlogNotFound) {
		utils.AbortNotFound(c)
		return nil, false
	}
	if err != nil {
		_ = c.Error(err)
		return nil, false
	}
	return blog, true
}

// modifiableBlog 取路径里的博客并做归属校验
// 只有博主本人或管理员可以改/删
func (h *BlogHandler) modifiableBlog(c *gin.Context) (*model.Blog, bool) {
	blog, ok := h.pathBlog(c)
	if !ok {
		return nil, false
	}

	userNow, _ := middleware.CurrentUser(c)
	if !h.blogSvc.CanModify(userNow, blog) {
		utils.AbortUnauthorized(c)
		return nil, false
	}
	return blog, true
}

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

type CommentHandler struct {
	commentSvc *service.CommentService
}

func NewCommentHandler(commentSvc *service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

// Add 处理发评论请求，评论挂在路径指定的博客下
func (h *CommentHandler) Add(c *gin.Context) {
	blogID, err := strconv.ParseInt(c.Param("blog_id"), 10, 64)
	if err != nil {
		utils.AbortNotFound(c)
		return
	}

	userNow, _ := middleware.CurrentUser(c)
	_, err = h.commentSvc.Create(blogID, userNow.Username, c.PostForm("content"), 0)
	if errors.Is(err, service.ErrBlogNotFound) {
		utils.AbortNotFound(c)
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	utils.Redirect(c, "/blog/"+strconv.FormatInt(blogID, 10))
}

// ReplyView 显示回复页，展示被回复的评论
func (h *CommentHandler) ReplyView(c *gin.Context) {
	parent, ok := h.parentComment(c)
	if !ok {
		return
	}

	userNow, _ := middleware.CurrentUser(c)
	utils.Render(c, "reply_add.html", gin.H{
		"user_now": userNow,
		"parent":   parent,
	})
}

// Reply 处理回复请求，回复落在父评论所属的博客下
func (h *CommentHandler) Reply(c *gin.Context) {
	parent, ok := h.parentComment(c)
	if !ok {
		return
	}

	userNow, _ := middleware.CurrentUser(c)
	_, err := h.commentSvc.Create(parent.BlogID, userNow.Username, c.PostForm("content"), parent.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	utils.Redirect(c, "/blog/"+strconv.FormatInt(parent.BlogID, 10))
}

// parentComment 解析路径里的父评论 ID，找不到返回 404
func (h *CommentHandler) parentComment(c *gin.Context) (*model.Comment, bool) {
	id, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		utils.AbortNotFound(c)
		return nil, false
	}

	comment, err := h.commentSvc.Get(id)
	if errors.Is(err, service.ErrCommentNotFound) {
		utils.AbortNotFound(c)
		return nil, false
	}
	if err != nil {
		_ = c.Error(err)
		return nil, false
	}
	return comment, true
}

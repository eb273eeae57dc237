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

type FollowHandler struct {
	followSvc *service.FollowService
	userSvc   *service.UserService
}

func NewFollowHandler(followSvc *service.FollowService, userSvc *service.UserService) *FollowHandler {
	return &FollowHandler{followSvc: followSvc, userSvc: userSvc}
}

// Follow 关注目标用户后跳回其主页
// 重复关注按 no-op 处理，不产生重复边
func (h *FollowHandler) Follow(c *gin.Context) {
	userNow, _ := middleware.CurrentUser(c)
	target, ok := h.pathUser(c)
	if !ok {
		return
	}

	// 不能关注自己
	if userNow.ID == target.ID {
		utils.Redirect(c, "/timeline/"+target.Username)
		return
	}

	if err := h.followSvc.Follow(userNow.ID, target.ID); err != nil {
		_ = c.Error(err)
		return
	}
	utils.Redirect(c, "/timeline/"+target.Username)
}

// Unfollow 取关目标用户
// 没有对应的关注边时返回 404，而不是让请求崩掉
func (h *FollowHandler) Unfollow(c *gin.Context) {
	userNow, _ := middleware.CurrentUser(c)
	target, ok := h.pathUser(c)
	if !ok {
		return
	}

	err := h.followSvc.Unfollow(userNow.ID, target.ID)
	if errors.Is(err, service.ErrNotFollowing) {
		utils.AbortNotFound(c)
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Redirect(c, "/timeline/"+target.Username)
}

// FollowingList 显示关注列表
func (h *FollowHandler) FollowingList(c *gin.Context) {
	h.renderList(c, "follow_list.html", h.followSvc.Following)
}

// FanList 显示粉丝列表
func (h *FollowHandler) FanList(c *gin.Context) {
	h.renderList(c, "fan_list.html", h.followSvc.Followers)
}

func (h *FollowHandler) renderList(c *gin.Context, template string, query func(int64) ([]model.User, error)) {
	target, ok := h.pathUser(c)
	if !ok {
		return
	}

	users, err := query(target.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	userNow, _ := middleware.CurrentUser(c)
	utils.Render(c, template, gin.H{
		"user_now": userNow,
		"target":   target,
		"users":    users,
	})
}

// pathUser 解析路径里的用户 ID，找不到返回 404
func (h *FollowHandler) pathUser(c *gin.Context) (*model.User, bool) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		utils.AbortNotFound(c)
		return nil, false
	}

	user, err := h.userSvc.Get(id)
	if errors.Is(err, service.ErrUserNotFound) {
		utils.AbortNotFound(c)
		return nil, false
	}
	if err != nil {
		_ = c.Error(err)
		return nil, false
	}
	return user, true
}

package handler

import (
	"errors"
	"log"
	"strconv"

	"weiblog/middleware"
	"weiblog/model"
	"weiblog/service"
	"weiblog/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc    *service.UserService
	sessionSvc *service.SessionService
}

func NewUserHandler(userSvc *service.UserService, sessionSvc *service.SessionService) *UserHandler {
	return &UserHandler{userSvc: userSvc, sessionSvc: sessionSvc}
}

// LoginView 显示登录页
func (h *UserHandler) LoginView(c *gin.Context) {
	utils.Render(c, "login.html", gin.H{"flash": utils.PopFlash(c)})
}

// Login 处理登录请求
// 成功则建立会话并跳转到自己的时间线，失败闪现提示后回登录页
func (h *UserHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.userSvc.Authenticate(username, password)
	if err != nil {
		if !errors.Is(err, service.ErrLoginFailed) {
			_ = c.Error(err)
			return
		}
		log.Printf("login failed for %q", username)
		utils.SetFlash(c, "登录失败")
		utils.Redirect(c, "/login")
		return
	}

	token, err := h.sessionSvc.Create(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	maxAge := int(h.sessionSvc.TTL().Seconds())
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", false, true)
	utils.Redirect(c, "/timeline/"+user.Username)
}

// Logout 处理登出请求，清除会话和 cookie
func (h *UserHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil {
		if err := h.sessionSvc.Destroy(c.Request.Context(), token); err != nil {
			log.Printf("failed to destroy session: %v", err)
		}
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	}
	utils.Redirect(c, "/login")
}

// RegisterView 显示注册页
func (h *UserHandler) RegisterView(c *gin.Context) {
	utils.Render(c, "register.html", gin.H{"flash": utils.PopFlash(c)})
}

// Register 处理注册请求
func (h *UserHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	_, err := h.userSvc.Register(username, password)
	switch {
	case err == nil:
		utils.SetFlash(c, "注册成功")
		utils.Redirect(c, "/login")
	case errors.Is(err, service.ErrInvalidFields), errors.Is(err, service.ErrUsernameTaken):
		utils.SetFlash(c, "注册失败")
		utils.Redirect(c, "/register")
	default:
		_ = c.Error(err)
	}
}

// ListUsers 显示全部用户（需登录）
func (h *UserHandler) ListUsers(c *gin.Context) {
	userNow, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Redirect(c, "/login")
		return
	}

	users, err := h.userSvc.List()
	if err != nil {
		_ = c.Error(err)
		return
	}

	utils.Render(c, "all_users.html", gin.H{
		"user_now":  userNow,
		"all_users": users,
	})
}

// UpdateView 显示编辑用户页（仅管理员）
func (h *UserHandler) UpdateView(c *gin.Context) {
	target, ok := h.targetUser(c)
	if !ok {
		return
	}

	userNow, _ := middleware.CurrentUser(c)
	utils.Render(c, "user_edit.html", gin.H{
		"user_now": userNow,
		"target":   target,
	})
}

// Update 处理编辑用户请求（仅管理员）
func (h *UserHandler) Update(c *gin.Context) {
	target, ok := h.targetUser(c)
	if !ok {
		return
	}

	role, _ := strconv.Atoi(c.PostForm("role"))
	err := h.userSvc.Update(target.ID, c.PostForm("username"), c.PostForm("password"), role)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Redirect(c, "/users/list")
}

// Delete 处理删除用户请求（仅管理员）
// 不级联删除其博客和评论
func (h *UserHandler) Delete(c *gin.Context) {
	target, ok := h.targetUser(c)
	if !ok {
		return
	}

	if err := h.userSvc.Delete(target.ID); err != nil {
		_ = c.Error(err)
		return
	}
	utils.Redirect(c, "/users/list")
}

// targetUser 解析路径里的用户 ID，找不到返回 404
func (h *UserHandler) targetUser(c *gin.Context) (*model.User, bool) {
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

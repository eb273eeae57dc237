package handler

import (
	"weiblog/middleware"
	"weiblog/service"
	"weiblog/utils"

	"github.com/gin-gonic/gin"
)

// Services 路由依赖的全部服务
type Services struct {
	Users    *service.UserService
	Sessions *service.SessionService
	Blogs    *service.BlogService
	Comments *service.CommentService
	Follows  *service.FollowService
}

// RegisterRoutes 注册全部路由
// 页面流程未登录时跳转登录页；主页和管理员接口沿用 401
func RegisterRoutes(r *gin.Engine, svc *Services) {
	userHandler := NewUserHandler(svc.Users, svc.Sessions)
	blogHandler := NewBlogHandler(svc.Blogs, svc.Comments, svc.Users, svc.Follows)
	commentHandler := NewCommentHandler(svc.Comments)
	followHandler := NewFollowHandler(svc.Follows, svc.Users)

	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(middleware.ResolveUser(svc.Sessions, svc.Users))

	// 无需登录
	r.GET("/", func(c *gin.Context) { utils.Redirect(c, "/login") })
	r.GET("/login", userHandler.LoginView)
	r.POST("/login", userHandler.Login)
	r.GET("/logout", userHandler.Logout)
	r.GET("/register", userHandler.RegisterView)
	r.POST("/register", userHandler.Register)

	// 主页：目标用户不存在是 404，未登录是 401，都在处理器里判断
	r.GET("/timeline/:username", blogHandler.TimelineView)

	// 需登录，未登录跳转登录页
	authed := r.Group("/", middleware.RequireLogin())
	{
		authed.GET("/blog/add", blogHandler.AddView)
		authed.POST("/blog/add", blogHandler.Add)
		authed.GET("/blog/:blog_id", blogHandler.View)
		authed.GET("/blog/update/:blog_id", blogHandler.UpdateView)
		authed.POST("/blog/update/:blog_id", blogHandler.Update)
		authed.GET("/blog/delete/:blog_id", blogHandler.Delete)

		authed.POST("/comment/add/:blog_id", commentHandler.Add)
		authed.GET("/reply/add/:comment_id", commentHandler.ReplyView)
		authed.POST("/reply/add/:comment_id", commentHandler.Reply)

		authed.GET("/follow/:user_id", followHandler.Follow)
		authed.GET("/unfollow/:user_id", followHandler.Unfollow)
		authed.GET("/follow/list/:user_id", followHandler.FollowingList)
		authed.GET("/fan/list/:user_id", followHandler.FanList)

		authed.GET("/users/list", userHandler.ListUsers)
	}

	// 管理员维护接口
	admin := r.Group("/user", middleware.RequireAdmin())
	{
		admin.GET("/update/:user_id", userHandler.UpdateView)
		admin.POST("/update/:user_id", userHandler.Update)
		admin.GET("/delete/:user_id", userHandler.Delete)
	}
}

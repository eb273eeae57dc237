package test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"weiblog/handler"
	"weiblog/service"
	"weiblog/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testApp 一套完整的被测应用：HTTP 服务 + 直连的底层存储
type testApp struct {
	server *httptest.Server
	db     *gorm.DB
	svc    *handler.Services
}

// newTestApp 起一个完整的应用实例：内存 sqlite + miniredis + 真实路由
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, utils.Migrate(db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	svc := &handler.Services{
		Users:    service.NewUserService(db),
		Sessions: service.NewSessionService(rdb, 24*time.Hour),
		Blogs:    service.NewBlogService(db),
		Comments: service.NewCommentService(db),
		Follows:  service.NewFollowService(db),
	}

	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	handler.RegisterRoutes(r, svc)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return &testApp{server: server, db: db, svc: svc}
}

// newBrowser 带 cookie 的客户端，模拟一个登录中的浏览器
func (app *testApp) newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar, Timeout: 10 * time.Second}
}

// get 发 GET 请求并读出响应体
func (app *testApp) get(t *testing.T, client *http.Client, path string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(app.server.URL + path)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	return resp, string(body)
}

// postForm 发表单请求并读出响应体
func (app *testApp) postForm(t *testing.T, client *http.Client, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := client.PostForm(app.server.URL+path, form)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	return resp, string(body)
}

// register 注册一个用户
func (app *testApp) register(t *testing.T, username, password string) {
	t.Helper()
	client := app.newBrowser(t)
	resp, _ := app.postForm(t, client, "/register", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

// login 注册后登录，返回登录态的客户端
func (app *testApp) login(t *testing.T, username, password string) *http.Client {
	t.Helper()
	client := app.newBrowser(t)
	resp, body := app.postForm(t, client, "/login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.Contains(body, "的主页"), "登录成功应落在主页: %s", body)
	return client
}

// signup 注册并登录，一步到位
func (app *testApp) signup(t *testing.T, username, password string) *http.Client {
	t.Helper()
	app.register(t, username, password)
	return app.login(t, username, password)
}

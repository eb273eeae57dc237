package service

import (
	"errors"
	"fmt"

	"weiblog/model"

	"gorm.io/gorm"
)

var (
	// ErrInvalidFields 注册字段校验失败（用户名或密码过短）
	ErrInvalidFields = errors.New("invalid username or password")
	// ErrUsernameTaken 用户名已被占用
	ErrUsernameTaken = errors.New("username already taken")
	// ErrLoginFailed 用户名不存在或密码不匹配
	ErrLoginFailed = errors.New("login failed")
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user not found")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register 注册新用户
// 用户名和密码长度都要大于 2，用户名不能重复；角色默认为普通用户
func (s *UserService) Register(username, password string) (*model.User, error) {
	if len(username) <= 2 || len(password) <= 2 {
		return nil, ErrInvalidFields
	}

	var count int64
	if err := s.db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	user := &model.User{
		Username: username,
		Password: password,
		Role:     model.RoleOrdinary,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate 校验登录口令，成功返回用户
func (s *UserService) Authenticate(username, password string) (*model.User, error) {
	var user model.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLoginFailed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if user.Password != password {
		return nil, ErrLoginFailed
	}
	return &user, nil
}

// Get 按 ID 查用户
func (s *UserService) Get(id int64) (*model.User, error) {
	var user model.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// GetByUsername 按用户名查用户
func (s *UserService) GetByUsername(username string) (*model.User, error) {
	var user model.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// List 全部用户，注册时间倒序
func (s *UserService) List() ([]model.User, error) {
	var users []model.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return users, nil
}

// Update 管理员维护用户资料，空字段不改
func (s *UserService) Update(id int64, username, password string, role int) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if username != "" {
		updates["username"] = username
	}
	if password != "" {
		updates["password"] = password
	}
	if role == model.RoleAdmin || role == model.RoleOrdinary {
		updates["role"] = role
	}
	if len(updates) == 0 {
		return nil
	}

	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// Delete 删除用户
// 不级联清理其博客和评论
func (s *UserService) Delete(id int64) error {
	result := s.db.Delete(&model.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

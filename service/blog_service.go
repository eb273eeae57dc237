package service

import (
	"errors"
	"fmt"

	"weiblog/model"

	"gorm.io/gorm"
)

// ErrBlogNotFound 博客不存在
var ErrBlogNotFound = errors.New("blog not found")

type BlogService struct {
	db *gorm.DB
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{db: db}
}

// Create 发布博客
// 内容不做空值校验，和评论计数一样全量存储
func (s *BlogService) Create(ownerID int64, content string) (*model.Blog, error) {
	blog := &model.Blog{
		UserID:  ownerID,
		Content: content,
	}
	if err := s.db.Create(blog).Error; err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}
	return blog, nil
}

// Get 按 ID 查博客
func (s *BlogService) Get(id int64) (*model.Blog, error) {
	var blog model.Blog
	err := s.db.First(&blog, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query blog: %w", err)
	}
	return &blog, nil
}

// Timeline 用户的博客，发布时间倒序
func (s *BlogService) Timeline(userID int64) ([]model.Blog, error) {
	var blogs []model.Blog
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query timeline: %w", err)
	}
	return blogs, nil
}

// Update 修改博客正文
func (s *BlogService) Update(id int64, content string) error {
	result := s.db.Model(&model.Blog{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return fmt.Errorf("failed to update blog: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBlogNotFound
	}
	return nil
}

// Delete 删除博客
func (s *BlogService) Delete(id int64) error {
	result := s.db.Delete(&model.Blog{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete blog: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBlogNotFound
	}
	return nil
}

// CanModify 博主本人或管理员才能改/删博客
func (s *BlogService) CanModify(user *model.User, blog *model.Blog) bool {
	return user.ID == blog.UserID || user.IsAdmin()
}

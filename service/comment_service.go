package service

import (
	"errors"
	"fmt"

	"weiblog/model"

	"gorm.io/gorm"
)

var (
	// ErrCommentNotFound 父评论不存在
	ErrCommentNotFound = errors.New("comment not found")
	// ErrReplyWrongBlog 回复的父评论不属于该博客
	ErrReplyWrongBlog = errors.New("parent comment belongs to another blog")
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Create 发评论或回复，replyID 为 0 表示顶层评论
// 插入和 com_count 重算在同一事务里，计数始终等于该博客的评论总数（含回复）
func (s *CommentService) Create(blogID int64, senderName, content string, replyID int64) (*model.Comment, error) {
	comment := &model.Comment{
		BlogID:     blogID,
		SenderName: senderName,
		Content:    content,
		ReplyID:    replyID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var blog model.Blog
		if err := tx.First(&blog, blogID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBlogNotFound
			}
			return fmt.Errorf("failed to query blog: %w", err)
		}

		if replyID != 0 {
			var parent model.Comment
			if err := tx.First(&parent, replyID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrCommentNotFound
				}
				return fmt.Errorf("failed to query parent comment: %w", err)
			}
			if parent.BlogID != blogID {
				return ErrReplyWrongBlog
			}
		}

		if err := tx.Create(comment).Error; err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}

		var total int64
		if err := tx.Model(&model.Comment{}).Where("blog_id = ?", blogID).Count(&total).Error; err != nil {
			return fmt.Errorf("failed to count comments: %w", err)
		}
		if err := tx.Model(&model.Blog{}).Where("id = ?", blogID).Update("com_count", total).Error; err != nil {
			return fmt.Errorf("failed to update com_count: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// Get 按 ID 查评论
func (s *CommentService) Get(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query comment: %w", err)
	}
	return &comment, nil
}

// ListByBlog 博客下全部评论，时间倒序，顶层和回复分开返回
func (s *CommentService) ListByBlog(blogID int64) (topLevel, replies []model.Comment, err error) {
	var comments []model.Comment
	err = s.db.Where("blog_id = ?", blogID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query comments: %w", err)
	}

	for _, c := range comments {
		if c.IsReply() {
			replies = append(replies, c)
		} else {
			topLevel = append(topLevel, c)
		}
	}
	return topLevel, replies, nil
}

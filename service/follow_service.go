package service

import (
	"errors"
	"fmt"

	"weiblog/model"

	"gorm.io/gorm"
)

// ErrNotFollowing 取关时不存在对应的关注边
var ErrNotFollowing = errors.New("not following this user")

// FollowService 关注关系账本
// 维护有向关注边，并在同一事务内把冗余计数刷成边集合的基数
type FollowService struct {
	db *gorm.DB
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

// Follow 建立 actor -> target 的关注边
// 关注关系是集合语义：边已存在时直接返回，不产生重复边
func (s *FollowService) Follow(actorID, targetID int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.Follow{}).
			Where("user_id = ? AND followed_id = ?", actorID, targetID).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check follow edge: %w", err)
		}
		if count > 0 {
			// 已关注，按 no-op 处理
			return nil
		}

		edge := &model.Follow{UserID: actorID, FollowedID: targetID}
		if err := tx.Create(edge).Error; err != nil {
			return fmt.Errorf("failed to create follow edge: %w", err)
		}

		return refreshCounters(tx, actorID, targetID)
	})
}

// Unfollow 删除 actor -> target 的关注边
// 边不存在时返回 ErrNotFollowing
func (s *FollowService) Unfollow(actorID, targetID int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND followed_id = ?", actorID, targetID).
			Delete(&model.Follow{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete follow edge: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFollowing
		}

		return refreshCounters(tx, actorID, targetID)
	})
}

// IsFollowing 是否存在 actor -> target 的关注边
func (s *FollowService) IsFollowing(actorID, targetID int64) (bool, error) {
	var count int64
	err := s.db.Model(&model.Follow{}).
		Where("user_id = ? AND followed_id = ?", actorID, targetID).
		Count(&count).Error
	return count > 0, err
}

// Following 关注列表：actor 出边指向的用户，按被关注者注册时间倒序
func (s *FollowService) Following(userID int64) ([]model.User, error) {
	var users []model.User
	err := s.db.Model(&model.User{}).
		Joins("INNER JOIN follows f ON f.followed_id = users.id").
		Where("f.user_id = ?", userID).
		Order("users.created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query following: %w", err)
	}
	return users, nil
}

// Followers 粉丝列表：入边来源的用户，按粉丝注册时间倒序
func (s *FollowService) Followers(userID int64) ([]model.User, error) {
	var users []model.User
	err := s.db.Model(&model.User{}).
		Joins("INNER JOIN follows f ON f.user_id = users.id").
		Where("f.followed_id = ?", userID).
		Order("users.created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query followers: %w", err)
	}
	return users, nil
}

// refreshCounters 重算边两端用户的 follow_count / fan_count
// 在外层事务内执行，保证计数和边集合一致
func refreshCounters(tx *gorm.DB, userIDs ...int64) error {
	for _, id := range userIDs {
		var followCount, fanCount int64
		if err := tx.Model(&model.Follow{}).Where("user_id = ?", id).Count(&followCount).Error; err != nil {
			return fmt.Errorf("failed to count following: %w", err)
		}
		if err := tx.Model(&model.Follow{}).Where("followed_id = ?", id).Count(&fanCount).Error; err != nil {
			return fmt.Errorf("failed to count fans: %w", err)
		}

		err := tx.Model(&model.User{}).Where("id = ?", id).
			Updates(map[string]interface{}{
				"follow_count": followCount,
				"fan_count":    fanCount,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update counters: %w", err)
		}
	}
	return nil
}

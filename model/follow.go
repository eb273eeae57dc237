package model

import "time"

// Follow 关注关系表（有向边 user_id -> followed_id）
// 同一对用户之间至多一条边，由联合唯一索引保证
type Follow struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_followed"`
	FollowedID int64     `json:"followed_id" gorm:"not null;index;uniqueIndex:idx_user_followed"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Follow) TableName() string {
	return "follows"
}

package model

import "time"

// Blog 博客表
type Blog struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"type:text"`
	ComCount  int       `json:"com_count" gorm:"default:0"` // 评论总数（含回复）
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Blog) TableName() string {
	return "blogs"
}

package model

import "time"

// Comment 评论表
// ReplyID 为 0 表示顶层评论，否则指向同一博客下的父评论
type Comment struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	BlogID     int64     `json:"blog_id" gorm:"not null;index"`
	SenderName string    `json:"sender_name" gorm:"type:varchar(50);not null"` // 冗余存发送者用户名
	Content    string    `json:"content" gorm:"type:text"`
	ReplyID    int64     `json:"reply_id" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Comment) TableName() string {
	return "comments"
}

// IsReply 是否为回复
func (c *Comment) IsReply() bool {
	return c.ReplyID != 0
}

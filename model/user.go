package model

import "time"

// 用户角色
const (
	RoleAdmin    = 1 // 管理员
	RoleOrdinary = 2 // 普通用户
)

// User 用户表
type User struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username    string    `json:"username" gorm:"type:varchar(50);not null;uniqueIndex"`
	Password    string    `json:"-" gorm:"type:varchar(100);not null"`
	Role        int       `json:"role" gorm:"default:2"` // 1:管理员 2:普通用户
	FollowCount int       `json:"follow_count" gorm:"default:0"`
	FanCount    int       `json:"fan_count" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

package domain

import (
	"context"
	"time"
)

// Post 创建后不可变：无更新/删除路径
type Post struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	UserID    string    `gorm:"size:32;index;not null" json:"userId"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"createdAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Post) TableName() string { return "posts" }

type PostRepository interface {
	Create(ctx context.Context, p *Post) error
	// ListAll 全量返回，created_at 倒序（最新在前）
	ListAll(ctx context.Context) ([]Post, error)
	List(ctx context.Context, offset, limit int) ([]Post, int64, error)
}

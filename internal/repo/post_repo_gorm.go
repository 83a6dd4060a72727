package repo

import (
	"context"

	"gorm.io/gorm"

	"go-gin-blog/internal/domain"
)

type PostRepo struct{ db *gorm.DB }

func NewPostRepo(db *gorm.DB) *PostRepo { return &PostRepo{db: db} }

func (r *PostRepo) Create(ctx context.Context, p *domain.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// ListAll 不分页，created_at 倒序；作者一并带出（密码哈希 json:"-" 不会外泄）
func (r *PostRepo) ListAll(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at desc").
		Find(&posts).Error
	return posts, err
}

func (r *PostRepo) List(ctx context.Context, offset, limit int) ([]domain.Post, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Post{})
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var posts []domain.Post
	if err := tx.Order("created_at desc").Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

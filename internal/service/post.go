package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-gin-blog/internal/broadcast"
	"go-gin-blog/internal/core/cache"
	"go-gin-blog/internal/domain"
	"go-gin-blog/pkg/utils"
)

const (
	listCacheKey = "posts:list:all"
	listCacheTTL = 3 * time.Second
)

// PostService 建帖工作流：校验 → 落库 → 广播 → 返回。
// 广播失败只记日志不回滚（帖子此时已持久化），详见 DESIGN.md
type PostService struct {
	posts domain.PostRepository
	pub   broadcast.Publisher
	cache *cache.Cache // 可为 nil（测试/无 redis 时直查）
	log   *zap.Logger
}

func NewPostService(posts domain.PostRepository, pub broadcast.Publisher, c *cache.Cache, log *zap.Logger) *PostService {
	if log == nil {
		log = zap.NewNop()
	}
	return &PostService{posts: posts, pub: pub, cache: c, log: log}
}

// Create 归属永远取 userID 参数（服务端从认证态得出），不信任请求体
func (s *PostService) Create(ctx context.Context, userID, title, body string) (*domain.Post, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if body == "" {
		return nil, &ValidationError{Field: "body"}
	}

	p := &domain.Post{
		ID:     utils.NewID(),
		UserID: userID,
		Title:  title,
		Body:   body,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, listCacheKey)
	}

	if s.pub == nil {
		return p, nil
	}
	// 落库成功后才广播，顺序不可反
	n := domain.NewPostNotification(p)
	if err := s.pub.Publish(ctx, broadcast.TopicPosts, broadcast.EventPostCreate, n); err != nil {
		s.log.Warn("broadcast publish failed",
			zap.String("post_id", p.ID),
			zap.Error(err),
		)
	}
	return p, nil
}

// List 全量帖子，最新在前；短 TTL 读穿缓存
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	if s.cache == nil {
		return s.posts.ListAll(ctx)
	}
	out, err := cache.GetOrLoadJSON[[]domain.Post](s.cache, ctx, listCacheKey, listCacheTTL,
		func(ctx context.Context) (*[]domain.Post, error) {
			posts, e := s.posts.ListAll(ctx)
			if e != nil {
				return nil, e
			}
			return &posts, nil
		})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return *out, nil
}

// Page 管理端分页
func (s *PostService) Page(ctx context.Context, offset, limit int) ([]domain.Post, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.posts.List(ctx, offset, limit)
}

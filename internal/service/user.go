package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"go-gin-blog/internal/domain"
	"go-gin-blog/pkg/utils"
)

type UserService struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewUserService(users domain.UserRepository, log *zap.Logger) *UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserService{users: users, log: log}
}

func (s *UserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" {
		return nil, &ValidationError{Field: "email"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password"}
	}
	if name == "" {
		// 缺省取邮箱前缀
		if at := strings.IndexByte(email, '@'); at > 0 {
			name = email[:at]
		} else {
			name = "user"
		}
	}

	if existing, err := s.users.FindByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrEmailTaken
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		Name:         name,
		PasswordHash: utils.HashPassword(password),
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// 并发兜底：唯一索引冲突按已注册处理
		if isDupKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.users.List(ctx, offset, limit)
}

func (s *UserService) Ban(ctx context.Context, id string) error {
	return s.users.SoftDelete(ctx, id)
}

// EnsureAdmin 幂等种子：管理员已存在则不动
func (s *UserService) EnsureAdmin(ctx context.Context, name, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Field: "seed admin email/password"}
	}
	if existing, err := s.users.FindByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}
	if name == "" {
		name = "Admin"
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		Name:         name,
		PasswordHash: utils.HashPassword(password),
		Role:         domain.RoleAdmin,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if isDupKey(err) {
			return s.users.FindByEmail(ctx, email)
		}
		return nil, err
	}
	s.log.Info("admin user seeded", zap.String("email", email))
	return u, nil
}

func isDupKey(err error) bool {
	// 不依赖 gorm.ErrDuplicatedKey，避免驱动/版本差异
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "unique failed")
}

package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-gin-blog/internal/service"
	"go-gin-blog/internal/transport/http/router"
)

type AdminHandler struct {
	users *service.UserService
	posts *service.PostService
}

func NewAdminHandler(users *service.UserService, posts *service.PostService) *AdminHandler {
	return &AdminHandler{users: users, posts: posts}
}

func (h *AdminHandler) MountAdmin(admin *gin.RouterGroup) {
	ez := router.NewEZ(admin)

	type pageQ struct {
		Offset int `form:"offset,default=0"`
		Limit  int `form:"limit,default=20"`
	}

	// --- GET /admin/v1/users 用户列表 ---
	type userRow struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"createdAt"`
	}
	type userList struct {
		Total int64     `json:"total"`
		Items []userRow `json:"items"`
	}
	router.RegisterAction(ez, router.Action[pageQ, userList]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: router.BindQuery,
		Handler: func(c *gin.Context, in *pageQ) (userList, error) {
			us, total, err := h.users.List(c.Request.Context(), in.Offset, in.Limit)
			if err != nil {
				return userList{}, router.Internal("list users failed", err)
			}
			out := userList{Total: total, Items: make([]userRow, 0, len(us))}
			for _, u := range us {
				out.Items = append(out.Items, userRow{
					ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, CreatedAt: u.CreatedAt,
				})
			}
			return out, nil
		},
	})

	// --- POST /admin/v1/users/:id/ban 封禁（软删） ---
	router.RegisterAction(ez, router.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/users/:id/ban",
		Binder: router.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if id == "" {
				return nil, router.BadRequest("missing id")
			}
			if err := h.users.Ban(c.Request.Context(), id); err != nil {
				return nil, mapServiceErr(err)
			}
			return gin.H{"id": id}, nil
		},
	})

	// --- GET /admin/v1/posts 帖子分页 ---
	type postRow struct {
		ID        string    `json:"id"`
		UserID    string    `json:"userId"`
		Title     string    `json:"title"`
		CreatedAt time.Time `json:"createdAt"`
	}
	type postList struct {
		Total int64     `json:"total"`
		Items []postRow `json:"items"`
	}
	router.RegisterAction(ez, router.Action[pageQ, postList]{
		Method: http.MethodGet,
		Path:   "/posts",
		Binder: router.BindQuery,
		Handler: func(c *gin.Context, in *pageQ) (postList, error) {
			ps, total, err := h.posts.Page(c.Request.Context(), in.Offset, in.Limit)
			if err != nil {
				return postList{}, router.Internal("list posts failed", err)
			}
			out := postList{Total: total, Items: make([]postRow, 0, len(ps))}
			for _, p := range ps {
				out.Items = append(out.Items, postRow{
					ID: p.ID, UserID: p.UserID, Title: p.Title, CreatedAt: p.CreatedAt,
				})
			}
			return out, nil
		},
	})
}

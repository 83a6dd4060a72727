package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-blog/internal/domain"
	"go-gin-blog/internal/service"
	"go-gin-blog/internal/transport/http/router"
)

type PostHandler struct {
	posts *service.PostService
}

func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

func (h *PostHandler) Priority() int { return 20 }

func (h *PostHandler) MountAPI(_, authed *gin.RouterGroup) {
	ez := router.NewEZ(authed)

	// 入参只收 title/body；归属从认证态取，请求里即使带了 user_id 也会被丢掉
	type createIn struct {
		Title string `json:"title" form:"title"`
		Body  string `json:"body"  form:"body"`
	}
	type createOut struct {
		Post    *domain.Post `json:"post"`
		Message string       `json:"message"`
	}

	router.RegisterAction(ez, router.Action[createIn, createOut]{
		Method: http.MethodPost,
		Path:   "/posts",
		Binder: router.BindForm,
		Auth:   true,
		Handler: func(c *gin.Context, in *createIn) (createOut, error) {
			p, err := h.posts.Create(c.Request.Context(), c.GetString("userId"), in.Title, in.Body)
			if err != nil {
				return createOut{}, mapServiceErr(err)
			}
			return createOut{Post: p, Message: "Post created successfully."}, nil
		},
	})

	type listOut struct {
		Posts []domain.Post `json:"posts"`
	}
	router.RegisterAction(ez, router.Action[struct{}, listOut]{
		Method: http.MethodGet,
		Path:   "/posts",
		Binder: router.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (listOut, error) {
			posts, err := h.posts.List(c.Request.Context())
			if err != nil {
				return listOut{}, router.Internal("list posts failed", err)
			}
			if posts == nil {
				posts = []domain.Post{}
			}
			return listOut{Posts: posts}, nil
		},
	})
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"go-gin-blog/internal/domain"
	"go-gin-blog/internal/service"
)

type memPostRepo struct {
	posts []domain.Post
}

func (m *memPostRepo) Create(_ context.Context, p *domain.Post) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	m.posts = append(m.posts, *p)
	return nil
}

func (m *memPostRepo) ListAll(_ context.Context) ([]domain.Post, error) {
	out := append([]domain.Post(nil), m.posts...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memPostRepo) List(_ context.Context, offset, limit int) ([]domain.Post, int64, error) {
	all, _ := m.ListAll(context.Background())
	return all, int64(len(all)), nil
}

type memPublisher struct {
	topics []string
	events []string
}

func (m *memPublisher) Publish(_ context.Context, topic, event string, _ any) error {
	m.topics = append(m.topics, topic)
	m.events = append(m.events, event)
	return nil
}

// newPostTestRouter 鉴权中间件用桩替掉，固定 userId=caller-1
func newPostTestRouter(repo *memPostRepo, pub *memPublisher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewPostService(repo, pub, nil, nil)
	h := NewPostHandler(svc)

	r := gin.New()
	api := r.Group("/api/v1")
	authed := api.Group("")
	authed.Use(func(c *gin.Context) {
		c.Set("userId", "caller-1")
		c.Set("role", domain.RoleUser)
	})
	h.MountAPI(api, authed)
	return r
}

type respEnvelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, respEnvelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env respEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, w.Body.String())
	}
	return w, env
}

func TestCreatePost_IgnoresClientSuppliedOwner(t *testing.T) {
	repo := &memPostRepo{}
	r := newPostTestRouter(repo, &memPublisher{})

	// 请求体里伪造 userId，必须被忽略
	_, env := doJSON(t, r, http.MethodPost, "/api/v1/posts",
		`{"title":"Hello","body":"World","userId":"attacker","user_id":"attacker"}`)

	if env.Code != 0 {
		t.Fatalf("code = %d, msg = %q", env.Code, env.Msg)
	}
	if len(repo.posts) != 1 {
		t.Fatalf("stored %d posts, want 1", len(repo.posts))
	}
	if repo.posts[0].UserID != "caller-1" {
		t.Errorf("owner = %q, want caller-1", repo.posts[0].UserID)
	}
}

func TestCreatePost_FormEncoded(t *testing.T) {
	repo := &memPostRepo{}
	r := newPostTestRouter(repo, &memPublisher{})

	form := url.Values{"title": {"Hello"}, "body": {"World"}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env respEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Code != 0 {
		t.Fatalf("code = %d, msg = %q", env.Code, env.Msg)
	}
	if len(repo.posts) != 1 || repo.posts[0].Title != "Hello" {
		t.Fatalf("form post not stored: %+v", repo.posts)
	}
}

func TestCreatePost_ValidationError(t *testing.T) {
	repo := &memPostRepo{}
	pub := &memPublisher{}
	r := newPostTestRouter(repo, pub)

	_, env := doJSON(t, r, http.MethodPost, "/api/v1/posts", `{"title":"","body":"World"}`)

	if env.Code != 400 {
		t.Errorf("code = %d, want 400", env.Code)
	}
	if !strings.Contains(env.Msg, "title") {
		t.Errorf("msg = %q, want mention of title", env.Msg)
	}
	if len(repo.posts) != 0 {
		t.Error("nothing should be persisted")
	}
	if len(pub.topics) != 0 {
		t.Error("nothing should be published")
	}
}

func TestCreatePost_BroadcastsOnPostsChannel(t *testing.T) {
	pub := &memPublisher{}
	r := newPostTestRouter(&memPostRepo{}, pub)

	_, env := doJSON(t, r, http.MethodPost, "/api/v1/posts", `{"title":"Hello","body":"World"}`)
	if env.Code != 0 {
		t.Fatalf("code = %d", env.Code)
	}
	if len(pub.topics) != 1 || pub.topics[0] != "posts" || pub.events[0] != "create" {
		t.Errorf("published to %v/%v, want posts/create", pub.topics, pub.events)
	}
}

func TestListPosts_NewestFirst(t *testing.T) {
	repo := &memPostRepo{}
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		repo.posts = append(repo.posts, domain.Post{
			ID: title, UserID: "u1", Title: title, Body: "b",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	r := newPostTestRouter(repo, &memPublisher{})

	_, env := doJSON(t, r, http.MethodGet, "/api/v1/posts", "")
	if env.Code != 0 {
		t.Fatalf("code = %d", env.Code)
	}
	var data struct {
		Posts []domain.Post `json:"posts"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	got := []string{data.Posts[0].Title, data.Posts[1].Title, data.Posts[2].Title}
	want := []string{"newest", "middle", "oldest"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestListPosts_NeverExposesPasswordHash(t *testing.T) {
	repo := &memPostRepo{}
	repo.posts = append(repo.posts, domain.Post{
		ID: "p1", UserID: "u1", Title: "t", Body: "b", CreatedAt: time.Now(),
		User: &domain.User{ID: "u1", Email: "a@b.c", Name: "n", PasswordHash: "bcrypt-secret"},
	})
	r := newPostTestRouter(repo, &memPublisher{})

	w, _ := doJSON(t, r, http.MethodGet, "/api/v1/posts", "")
	if strings.Contains(w.Body.String(), "bcrypt-secret") {
		t.Error("password hash leaked into listing output")
	}
}

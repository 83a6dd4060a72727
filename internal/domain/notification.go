package domain

import "fmt"

// 广播时间戳的固定格式
const NotifyTimeLayout = "2006-01-02 15:04:05"

// PostNotification 广播用最小投影：只带 id/title/created_at，
// 不转发整条记录
type PostNotification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	Message   string `json:"message"`
}

func NewPostNotification(p *Post) PostNotification {
	ts := p.CreatedAt.Format(NotifyTimeLayout)
	return PostNotification{
		ID:        p.ID,
		Title:     p.Title,
		CreatedAt: ts,
		Message:   fmt.Sprintf("[%s] New Post Received with title '%s'.", ts, p.Title),
	}
}

package broadcast

import "context"

// 公开频道与事件名，前端按此订阅：
// channel "posts" + event ".create"
const (
	TopicPosts      = "posts"
	EventPostCreate = "create"
)

// Publisher 把一条事件负载扇出给某个 topic 的所有订阅者。
// 投递保证由外部中继（redis pub/sub 等）负责，这里不做重试/确认。
type Publisher interface {
	Publish(ctx context.Context, topic, event string, payload any) error
}

package broadcast

import (
	"context"
	"encoding/json"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

var (
	publishTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "broadcast_publish_total", Help: "Count of published broadcast messages"},
		[]string{"topic", "event"},
	)
	publishFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "broadcast_publish_failures_total", Help: "Count of failed broadcast publishes"},
		[]string{"topic", "event"},
	)
)

func init() { prometheus.MustRegister(publishTotal, publishFailures) }

// envelope 订阅端收到的完整消息：{"event": "...", "data": {...}}
type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type RedisPublisher struct {
	rdb     *redis.Client
	timeout time.Duration
}

// NewRedisPublisher timeout 限制单次 PUBLISH 的阻塞时间，<=0 取 3s
func NewRedisPublisher(rdb *redis.Client, timeout time.Duration) *RedisPublisher {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &RedisPublisher{rdb: rdb, timeout: timeout}
}

func (p *RedisPublisher) Publish(ctx context.Context, topic, event string, payload any) error {
	b, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		publishFailures.WithLabelValues(topic, event).Inc()
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.rdb.Publish(ctx, topic, b).Err(); err != nil {
		publishFailures.WithLabelValues(topic, event).Inc()
		return err
	}
	publishTotal.WithLabelValues(topic, event).Inc()
	return nil
}

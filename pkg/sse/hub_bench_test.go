package sse

import (
	"fmt"
	"os"
	"strconv"
	"sync/atomic"
	"testing"
)

// benchHub is the minimal interface implemented by both Hub and SyncMapHub.
type benchHub interface {
	Subscribe(recipientID string) (<-chan Event, func())
	Publish(recipientID string, ev Event)
}

// parseSubscribersEnv reads HUB_BENCH_SUBSCRIBERS environment variable to
// allow overriding the number of pre-created subscribers in heavy benchmarks.
func parseSubscribersEnv(defaultValue int) int {
	if v := os.Getenv("HUB_BENCH_SUBSCRIBERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

// parseRecipientsEnv reads HUB_BENCH_RECIPIENTS environment variable to allow
// overriding the number of distinct recipients in many-room benchmarks.
func parseRecipientsEnv(defaultValue int) int {
	if v := os.Getenv("HUB_BENCH_RECIPIENTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

// --- Subscribe/Unsubscribe churn benchmarks ---

func benchmarkSubUnsub(b *testing.B, newHub func() benchHub) {
	h := newHub()
	const recipient = "recipient-1"

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, unsubscribe := h.Subscribe(recipient)
			unsubscribe()
		}
	})
}

func BenchmarkHub_SubUnsub(b *testing.B) {
	benchmarkSubUnsub(b, func() benchHub { return NewHub() })
}

func BenchmarkSyncMapHub_SubUnsub(b *testing.B) {
	benchmarkSubUnsub(b, func() benchHub { return NewSyncMapHub() })
}

// --- Publish with many subscribers (single room, steady-state) ---

func benchmarkPublishSteadyState(b *testing.B, newHub func() benchHub, defaultSubscribers int) {
	h := newHub()
	const recipient = "recipient-steady"

	subs := parseSubscribersEnv(defaultSubscribers)
	for i := 0; i < subs; i++ {
		// We ignore the channel and unsubscribe here; this benchmark focuses
		// on Publish cost with a fixed subscriber set.
		_, _ = h.Subscribe(recipient)
	}

	ev := Event{Type: "bench"}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			h.Publish(recipient, ev)
		}
	})
}

// 默认预创建 1e5 个订阅；实际要压到“单接收者十万连接”以上时可以：
// HUB_BENCH_SUBSCRIBERS=1000000 go test ./pkg/sse -run=^$ -bench=BenchmarkHub_PublishSteady -benchmem

func BenchmarkHub_PublishSteady(b *testing.B) {
	benchmarkPublishSteadyState(b, func() benchHub { return NewHub() }, 100_000)
}

func BenchmarkSyncMapHub_PublishSteady(b *testing.B) {
	benchmarkPublishSteadyState(b, func() benchHub { return NewSyncMapHub() }, 100_000)
}

// --- Churn: subscribe + publish + unsubscribe in a tight loop ---

func benchmarkChurn(b *testing.B, newHub func() benchHub) {
	h := newHub()
	const recipient = "recipient-churn"
	ev := Event{Type: "bench"}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, unsubscribe := h.Subscribe(recipient)
			h.Publish(recipient, ev)
			unsubscribe()
		}
	})
}

func BenchmarkHub_Churn(b *testing.B) {
	benchmarkChurn(b, func() benchHub { return NewHub() })
}

func BenchmarkSyncMapHub_Churn(b *testing.B) {
	benchmarkChurn(b, func() benchHub { return NewSyncMapHub() })
}

// --- Many recipients, single connection per recipient ---

// benchmarkManyRecipientsSingleConnPublish 模拟“10 万接收者各自 1 条连接”的场景：
// 预先为 N 个 recipient 建立订阅，每次 Publish 只对其中一个房间推送事件。
func benchmarkManyRecipientsSingleConnPublish(b *testing.B, newHub func() benchHub, defaultRecipients int) {
	h := newHub()

	recipients := parseRecipientsEnv(defaultRecipients)
	recipientIDs := make([]string, recipients)
	for i := 0; i < recipients; i++ {
		rid := fmt.Sprintf("recipient-%d", i)
		recipientIDs[i] = rid
		_, _ = h.Subscribe(rid)
	}

	ev := Event{Type: "bench"}

	var idx uint64

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			// 简单轮询不同接收者，避免 rand 带来的额外开销。
			i := atomic.AddUint64(&idx, 1)
			rid := recipientIDs[int(i)%recipients]
			h.Publish(rid, ev)
		}
	})
}

// 默认 1e5 接收者，每个接收者 1 条连接。
// HUB_BENCH_RECIPIENTS=100000 go test ./pkg/sse -run=^$ -bench=BenchmarkHub_ManyRecipientsSingleConn -benchmem

func BenchmarkHub_ManyRecipientsSingleConn(b *testing.B) {
	benchmarkManyRecipientsSingleConnPublish(b, func() benchHub { return NewHub() }, 100_000)
}

func BenchmarkSyncMapHub_ManyRecipientsSingleConn(b *testing.B) {
	benchmarkManyRecipientsSingleConnPublish(b, func() benchHub { return NewSyncMapHub() }, 100_000)
}

// --- Broadcast to every room ---

// benchmarkBroadcast 模拟无接收者通知的全量推送：N 个 recipient 各 1 条连接，
// 每次 Broadcast 都要遍历全部房间。
func benchmarkBroadcast(b *testing.B, defaultRecipients int) {
	h := NewHub()

	recipients := parseRecipientsEnv(defaultRecipients)
	for i := 0; i < recipients; i++ {
		_, _ = h.Subscribe(fmt.Sprintf("recipient-%d", i))
	}

	ev := Event{Type: "bench"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Broadcast(ev)
	}
}

// 广播成本随房间数线性增长，压大规模时:
// HUB_BENCH_RECIPIENTS=100000 go test ./pkg/sse -run=^$ -bench=BenchmarkHub_Broadcast -benchmem

func BenchmarkHub_Broadcast(b *testing.B) {
	benchmarkBroadcast(b, 10_000)
}

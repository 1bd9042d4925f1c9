package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func startHub(t *testing.T) (*Hub, context.CancelFunc, <-chan struct{}) {
	t.Helper()
	h := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		h.Run(ctx)
	}()
	return h, cancel, stopped
}

func waitClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	defer goleak.VerifyNone(t)

	h, cancel, stopped := startHub(t)
	a, b := newClient(h, nil), newClient(h, nil)
	h.Register(a)
	h.Register(b)
	waitClients(t, h, 2)

	h.NotifyDashboardRebuilt("run-1", 2, time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC))

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.send:
			var evt DashboardRebuiltEvent
			require.NoError(t, json.Unmarshal(msg, &evt))
			assert.Equal(t, DashboardRebuiltEvent{
				Type: "dashboard_rebuilt", RunID: "run-1", Rows: 2, Timestamp: "2025-02-03T00:00:00Z",
			}, evt)
		case <-time.After(time.Second):
			t.Fatal("broadcast not delivered")
		}
	}

	cancel()
	<-stopped
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	defer goleak.VerifyNone(t)

	h, cancel, stopped := startHub(t)
	c := newClient(h, nil)
	h.Register(c)
	waitClients(t, h, 1)

	h.Unregister(c)
	waitClients(t, h, 0)
	_, ok := <-c.send
	assert.False(t, ok)

	cancel()
	<-stopped
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	defer goleak.VerifyNone(t)

	h, cancel, stopped := startHub(t)
	c := newClient(h, nil)
	h.Register(c)
	waitClients(t, h, 1)

	cancel()
	<-stopped

	_, ok := <-c.send
	assert.False(t, ok)

	late := newClient(h, nil)
	h.Register(late)
	_, ok = <-late.send
	assert.False(t, ok)
	h.Unregister(late)
}

func TestHub_RegisterAfterShutdownAlwaysClosesSend(t *testing.T) {
	defer goleak.VerifyNone(t)

	h, cancel, stopped := startHub(t)
	cancel()
	<-stopped

	for i := 0; i < 200; i++ {
		c := newClient(h, nil)
		h.Register(c)
		select {
		case _, ok := <-c.send:
			require.False(t, ok)
		default:
			t.Fatalf("send left open after late register (iteration %d)", i)
		}
		h.Unregister(c)
	}
	assert.Equal(t, 0, h.ClientCount())
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	defer goleak.VerifyNone(t)

	h, cancel, stopped := startHub(t)
	c := newClient(h, nil)
	h.Register(c)
	waitClients(t, h, 1)

	for i := 0; i <= sendBuffer; i++ {
		h.Broadcast([]byte("x"))
	}
	waitClients(t, h, 0)

	cancel()
	<-stopped
}

func TestHub_NilSafe(t *testing.T) {
	var h *Hub
	h.Broadcast([]byte("x"))
	h.NotifyDashboardRebuilt("r", 1, time.Now())
	assert.Equal(t, 0, h.ClientCount())
}

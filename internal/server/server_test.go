package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/btree/internal/core/bt"
	"github.com/zeusync/btree/internal/core/events"
	"github.com/zeusync/btree/internal/core/events/bus"
	"github.com/zeusync/btree/internal/core/observability/metrics"
)

func newTestServer(t *testing.T) (*Server, bus.EventBus, *prometheus.Registry) {
	t.Helper()
	tree := bt.NewTree("Breakfast")
	require.NoError(t, tree.SetRootChild(bt.NewAction(1, "Eat", 1)))

	b := bus.New()
	reg := prometheus.NewRegistry()
	srv, err := New(DefaultServerConfig(), tree, b, reg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Hub().Close() })
	return srv, b, reg
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHTTPEndpoints(t *testing.T) {
	srv, _, reg := newTestServer(t)
	rec, err := metrics.New(reg)
	require.NoError(t, err)
	rec.ObserveTick("Breakfast", 1, true)

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	code, body := get(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok\n", body)

	code, body = get(t, ts.URL+"/tree")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, strings.HasPrefix(body, "graph TD\n"))
	assert.Contains(t, body, "Eat #1")

	code, body = get(t, ts.URL+"/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `btree_ticks_total{result="true",tree="Breakfast"} 1`)

	resp, err := http.Post(ts.URL+"/tree", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestWebSocketStreamsNotices(t *testing.T) {
	srv, b, _ := newTestServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	u := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return srv.Hub().Len() == 1 }, time.Second, 5*time.Millisecond)

	obs := events.NewBusObserver(b, "Breakfast", nil)
	obs.Observe(bt.Notice{Kind: bt.NoticeActionSuccess, ID: 1, Name: "Eat"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame struct {
		Type   string    `json:"type"`
		Source string    `json:"source"`
		Data   bt.Notice `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, events.TypeNotice, frame.Type)
	assert.Equal(t, "Breakfast", frame.Source)
	assert.Equal(t, bt.Notice{Kind: bt.NoticeActionSuccess, ID: 1, Name: "Eat"}, frame.Data)

	obs.PublishTick(events.Tick{Tree: "Breakfast", Seq: 3, Result: true})
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	var tick struct {
		Type string      `json:"type"`
		Data events.Tick `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &tick))
	assert.Equal(t, events.TypeTick, tick.Type)
	assert.Equal(t, uint64(3), tick.Data.Seq)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return srv.Hub().Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestStartStopsOnCancel(t *testing.T) {
	tree := bt.NewTree("t")
	cfg := DefaultServerConfig()
	cfg.ListenAddr = "127.0.0.1:0"
	srv, err := New(cfg, tree, bus.New(), prometheus.NewRegistry(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	require.Eventually(t, func() bool { return srv.Addr() != "" }, time.Second, 5*time.Millisecond)
	code, _ := get(t, "http://"+srv.Addr()+"/healthz")
	assert.Equal(t, http.StatusOK, code)

	assert.ErrorIs(t, srv.Start(ctx), ErrServerAlreadyRunning)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestTreeEndpointWhileTicking(t *testing.T) {
	rs := bt.NewRandomSelector(bt.WithRand(bt.NewRand(1)))
	for i := 1; i <= 5; i++ {
		require.NoError(t, rs.AddChild(bt.NewAction(i, "try", 0)))
	}
	tree := bt.NewTree("Shuffle")
	require.NoError(t, tree.SetRootChild(rs))

	srv, err := New(DefaultServerConfig(), tree, bus.New(), prometheus.NewRegistry(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Hub().Close() })
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	_, want := get(t, ts.URL+"/tree")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			tree.Run()
		}
	}()
	for i := 0; i < 50; i++ {
		code, body := get(t, ts.URL+"/tree")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, want, body)
	}
	wg.Wait()
}

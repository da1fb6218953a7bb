package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookmarks/internal/config"
	"github.com/mrlokans/bookmarks/internal/entities"
)

func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg, err := config.NewConfig(config.NewViper())
	require.NoError(t, err)
	cfg.HTTP.Host = "127.0.0.1"
	cfg.HTTP.Port = int32(freePort(t))
	return cfg
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	shutdownCalled := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, router, listener, time.Second, func(context.Context) { close(shutdownCalled) }, zerolog.Nop())
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	<-shutdownCalled
}

func TestRun_ServesSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	path := filepath.Join(t.TempDir(), "links.md")
	require.NoError(t, os.WriteFile(path, []byte("[Go](https://go.dev) docs\n"), 0o644))

	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, cfg, []string{path}, "test", zerolog.Nop())
	}()

	url := fmt.Sprintf("http://%s/api/bookmarks?format=tu", cfg.HTTP.Address())
	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		body = string(b)
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "Go https://go.dev\n", body)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_FailingFirstRefreshAborts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.html")
	require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0o644))

	err := Run(context.Background(), testConfig(t), []string{path}, "test", zerolog.Nop())

	var classErr *entities.ClassificationError
	assert.True(t, errors.As(err, &classErr), "expected ClassificationError, got %v", err)
}

func TestRun_InvalidSchedule(t *testing.T) {
	cfg := testConfig(t)
	cfg.Schedule = "sometimes"

	err := Run(context.Background(), cfg, nil, "test", zerolog.Nop())

	assert.ErrorContains(t, err, "invalid cron schedule")
}

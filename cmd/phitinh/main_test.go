package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/phitinh/internal/config"
	"svw.info/phitinh/internal/domain"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	base := []string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--log-level", "error", "--log-format", "text"}
	rootCmd.SetArgs(append(args, base...))
	rootCmd.SetOut(&out)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestChartRejectsNonFiniteFacing(t *testing.T) {
	t.Cleanup(func() { chartFacing = 0 })
	for _, v := range []string{"NaN", "Inf", "-Inf"} {
		rootCmd.SetArgs([]string{"chart", "--year", "2024", "--facing", v, "--json",
			"--config", filepath.Join(t.TempDir(), "none.yaml"), "--log-level", "error"})
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetErr(&bytes.Buffer{})
		err := rootCmd.Execute()
		require.Error(t, err, v)
		assert.Contains(t, err.Error(), "finite")
	}
	chartJSON = false
}

func TestChartJSON(t *testing.T) {
	out := run(t, "chart", "--year", "2024", "--facing", "0", "--json")
	var res domain.BoardResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 9, res.Period.Period)
	assert.Equal(t, "ngo", res.Sitting.Mountain.Key)
	chartJSON = false
}

func TestChartBoxes(t *testing.T) {
	out := run(t, "chart", "--year", "2024", "--facing", "22")
	assert.Contains(t, out, "Vận 9")
	assert.Contains(t, out, "Tinh bàn thay thế")
}

func TestAnnualCommand(t *testing.T) {
	out := run(t, "annual", "tay-bac", "--year", "2024")
	assert.True(t, strings.HasPrefix(out, "Vận 9, sao năm 5"), out)
}

func TestSweepCommand(t *testing.T) {
	out := run(t, "sweep", "--year", "2024")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 25)
	assert.Contains(t, lines[0], "MOUNTAIN")
}

func TestMountainsCommand(t *testing.T) {
	out := run(t, "mountains")
	assert.Contains(t, out, "can-desc")
	assert.Contains(t, out, "Càn")
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := requestLogger(logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("tea"))
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/chart", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	line := buf.String()
	assert.Contains(t, line, "path=/api/chart")
	assert.Contains(t, line, "status=418")
	assert.Contains(t, line, "bytes=3")
}

func TestOpenCacheReturnsCloser(t *testing.T) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ctx := context.Background()

	c := config.Default()
	c.Cache.RedisAddr = ""
	rc, closeCache := openCache(ctx, c)
	assert.Nil(t, rc)
	assert.NoError(t, closeCache())

	mr := miniredis.RunT(t)
	c.Cache.RedisAddr = mr.Addr()
	rc, closeCache = openCache(ctx, c)
	require.NotNil(t, rc)
	require.NoError(t, rc.Set(ctx, "k", []byte("v")))
	require.NoError(t, closeCache())
	_, _, err := rc.Get(ctx, "k")
	assert.Error(t, err, "client must be closed")
}

package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"syscall"
	"testing"
	"time"

	"github.com/aretw0/drills/internal/testutils"
	"github.com/aretw0/drills/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		sig  os.Signal
		code int
		show bool
	}{
		{"nil", nil, nil, 0, false},
		{"nil with signal", nil, syscall.SIGTERM, 0, false},
		{"usage", domain.ErrMissingArgument, nil, 1, true},
		{"reported", domain.Reported(errors.New("boom")), nil, 1, false},
		{"interrupted", context.Canceled, nil, 130, false},
		{"sigint", context.Canceled, syscall.SIGINT, 130, false},
		{"sigterm", context.Canceled, syscall.SIGTERM, 143, false},
		{"reported after sigterm", domain.Reported(context.Canceled), syscall.SIGTERM, 143, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, show := ExitCode(tt.err, tt.sig)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.show, show)
		})
	}
}

func TestSignalContext_Cancel(t *testing.T) {
	sc := NewSignalContext(context.Background())
	sc.Cancel()
	<-sc.Done()
	assert.Nil(t, sc.Signal())
}

func TestSignalContext_RecordsSignal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("SIGTERM cannot be delivered to the own process on windows")
	}
	sc := NewSignalContext(context.Background())
	defer sc.Cancel()

	p, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, p.Signal(syscall.SIGTERM))

	select {
	case <-sc.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not cancelled by SIGTERM")
	}
	assert.Equal(t, syscall.SIGTERM, sc.Signal())

	code, show := ExitCode(sc.Err(), sc.Signal())
	assert.Equal(t, 143, code)
	assert.False(t, show)
}

func TestRunScript(t *testing.T) {
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	err := RunScript(context.Background(), RunOptions{Stdout: &out}, "second-biggest", []string{"3", "1", "4", "1", "5"})
	require.NoError(t, err)
	assert.Equal(t, "4\n", out.String())
}

func TestRunScript_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := testutils.WriteFile(t, "custom.yaml", "items_file: "+filepath.Join(dir, "items.json")+"\n")

	var out bytes.Buffer
	opts := RunOptions{ConfigPath: path, Stdout: &out}
	require.NoError(t, RunScript(context.Background(), opts, "add-item", []string{"a", "b"}))

	data, err := os.ReadFile(filepath.Join(dir, "items.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(data))
}

func TestRunScript_SwapiFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	srv := testutils.NewAPI(t, map[string]string{
		"/api/films/4": `{"title":"A New Hope","episode_id":4}`,
	})
	t.Setenv("DRILLS_SWAPI_URL", srv.URL+"/api/")

	var out bytes.Buffer
	require.NoError(t, RunScript(context.Background(), RunOptions{Stdout: &out}, "title", []string{"4"}))
	assert.Equal(t, "A New Hope\n", out.String())
}

func TestRunScript_MissingConfig(t *testing.T) {
	err := RunScript(context.Background(), RunOptions{ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")}, "factorial", nil)
	assert.Error(t, err)
}

func TestBuild_CharacterOverride(t *testing.T) {
	t.Chdir(t.TempDir())

	d, err := Build(RunOptions{CharacterID: "4"})
	require.NoError(t, err)
	assert.Equal(t, "4", d.Config().CharacterID)
}

func TestNewWidgetHandler(t *testing.T) {
	t.Chdir(t.TempDir())
	d, err := Build(RunOptions{})
	require.NoError(t, err)

	h := NewWidgetHandler(d, prometheus.NewRegistry())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestServe_StopsOnCancel(t *testing.T) {
	t.Chdir(t.TempDir())
	d, err := Build(RunOptions{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, d, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServeMCP_UnknownTransport(t *testing.T) {
	t.Chdir(t.TempDir())
	d, err := Build(RunOptions{})
	require.NoError(t, err)

	err = ServeMCP(context.Background(), d, "carrier-pigeon", "", false)
	assert.ErrorContains(t, err, "unknown transport")
}

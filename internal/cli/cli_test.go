package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ethanbaker/lineramind/internal/answer"
	"github.com/ethanbaker/lineramind/internal/api"
	"github.com/ethanbaker/lineramind/internal/chain"
	entry_store "github.com/ethanbaker/lineramind/internal/stores/entry"
	"github.com/ethanbaker/lineramind/pkg/utils"
	"github.com/ethanbaker/lineramind/pkg/verify"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newBackend(t *testing.T) *httptest.Server {
	gin.SetMode(gin.TestMode)

	store := entry_store.NewInMemoryStore()
	c, err := chain.New(store, &chain.Options{ID: "abcdef1234"})
	require.NoError(t, err)

	engine := api.NewEngine(utils.NewConfig(nil), &api.Deps{
		Store:    store,
		Chain:    c,
		Answerer: answer.NewStaticAnswerer(),
		Location: time.UTC,
	})
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv
}

// run executes the CLI with args and returns its output
func run(t *testing.T, url, stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := NewRootCommand(utils.NewConfig(map[string]string{"LINERAMIND_URL": url}), strings.NewReader(stdin), &out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "", "", "parse", "linera:abc:42")
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)

	_, err = run(t, "", "", "parse", "linera:abc:")
	assert.ErrorContains(t, err, "invalid proof identifier")
}

func TestAskAndVerify(t *testing.T) {
	srv := newBackend(t)

	out, err := run(t, srv.URL, "", "ask", "What", "is", "Linera?")
	require.NoError(t, err)
	assert.Contains(t, out, "Proof: linera:abcdef1234:1")
	assert.Contains(t, out, "Proof · linera:abcdef…1")

	out, err = run(t, srv.URL, "", "verify", "linera:abcdef1234:1")
	require.NoError(t, err)
	assert.Contains(t, out, "Verified:   Proof · linera:abcdef…1")
	assert.Contains(t, out, "What is Linera?")
	assert.Contains(t, out, "Summary:")
	assert.NotContains(t, out, "**")

	out, err = run(t, srv.URL, "", "verify", "1", "--format", "json")
	require.NoError(t, err)
	var view verify.View
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "linera:abcdef1234:1", view.ProofID)

	out, err = run(t, srv.URL, "", "verify", "1", "-f", "yaml")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "linera:abcdef1234:1", doc["proof_id"])
	assert.Equal(t, "LineraMind_Verified_1.pdf", doc["report_filename"])

	_, err = run(t, srv.URL, "", "verify", "1", "-f", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestHealthCommand(t *testing.T) {
	srv := newBackend(t)
	_, err := run(t, srv.URL, "", "ask", "What is Linera?")
	require.NoError(t, err)

	out, err := run(t, srv.URL, "", "health")
	require.NoError(t, err)
	assert.Equal(t, "Chain:   abcdef1234\nHeight:  1\n", out)

	out, err = run(t, srv.URL, "", "health", "-f", "yaml")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "abcdef1234", doc["chain_id"])

	closed := httptest.NewServer(nil)
	closed.Close()
	_, err = run(t, closed.URL, "", "health")
	assert.ErrorContains(t, err, "could not reach LineraMind")
}

func TestVerifyRemote(t *testing.T) {
	srv := newBackend(t)
	_, err := run(t, srv.URL, "", "ask", "What is Linera?")
	require.NoError(t, err)

	out, err := run(t, srv.URL, "", "verify", "--remote", "linera:abcdef1234:1")
	require.NoError(t, err)
	assert.Contains(t, out, "Verified:   Proof · linera:abcdef…1")
	assert.Contains(t, out, "Report:     LineraMind_Verified_1.pdf")

	out, err = run(t, srv.URL, "", "verify", "--remote", "1", "-f", "json")
	require.NoError(t, err)
	var view verify.View
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "linera:abcdef1234:1", view.ProofID)

	_, err = run(t, srv.URL, "", "verify", "--remote", "linera:abc:x")
	assert.ErrorContains(t, err, "invalid proof identifier")

	_, err = run(t, srv.URL, "", "verify", "--remote", "7")
	assert.ErrorContains(t, err, "no entry found for 7")

	_, err = run(t, srv.URL, "", "verify", "--remote", "--watch")
	assert.ErrorContains(t, err, "cannot be combined")
}

func TestVerifyErrors(t *testing.T) {
	srv := newBackend(t)

	_, err := run(t, srv.URL, "", "verify", "linera:abc:x")
	assert.ErrorContains(t, err, "invalid proof identifier")

	_, err = run(t, srv.URL, "", "verify", "7")
	assert.ErrorContains(t, err, "no entry found for id 7")

	closed := httptest.NewServer(nil)
	closed.Close()
	_, err = run(t, closed.URL, "", "verify", "7")
	assert.ErrorContains(t, err, "could not reach LineraMind")
}

func TestVerifyWatch(t *testing.T) {
	srv := newBackend(t)
	_, err := run(t, srv.URL, "", "ask", "What is Linera?")
	require.NoError(t, err)

	out, err := run(t, srv.URL, "bad\n\n99\n1\n", "verify", "--watch")
	require.NoError(t, err)
	assert.Contains(t, out, "invalid proof identifier")
	assert.Contains(t, out, "Proof:      linera:abcdef1234:1")
}

func TestVerifyWatchStopsOnCancel(t *testing.T) {
	hits := make(chan struct{}, 2)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits <- struct{}{}
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	var out bytes.Buffer
	a := &app{
		cfg:     utils.NewConfig(nil),
		in:      strings.NewReader("1\n2\n"),
		out:     &out,
		baseURL: srv.URL,
		timeout: time.Minute,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.watch(ctx, FormatText) }()

	for range 2 {
		select {
		case <-hits:
		case <-time.After(2 * time.Second):
			t.Fatal("lookups never reached the backend")
		}
	}
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not return after cancel")
	}
	assert.NotContains(t, out.String(), "Verified:")
}

func TestReportCommand(t *testing.T) {
	srv := newBackend(t)
	_, err := run(t, srv.URL, "", "ask", "What is Linera?")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "answer.pdf")
	out, err := run(t, srv.URL, "", "report", "1", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))

	_, err = run(t, srv.URL, "", "report", "9", "-o", path)
	assert.ErrorContains(t, err, "no entry found for id 9")
}

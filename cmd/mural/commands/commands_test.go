package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mural/internal/devserver"
)

type cli struct {
	t    *testing.T
	home string
	api  string
}

func newCLI(t *testing.T, api string) *cli {
	t.Setenv("MURAL_PASSPHRASE", "")
	t.Setenv("MURAL_STORE", "")
	return &cli{t: t, home: t.TempDir(), api: api}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--home", c.home, "--api", c.api}, args...))
	err := execute(root)
	return out.String(), err
}

func TestCLI_FeedPostLike(t *testing.T) {
	srv := devserver.New(devserver.LikeResponseMessage, nil)
	srv.Seed("bom dia")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	c := newCLI(t, ts.URL)

	out, err := c.run("feed")
	require.NoError(t, err)
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "bom dia")

	out, err = c.run("post", "boa noite")
	require.NoError(t, err)
	assert.Contains(t, out, "#2")

	out, err = c.run("like", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "♥")
	assert.Contains(t, out, "1  bom dia")

	// The offline view reflects the saved feed, newest first.
	out, err = c.run("feed", "--offline")
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(out), []byte("boa noite")), bytes.Index([]byte(out), []byte("bom dia")))
}

func TestCLI_LikeUnknownPost(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"Curtiu!"}`))
	}))
	defer ts.Close()

	out, err := newCLI(t, ts.URL).run("like", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "not in saved feed")
}

func TestCLI_FeedErrorShowsDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not found"}`))
	}))
	defer ts.Close()

	_, err := newCLI(t, ts.URL).run("feed")
	require.Error(t, err)
	assert.Equal(t, "Not found", err.Error())
}

func TestCLI_Theme(t *testing.T) {
	c := newCLI(t, "")

	out, err := c.run("theme")
	require.NoError(t, err)
	assert.Equal(t, "claro\n", out)

	out, err = c.run("theme", "escuro")
	require.NoError(t, err)
	assert.Equal(t, "escuro\n", out)

	out, err = c.run("theme")
	require.NoError(t, err)
	assert.Equal(t, "escuro\n", out)
}

func TestCLI_RequiresAPI(t *testing.T) {
	t.Setenv("MURAL_API_BASE", "")
	_, err := newCLI(t, "").run("post", "oi")
	assert.ErrorContains(t, err, "no API configured")
}

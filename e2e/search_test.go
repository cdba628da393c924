//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testIndex = `[
  {"name": "Foo", "scope": "", "kind": 2, "link": "/foo.html", "desc": "<p>The Foo type</p>"},
  {"name": "bar", "scope": "Foo", "kind": 4, "link": "/foo.html#bar", "desc": "<p>Bars a foo</p>"},
  {"name": "home", "scope": "", "kind": 0, "link": "/index.html#home", "desc": "Start page"}
]`

func startSearch(t *testing.T, index string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)

	site, err := tf.CreateSite(index)
	require.NoError(t, err, "Failed to create test site")

	require.NoError(t, tf.StartApp("-page", "index.html", site), "Failed to start app")
	require.True(t, tf.Ready(), "Should show the idle search screen")
	require.True(t, tf.SeePlain("docsearch"), "Should show docsearch title")
	return tf
}

// finish saves the screen output of a failed test and stops the app
func finish(t *testing.T, tf *TUITestFramework) {
	if t.Failed() {
		tf.DumpTailOnFail(t, t.Name(), 4096)
	}
	tf.Cleanup()
}

func TestSearchShowsMatchingRows(t *testing.T) {
	t.Parallel()
	tf := startSearch(t, testIndex)
	defer finish(t, tf)

	require.NoError(t, tf.Search())
	require.NoError(t, tf.Type("foo"))

	// Debounced: results appear without pressing enter
	require.True(t, tf.OutputContainsPlain("The Foo type", 3*time.Second), "Foo row should appear")
	require.True(t, tf.OutputContainsPlain("Type", time.Second), "kind label should be shown")
	require.NotContains(t, tf.SnapshotPlain(), "Bars a foo", "names are matched, not scopes")

	require.NoError(t, tf.SendCtrlC())
}

func TestSearchNoResults(t *testing.T) {
	t.Parallel()
	tf := startSearch(t, testIndex)
	defer finish(t, tf)

	require.NoError(t, tf.Search())
	require.NoError(t, tf.Type("zzz"))
	require.NoError(t, tf.Enter())

	require.True(t, tf.OutputContainsPlain("No results", 3*time.Second), "No results indicator should appear")
	require.NoError(t, tf.SendCtrlC())
}

func TestSearchCaseSensitive(t *testing.T) {
	t.Parallel()
	tf := startSearch(t, testIndex)
	defer finish(t, tf)

	require.NoError(t, tf.Search())
	require.NoError(t, tf.Type("Bar"))
	require.NoError(t, tf.Enter())

	require.True(t, tf.OutputContainsPlain("No results", 3*time.Second), "upper case query must match exactly")
	require.NoError(t, tf.SendCtrlC())
}

func TestEscResetsFormAndSearchContinues(t *testing.T) {
	t.Parallel()
	tf := startSearch(t, testIndex)
	defer finish(t, tf)

	require.NoError(t, tf.Search())
	require.NoError(t, tf.Type("zzz"))
	require.NoError(t, tf.Enter())
	require.True(t, tf.OutputContainsPlain("No results", 3*time.Second))

	mark := tf.Mark()
	require.NoError(t, tf.Esc())
	require.NoError(t, tf.Type("home"))
	require.NoError(t, tf.Enter())

	require.True(t, tf.SeePlainAfter(mark, "Start page"), "search after a reset should still find rows")
	require.NoError(t, tf.SendCtrlC())
}

func TestSelectSamePageResultDismissesSearch(t *testing.T) {
	t.Parallel()
	tf := startSearch(t, testIndex)
	defer finish(t, tf)

	// "o" matches Foo and home, in index order
	require.NoError(t, tf.Search())
	require.NoError(t, tf.Type("o"))
	require.NoError(t, tf.Enter())
	require.True(t, tf.OutputContainsPlain("Start page", 3*time.Second))

	require.NoError(t, tf.Tab())
	require.True(t, tf.SeePlain("./foo.html"), "first row should be selected")

	mark := tf.Mark()
	require.NoError(t, tf.Down())
	require.True(t, tf.SeePlainAfter(mark, "./index.html#home"), "down should select the second row")

	mark = tf.Mark()
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlainAfter(mark, "press / to search"), "search should be dismissed")
	require.NoError(t, tf.Quit())
}

func TestSelectOtherPageOpensPager(t *testing.T) {
	t.Parallel()
	tf := startSearch(t, testIndex)
	defer finish(t, tf)

	require.NoError(t, tf.Search())
	require.NoError(t, tf.Type("foo"))
	require.NoError(t, tf.Enter())
	require.True(t, tf.OutputContainsPlain("The Foo type", 3*time.Second))

	mark := tf.Mark()
	require.NoError(t, tf.Tab())
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlainAfter(mark, "The Foo type."), "page text should be shown in the pager")

	mark = tf.Mark()
	require.NoError(t, tf.Quit())
	require.True(t, tf.SeePlainAfter(mark, "foo.html"), "current page should follow the link")
	require.NoError(t, tf.SendCtrlC())
}

func TestMissingIndexFailsSilently(t *testing.T) {
	t.Parallel()
	tf := startSearch(t, `not json`)
	defer finish(t, tf)

	require.NoError(t, tf.Search())
	require.NoError(t, tf.Type("foo"))
	require.NoError(t, tf.Enter())

	require.True(t, tf.OutputContainsPlain("No results", 3*time.Second), "a broken index only shows no results")
	require.NoError(t, tf.SendCtrlC())
}

func TestWriteConfig(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	site, err := tf.CreateSite(testIndex)
	require.NoError(t, err)

	out := filepath.Join(site, "written.toml")
	cmd := exec.Command(binPath, "-write-config", out, "-debounce", "120", site)
	cmd.Dir = site
	cmd.Env = append(os.Environ(), "HOME="+site, "XDG_CONFIG_HOME="+filepath.Join(site, ".config"))
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	require.Contains(t, string(output), "Configuration written to")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "debounce_ms = 120")
	require.Contains(t, string(data), site)
	require.Contains(t, string(data), "search-index.json")
}

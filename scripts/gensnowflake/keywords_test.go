package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const keywordsFixture = `<html><body>
<h1>Reserved &amp; limited keywords</h1>
<table>
  <thead><tr><th>Keyword</th><th>Comment</th></tr></thead>
  <tbody>
    <tr><td><strong>A</strong></td><td></td></tr>
    <tr><td>ALL</td><td>Reserved by ANSI.</td></tr>
    <tr><td><code>ALTER</code></td><td>Reserved by ANSI.</td></tr>
    <tr><td>select</td><td>Reserved by ANSI.</td></tr>
    <tr><td>CURRENT_DATE</td><td>Cannot be used as a column name.</td></tr>
    <tr><td>Some prose here</td><td></td></tr>
    <tr><td>ALL</td><td>duplicate</td></tr>
  </tbody>
</table>
<p>NOT_IN_TABLE</p>
</body></html>`

func TestParseKeywordsPage(t *testing.T) {
	got, err := parseKeywordsPage([]byte(keywordsFixture))
	require.NoError(t, err)

	assert.Equal(t, []string{"ALL", "ALTER", "CURRENT_DATE", "SELECT"}, got)
}

func TestDiffKeywords(t *testing.T) {
	d := diffKeywords(
		[]string{"ALL", "ALTER", "ISSUE"},
		[]string{"ALL", "ALTER", "ASOF", "MATCH_CONDITION"},
	)

	assert.Equal(t, []string{"ASOF", "MATCH_CONDITION"}, d.Added)
	assert.Equal(t, []string{"ISSUE"}, d.Removed)
	assert.False(t, d.empty())

	var buf bytes.Buffer
	d.report(&buf)
	assert.Equal(t, "+ ASOF\n+ MATCH_CONDITION\n- ISSUE\n", buf.String())
}

func TestDiffKeywords_Empty(t *testing.T) {
	d := diffKeywords([]string{"ALL"}, []string{"ALL"})
	assert.True(t, d.empty())

	var buf bytes.Buffer
	d.report(&buf)
	assert.Contains(t, buf.String(), "up to date")
}

func TestFetchURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reserved-keywords" {
			http.NotFound(w, r)
			return
		}
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(keywordsFixture))
	}))
	defer srv.Close()

	body, err := fetchURL(context.Background(), srv.Client(), srv.URL+"/reserved-keywords")
	require.NoError(t, err)
	assert.Contains(t, string(body), "CURRENT_DATE")

	_, err = fetchURL(context.Background(), srv.Client(), srv.URL+"/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

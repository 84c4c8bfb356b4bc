package preview

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		contains []string
		excludes []string
	}{
		{
			name: "resume content selector preferred",
			html: `<html><body>
				<nav>Site Nav</nav>
				<div class="resume-content"><h1>Alice Smith</h1><p>Software Engineer</p></div>
				<footer>Footer text</footer>
			</body></html>`,
			contains: []string{"Alice Smith", "Software Engineer"},
			excludes: []string{"Site Nav", "Footer text"},
		},
		{
			name:     "falls back to body",
			html:     `<html><body><p>Plain resume text</p><script>ignored()</script></body></html>`,
			contains: []string{"Plain resume text"},
			excludes: []string{"ignored()"},
		},
		{
			name:     "blank lines collapsed",
			html:     "<html><body><main><p>Line one</p>\n\n\n<p>Line two</p></main></body></html>",
			contains: []string{"Line one", "Line two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := ExtractText(tt.html)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, text, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, text, unwanted)
			}
		})
	}
}

func TestFetchHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><body><main><p>Bob Jones</p><p>5 years Go</p></main></body></html>`))
	}))
	defer server.Close()

	text, err := Fetch(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Bob Jones")
	assert.Contains(t, text, "5 years Go")
}

func TestFetchPlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("  Carol White  \n\nDevOps Engineer\n"))
	}))
	defer server.Close()

	text, err := Fetch(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "Carol White\nDevOps Engineer", text)
}

func TestFetchErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL+"/missing.html", nil)
	require.Error(t, err)

	_, err = Fetch(context.Background(), "not-a-url", nil)
	assert.Error(t, err)

	_, err = Fetch(context.Background(), "#", nil)
	assert.Error(t, err, "the portal's placeholder resume reference is not fetchable")
}

package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><h1>Backend Engineer</h1></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Backend Engineer</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result) // Result is returned even on error
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestExtractDescription_ContentSelector(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Jobs | About | Contact</nav>
			<div class="job-description">
				<h1>Backend Engineer</h1>
				<p>3+ years of experience with Python and SQL.</p>
			</div>
			<footer>Copyright</footer>
		</body>
	</html>`

	text, err := ExtractDescription(html, PlatformUnknown)
	require.NoError(t, err)
	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Python and SQL")
	assert.NotContains(t, text, "Jobs | About")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractDescription_StripsNoise(t *testing.T) {
	html := `
	<html>
		<body>
			<main>
				<p>Looking for AWS experience.</p>
				<form class="application-form"><input name="email"></form>
				<div class="eeo-statement">Equal opportunity employer text.</div>
			</main>
		</body>
	</html>`

	text, err := ExtractDescription(html, PlatformUnknown)
	require.NoError(t, err)
	assert.Contains(t, text, "AWS experience")
	assert.NotContains(t, text, "Equal opportunity")
}

func TestExtractDescription_BodyFallback(t *testing.T) {
	html := `<html><body><p>Plain description with no wrapper.</p></body></html>`

	text, err := ExtractDescription(html, PlatformUnknown)
	require.NoError(t, err)
	assert.Contains(t, text, "Plain description")
}

func TestJobPosting_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`
			<html><body>
				<nav>Menu</nav>
				<main>
					<h1>Data Engineer</h1>
					<p>Requires 5+ years with SQL.</p>
				</main>
			</body></html>`))
	}))
	defer server.Close()

	text, err := JobPosting(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Data Engineer")
	assert.Contains(t, text, "5+ years with SQL")
	assert.NotContains(t, text, "Menu")
}

func TestJobPosting_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><script>render()</script></body></html>`))
	}))
	defer server.Close()

	_, err := JobPosting(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no readable description")
}

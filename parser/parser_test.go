package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jessster/models"
	"jessster/parser"
)

func TestPlainText(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "  just   text ", "just text"},
		{"inline tags", "<p>Long <b>body</b></p>", "Long body"},
		{"entities", "<p>Tom &amp; Jerry</p>", "Tom & Jerry"},
		{"script dropped", "<p>keep</p><script>alert(1)</script>", "keep"},
		{"line breaks", "<p>one<br>two</p>\n<p>three</p>", "onetwo three"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parser.PlainText(tc.in))
		})
	}
}

func TestEmbedURL(t *testing.T) {
	testCases := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"iframe", `<p>Watch</p><iframe width="560" src="https://www.youtube.com/embed/abc"></iframe>`, "https://www.youtube.com/embed/abc", true},
		{"video tag", `<video src="https://cdn.test/v.mp4"></video>`, "https://cdn.test/v.mp4", true},
		{"source tag", `<video><source src="https://cdn.test/s.mp4"></video>`, "https://cdn.test/s.mp4", true},
		{"anchor", `<a href="https://youtu.be/xyz">link</a>`, "https://youtu.be/xyz", true},
		{"bare url", `see https://vimeo.com/123 now`, "https://vimeo.com/123", true},
		{"nothing", `just words`, "", false},
		{"empty", "", "", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parser.EmbedURL(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestVideoSourcePrefersAsset(t *testing.T) {
	asset := "video/upload/clip.mp4"
	v := models.Video{Video: &asset, Description: `<iframe src="https://www.youtube.com/embed/abc"></iframe>`}

	got, ok := parser.VideoSource(v, "https://cdn.test/")
	require.True(t, ok)
	assert.Equal(t, "https://cdn.test/video/upload/clip.mp4", got)

	v.Video = nil
	got, ok = parser.VideoSource(v, "https://cdn.test/")
	require.True(t, ok)
	assert.Equal(t, "https://www.youtube.com/embed/abc", got)
}

func TestReaderText(t *testing.T) {
	paragraph := strings.Repeat("The mayor announced that every pigeon in the city will receive a tiny hat. ", 8)
	doc := `<html><head><title>Pigeons</title></head><body>
		<nav><a href="/">Home</a></nav>
		<article><h1>Pigeons</h1><p>` + paragraph + `</p><p>` + paragraph + `</p></article>
		</body></html>`

	text, err := parser.ReaderText(doc, "https://www.jessster.com/posts/pigeons")
	require.NoError(t, err)
	assert.Contains(t, text, "tiny hat")
}

func TestReaderTextRejectsBadURL(t *testing.T) {
	_, err := parser.ReaderText("<p>x</p>", "://bad")
	assert.Error(t, err)
}

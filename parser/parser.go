package parser

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"jessster/models"
)

var bareURL = regexp.MustCompile(`https?://[^\s"'<>]+`)

// PlainText strips markup from an HTML fragment and collapses whitespace.
// Script and style bodies are dropped; entities are decoded.
func PlainText(htmlStr string) string {
	if !strings.ContainsAny(htmlStr, "<&") {
		return strings.Join(strings.Fields(htmlStr), " ")
	}
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return strings.Join(strings.Fields(htmlStr), " ")
	}

	var b strings.Builder

	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}

	f(doc)
	return strings.Join(strings.Fields(b.String()), " ")
}

// ReaderText extracts the readable body of an article's HTML content.
// pageURL may be empty; it only helps resolve relative links.
func ReaderText(htmlStr, pageURL string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}

	var u *url.URL
	if pageURL != "" {
		if u, err = url.Parse(pageURL); err != nil {
			return "", err
		}
	}

	article, err := readability.FromDocument(doc, u)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", errors.New("parser: no readable content")
	}
	return text, nil
}

// LeadImage returns the most prominent image readability finds in the HTML, or "".
func LeadImage(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return ""
	}
	return article.Image
}

// EmbedURL finds the playable reference inside a video description: an
// iframe/video/source src, then a link href, then any bare URL in the text.
func EmbedURL(description string) (string, bool) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", false
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err == nil {
		for _, sel := range []string{"iframe[src]", "video[src]", "source[src]"} {
			if src, ok := doc.Find(sel).First().Attr("src"); ok && strings.TrimSpace(src) != "" {
				return strings.TrimSpace(src), true
			}
		}
		if href, ok := doc.Find("a[href]").First().Attr("href"); ok && strings.TrimSpace(href) != "" {
			return strings.TrimSpace(href), true
		}
	}

	if m := bareURL.FindString(description); m != "" {
		return m, true
	}
	return "", false
}

// VideoSource resolves what a player should load for v: the CDN asset when the
// record carries one, otherwise the embed reference from its description.
func VideoSource(v models.Video, cdnBase string) (string, bool) {
	if u, ok := v.AssetURL(cdnBase); ok {
		return u, true
	}
	return EmbedURL(v.Description)
}

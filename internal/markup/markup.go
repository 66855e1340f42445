// ABOUTME: Conversions for the rich-text markup stored in note descriptions.
// ABOUTME: Plain-text extraction via an HTML parser, markdown via ordered rewrites.

package markup

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// PlainText returns the visible text content of s, dropping every tag and
// attribute. Entities are decoded.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}
	root := findBody(doc)
	if root == nil {
		root = doc
	}
	var sb strings.Builder
	collectText(root, &sb)
	return sb.String()
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

type rewrite struct {
	re   *regexp.Regexp
	repl string
}

// Order matters: block elements first, then inline, then the catch-all
// tag strip and newline collapse.
var markdownRewrites = []rewrite{
	{regexp.MustCompile(`(?i)<h1[^>]*>(.*?)</h1>`), "# ${1}\n\n"},
	{regexp.MustCompile(`(?i)<h2[^>]*>(.*?)</h2>`), "## ${1}\n\n"},
	{regexp.MustCompile(`(?i)<h3[^>]*>(.*?)</h3>`), "### ${1}\n\n"},
	{regexp.MustCompile(`(?i)<strong>(.*?)</strong>`), "**${1}**"},
	{regexp.MustCompile(`(?i)<b>(.*?)</b>`), "**${1}**"},
	{regexp.MustCompile(`(?i)<em>(.*?)</em>`), "*${1}*"},
	{regexp.MustCompile(`(?i)<i>(.*?)</i>`), "*${1}*"},
	{regexp.MustCompile(`(?i)<li[^>]*>(.*?)</li>`), "- ${1}\n"},
	{regexp.MustCompile(`(?i)<ul[^>]*>|</ul>`), "\n"},
	{regexp.MustCompile(`(?i)<ol[^>]*>|</ol>`), "\n"},
	{regexp.MustCompile(`(?i)<blockquote[^>]*>(.*?)</blockquote>`), "> ${1}\n\n"},
	{regexp.MustCompile(`(?i)<code>(.*?)</code>`), "`${1}`"},
	{regexp.MustCompile(`(?i)<p[^>]*>(.*?)</p>`), "${1}\n\n"},
	{regexp.MustCompile(`(?i)<br\s*/?>`), "\n"},
	{regexp.MustCompile(`<[^>]+>`), ""},
	{regexp.MustCompile(`\n{3,}`), "\n\n"},
}

// ToMarkdown converts description markup to markdown. The conversion is
// best-effort: nested or overlapping tags are not handled and it does not
// round-trip.
func ToMarkdown(s string) string {
	for _, rw := range markdownRewrites {
		s = rw.re.ReplaceAllString(s, rw.repl)
	}
	return strings.TrimSpace(s)
}

package extract

import (
	"io"
	"strings"

	"github.com/atticus-labs/betacode"
	"golang.org/x/net/html"
)

// ConvertHTML converts Betacode inside the text nodes of an HTML
// document, leaving markup, attributes, scripts, and styles untouched.
// Digitized corpus pages carry their text this way.
func ConvertHTML(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	convertTextNodes(doc)

	var b strings.Builder
	if err := html.Render(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}

func convertTextNodes(n *html.Node) {
	if n.Type == html.TextNode && !rawTextParent(n.Parent) {
		n.Data = betacode.Convert(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		convertTextNodes(c)
	}
}

// rawTextParent reports whether a text node's contents are code rather
// than document text.
func rawTextParent(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "script", "style":
		return true
	}
	return false
}

package content

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Admin-authored article bodies are stored as HTML. SanitizeHTML keeps the
// formatting tags the editor emits and removes everything executable.

var sanitizeAllowedTags = map[string]bool{
	"p": true, "br": true, "hr": true,
	"h1": true, "h2": true, "h3": true, "h4": true,
	"ul": true, "ol": true, "li": true,
	"strong": true, "em": true, "b": true, "i": true, "u": true,
	"a": true, "img": true, "blockquote": true,
	"span": true, "div": true, "pre": true, "code": true,
	"table": true, "thead": true, "tbody": true, "tr": true, "th": true, "td": true,
}

var sanitizeDroppedTags = map[string]bool{
	"script": true, "style": true, "iframe": true,
	"object": true, "embed": true, "form": true,
}

var sanitizeAllowedAttrs = map[string]bool{
	"class": true, "href": true, "src": true, "alt": true,
	"title": true, "target": true, "rel": true,
}

var sanitizeVoidTags = map[string]bool{"br": true, "hr": true, "img": true}

// SanitizeHTML returns input reduced to an allowlist of formatting tags.
// Disallowed tags are unwrapped so their text survives; script-bearing
// tags are dropped with their contents. Unparseable input yields "".
func SanitizeHTML(input string) string {
	container := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(input), container)
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	for _, node := range nodes {
		writeSanitized(&buf, node)
	}
	return buf.String()
}

func writeSanitized(buf *bytes.Buffer, node *html.Node) {
	switch node.Type {
	case html.TextNode:
		buf.WriteString(html.EscapeString(node.Data))
	case html.ElementNode:
		name := strings.ToLower(node.Data)
		if sanitizeDroppedTags[name] {
			return
		}
		if !sanitizeAllowedTags[name] {
			for child := node.FirstChild; child != nil; child = child.NextSibling {
				writeSanitized(buf, child)
			}
			return
		}

		buf.WriteByte('<')
		buf.WriteString(name)
		for _, attr := range node.Attr {
			key := strings.ToLower(attr.Key)
			if !sanitizeAllowedAttrs[key] {
				continue
			}
			if (key == "href" || key == "src") && !safeURL(attr.Val) {
				continue
			}
			buf.WriteByte(' ')
			buf.WriteString(key)
			buf.WriteString(`="`)
			buf.WriteString(html.EscapeString(attr.Val))
			buf.WriteByte('"')
		}
		if sanitizeVoidTags[name] {
			buf.WriteString("/>")
			return
		}
		buf.WriteByte('>')
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			writeSanitized(buf, child)
		}
		buf.WriteString("</")
		buf.WriteString(name)
		buf.WriteByte('>')
	default:
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			writeSanitized(buf, child)
		}
	}
}

func safeURL(value string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	for _, prefix := range []string{"http://", "https://", "mailto:", "/", "#", "./"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	// Relative paths without a scheme are fine.
	colon := strings.IndexByte(trimmed, ':')
	slash := strings.IndexByte(trimmed, '/')
	return colon == -1 || (slash != -1 && slash < colon)
}

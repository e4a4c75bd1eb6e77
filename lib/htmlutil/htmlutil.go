package htmlutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// ExtractScriptArray locates a JSON array assigned to the given key inside
// one of the document's script tags. Storefront pages are not a clean JSON
// API, the interesting payload is a blob of JS state embedded in the page.
//
// The second return value reports whether the key was present at all, a
// page without the key is a legitimate "nothing here" answer. A key that is
// present but whose payload does not decode is returned as an error.
func ExtractScriptArray(doc *goquery.Document, key string) (json.RawMessage, bool, error) {
	pattern, err := regexp.Compile(
		fmt.Sprintf(`%s"?\s*:\s*(\[[^\]]*\])`, regexp.QuoteMeta(key)),
	)
	if err != nil {
		return nil, false, err
	}

	found := false
	var payload json.RawMessage
	var decodeErr error

	doc.Find("script").EachWithBreak(func(_ int, script *goquery.Selection) bool {
		for _, node := range script.Nodes {
			text := GetText(node)
			blob := pattern.FindStringSubmatch(text)
			if blob == nil {
				continue
			}
			found = true

			raw := json.RawMessage(blob[1])
			if !json.Valid(raw) {
				decodeErr = fmt.Errorf("script payload for %q is not valid json", key)
				return false
			}
			payload = raw
			return false
		}
		return true
	})

	return payload, found, decodeErr
}

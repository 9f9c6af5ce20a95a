package imagepreview_test

import (
	"sort"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type imgTag struct {
	Src   string
	Class string
	Alt   string
}

// parseImages returns every <img> in fragment.
func parseImages(t *testing.T, fragment string) []imgTag {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	var out []imgTag
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			var tag imgTag
			for _, attr := range n.Attr {
				switch attr.Key {
				case "src":
					tag.Src = attr.Val
				case "class":
					tag.Class = attr.Val
				case "alt":
					tag.Alt = attr.Val
				}
			}
			out = append(out, tag)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

func mustSingleImage(t *testing.T, fragment string) imgTag {
	t.Helper()

	imgs := parseImages(t, fragment)
	if len(imgs) != 1 {
		t.Fatalf("expected exactly one img, got %d in %q", len(imgs), fragment)
	}
	return imgs[0]
}

// imgAttrKeys returns the sorted attribute names of the first <img>.
func imgAttrKeys(t *testing.T, fragment string) []string {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	var keys []string
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "img" {
			for _, attr := range n.Attr {
				keys = append(keys, attr.Key)
			}
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(doc)
	sort.Strings(keys)
	return keys
}

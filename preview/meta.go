package preview

import (
	"strings"

	"golang.org/x/net/html"
)

type pageMeta struct {
	title       string
	description string
	image       string
}

// extractMeta 는 title 태그와 og 메타 태그를 걷어 온다. og:title 이 title 태그보다 우선한다.
func extractMeta(htmlStr string) pageMeta {
	if htmlStr == "" {
		return pageMeta{}
	}
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return pageMeta{}
	}

	var meta pageMeta
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if meta.title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					meta.title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				var prop, name, content string
				for _, attr := range n.Attr {
					switch attr.Key {
					case "property":
						prop = attr.Val
					case "name":
						name = attr.Val
					case "content":
						content = attr.Val
					}
				}
				switch {
				case prop == "og:title" && content != "":
					meta.title = content
				case (prop == "og:description" || name == "description") && meta.description == "":
					meta.description = strings.TrimSpace(content)
				case prop == "og:image" && meta.image == "":
					meta.image = content
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return meta
}

package preview

import (
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// extractArticle 은 trafilatura, readability, goose 순으로 본문 추출을 시도하고
// 처음 성공한 결과를 쓴다. 모두 실패하면 빈 문자열을 반환한다.
func extractArticle(htmlStr string) (text, image string) {
	if htmlStr == "" {
		return "", ""
	}

	if t, img, err := extractWithTrafilatura(htmlStr); err == nil && t != "" {
		return t, img
	}
	if t, img, err := extractWithReadability(htmlStr); err == nil && t != "" {
		return t, img
	}
	if t, img, err := extractWithGoose(htmlStr); err == nil && t != "" {
		return t, img
	}
	return "", ""
}

func extractWithTrafilatura(htmlStr string) (string, string, error) {
	opts := trafilatura.Options{
		IncludeImages: true,
	}

	article, err := trafilatura.Extract(strings.NewReader(htmlStr), opts)
	if err != nil {
		return "", "", err
	}
	return strings.TrimSpace(article.ContentText), article.Metadata.Image, nil
}

func extractWithReadability(htmlStr string) (string, string, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return "", "", err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return "", "", err
	}
	return strings.TrimSpace(article.TextContent), article.Image, nil
}

func extractWithGoose(htmlStr string) (string, string, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		return "", "", err
	}
	return strings.TrimSpace(article.CleanedText), article.TopImage, nil
}

// Package preview 는 포스트 본문에 포함된 링크의 본문 텍스트를 추출한다.
// 추출 결과는 제안 프롬프트를 보강하는 용도라서 실패해도 파이프라인을 멈추지 않는다.
package preview

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

const maxPreviewRunes = 4096

// 본문 크기 상한. 기술 블로그 본문이 이 이상이면 나머지는 버린다.
const maxBodyBytes = 2 << 20

var urlPattern = regexp.MustCompile(`https?://\S+`)

// FirstURL 은 본문에서 첫 번째 URL 을 찾는다. 없으면 빈 문자열을 반환한다.
func FirstURL(content string) string {
	return urlPattern.FindString(content)
}

// Article 은 링크에서 추출한 미리보기다.
type Article struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}

// Fetcher 는 일반 HTTP 요청으로 먼저 받아 보고, 본문이 비어 있으면
// chromedp 렌더링으로 한 번 더 시도한다. renderJS 가 꺼져 있으면 렌더링은 하지 않는다.
type Fetcher struct {
	client   *http.Client
	renderJS bool
}

func NewFetcher(timeout time.Duration, renderJS bool) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		client:   &http.Client{Timeout: timeout},
		renderJS: renderJS,
	}
}

// Fetch 는 주어진 URL 의 본문 텍스트와 제목을 추출한다.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Article, error) {
	htmlStr, fetchErr := f.getHTML(ctx, pageURL)

	var text, image string
	if fetchErr == nil {
		text, image = extractArticle(htmlStr)
	}

	if text == "" && f.renderJS {
		rendered, err := renderHTML(ctx, pageURL)
		if err == nil {
			htmlStr = rendered
			text, image = extractArticle(htmlStr)
		} else if fetchErr != nil {
			return nil, fmt.Errorf("fetch %s: %w (render fallback: %v)", pageURL, fetchErr, err)
		}
	} else if fetchErr != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, fetchErr)
	}

	meta := extractMeta(htmlStr)
	if image == "" {
		image = meta.image
	}
	if text == "" {
		text = meta.description
	}
	if text == "" && meta.title == "" {
		return nil, fmt.Errorf("fetch %s: no extractable content", pageURL)
	}

	return &Article{
		URL:   pageURL,
		Title: meta.title,
		Text:  clipText(text, maxPreviewRunes),
		Image: image,
	}, nil
}

func (f *Fetcher) getHTML(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func clipText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

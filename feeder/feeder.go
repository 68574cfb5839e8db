// Package feeder 는 nitter 호환 RSS 피드에서 프로필 타임라인을 가져온다.
// 스크레이핑 API 가 막혔을 때 감시 대상 프로필의 포스트 이력을 보충하는 보조 소스다.
package feeder

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"
)

const FEEDER_TIMEOUT = 30 * time.Second

// feedUserAgent 는 RSS 피드를 요청할 때 사용할 브라우저 유사 User-Agent 이다.
// nitter 인스턴스 상당수가 CDN/보안 프록시 뒤에 있어 기본 Go HTTP 클라이언트 UA를 차단한다.
const feedUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"

// TimelineItem 은 RSS 항목 하나를 포스트 단위로 정리한 것이다.
// RSS 에는 좋아요/조회수 통계가 없으므로 본문과 플래그만 채워진다.
type TimelineItem struct {
	Username    string
	PostID      string
	URL         string
	Content     string
	HasMedia    bool
	IsRetweet   bool
	PublishedAt time.Time
}

var statusIDPattern = regexp.MustCompile(`/status/(\d+)`)

// FetchTimeline 은 username 의 타임라인 RSS 를 받아 최신 limit 개 항목을 반환한다.
func FetchTimeline(baseURL, username string, limit int) ([]TimelineItem, error) {
	httpClient := &http.Client{
		Timeout: FEEDER_TIMEOUT,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("stopped after 10 redirects")
			}
			// 리다이렉트 시 이전 요청의 User-Agent 를 유지한다.
			req.Header.Set("User-Agent", feedUserAgent)
			return nil
		},
	}

	feedURL := fmt.Sprintf("%s/%s/rss", strings.TrimRight(baseURL, "/"), username)

	req, err := http.NewRequest(http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSS request: %w", err)
	}

	req.Header.Set("User-Agent", feedUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", "https://www.google.com/")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Cache-Control", "max-age=0")
	req.Header.Set("Connection", "keep-alive")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodySample, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		return nil, fmt.Errorf("failed to fetch timeline feed: status code %d, url: %s, body: %s", resp.StatusCode, feedURL, string(bodySample))
	}

	cleanedReader, err := cleanControlCharacters(resp.Body)
	if err != nil {
		return nil, err
	}

	fp := gofeed.NewParser()
	feed, err := fp.Parse(cleanedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse timeline feed: %w", err)
	}

	items := buildItems(feed.Items, username)
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// buildItems 는 RSS 항목을 TimelineItem 으로 변환한다.
// 리트윗은 nitter 가 제목 앞에 붙이는 "RT by" 접두로 판별한다.
func buildItems(feedItems []*gofeed.Item, username string) []TimelineItem {
	var items []TimelineItem
	for _, item := range feedItems {
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		content, hasMedia := stripDescription(item.Description)
		if content == "" {
			content = strings.TrimSpace(item.Title)
		}

		var postID string
		if m := statusIDPattern.FindStringSubmatch(item.Link); m != nil {
			postID = m[1]
		}

		items = append(items, TimelineItem{
			Username:    username,
			PostID:      postID,
			URL:         item.Link,
			Content:     content,
			HasMedia:    hasMedia,
			IsRetweet:   strings.HasPrefix(item.Title, "RT by"),
			PublishedAt: published,
		})
	}
	return items
}

// stripDescription 은 HTML 설명에서 텍스트만 모으고 이미지 포함 여부를 함께 돌려준다.
func stripDescription(desc string) (string, bool) {
	if desc == "" {
		return "", false
	}
	doc, err := html.Parse(strings.NewReader(desc))
	if err != nil {
		return "", false
	}

	var b strings.Builder
	var hasMedia bool

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "img" || n.Data == "video") {
			hasMedia = true
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if b.Len() > 0 {
					b.WriteString(" ")
				}
				b.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return b.String(), hasMedia
}

// XML 에서 허용되지 않는 제어 문자 범위다 (0x00부터 0x1F까지 중 탭, LF, CR 제외).
var invalidControlCharRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`)

func cleanControlCharacters(r io.Reader) (io.Reader, error) {
	bodyBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read body for cleaning: %w", err)
	}

	cleanedBytes := invalidControlCharRegex.ReplaceAll(bodyBytes, []byte(""))

	return bytes.NewReader(cleanedBytes), nil
}

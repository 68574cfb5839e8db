package selaclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetProfileParsesWireVariants(t *testing.T) {
	var captured scrapeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/rpc/scrapeUrl" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		// 첫 건은 숫자 ID 와 단일 문자열 image, 둘째 건은 문자열 ID 와
		// image 배열, null video, 빈 postedAt 을 섞어 보낸다.
		_, _ = w.Write([]byte(`{"data":{"url":"https://x.com/chipmaker","jobId":"job-7","result":[
			{"tweetId":1956001,"username":"chipmaker","content":"Yield is up this quarter",
			 "image":"https://pbs.example/a.jpg","postedAt":"2026-08-20T09:30:00Z",
			 "tweetUrl":"/chipmaker/status/1956001",
			 "likesCount":120,"retweetsCount":30,"repliesCount":12,"viewsCount":9000},
			{"tweetId":"1956002","username":"chipmaker","content":"Fab tour thread",
			 "image":["a.jpg","b.jpg"],"video":null,"postedAt":"","isQuote":true,
			 "tweetUrl":"https://x.com/chipmaker/status/1956002",
			 "likesCount":null,"viewsCount":0}
		]}}`))
	}))
	defer srv.Close()

	c := NewWithClient(srv.Client(), srv.URL, "test-key")
	profile, err := c.GetProfile(context.Background(), "@chipmaker", 0)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}

	if captured.ScrapeType != ScrapeTwitterProfile {
		t.Fatalf("expected profile scrape, got %s", captured.ScrapeType)
	}
	if captured.URL != "https://x.com/chipmaker" {
		t.Fatalf("expected @ stripped from username, got url %s", captured.URL)
	}
	if captured.PostCount != 20 || captured.TimeoutMs != 60000 {
		t.Fatalf("unexpected defaults: postCount=%d timeoutMs=%d", captured.PostCount, captured.TimeoutMs)
	}

	if profile.Username != "chipmaker" || profile.JobID != "job-7" {
		t.Fatalf("unexpected profile header: %+v", profile)
	}
	if len(profile.Tweets) != 2 {
		t.Fatalf("expected 2 tweets, got %d", len(profile.Tweets))
	}

	first := profile.Tweets[0]
	if first.TweetID != "1956001" {
		t.Fatalf("numeric tweetId not coerced: %q", first.TweetID)
	}
	if len(first.Images) != 1 || !first.HasMedia() {
		t.Fatalf("single-string image not normalized: %+v", first.Images)
	}
	if !first.PostedAt.Equal(time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected postedAt: %v", first.PostedAt)
	}
	if got := first.FullURL(); got != "https://x.com/chipmaker/status/1956001" {
		t.Fatalf("relative tweetUrl not expanded: %s", got)
	}
	if got := first.EngagementRate(); got != float64(120+30+12)/9000 {
		t.Fatalf("unexpected engagement rate: %v", got)
	}

	second := profile.Tweets[1]
	if second.TweetID != "1956002" || !second.IsQuote {
		t.Fatalf("unexpected second tweet: %+v", second)
	}
	if len(second.Images) != 2 || second.Videos != nil {
		t.Fatalf("media lists not parsed: images=%v videos=%v", second.Images, second.Videos)
	}
	if !second.PostedAt.IsZero() {
		t.Fatalf("empty postedAt should stay zero, got %v", second.PostedAt)
	}
	if second.Likes != 0 {
		t.Fatalf("null likesCount should stay zero, got %d", second.Likes)
	}

	samples := profile.Samples()
	if len(samples) != 2 || !samples[0].HasMedia || samples[0].Likes != 120 {
		t.Fatalf("unexpected samples: %+v", samples)
	}
}

func TestGetProfileUsernameFallsBackToURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"url":"https://x.com/legacyname/","jobId":"job-1","result":[]}}`))
	}))
	defer srv.Close()

	c := NewWithClient(srv.Client(), srv.URL, "k")
	profile, err := c.GetProfile(context.Background(), "whoever", 10)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.Username != "legacyname" {
		t.Fatalf("expected username from scraped url, got %q", profile.Username)
	}
	if len(profile.Tweets) != 0 {
		t.Fatalf("expected no tweets, got %d", len(profile.Tweets))
	}
}

func TestScrapeRetriesTransientErrors(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits < 3 {
			http.Error(w, "upstream busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"url":"https://x.com/u","jobId":"j","result":[]}}`))
	}))
	defer srv.Close()

	c := NewWithClient(srv.Client(), srv.URL, "k")
	if _, err := c.GetProfile(context.Background(), "u", 5); err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if hits != 3 {
		t.Fatalf("expected 3 attempts, got %d", hits)
	}
}

func TestScrapeDoesNotRetryClientErrors(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewWithClient(srv.Client(), srv.URL, "k")
	if _, err := c.GetProfile(context.Background(), "u", 5); err == nil {
		t.Fatal("expected error on 400 response")
	}
	if hits != 1 {
		t.Fatalf("expected single attempt on 400, got %d", hits)
	}
}

func TestGetPostContextUsesDirectScrape(t *testing.T) {
	var types []ScrapeType
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req scrapeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		types = append(types, req.ScrapeType)
		_, _ = w.Write([]byte(`{"data":{"url":"` + req.URL + `","jobId":"j","result":
			{"post":{"tweetId":"42","username":"poster","content":"Launch day",
			 "likesCount":5000,"viewsCount":200000,"postedAt":"2026-08-25T08:00:00Z"},
			 "reply":[{"tweetId":"43","username":"fan","content":"congrats"}]}}}`))
	}))
	defer srv.Close()

	c := NewWithClient(srv.Client(), srv.URL, "k")
	post, err := c.GetPostContext(context.Background(), "https://x.com/poster/status/42")
	if err != nil {
		t.Fatalf("GetPostContext: %v", err)
	}
	if post.TweetID != "42" || post.Content != "Launch day" {
		t.Fatalf("unexpected post: %+v", post)
	}
	if len(types) != 1 || types[0] != ScrapeTwitterPost {
		t.Fatalf("expected single post scrape, got %v", types)
	}

	pc := post.ToPostContext()
	if pc.PostID != "42" || pc.Author != "poster" || pc.Likes != 5000 {
		t.Fatalf("unexpected context conversion: %+v", pc)
	}
}

func TestGetPostContextFallsBackToProfileScan(t *testing.T) {
	var postCounts []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req scrapeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.ScrapeType == ScrapeTwitterPost {
			// 단건 스크레이프는 본문을 얻지 못했다.
			_, _ = w.Write([]byte(`{"data":{"url":"` + req.URL + `","jobId":"j","result":{"post":{"tweetId":"77","content":""},"reply":[]}}}`))
			return
		}
		postCounts = append(postCounts, req.PostCount)
		_, _ = w.Write([]byte(`{"data":{"url":"https://x.com/poster","jobId":"j","result":[
			{"tweetId":"76","username":"poster","content":"earlier post"},
			{"tweetId":"77","username":"poster","content":"the target","likesCount":10}
		]}}`))
	}))
	defer srv.Close()

	c := NewWithClient(srv.Client(), srv.URL, "k")
	post, err := c.GetPostContext(context.Background(), "https://x.com/poster/status/77")
	if err != nil {
		t.Fatalf("GetPostContext: %v", err)
	}
	if post.Content != "the target" || post.Likes != 10 {
		t.Fatalf("unexpected post from profile scan: %+v", post)
	}
	if len(postCounts) != 1 || postCounts[0] != 50 {
		t.Fatalf("expected one profile scan with window 50, got %v", postCounts)
	}
}

func TestGetPostContextNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req scrapeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.ScrapeType == ScrapeTwitterPost {
			_, _ = w.Write([]byte(`{"data":{"url":"` + req.URL + `","jobId":"j","result":null}}`))
			return
		}
		// 요청 윈도우보다 적은 수가 돌아오면 더 넓은 스캔은 시도하지 않는다.
		_, _ = w.Write([]byte(`{"data":{"url":"https://x.com/poster","jobId":"j","result":[
			{"tweetId":"1","username":"poster","content":"unrelated"}
		]}}`))
	}))
	defer srv.Close()

	c := NewWithClient(srv.Client(), srv.URL, "k")
	_, err := c.GetPostContext(context.Background(), "https://x.com/poster/status/99")
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestParsePostURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		username string
		postID   string
		wantErr  bool
	}{
		{"standard url", "https://x.com/elonmusk/status/1956789", "elonmusk", "1956789", false},
		{"trailing slash", "https://x.com/naval/status/100/", "naval", "100", false},
		{"twitter domain", "https://twitter.com/jack/status/20", "jack", "20", false},
		{"no status segment", "https://x.com/jack", "", "", true},
		{"status without id", "https://x.com/jack/status/", "", "", true},
		{"empty username", "https://x.com//status/123", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			username, postID, err := ParsePostURL(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePostURL(%s): %v", tt.url, err)
			}
			if username != tt.username || postID != tt.postID {
				t.Fatalf("got (%s,%s), want (%s,%s)", username, postID, tt.username, tt.postID)
			}
		})
	}
}

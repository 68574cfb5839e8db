package optimizer

import (
	"hash/fnv"
	"regexp"
	"strings"
)

// 변환에 쓰는 소재 풀. 선택은 본문 해시 기반이라 같은 본문에는
// 항상 같은 항목이 나온다.
var (
	positiveEmojis = []string{"😊", "🙂", "👍", "✨", "💯", "🎉", "❤️", "🔥"}
	thinkingEmojis = []string{"🤔", "💭", "🧐", "💡"}
	weatherEmojis  = []string{"☀️", "🌤️", "🌈", "🌸"}
	generalEmojis  = []string{"✅", "📌", "💪", "🚀", "⭐"}

	techHashtags    = []string{"#테크", "#기술", "#AI", "#개발"}
	thoughtHashtags = []string{"#생각", "#thoughts", "#인사이트"}
	defaultHashtags = []string{"#일상", "#오늘"}

	questionSuffixes = []string{
		" 여러분은 어떻게 생각하세요?",
		" 여러분의 의견은요?",
		" 어떻게 생각하시나요?",
		" 공감하시나요?",
	}

	ctaPhrases = []string{
		" 의견 남겨주세요! 💬",
		" 공감하시면 좋아요 부탁드려요 ❤️",
		" 생각 공유해주세요!",
		" 댓글로 알려주세요 👇",
	}
)

// 이모지 존재 판정은 추출기와 달리 이모티콘/픽토그램 두 구간만 본다.
var hasEmojiPattern = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}]`)

func pick(pool []string, content string) string {
	h := fnv.New32a()
	h.Write([]byte(content))
	return pool[int(h.Sum32())%len(pool)]
}

func sampleTwo(pool []string, content string) []string {
	if len(pool) <= 2 {
		return pool
	}
	h := fnv.New32a()
	h.Write([]byte(content))
	i := int(h.Sum32()) % len(pool)
	return []string{pool[i], pool[(i+1)%len(pool)]}
}

func containsAny(content string, words ...string) bool {
	lower := strings.ToLower(content)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// AddEmoji 는 내용에 어울리는 이모지 하나를 첫 문장 끝이나 본문 끝에 붙인다.
// 이미 이모지가 있으면 본문을 그대로 돌려준다.
func AddEmoji(content string) string {
	if hasEmojiPattern.MatchString(content) {
		return content
	}

	var pool []string
	switch {
	case containsAny(content, "좋", "행복", "기쁘"):
		pool = positiveEmojis
	case containsAny(content, "생각", "궁금", "왜"):
		pool = thinkingEmojis
	case containsAny(content, "날씨", "햇살", "비"):
		pool = weatherEmojis
	default:
		pool = generalEmojis
	}
	emoji := pick(pool, content)

	if strings.Contains(content, ".") {
		parts := strings.SplitN(content, ".", 2)
		if parts[1] != "" {
			return parts[0] + " " + emoji + "." + parts[1]
		}
		return parts[0] + " " + emoji
	}
	return content + " " + emoji
}

// AddQuestion 은 물음표가 없는 본문 끝에 질문 접미사를 붙인다.
// 끝맺음 마침표는 제거한 뒤 붙인다.
func AddQuestion(content string) string {
	if strings.Contains(content, "?") {
		return content
	}
	content = strings.TrimRight(content, ".")
	return content + pick(questionSuffixes, content)
}

// AddHashtag 는 해시태그가 없는 본문 끝에 내용 기반 해시태그 두 개를 붙인다.
func AddHashtag(content string) string {
	if strings.Contains(content, "#") {
		return content
	}

	var tags []string
	switch {
	case containsAny(content, "ai", "개발", "코딩", "tech"):
		tags = sampleTwo(techHashtags, content)
	case containsAny(content, "생각", "느낌", "마음"):
		tags = sampleTwo(thoughtHashtags, content)
	default:
		tags = defaultHashtags
	}
	return content + " " + strings.Join(tags, " ")
}

// AddCTA 는 참여 유도 문구를 본문 끝에 붙인다.
// 이미 유도 문구로 보이는 단어가 있으면 그대로 돌려준다.
func AddCTA(content string) string {
	for _, w := range []string{"남겨", "부탁", "공유", "댓글"} {
		if strings.Contains(content, w) {
			return content
		}
	}
	return content + pick(ctaPhrases, content)
}

package advisor

import (
	"fmt"

	"xeo/engine"
)

// ALGORITHM_KNOWLEDGE 는 X 랭킹 휴리스틱을 요약한 프롬프트 지식 블록이다.
const ALGORITHM_KNOWLEDGE = `
# X (Twitter) Algorithm Knowledge Base

## 19 Engagement Actions Predicted by X Algorithm

### Positive Actions (Boost Content):
1. **favorite (like)** - Primary ranking metric
2. **reply** - Comments/replies
3. **repost** - Retweets/shares
4. **quote** - Quote tweets with commentary
5. **click** - General content clicks
6. **profile_click** - Author profile visits
7. **photo_expand** - Image viewing
8. **video_view** - Video watch time
9. **share** - Direct content sharing
10. **share_via_dm** - DM sharing
11. **share_via_copy_link** - Link copying
12. **dwell** - Time spent viewing content
13. **follow_author** - Following the author

### Negative Actions (Penalize Content):
14. **not_interested** - User disengagement
15. **block_author** - User blocks
16. **mute_author** - User mutes
17. **report** - Reported as inappropriate

## Pentagon Score Mapping

### Reach
- Affected by: click, profile_click, share, share_via_dm, share_via_copy_link
- Boost factors: Trending hashtags, media content, shareable insights

### Engagement
- Affected by: favorite, reply, repost, quote
- Boost factors: Questions, controversial takes, emotional content, CTAs

### Virality
- Affected by: repost, quote, share, share_via_dm
- Boost factors: Shareable format, meme-worthy content, relatable insights

### Quality
- Affected by: dwell, follow_author, NOT(not_interested, block, mute, report)
- Boost factors: Well-written content, valuable insights, proper formatting

### Longevity
- Affected by: dwell (time spent), bookmark, sustained engagement over time
- Boost factors: Evergreen content, reference-worthy info, thread format

## Content Optimization Principles

1. **Questions increase reply rate by 15-20%** - End with engaging questions
2. **Images increase reach by 20-30%** - Visual content gets more exposure
3. **Emojis increase engagement by 8-12%** - But don't overuse (1-3 max)
4. **Optimal length is 100-200 characters** - Short enough to read, long enough to provide value
5. **1-2 relevant hashtags** - More than 3 can hurt quality score
6. **First 50 characters are crucial** - Hook readers immediately
7. **Controversial/opinion content** - Increases reply and quote, but risks negative signals
8. **Thread format** - Increases dwell time and follow probability
`

const adviceJSONFormat = `Provide suggestions in this JSON format:
{
  "suggestions": [
    {
      "target_score": "engagement",
      "improvement": "+15%",
      "action": "Specific action to take (in target language)",
      "reason": "Increases p_reply probability in X algorithm",
      "priority": "high"
    }
  ],
  "optimized_content": "Improved content (in target language)",
  "score_predictions": {
    "reach": "+5%",
    "engagement": "+15%",
    "virality": "+8%",
    "quality": "+0%",
    "longevity": "+3%"
  }
}`

func buildSystemPrompt(language string, persona *Persona) string {
	prompt := fmt.Sprintf(`%s

You are an X (Twitter) content optimization expert. Analyze the given content and provide specific, actionable suggestions to improve pentagon scores based on X algorithm knowledge.

IMPORTANT RULES:
1. All suggestions and optimized content MUST be in %s
2. Provide 3-5 specific suggestions with expected score improvements
3. Each suggestion must reference which X algorithm factor it targets
4. Be specific - don't give generic advice
5. The optimized_content should implement the top suggestions
6. Keep the original message intent intact
`, ALGORITHM_KNOWLEDGE, languageName(language))

	if persona != nil {
		prompt += persona.PromptBlock(language)
	}
	return prompt
}

func buildUserPrompt(req Request) string {
	f := req.Features
	s := req.Scores

	prompt := fmt.Sprintf(`Analyze this content and provide optimization suggestions:

**Original Content:**
%s

**Current Analysis:**
- Characters: %d
- Has emoji: %t
- Has question: %t
- Has hashtag: %t
- Has CTA: %t
- Has media: %t

**Current Pentagon Scores:**
- Reach: %.1f
- Engagement: %.1f
- Virality: %.1f
- Quality: %.1f
- Longevity: %.1f

**Post Type:** %s
%s
%s`,
		req.Content,
		f.CharCount, f.HasEmoji, f.HasQuestion, f.HashtagCount > 0, f.HasCTA, f.HasMedia,
		s.Reach, s.Engagement, s.Virality, s.Quality, s.Longevity,
		req.PostType,
		buildContextBlock(req.PostType, req.TargetContent, req.PreviewText),
		adviceJSONFormat,
	)
	return prompt
}

// buildContextBlock 은 답글/인용 대상 포스트와 링크 미리보기 본문을 프롬프트 블록으로 만든다.
func buildContextBlock(postType engine.PostType, targetContent, previewText string) string {
	var block string

	if targetContent != "" {
		head := []rune(targetContent)
		if len(head) > 200 {
			head = head[:200]
		}
		switch postType {
		case engine.PostReply:
			block = fmt.Sprintf("\n**Target Post (replying to):**\n%s\n", string(head))
		case engine.PostQuote:
			block = fmt.Sprintf("\n**Target Post (quoting):**\n%s\n", string(head))
		}
	}

	if previewText != "" {
		block += fmt.Sprintf("\n**Linked Article Preview:**\n%s\n", previewText)
	}
	return block
}

package advisor

import "unicode"

// DetectLanguage 는 본문의 문자 구성으로 제안 언어를 추정한다.
// 한글이 하나라도 있으면 ko, 가나가 있으면 ja, 한자만 있으면 zh,
// 그 외에는 en 으로 판정한다. 일본어 본문은 한자를 섞어 쓰므로
// 가나 검사가 한자 검사보다 먼저 온다.
func DetectLanguage(content string) string {
	var hasHangul, hasKana, hasHan bool
	for _, r := range content {
		switch {
		case unicode.Is(unicode.Hangul, r):
			hasHangul = true
		case unicode.Is(unicode.Hiragana, r), unicode.Is(unicode.Katakana, r):
			hasKana = true
		case unicode.Is(unicode.Han, r):
			hasHan = true
		}
	}

	switch {
	case hasHangul:
		return "ko"
	case hasKana:
		return "ja"
	case hasHan:
		return "zh"
	default:
		return "en"
	}
}

// languageName 은 프롬프트에 넣을 언어 이름을 돌려준다. 알 수 없는 코드는 Korean 으로 둔다.
func languageName(language string) string {
	switch language {
	case "en":
		return "English"
	case "ja":
		return "Japanese"
	case "zh":
		return "Chinese"
	default:
		return "Korean"
	}
}

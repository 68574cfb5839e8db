package engine

// Action 은 X 랭킹 알고리즘이 예측하는 단일 사용자 행동이다.
// 확률 테이블과 가중치 테이블은 모두 이 enum 으로 인덱싱한다.
type Action int

const (
	// Positive actions
	ActionFavorite Action = iota
	ActionReply
	ActionRepost
	ActionQuote
	ActionClick
	ActionProfileClick
	ActionShare
	ActionDwell
	ActionVideoView
	ActionFollowAuthor

	// Negative actions
	ActionNotInterested
	ActionBlockAuthor
	ActionMuteAuthor
	ActionReport

	numActions
)

// NumActions 는 전체 행동 개수다 (positive 10 + negative 4).
const NumActions = int(numActions)

var actionNames = [numActions]string{
	ActionFavorite:      "favorite",
	ActionReply:         "reply",
	ActionRepost:        "repost",
	ActionQuote:         "quote",
	ActionClick:         "click",
	ActionProfileClick:  "profile_click",
	ActionShare:         "share",
	ActionDwell:         "dwell",
	ActionVideoView:     "video_view",
	ActionFollowAuthor:  "follow_author",
	ActionNotInterested: "not_interested",
	ActionBlockAuthor:   "block_author",
	ActionMuteAuthor:    "mute_author",
	ActionReport:        "report",
}

func (a Action) String() string {
	if a < 0 || a >= numActions {
		return "unknown"
	}
	return actionNames[a]
}

// Actions 는 모든 행동을 선언 순서대로 반환한다.
func Actions() []Action {
	out := make([]Action, 0, numActions)
	for a := Action(0); a < numActions; a++ {
		out = append(out, a)
	}
	return out
}

// ActionProbabilities 는 행동별 예상 확률이다.
// 리플렉션 없이 enum 인덱스로 직접 접근하는 고정 크기 배열을 사용한다.
// 반환된 이후에는 값 타입으로 다뤄 불변으로 취급한다.
type ActionProbabilities [numActions]float64

// Get 은 해당 행동의 확률을 반환한다.
func (p ActionProbabilities) Get(a Action) float64 {
	if a < 0 || a >= numActions {
		return 0
	}
	return p[a]
}

// clamp 는 모든 확률을 [0,1] 범위로 자른다.
func (p *ActionProbabilities) clamp() {
	for i := range p {
		if p[i] < 0 {
			p[i] = 0
		} else if p[i] > 1 {
			p[i] = 1
		}
	}
}

// ContextBoost 는 특정 행동에 곱셈으로 적용되는 부스트다.
// 값 b 는 prob *= (1 + b) 로 적용된다. 맵에 없는 행동은 건드리지 않는다.
type ContextBoost map[Action]float64

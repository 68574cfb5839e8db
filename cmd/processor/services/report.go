package services

import (
	"strings"
	"text/template"

	"xeo/advisor"
	"xeo/engine"
)

// ReportData 는 조언 리포트 렌더링 입력이다.
type ReportData struct {
	Username string
	Content  string
	Scores   engine.PentagonScores
	Language string
	Source   string
	Advice   advisor.Advice
}

const reportTemplate = `advice for @{{.Username}} [{{.Language}}/{{.Source}}]
content: {{.Content}}
scores: reach {{printf "%.1f" .Scores.Reach}} | engagement {{printf "%.1f" .Scores.Engagement}} | virality {{printf "%.1f" .Scores.Virality}} | quality {{printf "%.1f" .Scores.Quality}} | longevity {{printf "%.1f" .Scores.Longevity}}
suggestions:
{{- range .Advice.Suggestions}}
- [{{.Priority}}] {{.TargetScore}}: {{.Improvement}}
{{- end}}
{{- if .Advice.OptimizedContent}}
optimized: {{.Advice.OptimizedContent}}
{{- end}}
`

var reportTmpl = template.Must(template.New("advice_report").Parse(reportTemplate))

// RenderReport 는 생성된 조언을 운영 로그용 평문 리포트로 렌더링한다.
func RenderReport(data ReportData) (string, error) {
	var sb strings.Builder
	if err := reportTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

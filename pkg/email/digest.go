package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// DigestLine is one rated question in a professor digest.
type DigestLine struct {
	Question string
	Average  *float64
}

type DigestData struct {
	AppName       string
	ProfessorName string
	Overall       *float64
	SurveyCount   int
	CommentCount  int
	Lines         []DigestLine
}

var digestFuncs = map[string]any{
	"score": formatScore,
}

var digestText = texttemplate.Must(texttemplate.New("digest.txt").Funcs(digestFuncs).Parse(
	`Hello {{.ProfessorName}},

Here is your current course evaluation summary from {{.AppName}}.

Surveys received: {{.SurveyCount}}
Overall average:  {{score .Overall}}
Written comments: {{.CommentCount}}

{{range .Lines}}- {{.Question}}: {{score .Average}}
{{end}}
Lower averages are better (1 = Strongly Agree). Not Applicable answers are excluded.

{{.AppName}}
`))

var digestHTML = htmltemplate.Must(htmltemplate.New("digest.html").Funcs(digestFuncs).Parse(
	`<!doctype html>
<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #222;">
    <h2 style="margin: 0 0 12px;">{{.AppName}}</h2>
    <p>Hello {{.ProfessorName}},</p>
    <p>Here is your current course evaluation summary.</p>
    <table style="border-collapse: collapse; margin: 12px 0;">
      <tr><td style="padding: 4px 12px 4px 0;">Surveys received</td><td><b>{{.SurveyCount}}</b></td></tr>
      <tr><td style="padding: 4px 12px 4px 0;">Overall average</td><td><b>{{score .Overall}}</b></td></tr>
      <tr><td style="padding: 4px 12px 4px 0;">Written comments</td><td><b>{{.CommentCount}}</b></td></tr>
    </table>
    {{if .Lines}}<table style="border-collapse: collapse; margin: 12px 0;">
      {{range .Lines}}<tr>
        <td style="padding: 4px 12px 4px 0; border-bottom: 1px solid #eee;">{{.Question}}</td>
        <td style="padding: 4px 0; border-bottom: 1px solid #eee;">{{score .Average}}</td>
      </tr>
      {{end}}</table>{{end}}
    <p style="color: #666; font-size: 12px;">
      Lower averages are better (1 = Strongly Agree). Not Applicable answers are excluded.
    </p>
  </body>
</html>
`))

// BuildProfessorDigest renders the digest and returns a message addressed to
// the professor.
func BuildProfessorDigest(to string, data DigestData) (Message, error) {
	if strings.TrimSpace(data.AppName) == "" {
		data.AppName = "Course Evaluation"
	}

	var text, html bytes.Buffer
	if err := digestText.Execute(&text, data); err != nil {
		return Message{}, fmt.Errorf("render digest text: %w", err)
	}
	if err := digestHTML.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("render digest html: %w", err)
	}

	return Message{
		To:       []string{to},
		Subject:  fmt.Sprintf("%s: your evaluation summary", data.AppName),
		TextBody: text.String(),
		HTMLBody: html.String(),
	}, nil
}

func formatScore(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

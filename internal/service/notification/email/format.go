package email

import (
	"html"
	"strings"
)

// FormatHTML 일반 텍스트 본문을 최소한의 HTML로 변환합니다.
//
// 텍스트는 HTML 이스케이프된 뒤, 빈 줄은 문단 구분으로, 단일 개행은 <br>로 바뀝니다.
//
//	"a\n\nb\nc" → "<p>a</p><p>b<br>c</p>"
func FormatHTML(text string) string {
	escaped := html.EscapeString(strings.ReplaceAll(text, "\r\n", "\n"))
	escaped = strings.ReplaceAll(escaped, "\n\n", "</p><p>")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")

	return "<p>" + escaped + "</p>"
}

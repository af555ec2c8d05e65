package util

import (
	"regexp"
	"strings"
	"time"
)

var tagRegex = regexp.MustCompile(`#(\S+)`)

// ExtractTags 只负责提取去重后的标签列表
func ExtractTags(rawContent string) []string {
	matches := tagRegex.FindAllStringSubmatch(rawContent, -1)

	tagSet := make(map[string]struct{})
	var tags []string

	for _, m := range matches {
		if len(m) > 1 {
			tagName := strings.Trim(m[1], ".,，。!?！？#")
			if tagName != "" {
				if _, exists := tagSet[tagName]; !exists {
					tagSet[tagName] = struct{}{}
					tags = append(tags, tagName)
				}
			}
		}
	}

	return tags
}

// PtrString 空串返回 nil
func PtrString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// DerefString nil 返回空串
func DerefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FormatTime 零值时间输出空串
func FormatTime(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

// StartOfDay 返回 t 所在时区当天零点
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EscapeLike 转义 LIKE 通配符，配合 ESCAPE '!' 使用
func EscapeLike(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return r.Replace(s)
}

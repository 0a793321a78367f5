package helpers

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

var matchSpaces = regexp.MustCompile(`\s+`)

// NormalizeFieldName приводит имя поля формы к виду колонки: "Date Of Join " -> "date_of_join"
func NormalizeFieldName(name string) string {
	name = strings.TrimSpace(name)
	name = matchSpaces.ReplaceAllString(name, "_")
	return strings.ToLower(name)
}

// FormatFieldName "father_name" -> "Father Name"
func FormatFieldName(fieldName string) string {
	words := strings.Split(fieldName, "_")
	for idx, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		if r == utf8.RuneError {
			continue
		}
		words[idx] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}

var backendTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseBackendTime разбирает даты в форматах, которые отдает backend (pandas strftime, html date input)
func ParseBackendTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range backendTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("неизвестный формат даты: %q", value)
}

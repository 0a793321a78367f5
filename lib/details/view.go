package details

import (
	"fmt"
	"html/template"
	"recruitment-dashboard/lib/schema"
	"recruitment-dashboard/lib/table"
	"recruitment-dashboard/lib/utils/helpers"
	"recruitment-dashboard/models"
	"strings"
	"unicode/utf8"
)

type EntryKind int

const (
	EntryText EntryKind = iota
	EntryEmpty
	EntryNone
	EntryDate
	EntryEmail
	EntryPhone
	EntryTextarea
	EntryStatus
	EntryResume
)

const (
	DateTimeLayout = "Jan 2, 2006, 3:04:05 PM"
	DateLayout     = "1/2/2006"
	// wideTextLen длина текста, после которой textarea растягивается на всю строку
	wideTextLen = 100
)

const (
	NotProvided    = "Not provided"
	ResumeLinkText = "View Resume"
)

type Entry struct {
	Key       string
	Label     string
	Text      string
	Href      string
	Kind      EntryKind
	Badge     *models.StatusBadge
	Wide      bool
	Highlight bool
	Visible   bool
}

type Section struct {
	Name    string
	Icon    string
	Entries []Entry
	Visible bool
}

type View struct {
	Name     string
	Failed   bool
	Query    string
	Counter  string
	Sections []Section
}

var highlighted = map[string]bool{
	models.KeyName:   true,
	models.KeyEmail:  true,
	models.KeyStatus: true,
}

// NewEntry применяет правила отображения к полю карточки
func NewEntry(field schema.FieldEntry, resumeLinker table.ResumeLinker) Entry {
	text := models.ValueText(field.Value)
	present := models.IsTruthy(field.Value)
	entry := Entry{
		Key:       field.Key,
		Label:     field.Label,
		Text:      text,
		Kind:      EntryText,
		Highlight: highlighted[field.Key],
		Visible:   true,
	}
	switch {
	case field.Key == models.KeyResumePath:
		if !present {
			entry.Kind = EntryNone
			break
		}
		entry.Kind = EntryResume
		entry.Href = resumeLinker(text)
		entry.Text = ResumeLinkText
	case field.Type.IsDate():
		if !present {
			entry.Kind = EntryNone
			break
		}
		entry.Kind = EntryDate
		entry.Text = FormatDate(text, field.Type)
	case field.Key == models.KeyStatus:
		entry.Kind = EntryStatus
		badge := models.CandidateStatus(text).Badge()
		if text != "" {
			badge.Label = text
		}
		entry.Badge = &badge
		entry.Text = badge.Label
	case !present:
		entry.Kind = EntryEmpty
		entry.Text = NotProvided
	case field.Type == models.FieldTypeEmail:
		entry.Kind = EntryEmail
		entry.Href = "mailto:" + text
	case field.Type == models.FieldTypeTel:
		entry.Kind = EntryPhone
		entry.Href = "tel:" + text
	case field.Type == models.FieldTypeTextarea:
		entry.Kind = EntryTextarea
		entry.Wide = utf8.RuneCountInString(text) > wideTextLen
	}
	return entry
}

// FormatDate нераспознанная дата выводится как есть
func FormatDate(value string, fieldType models.FieldType) string {
	t, err := helpers.ParseBackendTime(value)
	if err != nil {
		return value
	}
	if fieldType == models.FieldTypeDatetime {
		return t.Format(DateTimeLayout)
	}
	return t.Format(DateLayout)
}

func (e Entry) HasContent() bool {
	return e.Kind != EntryNone
}

func (e Entry) IsMuted() bool {
	return e.Kind == EntryEmpty
}

func (e Entry) IsBadge() bool {
	return e.Kind == EntryStatus
}

func (e Entry) IsBlock() bool {
	return e.Kind == EntryTextarea
}

func (e Entry) IsLink() bool {
	return e.Href != ""
}

// SafeHref ссылки строятся только с фиксированной схемой (mailto:, tel:, /uploads/ или presigned URL хранилища)
func (e Entry) SafeHref() template.URL {
	return template.URL(e.Href)
}

func (e Entry) searchText() string {
	return strings.ToLower(e.Label + " " + e.Text)
}

// Filter поиск по подстроке без учета регистра. Раздел виден, если совпадает его имя или хотя бы одно поле.
func (v *View) Filter(query string) {
	v.Query = query
	term := strings.ToLower(strings.TrimSpace(query))
	visible := 0
	for idx := range v.Sections {
		section := &v.Sections[idx]
		sectionText := strings.ToLower(section.Name)
		for _, entry := range section.Entries {
			sectionText += " " + entry.searchText()
		}
		section.Visible = term == "" || strings.Contains(sectionText, term)
		for j := range section.Entries {
			entry := &section.Entries[j]
			entry.Visible = section.Visible && (term == "" || strings.Contains(entry.searchText(), term))
		}
		if section.Visible {
			visible++
		}
	}
	v.Counter = SectionsCounter(visible, len(v.Sections))
}

func SectionsCounter(visible, total int) string {
	if visible == total {
		return fmt.Sprintf("Showing all %d sections", total)
	}
	return fmt.Sprintf("Showing %d of %d sections", visible, total)
}

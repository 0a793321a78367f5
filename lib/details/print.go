package details

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"

	"github.com/pkg/errors"
)

// DefaultPrintDelay пауза перед вызовом print() в печатной версии
const DefaultPrintDelay = 250 * time.Millisecond

const generatedLayout = "1/2/2006, 3:04:05 PM"

//go:embed print.html
var printTemplateText string

var printTemplate = template.Must(template.New("print").Parse(printTemplateText))

type printData struct {
	Name        string
	GeneratedOn string
	DelayMs     int64
	Sections    []Section
}

// PrintDocument отдельный HTML документ с упрощенными стилями, который сам вызывает print() и закрывает окно
func PrintDocument(view *View, now time.Time, delay time.Duration) ([]byte, error) {
	if view == nil {
		return nil, errors.New("карточка кандидата не построена")
	}
	if delay <= 0 {
		delay = DefaultPrintDelay
	}
	data := printData{
		Name:        view.Name,
		GeneratedOn: now.Format(generatedLayout),
		DelayMs:     delay.Milliseconds(),
	}
	for _, section := range view.Sections {
		if section.Visible {
			data.Sections = append(data.Sections, section)
		}
	}
	buf := bytes.Buffer{}
	if err := printTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования печатной версии")
	}
	return buf.Bytes(), nil
}

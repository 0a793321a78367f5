package table

import "github.com/pkg/errors"

var ErrUnknownColumn = errors.New("unknown column")

// Selection состояние чекбоксов выбора колонок. Не сохраняется на сервере.
type Selection struct {
	columns []string
	checked map[string]bool
}

func NewSelection(allColumns, defaultColumns []string) Selection {
	s := Selection{
		columns: append([]string(nil), allColumns...),
		checked: make(map[string]bool, len(allColumns)),
	}
	for _, column := range allColumns {
		s.checked[column] = false
	}
	for _, column := range defaultColumns {
		if _, ok := s.checked[column]; ok {
			s.checked[column] = true
		}
	}
	return s
}

func (s *Selection) Toggle(column string, visible bool) error {
	if _, ok := s.checked[column]; !ok {
		return errors.Wrapf(ErrUnknownColumn, "%s", column)
	}
	s.checked[column] = visible
	return nil
}

func (s Selection) IsChecked(column string) bool {
	return s.checked[column]
}

// Columns все колонки в порядке селектора
func (s Selection) Columns() []string {
	return append([]string(nil), s.columns...)
}

// Checked отмеченные колонки в порядке селектора
func (s Selection) Checked() []string {
	result := []string{}
	for _, column := range s.columns {
		if s.checked[column] {
			result = append(result, column)
		}
	}
	return result
}

// Apply переносит состояние чекбоксов на заголовок и на каждую ячейку колонки. Содержимое ячеек не меняется.
func (s Selection) Apply(t *Table) {
	if t == nil {
		return
	}
	for idx := range t.Columns {
		checked, ok := s.checked[t.Columns[idx].Name]
		if !ok {
			continue
		}
		t.Columns[idx].Visible = checked
		for rowIdx := range t.Rows {
			if idx < len(t.Rows[rowIdx]) {
				t.Rows[rowIdx][idx].Visible = checked
			}
		}
	}
}

package table

import (
	"fmt"
	"net/url"
	"recruitment-dashboard/models"
	"strings"
)

type CellKind int

const (
	CellText CellKind = iota
	// CellResumeLink ссылка на файл резюме
	CellResumeLink
	// CellDetailLink открывает карточку кандидата
	CellDetailLink
)

type Column struct {
	Name    string
	Visible bool
}

type Cell struct {
	Column  string
	Text    string
	Kind    CellKind
	Href    string
	Visible bool
}

type Table struct {
	Columns []Column
	Rows    [][]Cell
}

// ResumeLinker строит ссылку на файл резюме по значению resume_path
type ResumeLinker func(resumePath string) string

func UploadsLink(resumePath string) string {
	return "/uploads/" + url.PathEscape(resumePath)
}

func DetailLink(row int) string {
	return fmt.Sprintf("/candidates/%d", row)
}

type Option func(*options)

type options struct {
	resumeLinker ResumeLinker
}

func WithResumeLinker(linker ResumeLinker) Option {
	return func(o *options) {
		if linker != nil {
			o.resumeLinker = linker
		}
	}
}

// Build строит таблицу заново. Колонка видима, если она есть в defaultColumns.
func Build(rows []*models.CandidateRecord, allColumns, defaultColumns []string, opts ...Option) *Table {
	o := options{resumeLinker: UploadsLink}
	for _, opt := range opts {
		opt(&o)
	}
	visible := make(map[string]bool, len(defaultColumns))
	for _, column := range defaultColumns {
		visible[column] = true
	}
	t := &Table{
		Columns: make([]Column, 0, len(allColumns)),
		Rows:    make([][]Cell, 0, len(rows)),
	}
	for _, column := range allColumns {
		t.Columns = append(t.Columns, Column{Name: column, Visible: visible[column]})
	}
	for rowIdx, row := range rows {
		cells := make([]Cell, 0, len(allColumns))
		for _, column := range allColumns {
			cells = append(cells, buildCell(rowIdx, row, column, visible[column], o))
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func buildCell(rowIdx int, row *models.CandidateRecord, column string, visible bool, o options) Cell {
	value, _ := row.Get(column)
	cell := Cell{
		Column:  column,
		Text:    models.ValueText(value),
		Kind:    CellText,
		Visible: visible,
	}
	switch {
	case column == models.KeyResumePath && models.IsTruthy(value):
		cell.Kind = CellResumeLink
		cell.Href = o.resumeLinker(cell.Text)
	case strings.ToLower(column) == models.KeyName:
		cell.Kind = CellDetailLink
		cell.Href = DetailLink(rowIdx)
	}
	return cell
}

func (t *Table) ColumnIndex(name string) int {
	for idx, column := range t.Columns {
		if column.Name == name {
			return idx
		}
	}
	return -1
}

// VisibleColumns имена видимых колонок в порядке таблицы
func (t *Table) VisibleColumns() []string {
	result := []string{}
	for _, column := range t.Columns {
		if column.Visible {
			result = append(result, column.Name)
		}
	}
	return result
}

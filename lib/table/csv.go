package table

import (
	"recruitment-dashboard/models"
	"strings"

	"github.com/pkg/errors"
)

const CSVFileName = "recruitment_data.csv"

var ErrNoData = errors.New("No data available to download.")

// ExportCSV выгружает строки по отмеченным колонкам, а если ничего не отмечено, по всем ключам первой строки.
// Строки разделяются "\n", без перевода строки в конце.
func ExportCSV(rows []*models.CandidateRecord, checked []string) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoData
	}
	columns := ExportColumns(rows, checked)
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(columns, ","))
	for _, row := range rows {
		values := make([]string, 0, len(columns))
		for _, column := range columns {
			values = append(values, row.Text(column))
		}
		lines = append(lines, csvLine(values))
	}
	return strings.Join(lines, "\n"), nil
}

// ExportColumns отмеченные колонки, а если ничего не отмечено, ключи первой строки
func ExportColumns(rows []*models.CandidateRecord, checked []string) []string {
	if len(checked) != 0 {
		return checked
	}
	if len(rows) == 0 {
		return nil
	}
	return rows[0].Keys()
}

func csvLine(values []string) string {
	escaped := make([]string, 0, len(values))
	for _, value := range values {
		escaped = append(escaped, escapeCSV(value))
	}
	return strings.Join(escaped, ",")
}

func escapeCSV(value string) string {
	if strings.ContainsAny(value, "\",\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

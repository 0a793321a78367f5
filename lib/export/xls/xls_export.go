package xlsexport

import (
	"bytes"
	"encoding/json"
	"recruitment-dashboard/lib/table"
	"recruitment-dashboard/models"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	FileName  = "recruitment_data.xlsx"
	sheetName = "Candidates"
)

type Provider interface {
	// ExportTable выгружает строки таблицы по тем же колонкам, что и CSV
	ExportTable(rows []*models.CandidateRecord, checked []string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) ExportTable(rows []*models.CandidateRecord, checked []string) (*bytes.Buffer, error) {
	if len(rows) == 0 {
		return nil, table.ErrNoData
	}
	columns := table.ExportColumns(rows, checked)
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, columns)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if _, err = writeRows(f, sheet, rows, columns, row); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
	}
	if err = f.SetSheetName(sheet, sheetName); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа xlsx")
	}
	return f.WriteToBuffer()
}

func writeRows(f *excelize.File, sheet string, rows []*models.CandidateRecord, columns []string, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(columns), row+len(rows)); err != nil {
		return row, err
	}
	for _, record := range rows {
		row++
		for idx, column := range columns {
			value, _ := record.Get(column)
			if value == nil {
				continue
			}
			if err := writeColumn(f, sheet, idx+1, row, cellValue(value)); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

// cellValue числа пишутся числами, чтобы по ним работали фильтры и суммы
func cellValue(value any) any {
	if number, ok := value.(json.Number); ok {
		if f, err := number.Float64(); err == nil {
			return f
		}
	}
	return models.ValueText(value)
}

package table

import (
	"encoding/json"
	"recruitment-dashboard/models"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func rows(t *testing.T, payload string) []*models.CandidateRecord {
	result := []*models.CandidateRecord{}
	require.Nil(t, json.Unmarshal([]byte(payload), &result))
	return result
}

func TestBuild(t *testing.T) {
	data := rows(t, `[{"name":"Ann","email":"a@x","resume_path":"cv 1.pdf","Status":"Hired"},
		{"name":"Bob","email":"b@x","resume_path":"","Status":"Applied"}]`)
	all := []string{"name", "email", "resume_path", "Status"}

	t.Run(`default visibility and special cells`, func(t *testing.T) {
		tbl := Build(data, all, []string{"name", "resume_path"})
		require.Equal(t, []string{"name", "resume_path"}, tbl.VisibleColumns())
		require.Len(t, tbl.Rows, 2)

		require.Equal(t, CellDetailLink, tbl.Rows[1][0].Kind)
		require.Equal(t, "/candidates/1", tbl.Rows[1][0].Href)
		require.Equal(t, CellResumeLink, tbl.Rows[0][2].Kind)
		require.Equal(t, "/uploads/cv%201.pdf", tbl.Rows[0][2].Href)
		require.Equal(t, CellText, tbl.Rows[1][2].Kind)
		require.False(t, tbl.Rows[0][1].Visible)
	})

	t.Run(`custom resume linker`, func(t *testing.T) {
		tbl := Build(data, all, all, WithResumeLinker(func(path string) string { return "https://s3/" + path }))
		require.Equal(t, "https://s3/cv 1.pdf", tbl.Rows[0][2].Href)
	})

	t.Run(`toggle off then on restores content and order`, func(t *testing.T) {
		tbl := Build(data, all, []string{"name", "email"})
		before := Build(data, all, []string{"name", "email"})
		selection := NewSelection(all, []string{"name", "email"})

		require.Nil(t, selection.Toggle("email", false))
		selection.Apply(tbl)
		require.False(t, tbl.Rows[0][1].Visible)
		require.False(t, tbl.Columns[1].Visible)
		require.Equal(t, []string{"name"}, selection.Checked())

		require.Nil(t, selection.Toggle("email", true))
		selection.Apply(tbl)
		require.Equal(t, before, tbl)
	})

	t.Run(`unknown column`, func(t *testing.T) {
		selection := NewSelection(all, nil)
		err := selection.Toggle("salary", true)
		require.True(t, errors.Is(err, ErrUnknownColumn))
	})
}

func TestExportCSV(t *testing.T) {
	t.Run(`quoting`, func(t *testing.T) {
		data := rows(t, `[{"name":"Smith, \"Bob\"","note":"line1\nline2","age":30,"x":null}]`)
		out, err := ExportCSV(data, nil)
		require.Nil(t, err)
		require.Equal(t, "name,note,age,x\n\"Smith, \"\"Bob\"\"\",\"line1\nline2\",30,", out)
	})

	t.Run(`checked columns win`, func(t *testing.T) {
		data := rows(t, `[{"name":"A","email":"a@x"},{"name":"B","email":"b@x"}]`)
		out, err := ExportCSV(data, []string{"email"})
		require.Nil(t, err)
		require.Equal(t, "email\na@x\nb@x", out)
	})

	t.Run(`no data`, func(t *testing.T) {
		_, err := ExportCSV(nil, nil)
		require.Equal(t, ErrNoData, err)
	})
}

package schema

import (
	"encoding/json"
	"recruitment-dashboard/models"
	formconfigapimodels "recruitment-dashboard/models/api/formconfig"
	"testing"

	"github.com/stretchr/testify/require"
)

func record(t *testing.T, payload string) *models.CandidateRecord {
	rec := models.NewCandidateRecord()
	require.Nil(t, json.Unmarshal([]byte(payload), rec))
	return rec
}

func TestReconcile(t *testing.T) {
	t.Run(`builtins added only when not declared`, func(t *testing.T) {
		schema := Reconcile([]formconfigapimodels.FieldDefinition{
			{Name: "Status", Label: "Stage", Subsection: "Pipeline", Type: "text", FieldOrder: 5},
			{Name: "hobby", Label: "", Subsection: "", Type: "", FieldOrder: 0},
		})
		require.Equal(t, "Stage", schema["Status"].Label)
		require.Equal(t, SourceDynamic, schema["Status"].Source)
		require.Equal(t, SourceBuiltin, schema["id"].Source)
		require.Equal(t, "Submission Date", schema["submission_timestamp"].Label)
		require.Equal(t, models.FieldTypeFile, schema["resume_path"].Type)

		hobby := schema["hobby"]
		require.Equal(t, "Hobby", hobby.Label)
		require.Equal(t, models.SubsectionOtherInformation, hobby.Subsection)
		require.Equal(t, DefaultOrder, hobby.Order)
	})

	t.Run(`missing schema entries get defaults`, func(t *testing.T) {
		field := SchemaMap{}.Lookup("father_name")
		require.Equal(t, "Father Name", field.Label)
		require.Equal(t, models.SubsectionOtherInformation, field.Subsection)
		require.Equal(t, models.FieldTypeText, field.Type)
		require.Equal(t, DefaultOrder, field.Order)
		require.Equal(t, SourceDefault, field.Source)
	})
}

func TestGroupBySubsection(t *testing.T) {
	schema := Reconcile([]formconfigapimodels.FieldDefinition{
		{Name: "name", Label: "Name", Subsection: "Personal Details", FieldOrder: 2},
		{Name: "email", Label: "Email", Subsection: "Contact & Position", Type: "email", FieldOrder: 1},
		{Name: "dob", Label: "DOB", Subsection: "Personal Details", Type: "date", FieldOrder: 2},
		{Name: "gender", Label: "Gender", Subsection: "Personal Details", FieldOrder: 1},
		{Name: "extra", Label: "Extra", Subsection: "Zeta", FieldOrder: 1},
		{Name: "more", Label: "More", Subsection: "Alpha", FieldOrder: 1},
	})
	rec := record(t, `{"extra":"e","resume_path":"cv.pdf","name":"Ann","more":"m","dob":"1990-01-01","gender":"F","unknown_key":"?","email":"a@x","id":1,"Status":"Hired"}`)

	t.Run(`every key lands in exactly one group`, func(t *testing.T) {
		groups := GroupBySubsection(rec, schema)
		seen := map[string]int{}
		for _, group := range OrderedSubsections(groups) {
			for _, entry := range group.Entries {
				seen[entry.Key]++
			}
		}
		require.Len(t, seen, rec.Len())
		for _, count := range seen {
			require.Equal(t, 1, count)
		}
	})

	t.Run(`stable sort by order`, func(t *testing.T) {
		groups := GroupBySubsection(rec, schema)
		personal := groups.Get("Personal Details")
		keys := []string{}
		for _, entry := range personal {
			keys = append(keys, entry.Key)
		}
		// name и dob с одинаковым order сохраняют порядок появления
		require.Equal(t, []string{"gender", "name", "dob"}, keys)
	})

	t.Run(`priority order then first seen`, func(t *testing.T) {
		names := []string{}
		for _, group := range OrderedSubsections(GroupBySubsection(rec, schema)) {
			names = append(names, group.Name)
		}
		require.Equal(t, []string{
			"Basic Information",
			"Personal Details",
			"Contact & Position",
			"Documents",
			"Other Information",
			"Zeta",
			"Alpha",
		}, names)
	})

	t.Run(`icons`, func(t *testing.T) {
		groups := OrderedSubsections(GroupBySubsection(rec, schema))
		require.Equal(t, "fas fa-info-circle", groups[0].Icon)
		require.Equal(t, "fas fa-folder-open", groups[len(groups)-1].Icon)
	})
}

package schema

import (
	"recruitment-dashboard/lib/utils/helpers"
	"recruitment-dashboard/models"
	formconfigapimodels "recruitment-dashboard/models/api/formconfig"
	"sort"
)

// FieldSource откуда взято описание поля
type FieldSource int

const (
	SourceBuiltin FieldSource = iota
	SourceDynamic
	SourceDefault
)

// DefaultOrder порядок поля без явного field_order
const DefaultOrder = 999

type FieldSchema struct {
	Label      string
	Subsection string
	Type       models.FieldType
	Order      int
	Source     FieldSource
}

// SchemaMap имя поля -> описание
type SchemaMap map[string]FieldSchema

func builtinFields() SchemaMap {
	return SchemaMap{
		models.KeyID: {
			Label: "ID", Subsection: models.SubsectionBasicInformation,
			Type: models.FieldTypeText, Order: 0, Source: SourceBuiltin,
		},
		models.KeySubmissionTimestamp: {
			Label: "Submission Date", Subsection: models.SubsectionBasicInformation,
			Type: models.FieldTypeDatetime, Order: 1, Source: SourceBuiltin,
		},
		models.KeyStatus: {
			Label: "Application Status", Subsection: models.SubsectionBasicInformation,
			Type: models.FieldTypeText, Order: 2, Source: SourceBuiltin,
		},
		models.KeyResumePath: {
			Label: "Resume", Subsection: models.SubsectionDocuments,
			Type: models.FieldTypeFile, Order: 0, Source: SourceBuiltin,
		},
	}
}

// Reconcile объединяет описания полей backend со встроенными полями. Описание backend всегда важнее.
func Reconcile(defs []formconfigapimodels.FieldDefinition) SchemaMap {
	result := SchemaMap{}
	for _, def := range defs {
		if def.Name == "" {
			continue
		}
		result[def.Name] = dynamicField(def)
	}
	for name, field := range builtinFields() {
		if _, declared := result[name]; !declared {
			result[name] = field
		}
	}
	return result
}

func dynamicField(def formconfigapimodels.FieldDefinition) FieldSchema {
	field := FieldSchema{
		Label:      def.Label,
		Subsection: def.Subsection,
		Type:       def.Type,
		Order:      def.FieldOrder,
		Source:     SourceDynamic,
	}
	if field.Label == "" {
		field.Label = helpers.FormatFieldName(def.Name)
	}
	if field.Subsection == "" {
		field.Subsection = models.SubsectionOtherInformation
	}
	if field.Type == "" {
		field.Type = models.FieldTypeText
	}
	if field.Order == 0 {
		field.Order = DefaultOrder
	}
	return field
}

// Lookup описание поля или синтезированное значение по умолчанию
func (s SchemaMap) Lookup(key string) FieldSchema {
	if field, ok := s[key]; ok {
		return field
	}
	return FieldSchema{
		Label:      helpers.FormatFieldName(key),
		Subsection: models.SubsectionOtherInformation,
		Type:       models.FieldTypeText,
		Order:      DefaultOrder,
		Source:     SourceDefault,
	}
}

type FieldEntry struct {
	Key   string
	Label string
	Value any
	Type  models.FieldType
	Order int
}

type Group struct {
	Name    string
	Icon    string
	Entries []FieldEntry
}

// Groups поля записи, разложенные по подразделам, с порядком первого появления подраздела
type Groups struct {
	seen    []string
	entries map[string][]FieldEntry
}

func (g Groups) Get(subsection string) []FieldEntry {
	return g.entries[subsection]
}

func (g Groups) Len() int {
	return len(g.seen)
}

// GroupBySubsection каждое поле записи попадает ровно в один подраздел, внутри подраздела сортировка по order устойчивая
func GroupBySubsection(record *models.CandidateRecord, schema SchemaMap) Groups {
	groups := Groups{entries: map[string][]FieldEntry{}}
	for _, key := range record.Keys() {
		field := schema.Lookup(key)
		value, _ := record.Get(key)
		if _, ok := groups.entries[field.Subsection]; !ok {
			groups.seen = append(groups.seen, field.Subsection)
		}
		groups.entries[field.Subsection] = append(groups.entries[field.Subsection], FieldEntry{
			Key:   key,
			Label: field.Label,
			Value: value,
			Type:  field.Type,
			Order: field.Order,
		})
	}
	for _, entries := range groups.entries {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Order < entries[j].Order
		})
	}
	return groups
}

// OrderedSubsections сначала известные подразделы в фиксированном порядке, затем остальные в порядке появления
func OrderedSubsections(groups Groups) []Group {
	result := make([]Group, 0, len(groups.seen))
	known := map[string]bool{}
	for _, name := range models.SubsectionPriority {
		known[name] = true
		if len(groups.entries[name]) == 0 {
			continue
		}
		result = append(result, newGroup(name, groups.entries[name]))
	}
	for _, name := range groups.seen {
		if known[name] {
			continue
		}
		result = append(result, newGroup(name, groups.entries[name]))
	}
	return result
}

func newGroup(name string, entries []FieldEntry) Group {
	return Group{
		Name:    name,
		Icon:    models.SubsectionIcon(name),
		Entries: entries,
	}
}

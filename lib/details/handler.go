package details

import (
	"context"
	"recruitment-dashboard/lib/backend"
	"recruitment-dashboard/lib/schema"
	"recruitment-dashboard/lib/table"
	initchecker "recruitment-dashboard/lib/utils/init-checker"
	"recruitment-dashboard/models"
	formconfigapimodels "recruitment-dashboard/models/api/formconfig"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// Render ошибка загрузки схемы не возвращается наружу: карточка строится в состоянии Failed
	Render(ctx context.Context, record *models.CandidateRecord) *View
}

var Instance Provider

func NewHandler(resumeLinker table.ResumeLinker) {
	Instance = NewInstance(backend.Instance, resumeLinker)
}

func NewInstance(client backend.Provider, resumeLinker table.ResumeLinker) Provider {
	if resumeLinker == nil {
		resumeLinker = table.UploadsLink
	}
	instance := impl{
		client:       client,
		resumeLinker: resumeLinker,
	}
	initchecker.CheckInit(
		"client", instance.client,
	)
	return instance
}

type impl struct {
	client       backend.Provider
	resumeLinker table.ResumeLinker
}

func (i impl) Render(ctx context.Context, record *models.CandidateRecord) *View {
	defs, err := i.client.GetFields(ctx)
	if err != nil {
		if !backend.IsAPIError(err) {
			log.WithError(err).Warn("не удалось загрузить схему полей для карточки кандидата")
			return &View{Name: CandidateName(record), Failed: true}
		}
		// как в исходном дашборде: отказ backend (например 403 для viewer) оставляет только встроенные поля
		log.WithError(err).Info("схема полей недоступна, используются встроенные поля")
		defs = []formconfigapimodels.FieldDefinition{}
	}
	groups := schema.OrderedSubsections(schema.GroupBySubsection(record, schema.Reconcile(defs)))
	view := &View{
		Name:     CandidateName(record),
		Sections: make([]Section, 0, len(groups)),
	}
	for _, group := range groups {
		section := Section{
			Name:    group.Name,
			Icon:    group.Icon,
			Visible: true,
			Entries: make([]Entry, 0, len(group.Entries)),
		}
		for _, entry := range group.Entries {
			section.Entries = append(section.Entries, NewEntry(entry, i.resumeLinker))
		}
		view.Sections = append(view.Sections, section)
	}
	view.Filter("")
	return view
}

// CandidateName имя для заголовков карточки и печатной версии
func CandidateName(record *models.CandidateRecord) string {
	if name := record.Text(models.KeyName); name != "" {
		return name
	}
	return "Candidate"
}

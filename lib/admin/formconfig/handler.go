package formconfig

import (
	"context"
	"recruitment-dashboard/lib/admin/reorder"
	"recruitment-dashboard/lib/backend"
	"recruitment-dashboard/lib/dashboard"
	initchecker "recruitment-dashboard/lib/utils/init-checker"
	formconfigapimodels "recruitment-dashboard/models/api/formconfig"
	"sort"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Provider interface {
	// Open параллельно загружает поля и разделы. Кэш меняется, только если обе загрузки успешны.
	Open(ctx context.Context) (*View, error)
	View() View

	AddField(ctx context.Context, request formconfigapimodels.FieldCreateRequest) (string, error)
	EditField(ctx context.Context, fieldID int, update formconfigapimodels.FieldUpdate) error
	DeleteField(ctx context.Context, fieldID int, confirmed bool) error
	ToggleRequired(ctx context.Context, fieldID int, required bool) error
	SetValidation(ctx context.Context, fieldID int, rule, value string) error
	MoveField(from, to int) error
	SaveFieldOrder(ctx context.Context) error

	CreateSection(ctx context.Context, request formconfigapimodels.SectionRequest) error
	RenameSection(ctx context.Context, name, newName string) error
	DeleteSection(ctx context.Context, name string, confirmed bool) error
	MoveSection(from, to int) error
	SaveSectionOrder(ctx context.Context) error
}

var Instance Provider

func NewHandler(state *dashboard.State) {
	Instance = NewInstance(state, backend.Instance)
}

func NewInstance(state *dashboard.State, client backend.Provider) Provider {
	instance := &impl{
		state:  state,
		client: client,
	}
	initchecker.CheckInit(
		"state", instance.state,
		"client", instance.client,
	)
	instance.resetDrafts(nil, nil)
	return instance
}

type impl struct {
	state  *dashboard.State
	client backend.Provider

	mu           sync.Mutex
	fieldOrder   *reorder.List[formconfigapimodels.FieldDefinition]
	sectionOrder *reorder.List[formconfigapimodels.Section]
	loaded       bool
}

type SectionView struct {
	formconfigapimodels.Section
	FieldCount int
	IconClass  string
}

type View struct {
	Fields       []formconfigapimodels.FieldDefinition
	Sections     []SectionView
	FieldOrder   []formconfigapimodels.FieldDefinition
	SectionOrder []formconfigapimodels.Section
	Validations  []ValidationRow
}

func (i *impl) Open(ctx context.Context) (*View, error) {
	var (
		fields   []formconfigapimodels.FieldDefinition
		sections []formconfigapimodels.Section
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fields, err = i.client.GetFields(gCtx)
		return errors.Wrap(err, "ошибка получения полей формы")
	})
	g.Go(func() error {
		var err error
		sections, err = i.client.GetSections(gCtx)
		return errors.Wrap(err, "ошибка получения разделов формы")
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("ошибка загрузки настроек формы")
		return nil, err
	}
	fields = SortFields(fields)
	i.state.SetFormConfig(fields, sections)
	i.resetDrafts(fields, SortSections(sections))
	i.mu.Lock()
	i.loaded = true
	i.mu.Unlock()
	view := i.View()
	return &view, nil
}

func (i *impl) View() View {
	fields := i.state.Fields()
	sections := i.state.Sections()
	i.mu.Lock()
	defer i.mu.Unlock()
	return View{
		Fields:       fields,
		Sections:     sectionViews(sections, fields),
		FieldOrder:   i.fieldOrder.Items(),
		SectionOrder: i.sectionOrder.Items(),
		Validations:  validationRows(fields),
	}
}

func (i *impl) refresh(ctx context.Context) error {
	_, err := i.Open(ctx)
	return err
}

func (i *impl) resetDrafts(fields []formconfigapimodels.FieldDefinition, sections []formconfigapimodels.Section) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.fieldOrder = reorder.New(fields)
	i.sectionOrder = reorder.New(sections)
}

// ensureLoaded загружает настройки формы, если кэш еще не заполнялся
func (i *impl) ensureLoaded(ctx context.Context) error {
	i.mu.Lock()
	loaded := i.loaded
	i.mu.Unlock()
	if loaded {
		return nil
	}
	return i.refresh(ctx)
}

// SortFields устойчивая сортировка по field_order
func SortFields(fields []formconfigapimodels.FieldDefinition) []formconfigapimodels.FieldDefinition {
	result := append([]formconfigapimodels.FieldDefinition(nil), fields...)
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].FieldOrder < result[b].FieldOrder
	})
	return result
}

// SortSections устойчивая сортировка по order, раздел без order считается нулевым
func SortSections(sections []formconfigapimodels.Section) []formconfigapimodels.Section {
	result := append([]formconfigapimodels.Section(nil), sections...)
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].Order < result[b].Order
	})
	return result
}

// FieldCount число полей кэша, которые ссылаются на раздел
func FieldCount(fields []formconfigapimodels.FieldDefinition, section string) int {
	count := 0
	for _, field := range fields {
		if field.Subsection == section {
			count++
		}
	}
	return count
}

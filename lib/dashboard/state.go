package dashboard

import (
	"recruitment-dashboard/lib/charts"
	"recruitment-dashboard/lib/table"
	"recruitment-dashboard/models"
	dashboardapimodels "recruitment-dashboard/models/api/dashboard"
	formconfigapimodels "recruitment-dashboard/models/api/formconfig"
	"sync"
)

// State состояние дашборда, общее для всех обработчиков
type State struct {
	mu sync.RWMutex

	rows           []*models.CandidateRecord
	allColumns     []string
	defaultColumns []string
	kpis           map[string]float64
	filterOptions  *dashboardapimodels.FilterOptions
	// filtersPopulated варианты фильтров заполняются только при первой успешной загрузке
	filtersPopulated bool
	filters          dashboardapimodels.Filters
	selection        table.Selection
	charts           *charts.Registry

	fields   []formconfigapimodels.FieldDefinition
	sections []formconfigapimodels.Section

	loading     bool
	errorBanner string

	nextSeq    uint64
	appliedSeq uint64
}

func NewState() *State {
	return &State{
		kpis:    map[string]float64{},
		filters: dashboardapimodels.Filters{},
		charts:  charts.NewRegistry(),
	}
}

// Snapshot копия состояния для отрисовки страницы
type Snapshot struct {
	Rows           []*models.CandidateRecord
	AllColumns     []string
	DefaultColumns []string
	KPIs           map[string]float64
	FilterOptions  *dashboardapimodels.FilterOptions
	Filters        dashboardapimodels.Filters
	Selection      table.Selection
	Loading        bool
	ErrorBanner    string
	AppliedSeq     uint64
	// FiltersPopulated варианты фильтров уже получены
	FiltersPopulated bool
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	kpis := make(map[string]float64, len(s.kpis))
	for k, v := range s.kpis {
		kpis[k] = v
	}
	filters := make(dashboardapimodels.Filters, len(s.filters))
	for k, v := range s.filters {
		filters[k] = v
	}
	selection := table.NewSelection(s.selection.Columns(), s.selection.Checked())
	return Snapshot{
		Rows:           append([]*models.CandidateRecord(nil), s.rows...),
		AllColumns:     append([]string(nil), s.allColumns...),
		DefaultColumns: append([]string(nil), s.defaultColumns...),
		KPIs:           kpis,
		FilterOptions:  s.filterOptions,
		Filters:        filters,
		Selection:      selection,
		Loading:        s.loading,
		ErrorBanner:    s.errorBanner,
		AppliedSeq:     s.appliedSeq,

		FiltersPopulated: s.filtersPopulated,
	}
}

// BeginLoad выдает номер запроса и включает индикатор загрузки
func (s *State) BeginLoad(filters dashboardapimodels.Filters) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	s.loading = true
	s.filters = dashboardapimodels.Filters{}
	for k, v := range filters {
		s.filters[k] = v
	}
	return s.nextSeq
}

// ApplyData применяет ответ /api/data. Ответ старее уже примененного отбрасывается.
func (s *State) ApplyData(seq uint64, data *dashboardapimodels.DataResponse) (applied bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.appliedSeq {
		return false
	}
	s.appliedSeq = seq
	s.finishLoad(seq)
	s.errorBanner = ""
	s.rows = data.TableData
	s.allColumns = data.AllColumns
	s.defaultColumns = data.DefaultColumns
	s.kpis = data.KPIs
	if s.kpis == nil {
		s.kpis = map[string]float64{}
	}
	if !s.filtersPopulated {
		s.filterOptions = data.Filters
		s.filtersPopulated = true
	}
	s.selection = table.NewSelection(data.AllColumns, data.DefaultColumns)
	s.charts.UpdateAll(data.Charts)
	return true
}

// ApplyError показывает баннер ошибки. Ранее выведенные данные не трогаются.
func (s *State) ApplyError(seq uint64, banner string) (applied bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.appliedSeq {
		return false
	}
	s.appliedSeq = seq
	s.finishLoad(seq)
	s.errorBanner = banner
	return true
}

func (s *State) finishLoad(seq uint64) {
	if seq >= s.nextSeq {
		s.loading = false
	}
}

func (s *State) FiltersPopulated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtersPopulated
}

func (s *State) Rows() []*models.CandidateRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*models.CandidateRecord(nil), s.rows...)
}

// Row строка таблицы по индексу
func (s *State) Row(idx int) (*models.CandidateRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx < 0 || idx >= len(s.rows) {
		return nil, false
	}
	return s.rows[idx], true
}

func (s *State) ToggleColumn(column string, visible bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Toggle(column, visible)
}

func (s *State) CheckedColumns() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.Checked()
}

func (s *State) Chart(name string) (charts.Instance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.charts.Get(name)
}

func (s *State) Fields() []formconfigapimodels.FieldDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]formconfigapimodels.FieldDefinition(nil), s.fields...)
}

// SetFields кэш полей всегда заменяется целиком
func (s *State) SetFields(fields []formconfigapimodels.FieldDefinition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields = append([]formconfigapimodels.FieldDefinition(nil), fields...)
}

func (s *State) Sections() []formconfigapimodels.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]formconfigapimodels.Section(nil), s.sections...)
}

func (s *State) SetSections(sections []formconfigapimodels.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sections = append([]formconfigapimodels.Section(nil), sections...)
}

// SetFormConfig заменяет оба кэша одновременно
func (s *State) SetFormConfig(fields []formconfigapimodels.FieldDefinition, sections []formconfigapimodels.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields = append([]formconfigapimodels.FieldDefinition(nil), fields...)
	s.sections = append([]formconfigapimodels.Section(nil), sections...)
}

// UpdateField меняет одно поле кэша, используется для оптимистичного переключения required
func (s *State) UpdateField(fieldID int, fn func(field *formconfigapimodels.FieldDefinition)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx := range s.fields {
		if s.fields[idx].ID == fieldID {
			fn(&s.fields[idx])
			return true
		}
	}
	return false
}

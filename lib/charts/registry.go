package charts

import (
	dashboardapimodels "recruitment-dashboard/models/api/dashboard"

	"github.com/pkg/errors"
)

type Kind string

const (
	KindBar    Kind = "bar"
	KindPie    Kind = "pie"
	KindFunnel Kind = "funnel"
)

const (
	AppsPerCompany    = "appsPerCompanyChart"
	AppsPerCollege    = "appsPerCollegeChart"
	GenderDiversity   = "genderDiversityChart"
	RecruitmentFunnel = "recruitmentFunnelChart"
)

type Definition struct {
	Name      string
	Title     string
	SeriesKey string
	Kind      Kind
}

var Definitions = []Definition{
	{Name: AppsPerCompany, Title: "Apps per Company", SeriesKey: dashboardapimodels.ChartAppsPerCompany, Kind: KindBar},
	{Name: AppsPerCollege, Title: "Apps per College", SeriesKey: dashboardapimodels.ChartAppsPerCollege, Kind: KindBar},
	{Name: GenderDiversity, Title: "Gender Diversity", SeriesKey: dashboardapimodels.ChartGenderDiversity, Kind: KindPie},
	{Name: RecruitmentFunnel, Title: "Recruitment Funnel", SeriesKey: dashboardapimodels.ChartRecruitmentFunnel, Kind: KindFunnel},
}

var ErrUnknownChart = errors.New("unknown chart")

var (
	pieColors    = []string{"#36A2EB", "#FF6384", "#FFCE56", "#4BC0C0", "#9966FF", "#FF9F40"}
	barColor     = "#36A2EB"
	funnelColors = []string{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF", "#FF9F40"}
)

const (
	DatasetSpacer = "Spacer"
	DatasetCount  = "Count"
)

type Dataset struct {
	Label  string
	Data   []float64
	Colors []string
	// Hidden набор не попадает в подсказки и подписи и рисуется прозрачным
	Hidden bool
}

type Instance struct {
	Name     string
	Title    string
	Kind     Kind
	Labels   []string
	Datasets []Dataset
	// Generation меняется при пересоздании графика
	Generation int
	// Revision растет при обновлении данных на месте
	Revision int
}

// Visible наборы, которые показываются в подсказках и подписях
func (i Instance) Visible() []Dataset {
	result := []Dataset{}
	for _, ds := range i.Datasets {
		if !ds.Hidden {
			result = append(result, ds)
		}
	}
	return result
}

func (i Instance) clone() Instance {
	result := i
	result.Labels = append([]string(nil), i.Labels...)
	result.Datasets = make([]Dataset, 0, len(i.Datasets))
	for _, ds := range i.Datasets {
		ds.Data = append([]float64(nil), ds.Data...)
		ds.Colors = append([]string(nil), ds.Colors...)
		result.Datasets = append(result.Datasets, ds)
	}
	return result
}

// Registry по одному экземпляру графика на каждое фиксированное имя
type Registry struct {
	instances  map[string]*Instance
	generation int
}

func NewRegistry() *Registry {
	return &Registry{instances: map[string]*Instance{}}
}

func DefinitionByName(name string) (Definition, bool) {
	for _, def := range Definitions {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

// Update обычный график обновляется на месте, воронка и первый вывод всегда пересоздаются
func (r *Registry) Update(name string, series dashboardapimodels.ChartSeries) (Instance, error) {
	def, ok := DefinitionByName(name)
	if !ok {
		return Instance{}, errors.Wrapf(ErrUnknownChart, "%s", name)
	}
	labels, data := alignSeries(series)
	existing, exists := r.instances[name]
	if exists && def.Kind != KindFunnel {
		existing.Labels = labels
		existing.Datasets[0].Data = data
		if def.Kind == KindPie {
			existing.Datasets[0].Colors = cycle(pieColors, len(data))
		}
		existing.Revision++
		return existing.clone(), nil
	}
	r.generation++
	instance := &Instance{
		Name:       def.Name,
		Title:      def.Title,
		Kind:       def.Kind,
		Labels:     labels,
		Datasets:   datasets(def.Kind, data),
		Generation: r.generation,
	}
	r.instances[name] = instance
	return instance.clone(), nil
}

// UpdateAll обновляет все графики по сериям ответа /api/data. Отсутствующая серия дает пустой график.
func (r *Registry) UpdateAll(series map[string]dashboardapimodels.ChartSeries) {
	for _, def := range Definitions {
		_, _ = r.Update(def.Name, series[def.SeriesKey])
	}
}

func (r *Registry) Get(name string) (Instance, bool) {
	instance, ok := r.instances[name]
	if !ok {
		return Instance{}, false
	}
	return instance.clone(), true
}

func datasets(kind Kind, data []float64) []Dataset {
	switch kind {
	case KindFunnel:
		return []Dataset{
			{Label: DatasetSpacer, Data: FunnelSpacers(data), Hidden: true},
			{Label: DatasetCount, Data: data, Colors: cycle(funnelColors, len(data))},
		}
	case KindPie:
		return []Dataset{{Label: DatasetCount, Data: data, Colors: cycle(pieColors, len(data))}}
	default:
		return []Dataset{{Label: DatasetCount, Data: data, Colors: []string{barColor}}}
	}
}

// FunnelSpacers (max(data, 0) - data[i]) / 2 для центрирования полос воронки
func FunnelSpacers(data []float64) []float64 {
	maxValue := 0.0
	for _, v := range data {
		if v > maxValue {
			maxValue = v
		}
	}
	result := make([]float64, len(data))
	for idx, v := range data {
		result[idx] = (maxValue - v) / 2
	}
	return result
}

func alignSeries(series dashboardapimodels.ChartSeries) ([]string, []float64) {
	size := len(series.Labels)
	if len(series.Data) < size {
		size = len(series.Data)
	}
	return append([]string(nil), series.Labels[:size]...), append([]float64(nil), series.Data[:size]...)
}

func cycle(palette []string, size int) []string {
	result := make([]string, size)
	for idx := range result {
		result[idx] = palette[idx%len(palette)]
	}
	return result
}

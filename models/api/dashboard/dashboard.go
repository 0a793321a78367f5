package dashboardapimodels

import (
	"bytes"
	"encoding/json"
	"recruitment-dashboard/lib/utils/helpers"
	"recruitment-dashboard/models"

	"github.com/pkg/errors"
)

const FilterAll = "all"

const (
	FilterLocation       = "location"
	FilterPost           = "post"
	FilterQualification  = "qualification"
	FilterBusinessEntity = "business_entity"
	FilterCourse         = "course"
	FilterCollege        = "college"
	FilterStartDate      = "start_date"
	FilterEndDate        = "end_date"
)

// FilterKeys порядок фильтров в строке запроса и на панели фильтров
var FilterKeys = []string{
	FilterLocation,
	FilterPost,
	FilterQualification,
	FilterBusinessEntity,
	FilterCourse,
	FilterCollege,
	FilterStartDate,
	FilterEndDate,
}

// Filters значения фильтров панели: ключ фильтра -> выбранное значение
type Filters map[string]string

type DataResponse struct {
	KPIs           map[string]float64        `json:"kpis"`
	Charts         map[string]ChartSeries    `json:"charts"`
	TableData      []*models.CandidateRecord `json:"table_data"`
	Filters        *FilterOptions            `json:"filters,omitempty"`
	AllColumns     []string                  `json:"all_columns"`
	DefaultColumns []string                  `json:"default_columns"`
	Message        string                    `json:"message,omitempty"`
	Error          string                    `json:"error,omitempty"`
}

type FilterOptions struct {
	Locations        []string `json:"locations"`
	Posts            []string `json:"posts"`
	Qualifications   []string `json:"qualifications"`
	BusinessEntities []string `json:"business_entities"`
	Courses          []string `json:"courses"`
	Colleges         []string `json:"colleges"`
}

// ByFilter варианты значений для фильтра панели
func (o *FilterOptions) ByFilter(filter string) []string {
	if o == nil {
		return nil
	}
	switch filter {
	case FilterLocation:
		return o.Locations
	case FilterPost:
		return o.Posts
	case FilterQualification:
		return o.Qualifications
	case FilterBusinessEntity:
		return o.BusinessEntities
	case FilterCourse:
		return o.Courses
	case FilterCollege:
		return o.Colleges
	}
	return nil
}

const (
	ChartAppsPerCompany    = "apps_per_company"
	ChartAppsPerCollege    = "apps_per_college"
	ChartGenderDiversity   = "gender_diversity"
	ChartRecruitmentFunnel = "recruitment_funnel"
)

// ChartSeries серия данных графика. Backend отдает либо {labels, data}, либо объект label -> count.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

func (s *ChartSeries) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = ChartSeries{}
		return nil
	}
	if !helpers.IsJSONObject(data) {
		return errors.New("серия графика должна быть объектом")
	}
	var shaped struct {
		Labels []string  `json:"labels"`
		Data   []float64 `json:"data"`
	}
	probe := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &probe); err != nil {
		return errors.Wrap(err, "ошибка чтения серии графика")
	}
	_, hasLabels := probe["labels"]
	_, hasData := probe["data"]
	if hasLabels && hasData {
		if err := json.Unmarshal(data, &shaped); err != nil {
			return errors.Wrap(err, "ошибка чтения серии графика")
		}
		*s = ChartSeries{Labels: shaped.Labels, Data: shaped.Data}
		return nil
	}
	result := ChartSeries{}
	err := helpers.DecodeOrderedObject(data, func(key string, dec *json.Decoder) error {
		var count json.Number
		if err := dec.Decode(&count); err != nil {
			return errors.Wrapf(err, "некорректное значение серии %s", key)
		}
		value, err := count.Float64()
		if err != nil {
			return errors.Wrapf(err, "некорректное значение серии %s", key)
		}
		result.Labels = append(result.Labels, key)
		result.Data = append(result.Data, value)
		return nil
	})
	if err != nil {
		return err
	}
	*s = result
	return nil
}

func (s ChartSeries) IsEmpty() bool {
	return len(s.Labels) == 0 || len(s.Data) == 0
}

// StateResponse снимок состояния дашборда
type StateResponse struct {
	Loading          bool               `json:"loading"`
	ErrorBanner      string             `json:"error_banner,omitempty"`
	Filters          Filters            `json:"filters"`
	FiltersPopulated bool               `json:"filters_populated"`
	KPIs             map[string]float64 `json:"kpis"`
	Rows             int                `json:"rows"`
	AllColumns       []string           `json:"all_columns"`
	CheckedColumns   []string           `json:"checked_columns"`
	Charts           []ChartState       `json:"charts"`
}

type ChartState struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`
	Labels     []string `json:"labels"`
	Generation int      `json:"generation"`
	Revision   int      `json:"revision"`
}

// KPI карточка показателя
type KPI struct {
	Key   string
	Label string
}

var KPIs = []KPI{
	{Key: "applications", Label: "No. of Applications"},
	{Key: "shortlisted", Label: "No. of Shortlisted"},
	{Key: "interviewed", Label: "No. of Interviewed"},
	{Key: "offered", Label: "No. of Offered"},
	{Key: "hired", Label: "No. of Hired"},
	{Key: "rejected", Label: "No. of Rejected"},
	{Key: "acceptance_rate", Label: "Acceptance Rate (%)"},
	{Key: "rejection_rate", Label: "Rejection Rate (%)"},
}

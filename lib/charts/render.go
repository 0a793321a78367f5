package charts

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrNoData = errors.New("chart has no data")

// Render рисует экземпляр графика в PNG
func Render(w io.Writer, instance Instance, width, height int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ошибка построения графика %s: %v", instance.Name, r)
		}
	}()
	if len(instance.Labels) == 0 || total(instance) == 0 {
		return ErrNoData
	}
	switch instance.Kind {
	case KindPie:
		return renderPie(w, instance, width, height)
	case KindFunnel:
		return renderFunnel(w, instance, width, height)
	default:
		return renderBar(w, instance, width, height)
	}
}

func renderBar(w io.Writer, instance Instance, width, height int) error {
	ds := instance.Datasets[0]
	bars := make([]chart.Value, 0, len(instance.Labels))
	for idx, label := range instance.Labels {
		bars = append(bars, chart.Value{
			Label: label,
			Value: ds.Data[idx],
			Style: fill(colorAt(ds.Colors, idx)),
		})
	}
	graph := chart.BarChart{
		Title:    instance.Title,
		Width:    width,
		Height:   height,
		BarWidth: barWidth(width, len(bars)),
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}
	return errors.Wrap(graph.Render(chart.PNG, w), "ошибка отрисовки графика")
}

func renderPie(w io.Writer, instance Instance, width, height int) error {
	ds := instance.Datasets[0]
	values := make([]chart.Value, 0, len(instance.Labels))
	for idx, label := range instance.Labels {
		if ds.Data[idx] <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: label,
			Value: ds.Data[idx],
			Style: fill(colorAt(ds.Colors, idx)),
		})
	}
	graph := chart.PieChart{
		Title:  instance.Title,
		Width:  width,
		Height: height,
		Values: values,
	}
	return errors.Wrap(graph.Render(chart.PNG, w), "ошибка отрисовки графика")
}

// renderFunnel горизонтальные полосы: прозрачный отступ, количество, прозрачный отступ
func renderFunnel(w io.Writer, instance Instance, width, height int) error {
	var spacers, counts Dataset
	for _, ds := range instance.Datasets {
		if ds.Label == DatasetSpacer {
			spacers = ds
		} else {
			counts = ds
		}
	}
	bars := make([]chart.StackedBar, 0, len(instance.Labels))
	for idx, label := range instance.Labels {
		spacer := spacers.Data[idx]
		count := counts.Data[idx]
		bars = append(bars, chart.StackedBar{
			Name: label,
			Values: []chart.Value{
				{Value: spacer, Style: transparent()},
				{Label: label, Value: count, Style: fill(colorAt(counts.Colors, idx))},
				{Value: spacer, Style: transparent()},
			},
		})
	}
	graph := chart.StackedBarChart{
		Title:        instance.Title,
		Width:        width,
		Height:       height,
		IsHorizontal: true,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}
	return errors.Wrap(graph.Render(chart.PNG, w), "ошибка отрисовки графика")
}

func total(instance Instance) float64 {
	sum := 0.0
	for _, ds := range instance.Visible() {
		for _, v := range ds.Data {
			if v > 0 {
				sum += v
			}
		}
	}
	return sum
}

func barWidth(width, count int) int {
	if count == 0 {
		return 0
	}
	size := width / (count * 2)
	if size > 60 {
		size = 60
	}
	if size < 4 {
		size = 4
	}
	return size
}

func colorAt(colors []string, idx int) string {
	if len(colors) == 0 {
		return barColor
	}
	return colors[idx%len(colors)]
}

func fill(hex string) chart.Style {
	color := drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
	return chart.Style{
		FillColor:   color,
		StrokeColor: color,
	}
}

func transparent() chart.Style {
	return chart.Style{
		FillColor:   drawing.ColorTransparent,
		StrokeColor: drawing.ColorTransparent,
	}
}

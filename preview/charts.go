package preview

import (
	"fmt"
	"io"

	"semiplot/types"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	etypes "github.com/go-echarts/go-echarts/v2/types"
)

// Charts 曲线绘制
type Charts struct {
	*Record
}

// Render 把指定帧的全部子图格式化为网页
func (c *Charts) Render(w io.Writer, index int) error {
	frame, ok := c.Frame(index)
	if !ok {
		return fmt.Errorf("帧 %d 不存在", index)
	}
	page := components.NewPage()
	page.PageTitle = c.Title
	page.SetLayout(components.PageFlexLayout)
	for _, panel := range frame.Panels {
		page.AddCharts(panelChart(panel, frame))
	}
	return page.Render(w)
}

// panelChart 子图对应的折线图
func panelChart(panel types.Panel, frame types.Frame) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: etypes.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    panel.Title,
			Subtitle: fmt.Sprintf("frame %d  t=%v  curves=%d", frame.Index, frame.Time, frame.CurveCount),
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: panel.XLabel,
			Min:  panel.XMin,
			Max:  panel.XMax,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: panel.YLabel,
			Min:  panel.YMin,
			Max:  panel.YMax,
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			XAxisIndex: []int{0},
		}),
		charts.WithAnimation(false),
	)
	for _, curve := range panel.Curves {
		style := opts.LineStyle{Width: 2}
		if curve.Dashed {
			style.Type = "dashed"
		}
		line.AddSeries(curve.Label, lineData(curve.Points),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
			charts.WithLineStyleOpts(style),
		)
	}
	// 饱和点
	if len(panel.Markers) > 0 {
		data := lineData(panel.Markers)
		for i := range data {
			data[i].Symbol = "circle"
			data[i].SymbolSize = 8
		}
		line.AddSeries("Saturation", data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
			charts.WithLineStyleOpts(opts.LineStyle{Width: 0}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "red"}),
		)
	}
	return line
}

func lineData(pts []types.Point) []opts.LineData {
	data := make([]opts.LineData, len(pts))
	for i, p := range pts {
		data[i] = opts.LineData{Value: []float64{p.X, p.Y}}
	}
	return data
}

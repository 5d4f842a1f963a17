package export

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/san-kum/jumpviz/internal/kinematics"
	"github.com/san-kum/jumpviz/internal/motion"
)

// ReportOptions controls the HTML report.
type ReportOptions struct {
	Title      string
	Theme      string
	AssetsHost string
}

// Report renders one speed-over-time chart per marker, with one line per
// series, as a standalone HTML page.
func Report(w io.Writer, opt ReportOptions, series ...*motion.Series) error {
	if len(series) == 0 {
		return fmt.Errorf("report needs at least one series")
	}
	if opt.Title == "" {
		opt.Title = "Marker speeds"
	}
	if opt.Theme == "" {
		opt.Theme = "dark"
	}

	page := components.NewPage()
	page.PageTitle = opt.Title
	if opt.AssetsHost != "" {
		page.AssetsHost = opt.AssetsHost
	}

	for _, m := range motion.Markers() {
		page.AddCharts(markerChart(m, opt, series))
	}
	return page.Render(w)
}

func markerChart(m motion.Marker, opt ReportOptions, series []*motion.Series) *charts.Line {
	line := charts.NewLine()
	init := opts.Initialization{PageTitle: opt.Title, Theme: opt.Theme, Width: "900px", Height: "360px"}
	if opt.AssetsHost != "" {
		init.AssetsHost = opt.AssetsHost
	}
	line.SetGlobalOptions(
		charts.WithInitializationOpts(init),
		charts.WithTitleOpts(opts.Title{Title: m.String(), Subtitle: "speed (m/s)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "time (s)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "m/s"}),
	)

	for _, s := range series {
		line.AddSeries(s.Key().String(), speedData(s, m),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
	}
	return line
}

func speedData(s *motion.Series, m motion.Marker) []opts.LineData {
	time := s.Time()
	speed := kinematics.Speed(s.Velocity(m, motion.X), s.Velocity(m, motion.Y))
	data := make([]opts.LineData, len(time))
	for i := range time {
		data[i] = opts.LineData{Value: []interface{}{time[i], speed[i]}}
	}
	return data
}

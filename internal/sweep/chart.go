package sweep

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderChart writes an HTML scatter of the target trajectory projected on
// the world XY plane, coloured by the swept angle.
func RenderChart(r *Report, w io.Writer) error {
	if len(r.Results) == 0 {
		return fmt.Errorf("no results to chart")
	}

	data := make([]opts.ScatterData, 0, len(r.Results))
	maxAbs := 0.0
	minAngle, maxAngle := math.Inf(1), math.Inf(-1)
	for _, res := range r.Results {
		x, y := res.Point.X(), res.Point.Y()
		maxAbs = math.Max(maxAbs, math.Max(math.Abs(x), math.Abs(y)))
		minAngle = math.Min(minAngle, res.Angle)
		maxAngle = math.Max(maxAngle, res.Angle)
		data = append(data, opts.ScatterData{Value: []interface{}{x, y, res.Angle}})
	}

	// Square plot with a little padding so edge points stay visible.
	pad := maxAbs * 1.05
	if pad == 0 {
		pad = 1.0
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Calibration Sweep", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Target trajectory",
			Subtitle: fmt.Sprintf("run=%s axis=%s samples=%d", r.RunID, axisNames[r.Axis], len(data)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "Y", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(minAngle),
			Max:        float32(maxAngle),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#440154", "#31688e", "#35b779", "#fde725"}},
		}),
	)
	scatter.AddSeries("target", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

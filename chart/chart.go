// Package chart renders a sampled histogram as a bar chart. It sits on
// the presentation side of the boundary: it consumes a finished Histogram
// and its Distribution, and the core never imports it.
package chart

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/op/go-logging"

	"github.com/KurranSteeds/RandomVariable/randvar"
)

var log = logging.MustGetLogger("chart")

// Render writes an HTML bar chart of outcome vs count to path. X labels
// carry each outcome with its declared probability, in declared order.
func Render(h *randvar.Histogram, path string) error {
	dist := h.Distribution()
	outcomes := dist.Outcomes()
	probabilities := dist.Probabilities()

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Random Generator",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Elements and Associated Probability",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Count",
		}),
	)

	var labels []string
	items := make([]opts.BarData, 0, len(outcomes))
	for i, o := range outcomes {
		labels = append(labels, fmt.Sprintf("%d (p=%v)", o, probabilities[i]))
		items = append(items, opts.BarData{Value: h.Count(o)})
	}
	bar.SetXAxis(labels)
	bar.AddSeries("count", items)

	page := components.NewPage()
	page.AddCharts(bar)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := page.Render(io.MultiWriter(f)); err != nil {
		return err
	}
	log.Infof("chart written to %s", path)
	return nil
}

// Serve blocks serving the chart directory over HTTP, so the rendered
// page can be viewed in a browser.
func Serve(dir, addr string) error {
	fs := http.FileServer(http.Dir(dir))
	log.Infof("serving charts at http://%s", addr)
	return http.ListenAndServe(addr, fs)
}

package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/storage"
)

// Generator renders the two-panel top-posts report to a fixed HTML path.
type Generator struct {
	OutPath string
}

// Generate writes the report for the given top-by-score rows, overwriting any
// previous file. An empty row set still produces a valid document with a
// generic heading and zero bars per panel.
func (g *Generator) Generate(rows []storage.ReportRow) error {
	upvoted := rankBy(rows, func(r storage.ReportRow) int { return r.Ups })
	commented := rankBy(rows, func(r storage.ReportRow) int { return r.NumComments })

	page := components.NewPage()
	page.PageTitle = "Reddit Top Posts Report"
	page.SetLayout(components.PageCenterLayout)
	page.AddCharts(
		barPanel("upvotes", "Upvotes", "Most Upvoted Posts", "No. of Upvotes", "steelblue",
			upvoted, func(r storage.ReportRow) int { return r.Ups }),
		barPanel("comments", "Comments", "Most Commented Posts", "No. of Comments", "coral",
			commented, func(r storage.ReportRow) int { return r.NumComments }),
	)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	html := enhance(buf.String(), heading(rows))
	if err := os.WriteFile(g.OutPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// rankBy sorts a copy of the rows by the metric, descending, then reverses it:
// the chart draws the first category at the visual bottom, so the reversal puts
// the highest-ranked post on top.
func rankBy(rows []storage.ReportRow, metric func(storage.ReportRow) int) []storage.ReportRow {
	view := slices.Clone(rows)
	sort.SliceStable(view, func(i, j int) bool {
		return metric(view[i]) > metric(view[j])
	})
	slices.Reverse(view)
	return view
}

func heading(rows []storage.ReportRow) string {
	name := "Reddit"
	if len(rows) > 0 {
		name = rows[0].SubredditName
	}
	return "Top 10 Reddit Posts for " + name
}

type postMeta struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Date   string `json:"date"`
}

func barPanel(id, series, title, axisTitle, color string,
	view []storage.ReportRow, metric func(storage.ReportRow) int) *charts.Bar {

	titles := make([]string, 0, len(view))
	data := make([]opts.BarData, 0, len(view))
	urls := make([]string, 0, len(view))
	meta := make([]postMeta, 0, len(view))
	for _, r := range view {
		titles = append(titles, r.Title)
		data = append(data, opts.BarData{Value: metric(r)})
		urls = append(urls, r.URL)
		meta = append(meta, postMeta{Title: r.Title, Author: r.Author, Date: r.Date})
	}
	metaJSON, _ := json.Marshal(meta)
	urlsJSON, _ := json.Marshal(urls)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: id,
			Width:   "1100px",
			Height:  "500px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithColorsOpts(opts.Colors{color}),
		// Pre-reversal axes: categories on X, values on Y. XYReversal below
		// swaps them into the horizontal-bar layout.
		charts.WithXAxisOpts(opts.XAxis{Name: "Post Title"}),
		charts.WithYAxisOpts(opts.YAxis{Name: axisTitle}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
			Formatter: opts.FuncOpts(fmt.Sprintf(
				`function (p) {
					var meta = %s;
					var m = meta[p.dataIndex];
					return '<b>' + m.title + '</b><br/>By: ' + m.author + '<br/>%s: ' + p.value;
				}`, metaJSON, series)),
		}),
	)
	bar.SetXAxis(titles).AddSeries(series, data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right"}),
	)
	bar.XYReversal()

	// Canvas axis labels cannot carry anchor tags, so the click handler is the
	// link: clicking a bar or its label opens the post in a new tab.
	bar.AddJSFuncs(fmt.Sprintf(
		`goecharts_%s.on('click', function (p) {
			var urls = %s;
			if (urls[p.dataIndex]) { window.open(urls[p.dataIndex], '_blank'); }
		});`, id, urlsJSON))

	return bar
}

const styleBlock = `<style>
    h1 { text-align: center; color: #333; font-family: Arial, sans-serif; margin: 20px 0; }
    .back-button {
        display: inline-block;
        margin: 20px;
        padding: 12px 24px;
        background-color: #0066cc;
        color: white;
        text-decoration: none;
        border-radius: 5px;
        font-size: 14px;
        cursor: pointer;
        transition: background-color 0.3s;
    }
    .back-button:hover { background-color: #0044aa; }
    .header-container { text-align: center; }
    </style>`

// enhance injects the page styling, the community heading and the
// back-navigation link into the rendered chart document.
func enhance(html, headingText string) string {
	html = strings.Replace(html, "</head>", styleBlock+"\n</head>", 1)
	header := fmt.Sprintf(`
    <div class="header-container">
        <a href="/" class="back-button">&larr; Back to Dashboard</a>
        <h1>%s</h1>
    </div>`, headingText)
	html = strings.Replace(html, "<body>", "<body>"+header, 1)
	return html
}

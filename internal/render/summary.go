package render

import (
	"io"
	"strconv"

	"github.com/cli/go-gh/v2/pkg/tableprinter"

	"github.com/fchimpan/gh-kusa-map/internal/heatmap"
)

// defaultTableWidth is used on a terminal whose size is unknown.
const defaultTableWidth = 80

// Summary writes one table row per month. When isTTY is false the table is
// tab separated, which keeps it friendly to cut/awk.
func Summary(w io.Writer, months []heatmap.MonthSummary, isTTY bool, width int) error {
	if isTTY && width <= 0 {
		width = defaultTableWidth
	}
	tp := tableprinter.New(w, isTTY, width)
	tp.AddHeader([]string{"MONTH", "DAYS", "ACTIVE", "TOTAL", "MAX", "BUSIEST"})
	for _, m := range months {
		tp.AddField(m.Month.Format("2006-01"))
		tp.AddField(strconv.Itoa(m.Days))
		tp.AddField(strconv.Itoa(m.ActiveDays))
		tp.AddField(strconv.Itoa(m.Total))
		tp.AddField(strconv.Itoa(m.Max))
		if m.Max > 0 {
			tp.AddField(m.MaxDate.Format("2006-01-02"))
		} else {
			tp.AddField("-")
		}
		tp.EndRow()
	}
	return tp.Render()
}

package renderer

import (
	"bytes"
	"fmt"

	bnalpha "github.com/leo-web3/bn-alpha-tools"
	md "github.com/nao1215/markdown"
)

// StatsMarkdown renders the all-accounts stat cards to a markdown string:
// lifetime cost and revenue totals plus one row per trailing window.
func StatsMarkdown(r *bnalpha.StatsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Alpha Stats")

	doc.Table(md.TableSet{
		Header: []string{
			md.Bold("总磨损 (Total Cost)"),
			md.Bold("总收益 (Total Revenue)"),
		},
		Rows: [][]string{
			{r.TotalCost.String(), r.TotalRevenue.String()},
		},
	})

	table := md.TableSet{
		Header: []string{"Window", "磨损 (Cost)", "收益 (Revenue)"},
	}
	for _, w := range r.Windows {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d天", w.Days),
			w.Cost.String(),
			w.Revenue.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

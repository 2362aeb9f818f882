package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	bnalpha "github.com/leo-web3/bn-alpha-tools"
	md "github.com/nao1215/markdown"
)

// points renders a point figure the way the grid shows it: integers without
// a fraction, fractional entries in shortest exact form.
func points(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// userColumns are the seven per-user grid columns: the four point counters,
// the net total, then fee and revenue.
var userColumns = []string{"余额", "交易", "活动", "消耗", "合计", "磨损", "收益"}

// TableMarkdown renders the dense date × account grid to a markdown string,
// one summary section per account followed by the full table, most recent
// day first.
func TableMarkdown(r *bnalpha.TableReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Alpha Data Overview")

	for _, u := range r.Users {
		doc.H2(u.Name)
		items := []string{
			fmt.Sprintf("积分 (cycle): %s", points(u.CyclePoints)),
		}
		if u.HasPreview {
			items = append(items, fmt.Sprintf("明天 (preview): %s", points(u.Preview)))
		}
		items = append(items,
			fmt.Sprintf("磨损 (total cost): %s", u.TotalCost),
			fmt.Sprintf("收益 (total revenue): %s", u.TotalRevenue),
		)
		doc.BulletList(items...)
	}

	header := []string{"日期"}
	for _, u := range r.Users {
		for _, col := range userColumns {
			header = append(header, u.Name+"-"+col)
		}
	}

	table := md.TableSet{Header: header}
	for _, row := range r.Rows {
		cells := []string{row.Date.Format("01-02")}
		for _, cell := range row.Cells {
			point := cell.Point
			if point == nil {
				point = &bnalpha.PointRecord{}
			}
			fee, amount := "0", "0"
			if cell.Cost != nil {
				fee = cell.Cost.Fee.StringFixed(2)
			}
			if cell.Revenue != nil {
				amount = cell.Revenue.Amount.StringFixed(2)
			}
			cells = append(cells,
				points(point.BalanceReward),
				points(point.TradeReward),
				points(point.ActivityPoints),
				points(point.ClaimCost),
				points(cell.Net()),
				fee,
				amount,
			)
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	return doc.String()
}

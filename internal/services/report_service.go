package services

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"time"

	"redbus/internal/domain"
	"redbus/internal/domain/models"
	"redbus/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReportService renders a search result as a PDF: filters, query text,
// seat pie chart and the result table.
type ReportService struct {
	RequestID string
	Now       func() time.Time
}

const (
	pieRadius   = 30.0
	pieHole     = 0.3 // donut hole as a fraction of the radius
	legendLines = 10
	rowHeight   = 6.0
	pageBottom  = 12.0
)

var slicePalette = [][3]int{
	{239, 83, 80}, {66, 165, 245}, {102, 187, 106}, {255, 167, 38}, {171, 71, 188},
	{38, 198, 218}, {255, 112, 67}, {141, 110, 99}, {120, 144, 156}, {212, 225, 87},
}

type tableColumn struct {
	title string
	width float64
	align string
	value func(models.RouteOffering) string
}

var offeringColumns = []tableColumn{
	{"State", 16, "L", func(o models.RouteOffering) string { return o.State }},
	{"Route", 62, "L", func(o models.RouteOffering) string { return o.RouteName }},
	{"Bus Name", 54, "L", func(o models.RouteOffering) string { return o.BusName }},
	{"Bus Type", 48, "L", func(o models.RouteOffering) string { return o.BusType }},
	{"Departs", 18, "C", func(o models.RouteOffering) string { return o.DepartingTime }},
	{"Arrives", 18, "C", func(o models.RouteOffering) string { return o.ReachingTime }},
	{"Price", 26, "R", func(o models.RouteOffering) string {
		if o.Price == nil {
			return "-"
		}
		return utils.FormatRupee(*o.Price)
	}},
	{"Rating", 15, "C", func(o models.RouteOffering) string {
		if o.StarRating == nil {
			return "-"
		}
		return fmt.Sprintf("%.1f", *o.StarRating)
	}},
	{"Seats", 15, "R", func(o models.RouteOffering) string {
		if o.SeatsAvailable == nil {
			return "-"
		}
		return fmt.Sprintf("%d", *o.SeatsAvailable)
	}},
}

// Render builds the PDF and a download filename for res.
func (s ReportService) Render(res models.SearchResult, c models.FilterCriteria) ([]byte, string, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("RedBus Route Offerings", false)
	pdf.SetAutoPageBreak(true, pageBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RedBus Travel Information")
	pdf.Ln(12)

	filters := "none"
	if sum := c.Summary(); len(sum) > 0 {
		filters = strings.Join(sum, ", ")
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated : "+utils.FormatDateTime(now))
	pdf.Ln(6)
	pdf.MultiCell(0, 5, tr("Filters   : "+filters), "", "", false)
	pdf.Cell(0, 6, fmt.Sprintf("Rows      : %d", res.Count))
	pdf.Ln(7)

	pdf.SetFont("Courier", "", 8)
	pdf.MultiCell(0, 4, tr(res.Query), "", "", false)
	pdf.Ln(4)

	if res.Empty() {
		pdf.SetFont("Helvetica", "I", 12)
		pdf.MultiCell(0, 7, NoRowsMessage, "", "", false)
	} else {
		if res.Chart.HasData {
			drawSeatPie(pdf, tr, res.Chart)
		} else {
			pdf.SetFont("Helvetica", "I", 11)
			pdf.MultiCell(0, 6, NoChartDataMessage, "", "", false)
			pdf.Ln(2)
		}
		drawOfferingTable(pdf, tr, res.Rows)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "render report", Err: err}
	}

	filename := fmt.Sprintf("REDBUS_%s_%s.pdf", safeFilenamePart(c.State.OrElse("ALL")), now.Format("20060102_150405"))
	utils.LogEvent(s.RequestID, "report", "render", fmt.Sprintf("rows=%d bytes=%d", res.Count, buf.Len()))
	return buf.Bytes(), filename, nil
}

func drawSeatPie(pdf *gofpdf.Fpdf, tr func(string) string, chart models.SeatChart) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Seats Available by Bus Name")
	pdf.Ln(9)

	left, _, _, _ := pdf.GetMargins()
	top := pdf.GetY()
	cx, cy := left+pieRadius+5, top+pieRadius

	// slices start at 12 o'clock and run clockwise
	start := 90.0
	pdf.SetDrawColor(255, 255, 255)
	pdf.SetLineWidth(0.4)
	for i, sl := range chart.Slices {
		if sl.Seats <= 0 {
			continue
		}
		end := start - sl.Share*360
		col := slicePalette[i%len(slicePalette)]
		pdf.SetFillColor(col[0], col[1], col[2])
		drawWedge(pdf, cx, cy, pieRadius, end, start)

		if sl.Share >= 0.05 {
			mid := (start + end) / 2 * math.Pi / 180
			lr := pieRadius * (1 + pieHole) / 2
			txt := fmt.Sprintf("%d", sl.Seats)
			pdf.SetFont("Helvetica", "B", 8)
			pdf.SetTextColor(255, 255, 255)
			w := pdf.GetStringWidth(txt)
			pdf.Text(cx+lr*math.Cos(mid)-w/2, cy-lr*math.Sin(mid)+1, txt)
			pdf.SetTextColor(0, 0, 0)
		}
		start = end
	}

	pdf.SetFillColor(255, 255, 255)
	pdf.Circle(cx, cy, pieRadius*pieHole, "F")
	pdf.SetFont("Helvetica", "B", 8)
	total := fmt.Sprintf("%d", chart.Total)
	pdf.Text(cx-pdf.GetStringWidth(total)/2, cy+1, total)

	lx, ly := cx+pieRadius+15, top
	pdf.SetFont("Helvetica", "", 9)
	for i, sl := range chart.Slices {
		if i == legendLines {
			pdf.SetXY(lx+6, ly-0.5)
			pdf.CellFormat(150, 5, fmt.Sprintf("... and %d more operators", len(chart.Slices)-legendLines), "", 0, "L", false, 0, "")
			break
		}
		col := slicePalette[i%len(slicePalette)]
		pdf.SetFillColor(col[0], col[1], col[2])
		pdf.Rect(lx, ly, 4, 4, "F")
		pdf.SetXY(lx+6, ly-0.5)
		label := fmt.Sprintf("%s: %d seats (%.1f%%)", utils.Truncate(sl.BusName, 48), sl.Seats, sl.Share*100)
		pdf.CellFormat(150, 5, tr(label), "", 0, "L", false, 0, "")
		ly += 5.5
	}

	pdf.SetXY(left, top+2*pieRadius+8)
}

func drawWedge(pdf *gofpdf.Fpdf, cx, cy, r, from, to float64) {
	rad := from * math.Pi / 180
	pdf.MoveTo(cx, cy)
	pdf.LineTo(cx+r*math.Cos(rad), cy-r*math.Sin(rad))
	pdf.ArcTo(cx, cy, r, r, 0, from, to)
	pdf.ClosePath()
	pdf.DrawPath("FD")
}

func drawOfferingTable(pdf *gofpdf.Fpdf, tr func(string) string, rows []models.RouteOffering) {
	_, pageH := pdf.GetPageSize()

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		pdf.SetDrawColor(160, 160, 160)
		for _, col := range offeringColumns {
			pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}

	header()
	for _, row := range rows {
		if pdf.GetY()+rowHeight > pageH-pageBottom {
			pdf.AddPage()
			header()
		}
		for _, col := range offeringColumns {
			pdf.CellFormat(col.width, rowHeight, fitCell(pdf, tr(col.value(row)), col.width-2), "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// fitCell trims an already-translated (single-byte) string to width w.
func fitCell(pdf *gofpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w {
		return s
	}
	for len(s) > 1 && pdf.GetStringWidth(s+"..") > w {
		s = s[:len(s)-1]
	}
	return s + ".."
}

func safeFilenamePart(s string) string {
	s = utils.Fallback(s, "NA")
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

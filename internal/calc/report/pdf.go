package report

import (
	"fmt"
	"io"
	"time"

	mullion "Mullion/internal/calc/mullion"

	"github.com/phpdave11/gofpdf"
)

// WritePDF renders a full design report for one mullion check.
func WritePDF(w io.Writer, in Input, res mullion.Result) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	title := in.Title
	if title == "" {
		title = "Mullion Design Report"
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	sectionTitle(pdf, "Geometry")
	row(pdf, "Span", fmt.Sprintf("%.0f mm", res.Geometry.SpanMM))
	row(pdf, "Bay width", fmt.Sprintf("%.0f mm", res.Geometry.BayWidthMM))
	row(pdf, "Tributary area", fmt.Sprintf("%.3f m2", res.Geometry.TributaryAreaM2()))

	sectionTitle(pdf, "Material")
	row(pdf, "Type / grade", fmt.Sprintf("%s %s", res.Material.Type, res.Material.Grade))
	row(pdf, "Elastic modulus E", fmt.Sprintf("%.1f GPa", res.Material.E/1e9))
	row(pdf, "Yield strength fy", fmt.Sprintf("%.0f MPa", res.Material.Fy/1e6))
	row(pdf, "Allowable stress", fmt.Sprintf("%.1f MPa", res.SigmaAllowPa/1e6))

	sectionTitle(pdf, "Loads")
	for _, l := range res.Loads {
		if l.Distribution == "uniform" {
			row(pdf, fmt.Sprintf("%s (uniform)", l.Kind), fmt.Sprintf("%.4f N/mm", l.Magnitude))
		} else {
			row(pdf, fmt.Sprintf("%s (point)", l.Kind), fmt.Sprintf("%.0f N at %.2f m", l.Magnitude, l.PositionM))
		}
	}
	if len(res.Loads) == 0 {
		row(pdf, "Loads", "none")
	}

	sectionTitle(pdf, "ULS results")
	for _, c := range res.ULS.Cases {
		row(pdf, c.Name, fmt.Sprintf("Mmax %.2f kNm at %.2f m, Vmax %.2f kN", c.MMaxNm/1e3, c.XMMaxM, c.VMaxN/1e3))
	}
	if res.ULS.GoverningM != nil {
		row(pdf, "Governing moment", fmt.Sprintf("%s (%.2f kNm)", res.ULS.GoverningM.Case, res.ULS.GoverningM.Value/1e3))
	}
	if res.ULS.GoverningV != nil {
		row(pdf, "Governing shear", fmt.Sprintf("%s (%.2f kN)", res.ULS.GoverningV.Case, res.ULS.GoverningV.Value/1e3))
	}

	sectionTitle(pdf, "SLS results")
	row(pdf, "Deflection limit", fmt.Sprintf("%.1f mm", res.DeflectionLimitMM))
	for _, c := range res.SLS.Cases {
		row(pdf, c.Name, fmt.Sprintf("required I %.1f cm4", c.IReqM4*1e8))
	}
	if res.SLS.Governing != nil {
		row(pdf, "Governing case", res.SLS.Governing.Case)
	}

	sectionTitle(pdf, "Required section properties")
	row(pdf, "Section modulus Z", fmt.Sprintf("%.2f cm3", res.ZReqCm3))
	row(pdf, "Second moment of area I", fmt.Sprintf("%.1f cm4", res.IReqCm4))

	if in.Notes != "" {
		sectionTitle(pdf, "Notes")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, in.Notes, "", "L", false)
	}

	return pdf.Output(w)
}

func sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, s)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(80, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

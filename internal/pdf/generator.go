package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/hsvanberg/offert-service/internal/model"
	"github.com/hsvanberg/offert-service/internal/pricing"
)

// Generator renders the printable quote preview. Swedish text fits in
// cp1252, so the built-in Helvetica faces are enough.
type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) Generate(doc model.QuoteDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	quote := doc.Quote
	summary := pricing.Summarize(quote)

	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, tr("Offert"), "", 1, "L", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Offertnummer: %s", quote.Number)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Datum: %s", formatDate(quote.CreatedAt))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Giltig till: %s", formatDate(quote.ValidUntil))), "", 1, "L", false, 0, "")
	if quote.Title != "" {
		pdf.SetFont(g.fontName, "B", 12)
		pdf.CellFormat(0, 8, tr(quote.Title), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	g.addProfileBlock(pdf, tr, doc.Profile)
	pdf.Ln(2)
	g.addRecipientBlock(pdf, tr, quote.Recipient)
	pdf.Ln(4)

	headers := []string{"Beskrivning", "Antal", "Enhet", "Á pris", "Rabatt", "Summa"}
	colWidths := []float64{70, 18, 18, 26, 22, 26}
	if summary.HasROTItems {
		headers = []string{"Beskrivning", "Antal", "Enhet", "Á pris", "Rabatt", "ROT", "Summa"}
		colWidths = []float64{62, 16, 16, 24, 22, 14, 26}
	}
	drawTableRow(pdf, g.fontName, tr, headers, colWidths, true)

	for _, item := range quote.Items {
		row := []string{
			item.Description,
			formatAmount(item.Quantity, 0),
			item.Unit,
			formatAmount(item.Price, 2),
			formatDiscount(item.Discount),
		}
		if summary.HasROTItems {
			rot := ""
			if item.HasROTDeduction {
				rot = "Ja"
			}
			row = append(row, rot)
		}
		row = append(row, formatAmount(pricing.ItemPrice(item), 2))
		drawTableRow(pdf, g.fontName, tr, row, colWidths, false)
	}

	pdf.Ln(3)
	g.addTotalLine(pdf, tr, "Delsumma:", summary.Subtotal, false)
	if quote.TotalDiscount.Applies() {
		pdf.SetFont(g.fontName, "", 11)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Rabatt: %s", formatDiscount(quote.TotalDiscount))), "", 1, "R", false, 0, "")
	}
	g.addTotalLine(pdf, tr, "Totalt:", summary.Total, true)
	if summary.ROTDeduction > 0 {
		g.addTotalLine(pdf, tr, "ROT-avdrag:", summary.ROTDeduction, false)
		g.addTotalLine(pdf, tr, "Att betala efter ROT:", summary.TotalAfterROT, true)
	}

	if summary.HasROTItems {
		pdf.Ln(4)
		pdf.SetFont(g.fontName, "B", 10)
		pdf.CellFormat(0, 6, tr("Information om ROT-avdrag"), "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 9)
		pdf.MultiCell(0, 5, tr("ROT-avdraget är ett skatteavdrag som ger privatpersoner möjlighet att få skattereduktion för arbetskostnader vid reparation, underhåll samt om- och tillbyggnad av bostäder. Avdraget är 30% av arbetskostnaden."), "", "L", false)
	}

	if quote.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont(g.fontName, "B", 11)
		pdf.CellFormat(0, 6, tr("Anteckningar"), "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)
		pdf.MultiCell(0, 5, tr(quote.Notes), "", "L", false)
	}

	if quote.Terms != "" {
		pdf.Ln(4)
		pdf.SetFont(g.fontName, "B", 11)
		pdf.CellFormat(0, 6, tr("Villkor"), "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)
		pdf.MultiCell(0, 5, tr(quote.Terms), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) addProfileBlock(pdf *gofpdf.Fpdf, tr func(string) string, profile model.BusinessProfile) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, tr("Från"), "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	lines := []string{
		safeValue(profile.CompanyName),
		fmt.Sprintf("Org.nr: %s", safeValue(profile.OrganizationNumber)),
		fmt.Sprintf("%s, %s %s", safeValue(profile.Address), profile.PostalCode, profile.City),
		fmt.Sprintf("Telefon: %s", safeValue(profile.PhoneNumber)),
		fmt.Sprintf("E-post: %s", safeValue(profile.Email)),
	}
	if profile.Website != "" {
		lines = append(lines, profile.Website)
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
}

func (g *Generator) addRecipientBlock(pdf *gofpdf.Fpdf, tr func(string) string, recipient model.Recipient) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, tr("Till"), "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	lines := []string{safeValue(recipient.Name)}
	if recipient.CompanyName != "" {
		lines = append(lines, recipient.CompanyName)
	}
	if recipient.Address != "" {
		lines = append(lines, recipient.Address)
	}
	lines = append(lines, fmt.Sprintf("E-post: %s", safeValue(recipient.Email)))
	if recipient.Phone != "" {
		lines = append(lines, fmt.Sprintf("Telefon: %s", recipient.Phone))
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
}

func (g *Generator) addTotalLine(pdf *gofpdf.Fpdf, tr func(string) string, label string, value float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont(g.fontName, style, 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s %s kr", label, formatAmount(value, 2))), "", 1, "R", false, 0, "")
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 9)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, tr(col), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func formatDiscount(discount *model.Discount) string {
	if !discount.Applies() {
		return ""
	}
	if discount.Kind == model.DiscountPercentage {
		return fmt.Sprintf("%s%%", formatAmount(discount.Value, 0))
	}
	return fmt.Sprintf("%s kr", formatAmount(discount.Value, 2))
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}

func formatAmount(value float64, precision int) string {
	format := fmt.Sprintf("%%.%df", precision)
	return fmt.Sprintf(format, value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("2006-01-02")
}

package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hsvanberg/offert-service/internal/model"
	"github.com/hsvanberg/offert-service/internal/pricing"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the quote register workbook: a summary sheet with counts
// and value per status, and a register sheet with one row per quote.
func (g *Generator) Generate(register model.QuoteRegister) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Sammanfattning"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, register); err != nil {
		return nil, err
	}

	registerSheet := "Register"
	file.NewSheet(registerSheet)
	if err := g.writeRegister(file, registerSheet, register); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, register model.QuoteRegister) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	counts := map[model.QuoteStatus]int{}
	values := map[model.QuoteStatus]float64{}
	totalValue := 0.0
	for _, quote := range register.Quotes {
		summary := pricing.Summarize(quote)
		counts[quote.Status]++
		values[quote.Status] += summary.Total
		totalValue += summary.Total
	}

	set("A1", "Genererad")
	set("B1", formatDateTime(register.GeneratedAt))
	set("A2", "Antal offerter")
	set("B2", len(register.Quotes))
	set("A3", "Totalt värde, kr")
	set("B3", formatAmount(totalValue))

	tableRow := 5
	set(fmt.Sprintf("A%d", tableRow), "Status")
	set(fmt.Sprintf("B%d", tableRow), "Antal")
	set(fmt.Sprintf("C%d", tableRow), "Värde, kr")

	statuses := []model.QuoteStatus{
		model.QuoteStatusDraft,
		model.QuoteStatusSent,
		model.QuoteStatusAccepted,
		model.QuoteStatusRejected,
		model.QuoteStatusExpired,
	}
	for i, status := range statuses {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), statusLabel(status))
		set(fmt.Sprintf("B%d", row), counts[status])
		set(fmt.Sprintf("C%d", row), formatAmount(values[status]))
	}

	_ = file.SetColWidth(sheet, "A", "A", 22)
	_ = file.SetColWidth(sheet, "B", "B", 14)
	_ = file.SetColWidth(sheet, "C", "C", 16)
	return nil
}

func (g *Generator) writeRegister(file *excelize.File, sheet string, register model.QuoteRegister) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Nummer",
		"Titel",
		"Kund",
		"Företag",
		"Status",
		"Skapad",
		"Giltig till",
		"Delsumma, kr",
		"Totalt, kr",
		"ROT-avdrag, kr",
		"Att betala, kr",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, quote := range register.Quotes {
		summary := pricing.Summarize(quote)
		row := i + 2
		set(fmt.Sprintf("A%d", row), quote.Number)
		set(fmt.Sprintf("B%d", row), quote.Title)
		set(fmt.Sprintf("C%d", row), quote.Recipient.Name)
		set(fmt.Sprintf("D%d", row), quote.Recipient.CompanyName)
		set(fmt.Sprintf("E%d", row), statusLabel(quote.Status))
		set(fmt.Sprintf("F%d", row), formatDate(quote.CreatedAt))
		set(fmt.Sprintf("G%d", row), formatDate(quote.ValidUntil))
		set(fmt.Sprintf("H%d", row), formatAmount(summary.Subtotal))
		set(fmt.Sprintf("I%d", row), formatAmount(summary.Total))
		set(fmt.Sprintf("J%d", row), formatAmount(summary.ROTDeduction))
		set(fmt.Sprintf("K%d", row), formatAmount(summary.TotalAfterROT))
	}

	_ = file.SetColWidth(sheet, "A", "A", 20)
	_ = file.SetColWidth(sheet, "B", "B", 34)
	_ = file.SetColWidth(sheet, "C", "D", 24)
	_ = file.SetColWidth(sheet, "E", "G", 14)
	_ = file.SetColWidth(sheet, "H", "K", 16)
	return nil
}

func statusLabel(status model.QuoteStatus) string {
	switch status {
	case model.QuoteStatusDraft:
		return "Utkast"
	case model.QuoteStatusSent:
		return "Skickad"
	case model.QuoteStatusAccepted:
		return "Accepterad"
	case model.QuoteStatusRejected:
		return "Avböjd"
	case model.QuoteStatusExpired:
		return "Utgången"
	default:
		return string(status)
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

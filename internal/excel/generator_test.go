package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hsvanberg/offert-service/internal/excel"
	"github.com/hsvanberg/offert-service/internal/model"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	register := model.QuoteRegister{
		GeneratedAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		Quotes: []model.Quote{
			{
				ID:         uuid.New(),
				Number:     "OFF-20250301-001",
				Title:      "Målning av fasad",
				CreatedAt:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				ValidUntil: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
				Status:     model.QuoteStatusSent,
				Recipient:  model.Recipient{Name: "Anna Andersson", CompanyName: "Byggbolaget AB"},
				Items: []model.QuoteItem{
					{ID: uuid.New(), Description: "Målning", Quantity: 20, Unit: "kvm", Price: 500},
				},
			},
			{
				ID:        uuid.New(),
				Number:    "OFF-20250302-002",
				Status:    model.QuoteStatusDraft,
				Recipient: model.Recipient{Name: "Erik Eriksson"},
				Items: []model.QuoteItem{
					{ID: uuid.New(), Description: "Snickeriarbete", Quantity: 1, Unit: "st", Price: 12000, HasROTDeduction: true},
				},
			},
		},
	}

	content, err := excel.NewGenerator().Generate(register)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	sheets := file.GetSheetList()
	assert.Contains(t, sheets, "Sammanfattning")
	assert.Contains(t, sheets, "Register")

	number, err := file.GetCellValue("Register", "A2")
	require.NoError(t, err)
	assert.Equal(t, "OFF-20250301-001", number)

	status, err := file.GetCellValue("Register", "E2")
	require.NoError(t, err)
	assert.Equal(t, "Skickad", status)

	count, err := file.GetCellValue("Sammanfattning", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2", count)
}

func TestGenerateEmptyRegister(t *testing.T) {
	t.Parallel()

	content, err := excel.NewGenerator().Generate(model.QuoteRegister{GeneratedAt: time.Now()})
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}

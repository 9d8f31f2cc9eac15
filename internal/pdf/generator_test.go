package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsvanberg/offert-service/internal/model"
	"github.com/hsvanberg/offert-service/internal/pdf"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	doc := model.QuoteDocument{
		Quote: model.Quote{
			ID:         uuid.New(),
			Number:     "OFF-20250310-042",
			Title:      "Badrumsrenovering komplett",
			CreatedAt:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			ValidUntil: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
			Status:     model.QuoteStatusDraft,
			Recipient: model.Recipient{
				Name:        "Anna Andersson",
				CompanyName: "Byggbolaget AB",
				Email:       "anna.andersson@byggbolaget.se",
				Address:     "Storgatan 1, 111 22 Stockholm",
			},
			Items: []model.QuoteItem{
				{
					ID:              uuid.New(),
					Description:     "Rivning av befintligt badrum",
					Quantity:        1,
					Unit:            "st",
					Price:           15000,
					HasROTDeduction: true,
				},
				{
					ID:          uuid.New(),
					Description: "Kakel och klinker",
					Quantity:    12,
					Unit:        "kvm",
					Price:       1800,
					Discount:    &model.Discount{Kind: model.DiscountAmount, Value: 1000},
				},
			},
			Notes: "Arbetet utförs vardagar 08:00-17:00.",
			Terms: "Betalningsvillkor: 30 dagar",
		},
		Profile: model.BusinessProfile{
			CompanyName:        "Svanberg Bygg AB",
			OrganizationNumber: "556677-8899",
			Address:            "Kungsgatan 12",
			PostalCode:         "111 35",
			City:               "Stockholm",
			PhoneNumber:        "070-1234567",
			Email:              "info@svanbergbygg.se",
		},
	}

	content, err := pdf.NewGenerator().Generate(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
	assert.Greater(t, len(content), 1000)
}

func TestGenerateEmptyProfile(t *testing.T) {
	t.Parallel()

	doc := model.QuoteDocument{
		Quote: model.Quote{
			ID:     uuid.New(),
			Number: "OFF-20250310-001",
			Status: model.QuoteStatusDraft,
			Items:  []model.QuoteItem{{ID: uuid.New(), Quantity: 1, Unit: "st"}},
		},
	}

	content, err := pdf.NewGenerator().Generate(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

// Package demo generates sample quotes for the settings page's
// "fill with demo data" action.
package demo

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hsvanberg/offert-service/internal/model"
)

var companyNames = []string{
	"Byggbolaget AB",
	"Renovera Stockholm",
	"Hemfix Solutions",
	"Moderna Hem AB",
	"Fastighetsservice Nord",
	"Kvalitetsbyggarna",
	"Snabbreparationer AB",
	"Professionella Hantverkare",
	"Stockholms Renovering",
	"Byggmästarna i Stockholm",
}

var contactNames = []string{
	"Anna Andersson",
	"Erik Eriksson",
	"Maria Johansson",
	"Lars Larsson",
	"Emma Nilsson",
	"Johan Persson",
	"Sofia Gustafsson",
	"Magnus Pettersson",
	"Lisa Olsson",
	"Daniel Svensson",
}

var quoteTitles = []string{
	"Badrumsrenovering komplett",
	"Målning av vardagsrum och hall",
	"Köksrenovering med nya skåp",
	"Byte av golv i sovrum",
	"Installation av ny belysning",
	"Tapetsering av barnrum",
	"Plattsättning i badrum",
	"Målning av fasad",
	"Montering av ny köksbänk",
	"Reparation av vattenskada",
}

var streets = []string{"Storgatan", "Kungsgatan", "Drottninggatan", "Sveavägen", "Birger Jarlsgatan"}

type serviceItem struct {
	description string
	price       float64
	unit        string
	rotEligible bool
}

var serviceItems = []serviceItem{
	{"Rivning av befintligt badrum", 15000, "st", true},
	{"Målning väggar och tak", 8500, "kvm", true},
	{"Installation nya köksskåp", 45000, "st", true},
	{"Lägga nytt laminatgolv", 350, "kvm", true},
	{"Montera taklampa", 1200, "st", true},
	{"Kakel och klinker", 1800, "kvm", false},
	{"Byggmaterial", 25000, "st", false},
}

var statusCycle = []model.QuoteStatus{
	model.QuoteStatusAccepted,
	model.QuoteStatusSent,
	model.QuoteStatusSent,
	model.QuoteStatusDraft,
	model.QuoteStatusDraft,
	model.QuoteStatusRejected,
}

// GenerateQuotes builds a batch of realistic sample quotes spread over the
// weeks before now, cycling through the lifecycle statuses.
func GenerateQuotes(now time.Time) []model.Quote {
	quotes := make([]model.Quote, 0, len(statusCycle)*len(quoteTitles)/2)

	for i := 0; i < 30; i++ {
		created := now.AddDate(0, 0, -(rand.Intn(40) + 1))
		svc := serviceItems[i%len(serviceItems)]

		quantity := 1.0
		if svc.unit == "kvm" {
			quantity = float64(rand.Intn(40) + 15)
		}

		item := model.QuoteItem{
			ID:              uuid.New(),
			Description:     svc.description,
			Quantity:        quantity,
			Unit:            svc.unit,
			Price:           svc.price,
			HasROTDeduction: svc.rotEligible,
		}
		if i%4 == 0 {
			item.Discount = &model.Discount{Kind: model.DiscountPercentage, Value: 10}
		}

		contact := contactNames[i%len(contactNames)]
		company := companyNames[i%len(companyNames)]

		quote := model.Quote{
			ID:         uuid.New(),
			Number:     fmt.Sprintf("OFF-%s-%03d", created.Format("20060102"), i+1),
			Title:      quoteTitles[i%len(quoteTitles)],
			CreatedAt:  created,
			ValidUntil: created.AddDate(0, 1, 0),
			Status:     statusCycle[i%len(statusCycle)],
			Recipient: model.Recipient{
				Name:        contact,
				CompanyName: company,
				Email:       demoEmail(contact, company),
				Phone:       fmt.Sprintf("070-%03d%02d%02d", rand.Intn(900)+100, rand.Intn(90)+10, rand.Intn(90)+10),
				Address:     fmt.Sprintf("%s %d, 111 %d Stockholm", streets[rand.Intn(len(streets))], rand.Intn(200)+1, rand.Intn(90)+10),
			},
			Items: []model.QuoteItem{item},
			Notes: "Arbetet utförs vardagar 08:00-17:00. Material ingår i priset.",
			Terms: "Betalningsvillkor: 30 dagar\nOfferttid: 30 dagar",
		}
		if i%5 == 0 {
			quote.TotalDiscount = &model.Discount{Kind: model.DiscountAmount, Value: 500}
		}

		quotes = append(quotes, quote)
	}

	return quotes
}

func demoEmail(contact, company string) string {
	user := strings.ReplaceAll(strings.ToLower(contact), " ", ".")
	domain := strings.ReplaceAll(strings.ToLower(company), " ", "")
	domain = strings.TrimSuffix(domain, "ab")
	return fmt.Sprintf("%s@%s.se", user, domain)
}

package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsvanberg/offert-service/internal/config"
	"github.com/hsvanberg/offert-service/internal/excel"
	httphandler "github.com/hsvanberg/offert-service/internal/http"
	"github.com/hsvanberg/offert-service/internal/model"
	"github.com/hsvanberg/offert-service/internal/pdf"
	"github.com/hsvanberg/offert-service/internal/service"
)

type memStore struct {
	quotes  []model.Quote
	profile *model.BusinessProfile
}

func (m *memStore) LoadQuotes(context.Context) ([]model.Quote, error) {
	out := make([]model.Quote, len(m.quotes))
	copy(out, m.quotes)
	return out, nil
}

func (m *memStore) SaveQuotes(_ context.Context, quotes []model.Quote) error {
	m.quotes = make([]model.Quote, len(quotes))
	copy(m.quotes, quotes)
	return nil
}

func (m *memStore) LoadProfile(context.Context) (*model.BusinessProfile, error) {
	return m.profile, nil
}

func (m *memStore) SaveProfile(_ context.Context, profile model.BusinessProfile) error {
	m.profile = &profile
	return nil
}

type silentNotifier struct{}

func (silentNotifier) Notify(string, string, service.Severity) {}

func setupRouter(t *testing.T) (*gin.Engine, *memStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &memStore{}
	cfg := &config.Config{
		Quotes: config.QuoteConfig{DefaultUnit: "st", DefaultTerms: "Betalningsvillkor: 30 dagar", ValidMonths: 1},
	}
	svc := service.NewQuoteService(store, silentNotifier{}, pdf.NewGenerator(), excel.NewGenerator(), cfg)
	handler := httphandler.NewHandler(svc, zerolog.Nop())
	return httphandler.NewRouter(handler, "test", nil), store
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type quotePayload struct {
	model.Quote
	LooksExpired bool `json:"looksExpired"`
	Summary      struct {
		Subtotal      float64 `json:"subtotal"`
		Total         float64 `json:"total"`
		ROTDeduction  float64 `json:"rotDeduction"`
		TotalAfterROT float64 `json:"totalAfterRot"`
	} `json:"summary"`
}

func createQuote(t *testing.T, router *gin.Engine) quotePayload {
	t.Helper()
	rec := doRequest(t, router, http.MethodPost, "/quotes", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var payload quotePayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestCreateAndGetQuote(t *testing.T) {
	router, _ := setupRouter(t)

	created := createQuote(t, router)
	assert.Equal(t, model.QuoteStatusDraft, created.Status)
	require.Len(t, created.Items, 1)

	rec := doRequest(t, router, http.MethodGet, "/quotes/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched quotePayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Number, fetched.Number)
}

func TestSaveDraftComputesSummary(t *testing.T) {
	router, _ := setupRouter(t)
	created := createQuote(t, router)

	rec := doRequest(t, router, http.MethodPost, "/quotes/"+created.ID.String()+"/items", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var withTwo quotePayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &withTwo))
	require.Len(t, withTwo.Items, 2)

	quote := withTwo.Quote
	quote.Items[0].Description = "Målning väggar och tak"
	quote.Items[0].Quantity = 1
	quote.Items[0].Price = 1000
	quote.Items[1].Description = "Byggmaterial"
	quote.Items[1].Quantity = 1
	quote.Items[1].Price = 2000
	quote.TotalDiscount = &model.Discount{Kind: model.DiscountPercentage, Value: 10}

	rec = doRequest(t, router, http.MethodPut, "/quotes/"+created.ID.String(), quote)
	require.Equal(t, http.StatusOK, rec.Code)

	var saved quotePayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.InDelta(t, 3000, saved.Summary.Subtotal, 1e-9)
	assert.InDelta(t, 2700, saved.Summary.Total, 1e-9)
}

func TestRemoveLastItemConflicts(t *testing.T) {
	router, store := setupRouter(t)
	created := createQuote(t, router)
	itemID := created.Items[0].ID.String()

	rec := doRequest(t, router, http.MethodDelete, "/quotes/"+created.ID.String()+"/items/"+itemID, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Len(t, store.quotes[0].Items, 1)

	rec = doRequest(t, router, http.MethodPost, "/quotes/"+created.ID.String()+"/items", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/quotes/"+created.ID.String()+"/items/"+itemID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.quotes[0].Items, 1)
}

func TestLifecycleEndpoints(t *testing.T) {
	router, _ := setupRouter(t)
	created := createQuote(t, router)
	base := "/quotes/" + created.ID.String()

	rec := doRequest(t, router, http.MethodPost, base+"/accept", nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, router, http.MethodPost, base+"/send", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sent quotePayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sent))
	assert.Equal(t, model.QuoteStatusSent, sent.Status)

	rec = doRequest(t, router, http.MethodPost, base+"/accept", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPost, base+"/reject", nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	// no expiry action exists; stale drafts only look expired in the list
	rec = doRequest(t, router, http.MethodPost, base+"/expire", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuotePDFAndExport(t *testing.T) {
	router, _ := setupRouter(t)
	created := createQuote(t, router)

	rec := doRequest(t, router, http.MethodGet, "/quotes/"+created.ID.String()+"/pdf", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	rec = doRequest(t, router, http.MethodPost, "/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestProfileRoundTrip(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	profile := model.BusinessProfile{CompanyName: "Svanberg Bygg AB", Email: "info@svanbergbygg.se"}
	rec = doRequest(t, router, http.MethodPut, "/profile", profile)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched model.BusinessProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, "Svanberg Bygg AB", fetched.CompanyName)
}

func TestSeedDemo(t *testing.T) {
	router, store := setupRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/demo/seed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, store.quotes)
}

func TestUnknownQuote(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/quotes/1b671a64-40d5-491e-99b0-da01ff1f3341", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/quotes/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

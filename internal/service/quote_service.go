package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hsvanberg/offert-service/internal/config"
	"github.com/hsvanberg/offert-service/internal/demo"
	"github.com/hsvanberg/offert-service/internal/model"
)

// Store is the persistence collaborator. The contract is deliberately
// load-all/save-all: SaveQuotes overwrites the whole collection, and upserts
// are built on top by filtering and appending. Two writers would race with
// last-write-wins, which is acceptable for a single-user tool.
type Store interface {
	LoadQuotes(ctx context.Context) ([]model.Quote, error)
	SaveQuotes(ctx context.Context, quotes []model.Quote) error
	LoadProfile(ctx context.Context) (*model.BusinessProfile, error)
	SaveProfile(ctx context.Context, profile model.BusinessProfile) error
}

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier receives fire-and-forget user-facing messages; nothing is read
// back from it.
type Notifier interface {
	Notify(title, description string, severity Severity)
}

type PDFGenerator interface {
	Generate(doc model.QuoteDocument) ([]byte, error)
}

type RegisterGenerator interface {
	Generate(register model.QuoteRegister) ([]byte, error)
}

type QuoteService struct {
	store    Store
	notifier Notifier
	pdf      PDFGenerator
	excel    RegisterGenerator
	cfg      *config.Config
	now      func() time.Time
}

type DocumentResult struct {
	FileName string
	Content  []byte
}

func NewQuoteService(store Store, notifier Notifier, pdf PDFGenerator, excel RegisterGenerator, cfg *config.Config) *QuoteService {
	return &QuoteService{
		store:    store,
		notifier: notifier,
		pdf:      pdf,
		excel:    excel,
		cfg:      cfg,
		now:      time.Now,
	}
}

// CreateQuote builds a fresh draft with the configured defaults and a single
// empty item, and persists it.
func (s *QuoteService) CreateQuote(ctx context.Context) (*model.Quote, error) {
	now := s.now()
	quote := model.Quote{
		ID:         uuid.New(),
		Number:     buildQuoteNumber(now),
		CreatedAt:  now,
		ValidUntil: now.AddDate(0, s.cfg.Quotes.ValidMonths, 0),
		Status:     model.QuoteStatusDraft,
		Items:      []model.QuoteItem{s.defaultItem()},
		Terms:      s.cfg.Quotes.DefaultTerms,
	}

	if err := s.upsertQuote(ctx, quote); err != nil {
		return nil, err
	}
	s.notifier.Notify("Offert skapad", fmt.Sprintf("Utkast %s har skapats.", quote.Number), SeveritySuccess)
	return &quote, nil
}

func (s *QuoteService) ListQuotes(ctx context.Context) ([]model.Quote, error) {
	return s.store.LoadQuotes(ctx)
}

func (s *QuoteService) GetQuote(ctx context.Context, id uuid.UUID) (*model.Quote, error) {
	quotes, err := s.store.LoadQuotes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range quotes {
		if quotes[i].ID == id {
			return &quotes[i], nil
		}
	}
	return nil, ErrNotFound
}

// SaveDraft re-saves an edited draft. The stored status survives the edit
// untouched, and only drafts are editable.
func (s *QuoteService) SaveDraft(ctx context.Context, quote model.Quote) (*model.Quote, error) {
	existing, err := s.GetQuote(ctx, quote.ID)
	if err != nil {
		return nil, err
	}
	if existing.Status != model.QuoteStatusDraft {
		return nil, fmt.Errorf("%w: only drafts can be edited", ErrInvalidTransition)
	}
	if len(quote.Items) == 0 {
		return nil, ErrEmptyItems
	}

	quote.Status = existing.Status
	if err := s.upsertQuote(ctx, quote); err != nil {
		return nil, err
	}
	s.notifier.Notify("Offert sparad", fmt.Sprintf("Offert %s har sparats.", quote.Number), SeveritySuccess)
	return &quote, nil
}

func (s *QuoteService) DeleteQuote(ctx context.Context, id uuid.UUID) error {
	quotes, err := s.store.LoadQuotes(ctx)
	if err != nil {
		return err
	}

	remaining := make([]model.Quote, 0, len(quotes))
	var deleted *model.Quote
	for _, quote := range quotes {
		if quote.ID == id {
			q := quote
			deleted = &q
			continue
		}
		remaining = append(remaining, quote)
	}
	if deleted == nil {
		return ErrNotFound
	}

	if err := s.store.SaveQuotes(ctx, remaining); err != nil {
		return err
	}
	s.notifier.Notify("Offert borttagen", fmt.Sprintf("Offert %s har tagits bort.", deleted.Number), SeverityInfo)
	return nil
}

// DuplicateQuote copies an existing quote into a fresh draft with new ids and
// a new number. Items are copied verbatim apart from their identifiers.
func (s *QuoteService) DuplicateQuote(ctx context.Context, id uuid.UUID) (*model.Quote, error) {
	source, err := s.GetQuote(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	copied := *source
	copied.ID = uuid.New()
	copied.Number = buildQuoteNumber(now)
	copied.CreatedAt = now
	copied.ValidUntil = now.AddDate(0, s.cfg.Quotes.ValidMonths, 0)
	copied.Status = model.QuoteStatusDraft
	copied.Title = strings.TrimSpace(source.Title + " (kopia)")

	copied.Items = make([]model.QuoteItem, len(source.Items))
	for i, item := range source.Items {
		item.ID = uuid.New()
		copied.Items[i] = item
	}

	if err := s.upsertQuote(ctx, copied); err != nil {
		return nil, err
	}
	s.notifier.Notify("Offert kopierad", fmt.Sprintf("Utkast %s har skapats från %s.", copied.Number, source.Number), SeveritySuccess)
	return &copied, nil
}

// AddItem appends a default item row to a quote.
func (s *QuoteService) AddItem(ctx context.Context, quoteID uuid.UUID) (*model.Quote, error) {
	quote, err := s.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	quote.Items = append(quote.Items, s.defaultItem())
	if err := s.upsertQuote(ctx, *quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// RemoveItem deletes an item row. A quote must keep at least one item, so
// removing the sole remaining row is a no-op that reports a failure.
func (s *QuoteService) RemoveItem(ctx context.Context, quoteID, itemID uuid.UUID) (*model.Quote, error) {
	quote, err := s.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	if len(quote.Items) == 1 {
		s.notifier.Notify("Kan inte ta bort rad", "En offert måste innehålla minst en rad.", SeverityError)
		return nil, ErrEmptyItems
	}

	remaining := make([]model.QuoteItem, 0, len(quote.Items))
	found := false
	for _, item := range quote.Items {
		if item.ID == itemID {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !found {
		return nil, ErrNotFound
	}

	quote.Items = remaining
	if err := s.upsertQuote(ctx, *quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// Apply runs a lifecycle action against a quote and persists the new status.
func (s *QuoteService) Apply(ctx context.Context, quoteID uuid.UUID, action Action) (*model.Quote, error) {
	quote, err := s.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	next, err := Transition(quote.Status, action)
	if err != nil {
		return nil, err
	}

	quote.Status = next
	if err := s.upsertQuote(ctx, *quote); err != nil {
		return nil, err
	}

	switch action {
	case ActionSend:
		s.notifier.Notify("Offert skickad", fmt.Sprintf("Offert %s har markerats som skickad.", quote.Number), SeveritySuccess)
	case ActionAccept:
		s.notifier.Notify("Offert accepterad", fmt.Sprintf("Offert %s har accepterats.", quote.Number), SeveritySuccess)
	case ActionReject:
		s.notifier.Notify("Offert avböjd", fmt.Sprintf("Offert %s har avböjts.", quote.Number), SeverityInfo)
	}
	return quote, nil
}

// RenderPDF builds the printable preview for a quote.
func (s *QuoteService) RenderPDF(ctx context.Context, quoteID uuid.UUID) (*DocumentResult, error) {
	quote, err := s.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	profile, err := s.store.LoadProfile(ctx)
	if err != nil {
		return nil, err
	}
	doc := model.QuoteDocument{Quote: *quote}
	if profile != nil {
		doc.Profile = *profile
	}

	content, err := s.pdf.Generate(doc)
	if err != nil {
		return nil, err
	}

	name := sanitizeFileName(quote.Number)
	if name == "" {
		name = quote.ID.String()
	}
	return &DocumentResult{
		FileName: fmt.Sprintf("offert-%s.pdf", name),
		Content:  content,
	}, nil
}

// ExportRegister produces the spreadsheet register over all quotes.
func (s *QuoteService) ExportRegister(ctx context.Context) (*DocumentResult, error) {
	quotes, err := s.store.LoadQuotes(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	content, err := s.excel.Generate(model.QuoteRegister{GeneratedAt: now, Quotes: quotes})
	if err != nil {
		return nil, err
	}

	return &DocumentResult{
		FileName: fmt.Sprintf("offerter-%s.xlsx", now.Format("20060102")),
		Content:  content,
	}, nil
}

func (s *QuoteService) Profile(ctx context.Context) (*model.BusinessProfile, error) {
	profile, err := s.store.LoadProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &model.BusinessProfile{}, nil
	}
	return profile, nil
}

func (s *QuoteService) SaveProfile(ctx context.Context, profile model.BusinessProfile) error {
	if strings.TrimSpace(profile.CompanyName) == "" {
		return fmt.Errorf("%w: company name is required", ErrInvalidInput)
	}
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return err
	}
	s.notifier.Notify("Profil sparad", "Företagsprofilen har uppdaterats.", SeveritySuccess)
	return nil
}

// SeedDemoData replaces the stored collection with generated sample quotes.
func (s *QuoteService) SeedDemoData(ctx context.Context) (int, error) {
	quotes := demo.GenerateQuotes(s.now())
	if err := s.store.SaveQuotes(ctx, quotes); err != nil {
		return 0, err
	}
	s.notifier.Notify("Demodata skapad", fmt.Sprintf("%d exempelofferter har lagts in.", len(quotes)), SeverityInfo)
	return len(quotes), nil
}

// upsertQuote is the save-by-id contract: read everything, drop the old
// record, append the new one, write everything back.
func (s *QuoteService) upsertQuote(ctx context.Context, quote model.Quote) error {
	quotes, err := s.store.LoadQuotes(ctx)
	if err != nil {
		return err
	}

	updated := make([]model.Quote, 0, len(quotes)+1)
	for _, existing := range quotes {
		if existing.ID == quote.ID {
			continue
		}
		updated = append(updated, existing)
	}
	updated = append(updated, quote)

	return s.store.SaveQuotes(ctx, updated)
}

func (s *QuoteService) defaultItem() model.QuoteItem {
	return model.QuoteItem{
		ID:       uuid.New(),
		Quantity: 1,
		Unit:     s.cfg.Quotes.DefaultUnit,
	}
}

func buildQuoteNumber(now time.Time) string {
	return fmt.Sprintf("OFF-%s-%d", now.Format("20060102"), rand.Intn(1000))
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}

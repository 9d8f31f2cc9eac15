package model

import "time"

// QuoteDocument is everything the printable preview needs: the quote itself
// plus the issuing company's identity for the header.
type QuoteDocument struct {
	Quote   Quote
	Profile BusinessProfile
}

// QuoteRegister is the input for the spreadsheet export of all quotes.
type QuoteRegister struct {
	GeneratedAt time.Time
	Quotes      []Quote
}

// Package reading defines the canonical reading request schema, the
// reading-kind resolution rules, and per-kind validation.
package reading

// Type is the wire-level discriminator sent by clients. An empty value is
// accepted and resolves to the natal overview.
type Type string

// Recognized discriminator values.
const (
	TypeNatal          Type = ""
	TypeNatalExplicit  Type = "natal"
	TypeHealth         Type = "health"
	TypeMatching       Type = "matching"
	TypeDailyHoroscope Type = "daily_horoscope"
	TypeNumerology     Type = "numerology"
)

// Kind is the resolved template kind. Exactly one Kind applies to a request;
// kinds are never combined.
type Kind string

const (
	KindMatching   Kind = "matching"
	KindHealth     Kind = "health"
	KindFollowUp   Kind = "follow_up"
	KindAnnual     Kind = "annual_forecast"
	KindDaily      Kind = "daily_horoscope"
	KindNumerology Kind = "numerology"
	KindNatal      Kind = "natal"
)

// BirthDetails describes one person's birth data. Name is optional; the
// remaining fields are required whenever the block participates in a reading.
type BirthDetails struct {
	Name string `json:"name,omitempty"`
	DOB  string `json:"dob"`
	TOB  string `json:"tob"`
	City string `json:"city"`
}

// NumerologyDetails carries the inputs for a numerology reading.
type NumerologyDetails struct {
	Name string `json:"name"`
	DOB  string `json:"dob"`
}

// Request is the inbound reading request. Field names follow the canonical
// schema: birthDetailsPartner1/birthDetailsPartner2 with a readingType
// discriminator; follow-up and annual-forecast kinds are implied by presence
// of previousReading+userQuery and yearInput respectively.
type Request struct {
	ReadingType          Type               `json:"readingType"`
	BirthDetailsPartner1 *BirthDetails      `json:"birthDetailsPartner1,omitempty"`
	BirthDetailsPartner2 *BirthDetails      `json:"birthDetailsPartner2,omitempty"`
	UserQuery            string             `json:"userQuery,omitempty"`
	YearInput            string             `json:"yearInput,omitempty"`
	PreviousReading      string             `json:"previousReading,omitempty"`
	ZodiacSign           string             `json:"zodiacSign,omitempty"`
	NumerologyDetails    *NumerologyDetails `json:"numerologyDetails,omitempty"`
}

// Attribution is one grounding citation returned by the generation API.
type Attribution struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// Reading is the outbound result: generated prose plus ordered grounding
// attributions (possibly empty).
type Reading struct {
	Text    string        `json:"text"`
	Sources []Attribution `json:"sources"`
}

// Resolve maps a request to its template kind using a fixed precedence:
// matching > health > follow-up > annual forecast > daily horoscope >
// numerology > natal default. Explicit matching/health discriminators outrank
// the presence-implied kinds; yearInput outranks daily horoscope and
// numerology.
func (r Request) Resolve() Kind {
	switch {
	case r.ReadingType == TypeMatching:
		return KindMatching
	case r.ReadingType == TypeHealth:
		return KindHealth
	case r.PreviousReading != "" && r.UserQuery != "":
		return KindFollowUp
	case r.YearInput != "":
		return KindAnnual
	case r.ReadingType == TypeDailyHoroscope:
		return KindDaily
	case r.ReadingType == TypeNumerology:
		return KindNumerology
	default:
		return KindNatal
	}
}

// ChartRelevant reports whether the kind's prompt carries a chart-data block.
// Daily horoscope and numerology readings omit chart data entirely.
func (k Kind) ChartRelevant() bool {
	return k != KindDaily && k != KindNumerology
}

package smoketest

import (
	"net/http"

	reading "github.com/veda-labs/jyotish/internal/domain/reading"
)

// Scenario is one request fired at the service with an expectation about the
// response.
type Scenario struct {
	Name       string
	Request    reading.Request
	WantStatus int
	// WantText is true when a 200 must carry non-empty generated text.
	WantText bool
}

func sampleBirthDetails(name string) *reading.BirthDetails {
	return &reading.BirthDetails{
		Name: name,
		DOB:  "1990-04-12",
		TOB:  "06:45",
		City: "Pune",
	}
}

// Scenarios covers every template kind and the main rejection paths.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:       "natal default",
			Request:    reading.Request{BirthDetailsPartner1: sampleBirthDetails("Asha")},
			WantStatus: http.StatusOK,
			WantText:   true,
		},
		{
			Name: "matching",
			Request: reading.Request{
				ReadingType:          reading.TypeMatching,
				BirthDetailsPartner1: sampleBirthDetails("Asha"),
				BirthDetailsPartner2: sampleBirthDetails("Rohan"),
			},
			WantStatus: http.StatusOK,
			WantText:   true,
		},
		{
			Name: "health",
			Request: reading.Request{
				ReadingType:          reading.TypeHealth,
				BirthDetailsPartner1: sampleBirthDetails("Asha"),
			},
			WantStatus: http.StatusOK,
			WantText:   true,
		},
		{
			Name: "follow-up",
			Request: reading.Request{
				PreviousReading:      "Your Moon is in Taurus, which grounds your emotional life.",
				UserQuery:            "What does that mean for my career?",
				BirthDetailsPartner1: sampleBirthDetails("Asha"),
			},
			WantStatus: http.StatusOK,
			WantText:   true,
		},
		{
			Name: "annual forecast",
			Request: reading.Request{
				YearInput:            "2027",
				BirthDetailsPartner1: sampleBirthDetails("Asha"),
			},
			WantStatus: http.StatusOK,
			WantText:   true,
		},
		{
			Name: "daily horoscope",
			Request: reading.Request{
				ReadingType: reading.TypeDailyHoroscope,
				ZodiacSign:  "Leo",
			},
			WantStatus: http.StatusOK,
			WantText:   true,
		},
		{
			Name: "numerology",
			Request: reading.Request{
				ReadingType:       reading.TypeNumerology,
				NumerologyDetails: &reading.NumerologyDetails{Name: "Asha Kulkarni", DOB: "1990-04-12"},
			},
			WantStatus: http.StatusOK,
			WantText:   true,
		},
		{
			Name:       "matching without partner 2 is rejected",
			Request:    reading.Request{ReadingType: reading.TypeMatching, BirthDetailsPartner1: sampleBirthDetails("Asha")},
			WantStatus: http.StatusBadRequest,
		},
		{
			Name:       "daily horoscope without a sign is rejected",
			Request:    reading.Request{ReadingType: reading.TypeDailyHoroscope},
			WantStatus: http.StatusBadRequest,
		},
		{
			Name:       "unknown readingType is rejected",
			Request:    reading.Request{ReadingType: "palmistry"},
			WantStatus: http.StatusBadRequest,
		},
	}
}

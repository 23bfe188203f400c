package reading_test

import (
	"errors"
	"testing"

	reading "github.com/veda-labs/jyotish/internal/domain/reading"
	. "github.com/smartystreets/goconvey/convey"
)

func fullBirthDetails(name string) *reading.BirthDetails {
	return &reading.BirthDetails{
		Name: name,
		DOB:  "1990-04-12",
		TOB:  "06:45",
		City: "Pune",
	}
}

func TestResolve(t *testing.T) {
	Convey("Given the fixed kind precedence", t, func() {
		Convey("matching outranks everything else", func() {
			req := reading.Request{
				ReadingType:     reading.TypeMatching,
				PreviousReading: "prior text",
				UserQuery:       "what about us?",
				YearInput:       "2026",
			}
			So(req.Resolve(), ShouldEqual, reading.KindMatching)
		})

		Convey("health outranks the presence-implied kinds", func() {
			req := reading.Request{
				ReadingType:     reading.TypeHealth,
				PreviousReading: "prior text",
				UserQuery:       "and my sleep?",
			}
			So(req.Resolve(), ShouldEqual, reading.KindHealth)
		})

		Convey("previousReading plus userQuery selects follow-up, not natal", func() {
			req := reading.Request{
				PreviousReading: "Your Moon is in Taurus...",
				UserQuery:       "What does that mean for my career?",
			}
			So(req.Resolve(), ShouldEqual, reading.KindFollowUp)
		})

		Convey("previousReading alone is not a follow-up", func() {
			req := reading.Request{PreviousReading: "prior text"}
			So(req.Resolve(), ShouldEqual, reading.KindNatal)
		})

		Convey("follow-up outranks annual forecast", func() {
			req := reading.Request{
				PreviousReading: "prior text",
				UserQuery:       "more please",
				YearInput:       "2026",
			}
			So(req.Resolve(), ShouldEqual, reading.KindFollowUp)
		})

		Convey("yearInput outranks daily horoscope and numerology", func() {
			So(reading.Request{ReadingType: reading.TypeDailyHoroscope, YearInput: "2026"}.Resolve(),
				ShouldEqual, reading.KindAnnual)
			So(reading.Request{ReadingType: reading.TypeNumerology, YearInput: "2026"}.Resolve(),
				ShouldEqual, reading.KindAnnual)
		})

		Convey("daily horoscope and numerology resolve from the discriminator", func() {
			So(reading.Request{ReadingType: reading.TypeDailyHoroscope}.Resolve(),
				ShouldEqual, reading.KindDaily)
			So(reading.Request{ReadingType: reading.TypeNumerology}.Resolve(),
				ShouldEqual, reading.KindNumerology)
		})

		Convey("everything else falls through to the natal default", func() {
			So(reading.Request{}.Resolve(), ShouldEqual, reading.KindNatal)
			So(reading.Request{ReadingType: reading.TypeNatalExplicit}.Resolve(),
				ShouldEqual, reading.KindNatal)
		})
	})
}

func TestChartRelevant(t *testing.T) {
	Convey("Given the template kinds", t, func() {
		Convey("daily horoscope and numerology omit chart data", func() {
			So(reading.KindDaily.ChartRelevant(), ShouldBeFalse)
			So(reading.KindNumerology.ChartRelevant(), ShouldBeFalse)
		})
		Convey("all chart-based kinds keep it", func() {
			for _, k := range []reading.Kind{
				reading.KindNatal, reading.KindHealth, reading.KindMatching,
				reading.KindFollowUp, reading.KindAnnual,
			} {
				So(k.ChartRelevant(), ShouldBeTrue)
			}
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given per-kind required-field sets", t, func() {
		Convey("an unknown discriminator is rejected", func() {
			err := reading.Request{ReadingType: "palmistry"}.Validate()
			So(errors.Is(err, reading.ErrUnknownReadingType), ShouldBeTrue)
		})

		Convey("a natal request needs a complete partner 1 block", func() {
			err := reading.Request{}.Validate()
			var fe *reading.FieldError
			So(errors.As(err, &fe), ShouldBeTrue)
			So(fe.Kind, ShouldEqual, reading.KindNatal)
			So(fe.Missing, ShouldResemble, []string{
				"birthDetailsPartner1.dob", "birthDetailsPartner1.tob", "birthDetailsPartner1.city",
			})
		})

		Convey("partial birth details name only the absent fields", func() {
			err := reading.Request{
				BirthDetailsPartner1: &reading.BirthDetails{DOB: "1990-04-12", City: "Pune"},
			}.Validate()
			var fe *reading.FieldError
			So(errors.As(err, &fe), ShouldBeTrue)
			So(fe.Missing, ShouldResemble, []string{"birthDetailsPartner1.tob"})
		})

		Convey("name is never required", func() {
			err := reading.Request{
				BirthDetailsPartner1: &reading.BirthDetails{DOB: "1990-04-12", TOB: "06:45", City: "Pune"},
			}.Validate()
			So(err, ShouldBeNil)
		})

		Convey("matching needs both partners complete", func() {
			err := reading.Request{
				ReadingType:          reading.TypeMatching,
				BirthDetailsPartner1: fullBirthDetails("Asha"),
			}.Validate()
			var fe *reading.FieldError
			So(errors.As(err, &fe), ShouldBeTrue)
			So(fe.Kind, ShouldEqual, reading.KindMatching)
			So(fe.Missing, ShouldResemble, []string{
				"birthDetailsPartner2.dob", "birthDetailsPartner2.tob", "birthDetailsPartner2.city",
			})

			ok := reading.Request{
				ReadingType:          reading.TypeMatching,
				BirthDetailsPartner1: fullBirthDetails("Asha"),
				BirthDetailsPartner2: fullBirthDetails("Rohan"),
			}.Validate()
			So(ok, ShouldBeNil)
		})

		Convey("daily horoscope needs only a zodiac sign", func() {
			err := reading.Request{ReadingType: reading.TypeDailyHoroscope}.Validate()
			var fe *reading.FieldError
			So(errors.As(err, &fe), ShouldBeTrue)
			So(fe.Missing, ShouldResemble, []string{"zodiacSign"})

			ok := reading.Request{ReadingType: reading.TypeDailyHoroscope, ZodiacSign: "Leo"}.Validate()
			So(ok, ShouldBeNil)
		})

		Convey("numerology needs name and dob", func() {
			err := reading.Request{ReadingType: reading.TypeNumerology}.Validate()
			var fe *reading.FieldError
			So(errors.As(err, &fe), ShouldBeTrue)
			So(fe.Missing, ShouldResemble, []string{"numerologyDetails.name", "numerologyDetails.dob"})

			err = reading.Request{
				ReadingType:       reading.TypeNumerology,
				NumerologyDetails: &reading.NumerologyDetails{Name: "Asha Kulkarni"},
			}.Validate()
			So(errors.As(err, &fe), ShouldBeTrue)
			So(fe.Missing, ShouldResemble, []string{"numerologyDetails.dob"})

			ok := reading.Request{
				ReadingType:       reading.TypeNumerology,
				NumerologyDetails: &reading.NumerologyDetails{Name: "Asha Kulkarni", DOB: "1990-04-12"},
			}.Validate()
			So(ok, ShouldBeNil)
		})

		Convey("a follow-up validates against partner 1, not partner 2", func() {
			err := reading.Request{
				PreviousReading:      "prior",
				UserQuery:            "more",
				BirthDetailsPartner1: fullBirthDetails(""),
			}.Validate()
			So(err, ShouldBeNil)
		})

		Convey("field errors unwrap to the missing-fields sentinel", func() {
			err := reading.Request{}.Validate()
			So(errors.Is(err, reading.ErrMissingFields), ShouldBeTrue)
		})
	})
}

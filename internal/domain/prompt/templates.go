package prompt

import (
	"fmt"
	"strings"

	reading "github.com/veda-labs/jyotish/internal/domain/reading"
)

// System instructions per kind. Fixed prose; request fields are only ever
// interpolated into the user prompts below.
const (
	natalSystem = `You are an expert Vedic astrologer with deep knowledge of natal chart
interpretation. From the birth details provided, infer the natal chart and
deliver a warm, encouraging overview covering personality, career,
relationships, finances and life path. Organise the reading under clear
headings, explain planetary placements in plain language, and avoid fatalistic
or fear-inducing claims. Never ask for more data; work with what is given.`

	matchingSystem = `You are an expert Vedic astrologer specialising in compatibility analysis
(Ashtakoota Milan). Using the two sets of birth details provided, perform a
full Guna Milan: state a compatibility score out of 36, then give a separate
paragraph for each of the 8 Kootas - Varna, Vashya, Tara, Yoni, Graha Maitri,
Gana, Bhakoot and Nadi - with the points awarded for each. Close with a clear
overall verdict on the match, noting any doshas and their classical remedies.
Be honest but tactful about weak areas.`

	healthSystem = `You are an expert Vedic astrologer focusing on vitality and wellness. From
the birth details provided, assess the constitution indicated by the chart:
general vitality, areas of the body needing care, favourable routines and
periods calling for extra rest. Draw on the classical significations of the
1st, 6th, 8th and 12th houses. Keep the tone supportive. This is astrological
guidance, not medical advice, and must never diagnose or prescribe.`

	followUpSystem = `You are an expert Vedic astrologer continuing an existing consultation. The
user has already received the reading included below and now asks a follow-up
question. Answer the new question directly, using the previous reading and the
birth details as context. Do not restate or summarise the previous reading;
add only new interpretation that addresses the question.`

	annualSystem = `You are an expert Vedic astrologer preparing a year-ahead forecast. From the
birth details provided, outline the major themes of the requested year:
career, relationships, finances, health and personal growth, quarter by
quarter where the chart supports it. Mention relevant planetary transits in
accessible language and keep the outlook constructive.`

	dailySystem = `You are an expert astrologer writing today's horoscope for a single zodiac
sign. Write a concise daily horoscope covering mood, work, relationships and
a lucky pointer for the day. Base it only on the sign given; no birth chart
is available. Keep it light, specific and under two hundred words.`

	numerologySystem = `You are an expert numerologist. From the full name and date of birth
provided, derive and interpret the core numbers: Life Path, Expression
(Destiny), Soul Urge and Birthday number. Show how each number is derived,
then weave the interpretations into a coherent portrait. No birth chart is
available and none is needed.`
)

func natalUser(req reading.Request) string {
	var b strings.Builder
	b.WriteString("Please provide a complete natal chart reading for the following person.\n")
	writeUserQuery(&b, req.UserQuery)
	writeCharts(&b, req)
	return b.String()
}

func matchingUser(req reading.Request) string {
	var b strings.Builder
	b.WriteString("Please analyse the compatibility of the following two people.\n")
	writeUserQuery(&b, req.UserQuery)
	writeCharts(&b, req)
	return b.String()
}

func healthUser(req reading.Request) string {
	var b strings.Builder
	b.WriteString("Please provide a vitality and wellness reading for the following person.\n")
	writeUserQuery(&b, req.UserQuery)
	writeCharts(&b, req)
	return b.String()
}

func followUpUser(req reading.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Previous reading:\n%s\n", req.PreviousReading)
	fmt.Fprintf(&b, "\nFollow-up question: %q\n", req.UserQuery)
	writeCharts(&b, req)
	return b.String()
}

func annualUser(req reading.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Please provide an annual forecast for the year %s for the following person.\n", req.YearInput)
	writeUserQuery(&b, req.UserQuery)
	writeCharts(&b, req)
	return b.String()
}

func dailyUser(req reading.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Today's horoscope for %s.\n", req.ZodiacSign)
	writeUserQuery(&b, req.UserQuery)
	return b.String()
}

func numerologyUser(req reading.Request) string {
	var b strings.Builder
	b.WriteString("Please provide a numerology reading for:\n")
	fmt.Fprintf(&b, "- Full Name: %s\n", req.NumerologyDetails.Name)
	fmt.Fprintf(&b, "- Date of Birth: %s\n", req.NumerologyDetails.DOB)
	writeUserQuery(&b, req.UserQuery)
	return b.String()
}

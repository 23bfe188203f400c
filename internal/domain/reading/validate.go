package reading

import (
	"fmt"
	"strings"
)

// Validate checks the discriminator and the per-kind required-field set.
// A nil return guarantees the request is safe to template; validation
// failures must never reach the upstream generation API.
func (r Request) Validate() error {
	switch r.ReadingType {
	case TypeNatal, TypeNatalExplicit, TypeHealth, TypeMatching, TypeDailyHoroscope, TypeNumerology:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownReadingType, string(r.ReadingType))
	}

	kind := r.Resolve()
	var missing []string

	switch kind {
	case KindMatching:
		missing = append(missing, missingBirthFields("birthDetailsPartner1", r.BirthDetailsPartner1)...)
		missing = append(missing, missingBirthFields("birthDetailsPartner2", r.BirthDetailsPartner2)...)
	case KindDaily:
		if strings.TrimSpace(r.ZodiacSign) == "" {
			missing = append(missing, "zodiacSign")
		}
	case KindNumerology:
		if r.NumerologyDetails == nil {
			missing = append(missing, "numerologyDetails.name", "numerologyDetails.dob")
		} else {
			if strings.TrimSpace(r.NumerologyDetails.Name) == "" {
				missing = append(missing, "numerologyDetails.name")
			}
			if strings.TrimSpace(r.NumerologyDetails.DOB) == "" {
				missing = append(missing, "numerologyDetails.dob")
			}
		}
	default:
		// Natal, health, follow-up and annual forecast all read a single chart.
		missing = append(missing, missingBirthFields("birthDetailsPartner1", r.BirthDetailsPartner1)...)
	}

	if len(missing) > 0 {
		return &FieldError{Kind: kind, Missing: missing}
	}
	return nil
}

// missingBirthFields lists the absent required fields of one birth-details
// block. Name is deliberately not required.
func missingBirthFields(prefix string, d *BirthDetails) []string {
	if d == nil {
		return []string{prefix + ".dob", prefix + ".tob", prefix + ".city"}
	}
	var missing []string
	if strings.TrimSpace(d.DOB) == "" {
		missing = append(missing, prefix+".dob")
	}
	if strings.TrimSpace(d.TOB) == "" {
		missing = append(missing, prefix+".tob")
	}
	if strings.TrimSpace(d.City) == "" {
		missing = append(missing, prefix+".city")
	}
	return missing
}

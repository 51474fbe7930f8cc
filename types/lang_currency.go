package types

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// ValidateLanguageTag checks that s parses as a BCP-47 language tag, as
// required for agency.agency_lang, feed_info.feed_lang, and
// translations.language. The multilingual sentinel "mul" parses as a
// legitimate ISO-639-2 tag and is accepted here like any other value; its
// special cross-table meaning is handled by the dataset validator.
func ValidateLanguageTag(s string) error {
	if _, err := language.Parse(s); err != nil {
		return fmt.Errorf("invalid language tag %q: %w", s, err)
	}
	return nil
}

// ValidateCurrencyCode checks that s is a well-formed ISO 4217 currency
// code, as required for fare_attributes.currency_type.
func ValidateCurrencyCode(s string) error {
	if _, err := currency.ParseISO(s); err != nil {
		return fmt.Errorf("invalid currency code %q: %w", s, err)
	}
	return nil
}

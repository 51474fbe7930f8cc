package schema

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

// PaymentMethod indicates when a legacy fare must be paid.
type PaymentMethod int

const (
	PaymentOnBoard   PaymentMethod = 0
	PaymentBeforeTrip PaymentMethod = 1
)

// FareAttribute is a legacy fare definition (fare_attributes.txt).
type FareAttribute struct {
	FareID           ids.FareId
	Price            float64
	CurrencyType     string
	PaymentMethod    PaymentMethod
	Transfers        *int // nil means unlimited transfers
	AgencyID         ids.AgencyId // empty when absent
	TransferDuration *int
}

// ValidateRow enforces fare_attributes.txt's within-row rules: fare_id
// can never be empty, price must be non-negative, and currency_type must be
// a well-formed ISO 4217 code.
func (f *FareAttribute) ValidateRow() error {
	if f.FareID.IsEmpty() {
		return newMissingValue("fare_id", "can never be empty", f.snapshot())
	}
	if f.Price < 0 {
		return newInvalidValue("price", "must be non-negative", f.snapshot())
	}
	if err := types.ValidateCurrencyCode(f.CurrencyType); err != nil {
		return newInvalidValue("currency_type", err.Error(), f.snapshot())
	}
	if f.TransferDuration != nil && *f.TransferDuration < 0 {
		return newInvalidValue("transfer_duration", "must be non-negative", f.snapshot())
	}
	return nil
}

func (f *FareAttribute) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "fare_attributes", Fields: map[string]string{
		"fare_id":   f.FareID.String(),
		"agency_id": f.AgencyID.String(),
	}}
}

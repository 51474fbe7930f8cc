package schema

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

// FareProduct is a purchasable fare, optionally tied to a fare medium
// (fare_products.txt). Multiple rows may share a FareProductID to offer
// the same product through different media or at different prices.
type FareProduct struct {
	FareProductID   ids.FareProductId
	FareProductName string
	FareMediaID     ids.FareMediaId
	Amount          float64
	Currency        string
}

// ValidateRow enforces fare_products.txt's within-row rules:
// fare_product_id can never be empty and currency must be a well-formed
// ISO 4217 code.
func (f *FareProduct) ValidateRow() error {
	if f.FareProductID.IsEmpty() {
		return newMissingValue("fare_product_id", "can never be empty", f.snapshot())
	}
	if err := types.ValidateCurrencyCode(f.Currency); err != nil {
		return newInvalidValue("currency", err.Error(), f.snapshot())
	}
	return nil
}

func (f *FareProduct) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "fare_products", Fields: map[string]string{
		"fare_product_id": f.FareProductID.String(),
	}}
}

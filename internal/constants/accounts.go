package constants

const (
	MaxCardIDLen     = 64
	MaxHolderNameLen = 100
	MinPINLen        = 4
	MaxPINLen        = 12
	AmountScale      = 2
	// MaxAmountDigits bounds both the coefficient digits and the exponent of
	// an accepted amount.
	MaxAmountDigits = 20
)

// MaxAmount is the largest amount a single request or opening balance may carry.
const MaxAmount = "1000000000.00"

// Demo card provisioned on an empty store.
const (
	SeedCardID     = "4123456789012345"
	SeedPIN        = "1234"
	SeedBalance    = "1000.00"
	SeedHolderName = "Alice Doe"
)

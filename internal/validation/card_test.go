package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCardID(t *testing.T) {
	assert.NoError(t, ValidateCardID("4123456789012345"))
	assert.EqualError(t, ValidateCardID(""), "card id can't be empty")
	assert.EqualError(t, ValidateCardID("41-23"), "card id must contain only digits")
	assert.Error(t, ValidateCardID(42))
}

func TestValidatePIN(t *testing.T) {
	assert.NoError(t, ValidatePIN("1234"))
	assert.EqualError(t, ValidatePIN("12"), "PIN too short (min 4 characters)")
	assert.EqualError(t, ValidatePIN("1234567890123"), "PIN too long (max 12 characters)")
	assert.Error(t, ValidatePIN("12a4"))
}

func TestValidateHolderName(t *testing.T) {
	assert.NoError(t, ValidateHolderName("Alice Doe"))
	assert.Error(t, ValidateHolderName("   "))
}

func TestValidateInitialBalance(t *testing.T) {
	assert.NoError(t, ValidateInitialBalance(""))
	assert.NoError(t, ValidateInitialBalance("1000.00"))
	assert.Error(t, ValidateInitialBalance("-1"))
	assert.Error(t, ValidateInitialBalance("1.001"))
	assert.Error(t, ValidateInitialBalance("ten"))
	assert.Error(t, ValidateInitialBalance("1000000000.01"))
	assert.Error(t, ValidateInitialBalance("1e30"))
}

type sample struct {
	CardID string `validate:"required,max=4"`
	Kind   string `validate:"oneof=withdraw topup"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(sample{CardID: "4111", Kind: "topup"}))

	err := Struct(sample{CardID: "41111", Kind: "topup"})
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "CardID", fe.Field)
	assert.Equal(t, "max", fe.Tag)
	assert.Equal(t, "card id too long (max 4 characters)", fe.Message)

	err = Struct(sample{CardID: "4111", Kind: "refund"})
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Kind", fe.Field)
	assert.Equal(t, "oneof", fe.Tag)
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineItemEffectiveAmount(t *testing.T) {
	item := LineItem{Quantity: dec("2"), UnitRate: dec("100")}
	assert.True(t, item.EffectiveAmount().Equal(dec("200")))

	item.SetAmount(dec("150"))
	assert.True(t, item.EffectiveAmount().Equal(dec("150")), "manual amount wins over quantity*rate")
}

func TestLineItemOverrideClearing(t *testing.T) {
	t.Run("quantity edit clears override", func(t *testing.T) {
		item := LineItem{Quantity: dec("2"), UnitRate: dec("100")}
		item.SetAmount(dec("150"))

		item.SetQuantity(dec("3"))
		assert.Nil(t, item.Override)
		assert.True(t, item.EffectiveAmount().Equal(dec("300")))
	})

	t.Run("rate edit clears override", func(t *testing.T) {
		item := LineItem{Quantity: dec("2"), UnitRate: dec("100")}
		item.SetAmount(dec("150"))

		item.SetUnitRate(dec("50"))
		assert.Nil(t, item.Override)
		assert.True(t, item.EffectiveAmount().Equal(dec("100")))
	})

	t.Run("other field edits keep override", func(t *testing.T) {
		item := LineItem{Quantity: dec("2"), UnitRate: dec("100")}
		item.SetAmount(dec("150"))

		item.Description = "updated"
		item.Code = "X-1"
		assert.NotNil(t, item.Override)
		assert.True(t, item.EffectiveAmount().Equal(dec("150")))
	})
}

func TestSetQuantityClampsNegative(t *testing.T) {
	item := LineItem{UnitRate: dec("100")}
	item.SetQuantity(dec("-4"))
	assert.True(t, item.Quantity.IsZero())
}

func TestSetUnitRateAllowsNegative(t *testing.T) {
	item := LineItem{Quantity: dec("1")}
	item.SetUnitRate(dec("-25"))
	assert.True(t, item.EffectiveAmount().Equal(dec("-25")), "negative rates model credit lines")
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"100", "100"},
		{" 99.95 ", "99.95"},
		{"-10", "-10"},
		{"", "0"},
		{"abc", "0"},
		{"12.34.56", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.True(t, ParseAmount(tt.input).Equal(dec(tt.want)))
		})
	}
}

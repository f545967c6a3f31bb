package internal_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-exchangerate/internal"
)

func TestParseTargets(t *testing.T) {
	single, err := internal.ParseTargets(" eur ")
	require.NoError(t, err)
	assert.True(t, single.IsSingle())
	assert.Equal(t, []internal.CurrencyCode{"EUR"}, single.Codes())
	assert.Equal(t, "EUR", single.Joined())

	many, err := internal.ParseTargets("eur,USD,")
	require.NoError(t, err)
	assert.False(t, many.IsSingle())
	assert.Equal(t, "EUR,USD", many.Joined())

	oneOfMany, err := internal.ParseTargets("EUR,")
	require.NoError(t, err)
	assert.False(t, oneOfMany.IsSingle())

	_, err = internal.ParseTargets(",")
	require.Error(t, err)
	_, err = internal.ParseTargets("")
	require.Error(t, err)
}

func TestTargets_AsMany(t *testing.T) {
	m := internal.Single("EUR").AsMany()
	assert.False(t, m.IsSingle())
	assert.Equal(t, []internal.CurrencyCode{"EUR"}, m.Codes())
}

func TestCurrencyCode_JSON(t *testing.T) {
	var c internal.CurrencyCode
	require.NoError(t, json.Unmarshal([]byte(`"gbp"`), &c))
	assert.Equal(t, internal.CurrencyCode("GBP"), c)
	assert.Equal(t, "GBPEUR", c.Pair("EUR"))

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `"GBP"`, string(out))
}

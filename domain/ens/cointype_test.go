package ens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoinType(t *testing.T) {
	cases := []struct {
		code string
		want uint64
	}{
		{"eth", 60},
		{"btc", 0},
		{"sol", 501},
		{"doge", 3},
		{"xrp", 144},
		{"ltc", 2},
		{"ada", 1815},
		{"base", 8453},
		{"arbitrum", 42161},
		{"polygon", 137},
		{"avalanche", 43114},
		{"bsc", 56},
		{"optimism", 10},
		{"zora", 7777777},
		{"linea", 59144},
		{"scroll", 534352},
		{"mantle", 5000},
		{"celo", 42220},
		{"gnosis", 100},
		{"fantom", 250},
		{"", 60},
		{"BTC", 60},
		{"unknownchain", 60},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CoinType(c.code), c.code)
	}
}

func TestIsMultiChainCode(t *testing.T) {
	assert.True(t, IsMultiChainCode("btc"))
	assert.True(t, IsMultiChainCode("fantom"))
	assert.False(t, IsMultiChainCode("eth"))
	assert.False(t, IsMultiChainCode("x"))
	assert.Len(t, ChainCodes(), 20)
	assert.IsNonDecreasing(t, ChainCodes())
}

func TestTextRecordKey(t *testing.T) {
	assert.Equal(t, "com.twitter", TextRecordKey("x"))
	assert.Equal(t, "com.github", TextRecordKey("github"))
	assert.Equal(t, "avatar", TextRecordKey("avatar"))
	assert.Equal(t, "whatever", TextRecordKey("whatever"))
	assert.True(t, IsTextRecordAlias("email"))
	assert.False(t, IsTextRecordAlias("btc"))
}

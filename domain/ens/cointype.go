package ens

import "sort"

// NativeCoinType is the ENS coin type of ether. CoinType falls back to it.
const NativeCoinType uint64 = 60

// chain codes
const (
	CodeETH       = "eth"
	CodeBTC       = "btc"
	CodeSOL       = "sol"
	CodeDOGE      = "doge"
	CodeXRP       = "xrp"
	CodeLTC       = "ltc"
	CodeADA       = "ada"
	CodeBase      = "base"
	CodeArbitrum  = "arbitrum"
	CodePolygon   = "polygon"
	CodeAvalanche = "avalanche"
	CodeBSC       = "bsc"
	CodeOptimism  = "optimism"
	CodeZora      = "zora"
	CodeLinea     = "linea"
	CodeScroll    = "scroll"
	CodeMantle    = "mantle"
	CodeCelo      = "celo"
	CodeGnosis    = "gnosis"
	CodeFantom    = "fantom"
)

var coinTypes = map[string]uint64{
	CodeETH:       NativeCoinType,
	CodeBTC:       0,
	CodeSOL:       501,
	CodeDOGE:      3,
	CodeXRP:       144,
	CodeLTC:       2,
	CodeADA:       1815,
	CodeBase:      8453,
	CodeArbitrum:  42161,
	CodePolygon:   137,
	CodeAvalanche: 43114,
	CodeBSC:       56,
	CodeOptimism:  10,
	CodeZora:      7777777,
	CodeLinea:     59144,
	CodeScroll:    534352,
	CodeMantle:    5000,
	CodeCelo:      42220,
	CodeGnosis:    100,
	CodeFantom:    250,
}

// CoinType returns the ENS coin type of a chain code, or NativeCoinType for unknown codes.
func CoinType(code string) uint64 {
	if ct, ok := coinTypes[code]; ok {
		return ct
	}
	return NativeCoinType
}

// IsMultiChainCode reports whether code names a non-native chain in the coin type table.
func IsMultiChainCode(code string) bool {
	if code == NativeMarker {
		return false
	}
	_, ok := coinTypes[code]
	return ok
}

// ChainCodes returns every chain code in the coin type table, native included, sorted.
func ChainCodes() []string {
	codes := make([]string, 0, len(coinTypes))
	for code := range coinTypes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

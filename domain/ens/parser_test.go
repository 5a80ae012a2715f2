package ens

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/ensapi/domain"
)

type parserSuite struct {
	suite.Suite
}

func TestParserSuite(t *testing.T) {
	suite.Run(t, new(parserSuite))
}

func (s *parserSuite) TestParseChainSyntax() {
	tests := []struct {
		desc   string
		input  string
		expect ParsedQuery
	}{
		{
			desc:   "btc",
			input:  "onshow.eth:btc",
			expect: ParsedQuery{BaseDomain: "onshow.eth", Target: "btc"},
		},
		{
			desc:   "every chain code",
			input:  "vitalik.eth:arbitrum",
			expect: ParsedQuery{BaseDomain: "vitalik.eth", Target: "arbitrum"},
		},
		{
			desc:   "text record alias",
			input:  "vitalik.eth:x",
			expect: ParsedQuery{BaseDomain: "vitalik.eth", Target: "x"},
		},
		{
			desc:   "subdomain",
			input:  "pay.vitalik.eth:sol",
			expect: ParsedQuery{BaseDomain: "pay.vitalik.eth", Target: "sol"},
		},
		{
			desc:   "mixed case and spaces",
			input:  "  Vitalik.ETH:BTC ",
			expect: ParsedQuery{BaseDomain: "vitalik.eth", Target: "btc"},
		},
		{
			desc:   "unknown chain is kept",
			input:  "vitalik.eth:foo",
			expect: ParsedQuery{BaseDomain: "vitalik.eth", Target: "foo"},
		},
		{
			desc:   "splits at the last separator",
			input:  "a:b.eth:doge",
			expect: ParsedQuery{BaseDomain: "a:b.eth", Target: "doge"},
		},
	}
	for _, t := range tests {
		res, err := Parse(t.input)
		if s.NoError(err, t.desc) {
			s.Equal(t.expect, res, t.desc)
		}
	}
}

func (s *parserSuite) TestParseChainSyntaxInvalid() {
	inputs := []string{
		"vitalik:btc",
		"vitalik.com:btc",
		".eth:btc",
		"vitalik.eth:",
		"",
		"   ",
	}
	for _, input := range inputs {
		_, err := Parse(input)
		s.ErrorIs(err, domain.ErrInvalidFormat, input)
	}
}

func (s *parserSuite) TestParseLegacySyntax() {
	tests := []struct {
		desc   string
		input  string
		expect ParsedQuery
	}{
		{
			desc:   "chain suffix is rewritten to .eth",
			input:  "onshow.btc",
			expect: ParsedQuery{BaseDomain: "onshow.eth", Target: "btc"},
		},
		{
			desc:   "text record suffix is rewritten to .eth",
			input:  "vitalik.github",
			expect: ParsedQuery{BaseDomain: "vitalik.eth", Target: "github"},
		},
		{
			desc:   "passthrough text record",
			input:  "vitalik.avatar",
			expect: ParsedQuery{BaseDomain: "vitalik.eth", Target: "avatar"},
		},
		{
			desc:   "native",
			input:  "vitalik.eth",
			expect: ParsedQuery{BaseDomain: "vitalik.eth", Target: NativeMarker},
		},
		{
			desc:   "unknown suffix falls back to native",
			input:  "name.unknownchain",
			expect: ParsedQuery{BaseDomain: "name.unknownchain", Target: NativeMarker},
		},
		{
			desc:   "typo of a chain code falls back to native",
			input:  "name.btc2",
			expect: ParsedQuery{BaseDomain: "name.btc2", Target: NativeMarker},
		},
		{
			desc:   "subdomain keeps its labels",
			input:  "pay.vitalik.sol",
			expect: ParsedQuery{BaseDomain: "pay.vitalik.eth", Target: "sol"},
		},
		{
			desc:   "no dot",
			input:  "btc",
			expect: ParsedQuery{BaseDomain: "btc", Target: NativeMarker},
		},
	}
	for _, t := range tests {
		res, err := Parse(t.input)
		if s.NoError(err, t.desc) {
			s.Equal(t.expect, res, t.desc)
		}
	}
}

func (s *parserSuite) TestLegacyMatchesChainSyntax() {
	for _, code := range ChainCodes() {
		if code == NativeMarker {
			continue
		}
		legacy, err := Parse("onshow." + code)
		s.NoError(err, code)
		modern, err := Parse("onshow.eth:" + code)
		s.NoError(err, code)
		s.Equal(modern, legacy, code)
	}
}

func (s *parserSuite) TestClassify() {
	tests := []struct {
		target string
		expect Record
	}{
		{"x", Record{Kind: RecordText, Key: "com.twitter"}},
		{"telegram", Record{Kind: RecordText, Key: "org.telegram"}},
		{"url", Record{Kind: RecordText, Key: "url"}},
		{"eth", Record{Kind: RecordNative, Key: NativeMarker}},
		{"btc", Record{Kind: RecordMultiChain, Key: "btc"}},
		{"unknownchain", Record{Kind: RecordMultiChain, Key: "unknownchain"}},
	}
	for _, t := range tests {
		s.Equal(t.expect, Classify(t.target), t.target)
	}
}

func (s *parserSuite) TestReverseKey() {
	s.Equal(
		"d8da6bf26964af9d7eed9e03e53415d37aa96045.addr.reverse",
		ReverseKey("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"),
	)
	s.Equal("abc.addr.reverse", ReverseKey("ABC"))
}

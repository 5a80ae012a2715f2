package ens

import (
	"strings"

	"github.com/x-xyz/ensapi/domain"
	"golang.org/x/xerrors"
)

const (
	// NativeSuffix is the top level domain served by the ENS registry
	NativeSuffix = ".eth"
	// NativeMarker is the target of a query for the native ether address
	NativeMarker = "eth"
	// ChainSeparator splits `name.eth:chain` queries
	ChainSeparator = ":"

	reverseSuffix = ".addr.reverse"
)

// ParsedQuery is a domain query normalised to a canonical .eth domain and the record it targets
type ParsedQuery struct {
	BaseDomain string `json:"baseDomain"`
	Target     string `json:"target"`
}

// Parse accepts either `name.eth:chain` or the legacy `name.chain` syntax.
//
// Legacy queries whose last label is neither a text record alias nor a chain code are looked
// up as they are, against the native address.
func Parse(input string) (ParsedQuery, error) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return ParsedQuery{}, xerrors.Errorf("empty domain: %w", domain.ErrInvalidFormat)
	}

	if idx := strings.LastIndex(in, ChainSeparator); idx >= 0 {
		base, target := in[:idx], in[idx+len(ChainSeparator):]
		if len(base) <= len(NativeSuffix) || !strings.HasSuffix(base, NativeSuffix) {
			return ParsedQuery{}, xerrors.Errorf("%q must end with %s: %w", base, NativeSuffix, domain.ErrInvalidFormat)
		}
		if target == "" {
			return ParsedQuery{}, xerrors.Errorf("missing chain after %q: %w", base, domain.ErrInvalidFormat)
		}
		return ParsedQuery{BaseDomain: base, Target: target}, nil
	}

	dot := strings.LastIndex(in, ".")
	if dot <= 0 {
		return ParsedQuery{BaseDomain: in, Target: NativeMarker}, nil
	}

	tld := in[dot+1:]
	if IsTextRecordAlias(tld) || IsMultiChainCode(tld) {
		return ParsedQuery{BaseDomain: in[:dot] + NativeSuffix, Target: tld}, nil
	}

	return ParsedQuery{BaseDomain: in, Target: NativeMarker}, nil
}

type RecordKind int

const (
	RecordNative RecordKind = iota
	RecordText
	RecordMultiChain
)

func (k RecordKind) String() string {
	switch k {
	case RecordText:
		return "text"
	case RecordMultiChain:
		return "multichain"
	default:
		return "native"
	}
}

// Record is the classified target of a query. Key is the text record key for RecordText,
// the chain code for RecordMultiChain and NativeMarker for RecordNative.
type Record struct {
	Kind RecordKind
	Key  string
}

// Classify decides which resolver record a query target refers to.
func Classify(target string) Record {
	switch {
	case IsTextRecordAlias(target):
		return Record{Kind: RecordText, Key: TextRecordKey(target)}
	case target == NativeMarker:
		return Record{Kind: RecordNative, Key: NativeMarker}
	default:
		return Record{Kind: RecordMultiChain, Key: target}
	}
}

// ReverseKey returns the reverse registrar name of address, e.g. `<hex>.addr.reverse`.
func ReverseKey(address string) string {
	return strings.TrimPrefix(strings.ToLower(address), "0x") + reverseSuffix
}

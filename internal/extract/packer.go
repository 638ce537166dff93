// Package extract recovers media URLs from the obfuscated inline scripts
// that third-party embed pages ship. The scripts use the common P.A.C.K.E.R.
// obfuscation: identifiers are tokenized into base-N numerals and a small
// unpacker plus a pipe-delimited dictionary reverses them at runtime.
package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// PackerSignature is the literal invocation every packed script starts with.
const PackerSignature = "eval(function(p,a,c,k,e,d)"

var (
	// ErrNotPacked is returned when a script does not carry the packer signature.
	ErrNotPacked = errors.New("script is not packer-obfuscated")
	// ErrMalformedPacker is returned when the packer call shape cannot be parsed.
	ErrMalformedPacker = errors.New("malformed packer invocation")
)

// packedArgsRe captures the four arguments of the packer call:
// }('payload',radix,count,'dict'.split('|')...
var packedArgsRe = regexp.MustCompile(`\}\('(.+)',(\d+),(\d+),'([^']*)'\.split\('\|'\)`)

// PackedParams are the captured arguments of a packer invocation. They are
// immutable once parsed from the script tag.
type PackedParams struct {
	Payload     string
	Radix       int
	SymbolCount int
	Dictionary  []string
}

// HasPackerSignature reports whether the script text contains the packer
// invocation.
func HasPackerSignature(script string) bool {
	return strings.Contains(script, PackerSignature)
}

// ParsePacked extracts the packer arguments from an obfuscated script.
func ParsePacked(script string) (*PackedParams, error) {
	if !HasPackerSignature(script) {
		return nil, ErrNotPacked
	}
	m := packedArgsRe.FindStringSubmatch(script)
	if m == nil {
		return nil, ErrMalformedPacker
	}
	radix, err := strconv.Atoi(m[2])
	if err != nil || radix < 2 || radix > 36 {
		return nil, ErrMalformedPacker
	}
	count, err := strconv.Atoi(m[3])
	if err != nil {
		return nil, ErrMalformedPacker
	}
	return &PackedParams{
		Payload:     m[1],
		Radix:       radix,
		SymbolCount: count,
		Dictionary:  strings.Split(m[4], "|"),
	}, nil
}

// Unpack reverses the packer substitution: for each index, counting down from
// symbolCount-1, every whole-word occurrence of the index rendered in
// base-radix is replaced with the dictionary word at that index. Empty or
// missing dictionary entries are skipped.
//
// Whole-word matching keeps legitimate numeric substrings intact: with radix
// 10 the token "1" never matches inside "12".
func Unpack(payload string, radix, symbolCount int, dict []string) string {
	result := payload
	for i := symbolCount - 1; i >= 0; i-- {
		if i >= len(dict) || dict[i] == "" {
			continue
		}
		re := regexp.MustCompile(`\b` + encodeBase(i, radix) + `\b`)
		// Dictionary words are literal text: $ is a legal JS identifier
		// character and must not be expanded as a group reference.
		result = re.ReplaceAllLiteralString(result, dict[i])
	}
	return result
}

// UnpackParams runs Unpack on parsed packer parameters.
func (p *PackedParams) Unpack() string {
	return Unpack(p.Payload, p.Radix, p.SymbolCount, p.Dictionary)
}

// encodeBase renders n in the given base the way JavaScript's
// Number.toString(base) does, with lowercase digits.
func encodeBase(n, base int) string {
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	if base < 2 || base > len(digits) {
		panic(fmt.Sprintf("extract: unsupported base %d", base))
	}
	if n < base {
		return string(digits[n])
	}
	return encodeBase(n/base, base) + string(digits[n%base])
}

package extract

import (
	"strings"
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// packedFixture is a real packer invocation built from the jwplayer snippet
// below. Every word of the payload is tokenized, exactly as the packer
// emits it.
const packedFixture = `eval(function(p,a,c,k,e,d){e=function(c){return(c<a?'':e(parseInt(c/a)))+((c=c%a)>35?String.fromCharCode(c+29):c.toString(36))};if(!''.replace(/^/,String)){while(c--){d[e(c)]=k[c]||e(c)}k=[function(e){return d[e]}];e=function(){return'\\w+'};c=1};while(c--){if(k[c]){p=p.replace(new RegExp('\\b'+e(c)+'\\b','g'),k[c])}}return p}('9 0=1("a");0.2({3:"4://5.6.b/c/7.8"})',36,13,'player|jwplayer|setup|file|https|cdn|example|master|m3u8|var|vplayer|com|hls'.split('|'),0,{}))`

const unpackedFixture = `var player=jwplayer("vplayer");player.setup({file:"https://cdn.example.com/hls/master.m3u8"})`

func TestParsePacked(t *testing.T) {
	params, err := ParsePacked(packedFixture)
	require.NoError(t, err)
	assert.Equal(t, 36, params.Radix)
	assert.Equal(t, 13, params.SymbolCount)
	assert.Len(t, params.Dictionary, 13)
	assert.Equal(t, "player", params.Dictionary[0])
	assert.Equal(t, "hls", params.Dictionary[12])
}

func TestParsePackedErrors(t *testing.T) {
	t.Run("no signature", func(t *testing.T) {
		_, err := ParsePacked(`var x = 1;`)
		assert.ErrorIs(t, err, ErrNotPacked)
	})

	t.Run("signature without call shape", func(t *testing.T) {
		_, err := ParsePacked(`eval(function(p,a,c,k,e,d){return p}("broken"))`)
		assert.ErrorIs(t, err, ErrMalformedPacker)
	})
}

func TestUnpackRoundTrip(t *testing.T) {
	params, err := ParsePacked(packedFixture)
	require.NoError(t, err)
	assert.Equal(t, unpackedFixture, params.Unpack())
}

func TestUnpackMatchesRealUnpacker(t *testing.T) {
	// Run the packed script's own unpacker in a JS runtime, with the outer
	// eval stripped so the expression returns the source instead of
	// executing it, and compare against our pure-Go substitution.
	inner := strings.TrimSuffix(strings.TrimPrefix(packedFixture, "eval("), ")")
	vm := goja.New()
	v, err := vm.RunString("(" + inner + ")")
	require.NoError(t, err)

	params, err := ParsePacked(packedFixture)
	require.NoError(t, err)
	assert.Equal(t, v.String(), params.Unpack())
}

func TestUnpackDeterministic(t *testing.T) {
	params, err := ParsePacked(packedFixture)
	require.NoError(t, err)
	first := params.Unpack()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, params.Unpack())
	}
}

func TestUnpackWordBoundary(t *testing.T) {
	// Index 1 must substitute only the standalone "1" token, never the "1"
	// inside "12".
	got := Unpack("12 is not 1", 10, 2, []string{"zero", "one"})
	assert.Equal(t, "12 is not one", got)
}

func TestUnpackDollarSignWords(t *testing.T) {
	// jQuery-style identifiers contain $; they must be substituted verbatim,
	// not treated as regexp group references.
	got := Unpack("0 1", 10, 2, []string{"a$b", "$1"})
	assert.Equal(t, "a$b $1", got)
}

func TestUnpackSkipsMissingEntries(t *testing.T) {
	t.Run("empty dictionary word", func(t *testing.T) {
		got := Unpack("0 1 2", 10, 3, []string{"a", "", "c"})
		assert.Equal(t, "a 1 c", got)
	})

	t.Run("symbol count beyond dictionary", func(t *testing.T) {
		got := Unpack("0 1 7", 10, 8, []string{"a", "b"})
		assert.Equal(t, "a b 7", got)
	})
}

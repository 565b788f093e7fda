package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupEncoding(t *testing.T) {
	enc, err := LookupEncoding("UTF8")
	require.NoError(t, err)
	assert.Equal(t, "utf-8", enc.String())

	enc, err = LookupEncoding("latin1")
	require.NoError(t, err)
	assert.Equal(t, "windows-1252", enc.String())

	_, err = LookupEncoding("no-such-encoding")
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestEncoding_UTF8Strict(t *testing.T) {
	enc, err := LookupEncoding(DefaultEncoding)
	require.NoError(t, err)

	text, err := enc.Decode([]byte("caf\xc3\xa9 \\\"x\\\""))
	require.NoError(t, err)
	assert.Equal(t, `café \"x\"`, text)

	_, err = enc.Decode([]byte{'o', 'k', 0xff, 0xfe})
	assert.ErrorIs(t, err, ErrUndecodable)
}

func TestEncoding_SingleByteRoundTrip(t *testing.T) {
	enc, err := LookupEncoding("iso-8859-1")
	require.NoError(t, err)

	raw := []byte{'c', 'a', 'f', 0xe9, ' ', '\\', '"', 'x', '\\', '"'}
	text, err := enc.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, `café \"x\"`, text)

	fixed, n := UnescapeQuotes(text)
	assert.Equal(t, 2, n)

	out, err := enc.Encode(fixed)
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xe9, ' ', '"', 'x', '"'}, out)
}

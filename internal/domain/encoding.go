package domain

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

var (
	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrUndecodable     = errors.New("content is not decodable")
)

const DefaultEncoding = "utf-8"

// Encoding is a named text encoding used to decode file content and to
// encode it back.
type Encoding struct {
	name string
	enc  encoding.Encoding
}

// LookupEncoding resolves a WHATWG encoding label such as "utf-8" or "latin1".
func LookupEncoding(label string) (*Encoding, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	return &Encoding{name: name, enc: enc}, nil
}

func (e *Encoding) String() string {
	return e.name
}

func (e *Encoding) isUTF8() bool {
	return e.name == "utf-8"
}

// Decode converts raw bytes to text. UTF-8 input is validated strictly:
// any invalid sequence is an error instead of a replacement character.
func (e *Encoding) Decode(data []byte) (string, error) {
	if e.isUTF8() {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w as %s", ErrUndecodable, e.name)
		}
		return string(data), nil
	}
	text, err := e.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w as %s: %v", ErrUndecodable, e.name, err)
	}
	return string(text), nil
}

// Encode converts text back to bytes in this encoding.
func (e *Encoding) Encode(text string) ([]byte, error) {
	if e.isUTF8() {
		return []byte(text), nil
	}
	data, err := e.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("failed to encode as %s: %w", e.name, err)
	}
	return data, nil
}

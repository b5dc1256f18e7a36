package blooms

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrInvalidData is returned when serialized filter data cannot be decoded.
var ErrInvalidData = errors.New("blooms: invalid serialized data")

// ToBase64 encodes the filter's cells as a standard (padded) base64 string.
// The codec is lossless for arbitrary cell contents, all-zero and all-ones
// buffers included.
func (f *Filter) ToBase64() string {
	return base64.StdEncoding.EncodeToString(f.cells)
}

// FromBase64 reconstructs a filter from its base64 representation. Decoding
// the encoding of a filter yields identical length and cell contents.
func FromBase64(s string) (*Filter, error) {
	cells, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return From(cells), nil
}

// MarshalText implements encoding.TextMarshaler using the base64 form.
func (f *Filter) MarshalText() ([]byte, error) {
	return []byte(f.ToBase64()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The filter's cells are
// replaced by the decoded contents; its encoding transform is retained.
func (f *Filter) UnmarshalText(text []byte) error {
	cells, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	f.cells = From(cells).cells
	return nil
}

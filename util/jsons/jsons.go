// Package jsons routes JSON through goccy/go-json.
package jsons

import (
	"io"

	"github.com/donkeywon/randrange/util/conv"
	"github.com/goccy/go-json"
)

type Encoder interface {
	Encode(v any) error
	SetIndent(prefix, indent string)
}

var Unmarshal = json.Unmarshal

func UnmarshalString(s string, v any) error {
	return Unmarshal(conv.String2Bytes(s), v)
}

func NewEncoder(w io.Writer) Encoder {
	return json.NewEncoder(w)
}

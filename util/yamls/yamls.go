// Package yamls routes YAML through goccy/go-yaml.
package yamls

import (
	"io"

	"github.com/donkeywon/randrange/util/conv"
	"github.com/goccy/go-yaml"
)

type Encoder interface {
	Encode(v any) error
}

var Unmarshal = yaml.Unmarshal

func UnmarshalString(s string, v any) error {
	return Unmarshal(conv.String2Bytes(s), v)
}

func NewEncoder(w io.Writer) Encoder {
	return yaml.NewEncoder(w)
}

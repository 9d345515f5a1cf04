package serialization

import (
	"encoding/gob"
	"io"
)

type gobCodec struct {
	dec *gob.Decoder
	enc *gob.Encoder
}

func (g *gobCodec) Decode(v any) error {
	return g.dec.Decode(v)
}

func (g *gobCodec) Encode(v any) error {
	return g.enc.Encode(v)
}

func GobDecoder(r io.Reader) Decoder {
	return &gobCodec{dec: gob.NewDecoder(r)}
}

func GobEncoder(w io.Writer) Encoder {
	return &gobCodec{enc: gob.NewEncoder(w)}
}

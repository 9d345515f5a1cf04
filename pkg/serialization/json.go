package serialization

import (
	"encoding/json"
	"io"
)

type jsonCodec struct {
	dec *json.Decoder
	enc *json.Encoder
}

func (j *jsonCodec) Decode(v any) error {
	return j.dec.Decode(v)
}

func (j *jsonCodec) Encode(v any) error {
	return j.enc.Encode(v)
}

func JSONDecoder(r io.Reader) Decoder {
	return &jsonCodec{dec: json.NewDecoder(r)}
}

func JSONEncoder(w io.Writer) Encoder {
	return &jsonCodec{enc: json.NewEncoder(w)}
}

package serialization

const (
	// JSONType selects JSON encoding.
	JSONType = "json"

	// GobType selects gob encoding.
	GobType = "gob"
)

// Decoder is the interface for deserialization.
type Decoder interface {
	Decode(v any) error
}

// Encoder is the interface for serialization.
type Encoder interface {
	Encode(v any) error
}

package result

import "github.com/vmihailenco/msgpack/v5"

// Codec turns result values into the bytes stored in an entry's saved state and back.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// MsgpackCodec is the default Codec.
type MsgpackCodec struct{}

// Encode marshals v with msgpack.
func (MsgpackCodec) Encode(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Decode unmarshals data into v, which must be a pointer.
func (MsgpackCodec) Decode(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

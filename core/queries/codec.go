package queries

import "encoding/json"

// BytesEncoder lets response data pick its own wire form instead of the
// JSON fallback. token.Amount uses it for its fixed-size encoding.
type BytesEncoder interface {
	EncodeToBytes() ([]byte, error)
}

// BytesDecoder restores a value written by its BytesEncoder counterpart.
type BytesDecoder interface {
	DecodeFromBytes(data []byte) error
}

// encodeResponseData turns a handler's typed response data into bytes.
// A BytesEncoder encodes itself, []byte passes through untouched and
// everything else marshals as JSON. Nil data becomes an empty payload.
func encodeResponseData(data any) ([]byte, error) {
	switch v := data.(type) {
	case nil:
		return []byte{}, nil
	case BytesEncoder:
		return v.EncodeToBytes()
	case []byte:
		return v, nil
	default:
		return json.Marshal(v)
	}
}

// decodeResponseData mirrors encodeResponseData on the client side.
func decodeResponseData[T any](data []byte) (T, error) {
	var value T

	switch target := any(&value).(type) {
	case BytesDecoder:
		err := target.DecodeFromBytes(data)
		return value, err
	case *[]byte:
		buf := make([]byte, len(data))
		copy(buf, data)
		*target = buf

		return value, nil
	}

	err := json.Unmarshal(data, &value)

	return value, err
}

package we

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
)

const JSONEncoding = "application/json"

// Data is the encoded payload of a recorded action.
type Data struct {
	Encoding string `json:"encoding"`
	Data     []byte `json:"data"`
}

type InvalidEncodingError struct {
	Expected string
	Actual   string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("expected encoding %s, got %s", e.Expected, e.Actual)
}

func InvalidEncoding(expected string, actual string) error {
	return &InvalidEncodingError{Expected: expected, Actual: actual}
}

// EncodeAction encodes action as JSON data for a history.
func EncodeAction(action Action) (Data, error) {
	encoded, err := json.Marshal(action)
	if err != nil {
		return Data{}, err
	}

	return Data{Encoding: JSONEncoding, Data: encoded}, nil
}

// DecodeInto decodes the payload into target, which must be a pointer. Only
// JSON payloads can be decoded.
func (d Data) DecodeInto(ctx context.Context, target any) error {
	if d.Encoding != JSONEncoding {
		return InvalidEncoding(JSONEncoding, d.Encoding)
	}

	return json.UnmarshalContext(ctx, d.Data, target)
}

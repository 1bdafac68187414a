package coagent

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/zeebo/blake3"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Fingerprint is a BLAKE3 digest of a state value's canonical form. Values
// with the same JSON content share a fingerprint regardless of Go type
// identity or map ordering.
type Fingerprint [32]byte

func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// FingerprintOf canonicalizes v through its JSON form into a protobuf Value,
// encodes it deterministically (map keys sorted) and hashes the bytes.
//
// Numbers keep their JSON literal text, so integers beyond float64 precision
// stay distinct.
func FingerprintOf(v any) (Fingerprint, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("fingerprint encode: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return Fingerprint{}, fmt.Errorf("fingerprint decode: %w", err)
	}

	value, err := canonical(generic)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("fingerprint canonicalize: %w", err)
	}

	encoded, err := proto.MarshalOptions{Deterministic: true}.Marshal(value)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("fingerprint marshal: %w", err)
	}

	return Fingerprint(blake3.Sum256(encoded)), nil
}

// List tags. Every list carries a leading tag so a number can never collide
// with an array holding the same strings.
const (
	tagNumber = "n"
	tagArray  = "a"
)

// canonical maps a decoded JSON tree onto structpb. Numbers become
// ["n", literal] and arrays become ["a", elems...].
func canonical(v any) (*structpb.Value, error) {
	switch v := v.(type) {
	case nil:
		return structpb.NewNullValue(), nil
	case bool:
		return structpb.NewBoolValue(v), nil
	case string:
		return structpb.NewStringValue(v), nil
	case json.Number:
		return structpb.NewListValue(&structpb.ListValue{Values: []*structpb.Value{
			structpb.NewStringValue(tagNumber),
			structpb.NewStringValue(v.String()),
		}}), nil
	case []any:
		values := make([]*structpb.Value, 0, len(v)+1)
		values = append(values, structpb.NewStringValue(tagArray))
		for _, elem := range v {
			c, err := canonical(elem)
			if err != nil {
				return nil, err
			}
			values = append(values, c)
		}
		return structpb.NewListValue(&structpb.ListValue{Values: values}), nil
	case map[string]any:
		fields := make(map[string]*structpb.Value, len(v))
		for k, elem := range v {
			c, err := canonical(elem)
			if err != nil {
				return nil, err
			}
			fields[k] = c
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: fields}), nil
	default:
		return nil, fmt.Errorf("unexpected JSON value %T", v)
	}
}

// SameContent reports whether a and b have equal canonical content. Values
// that cannot be fingerprinted are never equal to anything.
func SameContent(a, b any) bool {
	fa, err := FingerprintOf(a)
	if err != nil {
		return false
	}
	fb, err := FingerprintOf(b)
	if err != nil {
		return false
	}
	return fa == fb
}

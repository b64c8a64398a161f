package biometric

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// encMode uses Core Deterministic Encoding so the same descriptor always
// produces identical bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("biometric: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("biometric: CBOR decoder initialization failed: " + err.Error())
	}
}

// Encode serializes a descriptor for storage. A nil descriptor encodes to nil.
func Encode(d Descriptor) ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	b, err := encMode.Marshal([]float64(d))
	if err != nil {
		return nil, fmt.Errorf("encode descriptor: %w", err)
	}
	return b, nil
}

// Decode parses bytes produced by Encode. Empty input decodes to nil.
func Decode(b []byte) (Descriptor, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var v []float64
	if err := decMode.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("decode descriptor: %w", err)
	}
	return Descriptor(v), nil
}

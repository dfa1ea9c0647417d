package choice

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// State is the persistable part of a mode.
//
// Binary layout (protobuf wire format, so readers can skip unknown fields):
//
//	1: checked    packed sint64
//	2: activated  bool
type State struct {
	Checked []int64 `toml:"checked"`
	// Activated records whether a modal session was open. Restore does not
	// rely on it: a session is open iff Checked is non-empty.
	Activated bool `toml:"activated,omitempty"`
}

const (
	stateFieldChecked   protowire.Number = 1
	stateFieldActivated protowire.Number = 2
)

// IsEmpty reports whether nothing is checked.
func (s State) IsEmpty() bool {
	return len(s.Checked) == 0
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s State) MarshalBinary() ([]byte, error) {
	var b []byte
	if len(s.Checked) > 0 {
		var packed []byte
		for _, id := range s.Checked {
			packed = protowire.AppendVarint(packed, protowire.EncodeZigZag(id))
		}
		b = protowire.AppendTag(b, stateFieldChecked, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}
	if s.Activated {
		b = protowire.AppendTag(b, stateFieldActivated, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(true))
	}
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *State) UnmarshalBinary(b []byte) error {
	var out State
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("decode state tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == stateFieldChecked && typ == protowire.BytesType:
			packed, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return fmt.Errorf("decode checked ids: %w", protowire.ParseError(n))
			}
			b = b[n:]
			for len(packed) > 0 {
				v, m := protowire.ConsumeVarint(packed)
				if m < 0 {
					return fmt.Errorf("decode checked id: %w", protowire.ParseError(m))
				}
				packed = packed[m:]
				out.Checked = append(out.Checked, protowire.DecodeZigZag(v))
			}
		case num == stateFieldChecked && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return fmt.Errorf("decode checked id: %w", protowire.ParseError(n))
			}
			b = b[n:]
			out.Checked = append(out.Checked, protowire.DecodeZigZag(v))
		case num == stateFieldActivated && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return fmt.Errorf("decode activated: %w", protowire.ParseError(n))
			}
			b = b[n:]
			out.Activated = protowire.DecodeBool(v)
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("skip field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	*s = out
	return nil
}

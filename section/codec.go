package section

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// SlotSize is the fixed width of one record slot in bytes. Each slot holds a
// 2-byte big-endian length prefix followed by the record name and zero
// padding. Slot boundaries therefore never depend on record content.
const SlotSize = 128

// maxNameLen is the longest encodable record name.
const maxNameLen = SlotSize - 2

// ErrMalformedRegion reports a region whose bytes cannot be interpreted as a
// whole number of well-formed slots. It is distinct from an empty region,
// which is a valid encoding of zero records.
var ErrMalformedRegion = errors.New("malformed section region")

// encodeSlot appends one record slot for name to dst and returns the
// extended slice. The name must have been validated by the caller.
func encodeSlot(dst []byte, name string) []byte {
	slot := make([]byte, SlotSize)
	binary.BigEndian.PutUint16(slot[:2], uint16(len(name)))
	copy(slot[2:], name)
	return append(dst, slot...)
}

// DecodeRegion interprets region as a packed sequence of record slots and
// returns the decoded names in slot order. The whole region is validated
// before any name is returned: a length that is not a multiple of SlotSize,
// a zero-length slot, or a length prefix exceeding the slot capacity all
// yield ErrMalformedRegion. A nil or empty region decodes to no records.
func DecodeRegion(region []byte) ([]string, error) {
	if len(region) == 0 {
		return nil, nil
	}
	if len(region)%SlotSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of the %d-byte slot size", ErrMalformedRegion, len(region), SlotSize)
	}

	names := make([]string, 0, len(region)/SlotSize)
	for off := 0; off < len(region); off += SlotSize {
		slot := region[off : off+SlotSize]
		n := int(binary.BigEndian.Uint16(slot[:2]))
		if n == 0 {
			return nil, fmt.Errorf("%w: slot %d has an empty record", ErrMalformedRegion, off/SlotSize)
		}
		if n > maxNameLen {
			return nil, fmt.Errorf("%w: slot %d declares %d bytes, capacity is %d", ErrMalformedRegion, off/SlotSize, n, maxNameLen)
		}
		names = append(names, string(slot[2:2+n]))
	}
	return names, nil
}

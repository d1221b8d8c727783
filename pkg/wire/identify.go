package wire

import (
	"bytes"
	"fmt"
)

// RejectionKind classifies why a received packet was not recognized.
type RejectionKind uint8

const (
	// RejectTooShort means the packet could not hold the magic header
	// and type byte.
	RejectTooShort RejectionKind = iota

	// RejectBadMagic means the first ten bytes were not the protocol's
	// magic header.
	RejectBadMagic

	// RejectUnknownPort means no known packet kind is received on the
	// port the packet arrived on.
	RejectUnknownPort

	// RejectUnknownType means the type byte has no meaning on the port
	// the packet arrived on.
	RejectUnknownType
)

// String returns the rejection kind name.
func (k RejectionKind) String() string {
	switch k {
	case RejectTooShort:
		return "TOO_SHORT"
	case RejectBadMagic:
		return "BAD_MAGIC"
	case RejectUnknownPort:
		return "UNKNOWN_PORT"
	case RejectUnknownType:
		return "UNKNOWN_TYPE"
	default:
		return "UNKNOWN"
	}
}

// RejectionError is the classified outcome returned by Identify for a
// packet that was not recognized. It is an expected, non-fatal result:
// callers should record it and keep processing the stream.
type RejectionError struct {
	// Kind classifies the rejection.
	Kind RejectionKind

	// Port is the UDP port the packet was received on.
	Port int

	// Length is the received packet length in bytes.
	Length int

	// TypeValue is the byte found at PacketTypeOffset. Only meaningful
	// for RejectUnknownType.
	TypeValue byte
}

// Error describes the rejection.
func (e *RejectionError) Error() string {
	switch e.Kind {
	case RejectTooShort:
		return fmt.Sprintf("packet too short to be a protocol packet: need at least %d bytes, got %d",
			MinPacketLength, e.Length)
	case RejectBadMagic:
		return "packet does not begin with the protocol's ten-byte magic header"
	case RejectUnknownPort:
		return fmt.Sprintf("no known protocol packets are received on port %d", e.Port)
	case RejectUnknownType:
		return fmt.Sprintf("no known protocol packet with type 0x%02x is received on port %d",
			e.TypeValue, e.Port)
	default:
		return fmt.Sprintf("packet rejected (%s)", e.Kind)
	}
}

// Identify checks whether data begins with the magic header followed
// by a type byte that is known on the given receiving port, and
// returns the recognized packet kind.
//
// The checks run in order: length, magic header, port, type byte. On
// failure the returned error is a *RejectionError classifying which
// check failed. Identify never mutates data and never blocks.
func Identify(data []byte, port int) (PacketType, error) {
	if len(data) < MinPacketLength {
		return 0, &RejectionError{Kind: RejectTooShort, Port: port, Length: len(data)}
	}

	if !bytes.Equal(data[:len(magicHeader)], magicHeader[:]) {
		return 0, &RejectionError{Kind: RejectBadMagic, Port: port, Length: len(data)}
	}

	portMap, ok := typesByPort[port]
	if !ok {
		return 0, &RejectionError{Kind: RejectUnknownPort, Port: port, Length: len(data)}
	}

	value := data[PacketTypeOffset]
	t, ok := portMap[value]
	if !ok {
		return 0, &RejectionError{Kind: RejectUnknownType, Port: port, Length: len(data), TypeValue: value}
	}

	return t, nil
}

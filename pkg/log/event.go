package log

import (
	"time"

	"github.com/djlink-protocol/djlink-go/pkg/wire"
)

// maxCapturedBytes bounds how much raw packet data a single event
// carries; longer packets are truncated and flagged.
const maxCapturedBytes = 256

// Event represents one observation at the protocol boundary.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// CaptureID identifies the capture session (UUID).
	CaptureID string `cbor:"2,keyasint"`

	// Direction indicates packet flow.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Port is the UDP port involved, when the event concerns traffic.
	Port int `cbor:"5,keyasint,omitempty"`

	// RemoteAddr is the peer address (IP:port), when known.
	RemoteAddr string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Packet    *PacketEvent    `cbor:"7,keyasint,omitempty"` // Classified traffic
	Rejection *RejectionEvent `cbor:"8,keyasint,omitempty"` // Discarded traffic
	Lock      *LockEvent      `cbor:"9,keyasint,omitempty"` // Named-lock lifecycle
}

// Direction indicates the direction of packet flow.
type Direction uint8

const (
	// DirectionIn indicates a received packet.
	DirectionIn Direction = 0
	// DirectionOut indicates a transmitted packet.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryPacket indicates a packet that classified to a known kind.
	CategoryPacket Category = 0
	// CategoryRejection indicates a packet the classifier discarded.
	CategoryRejection Category = 1
	// CategoryLock indicates a named-lock lifecycle transition.
	CategoryLock Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryPacket:
		return "PACKET"
	case CategoryRejection:
		return "REJECTION"
	case CategoryLock:
		return "LOCK"
	default:
		return "UNKNOWN"
	}
}

// PacketEvent captures a packet that classified to a known kind.
type PacketEvent struct {
	// Type is the classified packet kind.
	Type wire.PacketType `cbor:"1,keyasint"`

	// Name is the kind's display name, so capture files stay readable
	// without the kind table at hand.
	Name string `cbor:"2,keyasint"`

	// TypeValue is the raw type byte from the wire.
	TypeValue byte `cbor:"3,keyasint"`

	// Size is the full packet size in bytes.
	Size int `cbor:"4,keyasint"`

	// Data is the raw packet bytes (may be truncated for large packets).
	Data []byte `cbor:"5,keyasint,omitempty"`

	// Truncated indicates if Data was truncated.
	Truncated bool `cbor:"6,keyasint,omitempty"`
}

// RejectionEvent captures a packet the classifier discarded.
type RejectionEvent struct {
	// Kind classifies why the packet was rejected.
	Kind wire.RejectionKind `cbor:"1,keyasint"`

	// Reason is the kind's display name.
	Reason string `cbor:"2,keyasint"`

	// Length is the received packet length in bytes.
	Length int `cbor:"3,keyasint"`

	// TypeValue is the raw type byte, for unknown-type rejections.
	TypeValue byte `cbor:"4,keyasint,omitempty"`
}

// LockEvent captures a named-lock lifecycle transition.
type LockEvent struct {
	// Name is the resource name the lock guards.
	Name string `cbor:"1,keyasint"`

	// Action is the lifecycle transition.
	Action LockAction `cbor:"2,keyasint"`
}

// LockAction indicates a named-lock lifecycle transition.
type LockAction uint8

const (
	// LockActionAllocate indicates a lock handle was allocated.
	LockActionAllocate LockAction = 0
	// LockActionRelease indicates a lock handle was released.
	LockActionRelease LockAction = 1
)

// String returns the lock action name.
func (a LockAction) String() string {
	switch a {
	case LockActionAllocate:
		return "ALLOCATE"
	case LockActionRelease:
		return "RELEASE"
	default:
		return "UNKNOWN"
	}
}

// NewPacketEvent builds a capture event for a packet that classified to
// the given kind. data is the full packet; it is copied and truncated
// to a bounded size.
func NewPacketEvent(captureID string, direction Direction, t wire.PacketType, data []byte) Event {
	captured := data
	truncated := false
	if len(captured) > maxCapturedBytes {
		captured = captured[:maxCapturedBytes]
		truncated = true
	}
	buf := make([]byte, len(captured))
	copy(buf, captured)

	return Event{
		Timestamp: time.Now(),
		CaptureID: captureID,
		Direction: direction,
		Category:  CategoryPacket,
		Port:      t.Port(),
		Packet: &PacketEvent{
			Type:      t,
			Name:      t.String(),
			TypeValue: t.Value(),
			Size:      len(data),
			Data:      buf,
			Truncated: truncated,
		},
	}
}

// NewRejectionEvent builds a capture event for a packet the classifier
// discarded.
func NewRejectionEvent(captureID string, rej *wire.RejectionError) Event {
	return Event{
		Timestamp: time.Now(),
		CaptureID: captureID,
		Direction: DirectionIn,
		Category:  CategoryRejection,
		Port:      rej.Port,
		Rejection: &RejectionEvent{
			Kind:      rej.Kind,
			Reason:    rej.Kind.String(),
			Length:    rej.Length,
			TypeValue: rej.TypeValue,
		},
	}
}

// NewLockEvent builds a capture event for a named-lock transition.
func NewLockEvent(captureID, name string, action LockAction) Event {
	return Event{
		Timestamp: time.Now(),
		CaptureID: captureID,
		Category:  CategoryLock,
		Lock: &LockEvent{
			Name:   name,
			Action: action,
		},
	}
}

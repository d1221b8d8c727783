package wire

// magicHeader is the sequence of ten bytes which begins every UDP
// packet sent in the protocol.
var magicHeader = [10]byte{0x51, 0x73, 0x70, 0x74, 0x31, 0x57, 0x6d, 0x4a, 0x4f, 0x4c}

// MagicHeader returns the ten-byte sequence which begins all protocol
// packets. Each call returns a fresh copy, so callers may not corrupt
// the canonical value.
func MagicHeader() []byte {
	h := make([]byte, len(magicHeader))
	copy(h, magicHeader[:])
	return h
}

const (
	// PacketTypeOffset is the offset of the byte which identifies the
	// content of a packet.
	PacketTypeOffset = 0x0a

	// DeviceNameOffset is the offset of the device-name field in
	// packets built by BuildPacket.
	DeviceNameOffset = 0x0b

	// DeviceNameLength is the fixed size of the device-name field.
	DeviceNameLength = 0x14

	// HeaderLength is the size of the full standard prefix written by
	// BuildPacket: magic header, type byte, and device name.
	HeaderLength = DeviceNameOffset + DeviceNameLength

	// MinPacketLength is the shortest packet Identify will consider:
	// the magic header plus the type byte.
	MinPacketLength = PacketTypeOffset + 1
)

// UDP ports on which protocol traffic is received.
const (
	// AnnouncementPort carries device presence announcements and the
	// device-number negotiation exchange.
	AnnouncementPort = 50000

	// BeatPort carries beat announcements and sync/on-air commands.
	BeatPort = 50001

	// UpdatePort carries device status updates and media queries.
	UpdatePort = 50002
)

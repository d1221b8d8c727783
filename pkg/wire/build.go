package wire

import "fmt"

// BuildPacket assembles a standard-format outbound packet: the magic
// header, the kind's type byte, the twenty-byte device-name field, and
// the payload verbatim.
//
// deviceName must be exactly DeviceNameLength bytes; the builder does
// no padding or truncation, so any other length is a caller error.
// payload may be empty. The returned slice is freshly allocated on
// every call.
func BuildPacket(t PacketType, deviceName, payload []byte) ([]byte, error) {
	if len(deviceName) != DeviceNameLength {
		return nil, fmt.Errorf("device name must be exactly %d bytes, got %d",
			DeviceNameLength, len(deviceName))
	}

	packet := make([]byte, HeaderLength+len(payload))
	copy(packet, magicHeader[:])
	packet[PacketTypeOffset] = t.Value()
	copy(packet[DeviceNameOffset:], deviceName)
	copy(packet[HeaderLength:], payload)
	return packet, nil
}

// Package number provides the multi-byte integer, address, pitch, and
// timing conversions used to decode protocol packet fields.
//
// Multi-byte fields in the protocol are big-endian unless a field is
// explicitly documented as reversed; the two byte orders are exposed as
// separately named functions so callers never infer endianness from
// context.
package number

import (
	"math"
	"net/netip"
)

// BytesToNumber reconstructs a value that is represented by more than
// one byte in a packet, in big-endian order. This is the byte order
// used by the vast majority of protocol fields.
func BytesToNumber(buffer []byte, start, length int) uint64 {
	var result uint64
	for i := start; i < start+length; i++ {
		result = (result << 8) + uint64(buffer[i])
	}
	return result
}

// BytesToNumberLittleEndian reconstructs a value that is represented by
// more than one byte in a packet, in little-endian order, for the very
// few protocol fields that are sent in this quirky way.
func BytesToNumberLittleEndian(buffer []byte, start, length int) uint64 {
	var result uint64
	for i := start + length - 1; i >= start; i-- {
		result = (result << 8) + uint64(buffer[i])
	}
	return result
}

// NumberToBytes writes a value into a packet field, breaking it into
// its component bytes in big-endian order. If the value is too large to
// fit in length bytes, only the low-order bytes are written and the
// excess is silently discarded.
func NumberToBytes(value uint64, buffer []byte, start, length int) {
	for i := start + length - 1; i >= start; i-- {
		buffer[i] = byte(value)
		value >>= 8
	}
}

// Unsign widens a byte to its unsigned integer value in the range
// 0-255. Provided for parity with protocol documentation that works in
// signed bytes; Go bytes are already unsigned.
func Unsign(b byte) int {
	return int(b)
}

// AddressToNumber converts the bytes of an IPv4 address into the
// corresponding integer, to make bit-masking operations on addresses
// easy. The bytes are concatenated in big-endian order.
func AddressToNumber(addr netip.Addr) uint32 {
	b := addr.Unmap().As4()
	var result uint32
	for _, octet := range b {
		result = (result << 8) + uint32(octet)
	}
	return result
}

// SameNetwork reports whether two IPv4 addresses share the same network
// bits under the given prefix length. A prefix length of 0 matches any
// pair of addresses; a prefix length of 32 requires exact equality.
func SameNetwork(prefixLength int, addr1, addr2 netip.Addr) bool {
	// A shift of 32 or more yields 0 in Go, so prefix 0 produces an
	// empty mask without a special case.
	mask := uint32(0xffffffff) << (32 - uint(prefixLength))
	return AddressToNumber(addr1)&mask == AddressToNumber(addr2)&mask
}

// PitchToPercentage converts a pitch value reported by a device to the
// corresponding percentage (-100% to +100%, where normal, unadjusted
// pitch is 0%). The constants are the scaled values devices actually
// use; downstream rounding depends on them, so they are not re-derived
// from the multiplier formula.
func PitchToPercentage(pitch int64) float64 {
	return float64(pitch-1048567) / 10485.76
}

// PitchToMultiplier converts a pitch value reported by a device to the
// corresponding playback multiplier (0.0 to 2.0, where normal,
// unadjusted pitch is 1.0).
func PitchToMultiplier(pitch int64) float64 {
	return float64(pitch) / 1048576.0
}

// HalfFrameToTime returns the number of milliseconds into a track at
// which the given half-frame begins. Tracks play at 75 frames per
// second, so there are 150 half-frames per second.
func HalfFrameToTime(halfFrame int64) int64 {
	return halfFrame * 100 / 15
}

// TimeToHalfFrame returns the half-frame that contains the given track
// position in milliseconds.
func TimeToHalfFrame(milliseconds int64) int {
	return int(milliseconds * 15 / 100)
}

// TimeToHalfFrameRounded returns the nearest half-frame to the given
// track position in milliseconds.
func TimeToHalfFrameRounded(milliseconds int64) int {
	return int(math.Round(float64(milliseconds) * 0.15))
}

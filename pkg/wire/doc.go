// Package wire defines the UDP packet format shared by the DJ Link
// device family: the ten-byte magic header, the closed table of known
// packet kinds, header validation, and outbound packet assembly.
//
// # Packet Layout
//
// Every packet begins with the same prefix:
//
//	offset 0x00..0x09  magic header (10 bytes)
//	offset 0x0a        type byte
//
// Packets built by this library additionally carry the standard
// device-name field:
//
//	offset 0x0b..0x1e  device name (exactly 20 bytes)
//	offset 0x1f..      kind-specific payload
//
// # Port-Qualified Types
//
// The type byte is meaningful only together with the UDP port the
// packet arrived on. Several byte values are deliberately reused across
// ports with different meanings (0x0a is both a device hello on the
// announcement port and a CDJ status on the update port), so the
// (port, type byte) pair is the only valid dispatch key. Identify
// resolves that pair through an immutable index built at package init.
//
// All functions in this package are pure and safe for unsynchronized
// concurrent use; none perform I/O. Rejections from Identify are
// classified values the caller is expected to log and discard, not
// conditions that abort stream processing.
package wire

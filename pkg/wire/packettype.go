package wire

import "fmt"

// PacketType identifies one of the known kinds of protocol packet.
//
// The byte value a PacketType puts on the wire is not unique on its
// own: the protocol reuses byte values across receiving ports, so a
// PacketType is always resolved from the (port, value) pair.
type PacketType int

const (
	// PacketTypeFaderStartCommand is sent by the mixer to tell a set of
	// players to start and/or stop playing.
	PacketTypeFaderStartCommand PacketType = iota

	// PacketTypeChannelsOnAir is sent by the mixer to tell the players
	// which channels are on and off the air.
	PacketTypeChannelsOnAir

	// PacketTypeMediaQuery asks a player for information about the
	// media mounted in a slot.
	PacketTypeMediaQuery

	// PacketTypeMediaResponse is the response sent when a media query
	// is received.
	PacketTypeMediaResponse

	// PacketTypeDeviceHello is sent in an initial series of three, at
	// 300ms intervals, when a device first joins the network.
	PacketTypeDeviceHello

	// PacketTypeDeviceNumberStage1 is sent in a series of three at
	// 300ms intervals when a device starts establishing its device
	// number.
	PacketTypeDeviceNumberStage1

	// PacketTypeDeviceNumberWillAssign is sent by a mixer directly to a
	// device plugged into a channel-specific jack, telling it the
	// sender will assign its number.
	PacketTypeDeviceNumberWillAssign

	// PacketTypeDeviceNumberStage2 is the second series of three
	// packets sent while a device claims its number.
	PacketTypeDeviceNumberStage2

	// PacketTypeDeviceNumberAssign is sent by a mixer once a player has
	// acknowledged it is ready to receive the number belonging to the
	// jack it is connected to.
	PacketTypeDeviceNumberAssign

	// PacketTypeDeviceNumberStage3 is the third and final claim series.
	// A device configured to use a specific number sends only one.
	PacketTypeDeviceNumberStage3

	// PacketTypeDeviceNumberAssignmentFinished is sent by a mixer once
	// it sees that assignment concluded successfully.
	PacketTypeDeviceNumberAssignmentFinished

	// PacketTypeDeviceKeepAlive reports that a device is still present
	// on the network.
	PacketTypeDeviceKeepAlive

	// PacketTypeDeviceNumberInUse defends a device number that is
	// already in use.
	PacketTypeDeviceNumberInUse

	// PacketTypeCDJStatus is a status update from a player, carrying
	// status flags, pitch, tempo, and beat-within-bar details. The same
	// byte value is reused on the announcement port during startup.
	PacketTypeCDJStatus

	// PacketTypeLoadTrackCommand tells a player to load a particular
	// track.
	PacketTypeLoadTrackCommand

	// PacketTypeLoadTrackAck indicates that the specified track is
	// being loaded.
	PacketTypeLoadTrackAck

	// PacketTypeMasterHandoffRequest is sent by an incoming tempo
	// master asking the current one to relinquish that role.
	PacketTypeMasterHandoffRequest

	// PacketTypeMasterHandoffResponse is the current tempo master's
	// answer to a handoff request.
	PacketTypeMasterHandoffResponse

	// PacketTypeBeat announces that a beat has been played, with
	// synchronization details.
	PacketTypeBeat

	// PacketTypeMixerStatus is a status update from the mixer, with
	// status flags, pitch, tempo, and beat-within-bar information.
	PacketTypeMixerStatus

	// PacketTypeSyncControl tells a player to turn sync on or off, or
	// that it should become the tempo master.
	PacketTypeSyncControl
)

// packetTypeInfo is one row of the canonical packet-kind table.
type packetTypeInfo struct {
	value byte   // type byte carried at PacketTypeOffset
	name  string // display name
	port  int    // UDP port on which the kind is received
}

// packetTypeInfos is the canonical table of known packet kinds. The
// (port, value) pair is unique across the table; the value alone is
// not. Reproduced verbatim from the protocol analysis — do not reorder
// without updating the PacketType constants above.
var packetTypeInfos = [...]packetTypeInfo{
	PacketTypeFaderStartCommand:              {0x02, "Fader Start", BeatPort},
	PacketTypeChannelsOnAir:                  {0x03, "Channels On Air", BeatPort},
	PacketTypeMediaQuery:                     {0x05, "Media Query", UpdatePort},
	PacketTypeMediaResponse:                  {0x06, "Media Response", UpdatePort},
	PacketTypeDeviceHello:                    {0x0a, "Device Hello", AnnouncementPort},
	PacketTypeDeviceNumberStage1:             {0x00, "Device Number Claim Stage 1", AnnouncementPort},
	PacketTypeDeviceNumberWillAssign:         {0x01, "Device Number Will Be Assigned", AnnouncementPort},
	PacketTypeDeviceNumberStage2:             {0x02, "Device Number Claim Stage 2", AnnouncementPort},
	PacketTypeDeviceNumberAssign:             {0x03, "Device Number Assignment", AnnouncementPort},
	PacketTypeDeviceNumberStage3:             {0x04, "Device Number Claim Stage 3", AnnouncementPort},
	PacketTypeDeviceNumberAssignmentFinished: {0x05, "Device Number Assignment Finished", AnnouncementPort},
	PacketTypeDeviceKeepAlive:                {0x06, "Device Keep-Alive", AnnouncementPort},
	PacketTypeDeviceNumberInUse:              {0x08, "Device Number In Use", AnnouncementPort},
	PacketTypeCDJStatus:                      {0x0a, "CDJ Status", UpdatePort},
	PacketTypeLoadTrackCommand:               {0x19, "Load Track Command", UpdatePort},
	PacketTypeLoadTrackAck:                   {0x1a, "Load Track Acknowledgment", UpdatePort},
	PacketTypeMasterHandoffRequest:           {0x26, "Master Handoff Request", BeatPort},
	PacketTypeMasterHandoffResponse:          {0x27, "Master Handoff Response", BeatPort},
	PacketTypeBeat:                           {0x28, "Beat", BeatPort},
	PacketTypeMixerStatus:                    {0x29, "Mixer Status", UpdatePort},
	PacketTypeSyncControl:                    {0x2a, "Sync Control", BeatPort},
}

// Value returns the byte which identifies this kind on the wire.
func (t PacketType) Value() byte {
	return packetTypeInfos[t].value
}

// Port returns the UDP port on which this kind of packet is received.
func (t PacketType) Port() int {
	return packetTypeInfos[t].port
}

// String returns the display name of the packet kind.
func (t PacketType) String() string {
	if t < 0 || int(t) >= len(packetTypeInfos) {
		return fmt.Sprintf("PacketType(%d)", int(t))
	}
	return packetTypeInfos[t].name
}

// PacketTypes returns every known packet kind, in table order.
func PacketTypes() []PacketType {
	types := make([]PacketType, len(packetTypeInfos))
	for i := range types {
		types[i] = PacketType(i)
	}
	return types
}

// buildTypeIndex compiles the two-level port → (type byte → kind)
// index from a kind table, rejecting any duplicate (port, value) pair.
func buildTypeIndex(infos []packetTypeInfo) (map[int]map[byte]PacketType, error) {
	index := make(map[int]map[byte]PacketType)
	for i, info := range infos {
		portMap := index[info.port]
		if portMap == nil {
			portMap = make(map[byte]PacketType)
			index[info.port] = portMap
		}
		if existing, ok := portMap[info.value]; ok {
			return nil, fmt.Errorf("duplicate packet type 0x%02x on port %d: %s and %s",
				info.value, info.port, existing, PacketType(i))
		}
		portMap[info.value] = PacketType(i)
	}
	return index, nil
}

// typesByPort is the compiled lookup index. It is built once at init
// and never mutated, so unsynchronized concurrent reads are safe. A
// duplicate (port, value) pair in the table is a defect in this
// package, so it aborts startup.
var typesByPort = func() map[int]map[byte]PacketType {
	index, err := buildTypeIndex(packetTypeInfos[:])
	if err != nil {
		panic(err)
	}
	return index
}()

// LookupType resolves a packet kind from the port a packet arrived on
// and its type byte. The second result reports whether the pair is
// known.
func LookupType(port int, value byte) (PacketType, bool) {
	t, ok := typesByPort[port][value]
	return t, ok
}

package log

import (
	"bytes"
	"testing"

	"github.com/google/uuid"

	"github.com/djlink-protocol/djlink-go/pkg/wire"
)

func TestNewPacketEvent(t *testing.T) {
	captureID := uuid.NewString()
	name := bytes.Repeat([]byte{'x'}, wire.DeviceNameLength)
	packet, err := wire.BuildPacket(wire.PacketTypeBeat, name, []byte{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}

	event := NewPacketEvent(captureID, DirectionIn, wire.PacketTypeBeat, packet)

	if event.Category != CategoryPacket {
		t.Errorf("Category = %v, want %v", event.Category, CategoryPacket)
	}
	if event.Port != wire.BeatPort {
		t.Errorf("Port = %d, want %d", event.Port, wire.BeatPort)
	}
	if event.Packet == nil {
		t.Fatal("Packet payload missing")
	}
	if event.Packet.Type != wire.PacketTypeBeat {
		t.Errorf("Type = %v, want %v", event.Packet.Type, wire.PacketTypeBeat)
	}
	if event.Packet.Name != "Beat" {
		t.Errorf("Name = %q, want %q", event.Packet.Name, "Beat")
	}
	if event.Packet.TypeValue != 0x28 {
		t.Errorf("TypeValue = 0x%02x, want 0x28", event.Packet.TypeValue)
	}
	if event.Packet.Size != len(packet) {
		t.Errorf("Size = %d, want %d", event.Packet.Size, len(packet))
	}
	if event.Packet.Truncated {
		t.Error("short packet should not be truncated")
	}
	if !bytes.Equal(event.Packet.Data, packet) {
		t.Error("Data does not match the packet")
	}

	// The event must hold its own copy of the bytes.
	packet[0] = 0x00
	if event.Packet.Data[0] == 0x00 {
		t.Error("event shares the caller's packet buffer")
	}
}

func TestNewPacketEventTruncates(t *testing.T) {
	name := bytes.Repeat([]byte{'x'}, wire.DeviceNameLength)
	packet, err := wire.BuildPacket(wire.PacketTypeCDJStatus, name, make([]byte, 1024))
	if err != nil {
		t.Fatal(err)
	}

	event := NewPacketEvent(uuid.NewString(), DirectionIn, wire.PacketTypeCDJStatus, packet)

	if !event.Packet.Truncated {
		t.Error("large packet should be truncated")
	}
	if len(event.Packet.Data) != maxCapturedBytes {
		t.Errorf("captured %d bytes, want %d", len(event.Packet.Data), maxCapturedBytes)
	}
	if event.Packet.Size != len(packet) {
		t.Errorf("Size = %d, want full %d", event.Packet.Size, len(packet))
	}
}

func TestNewRejectionEvent(t *testing.T) {
	_, err := wire.Identify(bytes.Repeat([]byte{0xff}, 32), wire.BeatPort)
	rej, ok := err.(*wire.RejectionError)
	if !ok {
		t.Fatalf("expected *wire.RejectionError, got %T", err)
	}

	event := NewRejectionEvent(uuid.NewString(), rej)

	if event.Category != CategoryRejection {
		t.Errorf("Category = %v, want %v", event.Category, CategoryRejection)
	}
	if event.Direction != DirectionIn {
		t.Errorf("Direction = %v, want %v", event.Direction, DirectionIn)
	}
	if event.Port != wire.BeatPort {
		t.Errorf("Port = %d, want %d", event.Port, wire.BeatPort)
	}
	if event.Rejection == nil {
		t.Fatal("Rejection payload missing")
	}
	if event.Rejection.Kind != wire.RejectBadMagic {
		t.Errorf("Kind = %v, want %v", event.Rejection.Kind, wire.RejectBadMagic)
	}
	if event.Rejection.Reason != "BAD_MAGIC" {
		t.Errorf("Reason = %q, want %q", event.Rejection.Reason, "BAD_MAGIC")
	}
	if event.Rejection.Length != 32 {
		t.Errorf("Length = %d, want 32", event.Rejection.Length)
	}
}

func TestNewLockEvent(t *testing.T) {
	event := NewLockEvent(uuid.NewString(), "cache/track-7.dat", LockActionAllocate)

	if event.Category != CategoryLock {
		t.Errorf("Category = %v, want %v", event.Category, CategoryLock)
	}
	if event.Lock == nil {
		t.Fatal("Lock payload missing")
	}
	if event.Lock.Name != "cache/track-7.dat" {
		t.Errorf("Name = %q", event.Lock.Name)
	}
	if event.Lock.Action != LockActionAllocate {
		t.Errorf("Action = %v, want %v", event.Lock.Action, LockActionAllocate)
	}
}

func TestStringMethods(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{DirectionIn.String(), "IN"},
		{DirectionOut.String(), "OUT"},
		{Direction(9).String(), "UNKNOWN"},
		{CategoryPacket.String(), "PACKET"},
		{CategoryRejection.String(), "REJECTION"},
		{CategoryLock.String(), "LOCK"},
		{Category(9).String(), "UNKNOWN"},
		{LockActionAllocate.String(), "ALLOCATE"},
		{LockActionRelease.String(), "RELEASE"},
		{LockAction(9).String(), "UNKNOWN"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/djlink-protocol/djlink-go/pkg/wire"
)

func TestEncodeDecodeEvent(t *testing.T) {
	original := Event{
		Timestamp: time.Date(2026, 3, 14, 12, 30, 45, 123456789, time.UTC),
		CaptureID: "3f1e9c2a-0000-4000-8000-000000000001",
		Direction: DirectionIn,
		Category:  CategoryPacket,
		Port:      wire.BeatPort,
		Packet: &PacketEvent{
			Type:      wire.PacketTypeBeat,
			Name:      "Beat",
			TypeValue: 0x28,
			Size:      96,
			Data:      []byte{0x51, 0x73, 0x70},
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("Timestamp = %v, want %v (nanosecond precision must survive)", decoded.Timestamp, original.Timestamp)
	}
	if decoded.CaptureID != original.CaptureID {
		t.Errorf("CaptureID = %q, want %q", decoded.CaptureID, original.CaptureID)
	}
	if decoded.Category != original.Category {
		t.Errorf("Category = %v, want %v", decoded.Category, original.Category)
	}
	if decoded.Port != original.Port {
		t.Errorf("Port = %d, want %d", decoded.Port, original.Port)
	}
	if decoded.Packet == nil {
		t.Fatal("Packet payload lost")
	}
	if decoded.Packet.Type != original.Packet.Type {
		t.Errorf("Type = %v, want %v", decoded.Packet.Type, original.Packet.Type)
	}
	if !bytes.Equal(decoded.Packet.Data, original.Packet.Data) {
		t.Error("Data lost in round trip")
	}
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00, 0x13}); err == nil {
		t.Error("expected error decoding garbage")
	}
}

func TestEncodeOmitsEmptyPayloads(t *testing.T) {
	event := Event{
		Timestamp: time.Now(),
		CaptureID: "c",
		Category:  CategoryLock,
		Lock:      &LockEvent{Name: "n", Action: LockActionRelease},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Packet != nil || decoded.Rejection != nil {
		t.Error("absent payloads must stay absent")
	}
	if decoded.Lock == nil || decoded.Lock.Name != "n" {
		t.Error("lock payload lost")
	}
}

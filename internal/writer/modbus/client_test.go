// internal/writer/modbus/client_test.go
package modbus

import "testing"

func TestPackRegisters_BigEndian(t *testing.T) {
	got := packRegisters([]uint16{0x0102, 0xFFFE})
	want := []byte{0x01, 0x02, 0xFF, 0xFE}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got=%#x want=%#x", i, got[i], want[i])
		}
	}
}

func TestNewEndpointClient_EndpointRequired(t *testing.T) {
	if _, err := NewEndpointClient(Config{}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

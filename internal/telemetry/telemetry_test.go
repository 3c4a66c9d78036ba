// internal/telemetry/telemetry_test.go
package telemetry

import (
	"errors"
	"testing"

	"github.com/tamzrod/harp-stepper/internal/catalog"
	"github.com/tamzrod/harp-stepper/internal/command"
	"github.com/tamzrod/harp-stepper/internal/harp"
	"github.com/tamzrod/harp-stepper/internal/payload"
	"github.com/tamzrod/harp-stepper/internal/stepper"
)

func TestAddresses(t *testing.T) {
	want := []uint8{77, 78, 79, 80, 81, 82, 87, 88, 89, 90}
	got := Addresses()
	if len(got) != len(want) {
		t.Fatalf("unexpected addresses: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("address %d: got=%d want=%d", i, got[i], want[i])
		}
	}
}

func TestApply_TelemetryRegisters(t *testing.T) {
	var s Snapshot

	msgs := []harp.Message{
		command.MotorStopped().Set(stepper.Motor0 | stepper.Motor3).Build(harp.Event),
		command.MotorErrorDetection().Set(stepper.Motor1).Build(harp.Event),
		command.DigitalInputState().Set(stepper.Input2).Build(harp.Event),
		command.EmergencyStop().Set(stepper.EmergencyDetected).Build(harp.Event),
		command.Encoders().Set(stepper.EncoderReadings{Encoder0: 5, Encoder1: -3}).
			BuildWithTimestamp(42.75, harp.Event),
		command.MotorAccumulatedSteps(2).Set(-70000).Build(harp.Read),
	}

	for _, m := range msgs {
		ok, err := s.Apply(m)
		if err != nil || !ok {
			t.Fatalf("apply %v: ok=%v err=%v", m, ok, err)
		}
	}

	if s.Stopped != stepper.Motor0|stepper.Motor3 || s.Error != stepper.Motor1 {
		t.Fatalf("unexpected motor masks: %+v", s)
	}
	if s.Inputs != stepper.Input2 || s.EmergencyStop != stepper.EmergencyDetected {
		t.Fatalf("unexpected input state: %+v", s)
	}
	if s.Encoders.Encoder0 != 5 || s.Encoders.Encoder1 != -3 || s.Encoders.Encoder2 != 0 {
		t.Fatalf("unexpected encoders: %v", s.Encoders)
	}
	if s.AccumulatedSteps[2] != -70000 {
		t.Fatalf("unexpected accumulated steps: %v", s.AccumulatedSteps)
	}
	if !s.HasTime || s.Seconds != 42.75 {
		t.Fatalf("timestamp not recorded: %v %v", s.Seconds, s.HasTime)
	}
}

func TestApply_IgnoresNonTelemetry(t *testing.T) {
	var s Snapshot
	ok, err := s.Apply(command.MotorSteps(0).Set(100).Build(harp.Write))
	if ok || err != nil {
		t.Fatalf("expected ignore, got ok=%v err=%v", ok, err)
	}
}

func TestApply_LengthMismatchLeavesSnapshot(t *testing.T) {
	s := Snapshot{Stopped: stepper.Motor1}
	msg := harp.NewMessage(catalog.MotorStopped, harp.Event, []byte{1, 2})

	ok, err := s.Apply(msg)
	if !ok || !errors.Is(err, payload.ErrLengthMismatch) {
		t.Fatalf("expected length mismatch, got ok=%v err=%v", ok, err)
	}
	if s.Stopped != stepper.Motor1 {
		t.Fatalf("snapshot modified on error: %v", s.Stopped)
	}
}

func TestEncode_Layout(t *testing.T) {
	s := Snapshot{
		Stopped:       stepper.Motor0 | stepper.Motor1,
		Overvoltage:   stepper.Motor2,
		Error:         stepper.Motor3,
		Inputs:        stepper.Input0 | stepper.Input3,
		EmergencyStop: stepper.EmergencyDetected,
		Encoders:      stepper.EncoderReadings{Encoder0: -1, Encoder1: 2, Encoder2: 300},
		AccumulatedSteps: [stepper.AxisCount]int32{
			0x00010002, -1, 0, 7,
		},
		Seconds: 70000.9,
		HasTime: true,
	}

	regs := Encode(s)
	if len(regs) != SlotsPerDevice {
		t.Fatalf("expected %d slots, got %d", SlotsPerDevice, len(regs))
	}

	want := map[int]uint16{
		SlotMotorStopped:     0x3,
		SlotMotorOvervoltage: 0x4,
		SlotMotorError:       0x8,
		SlotDigitalInputs:    0x9,
		SlotEmergencyStop:    1,
		5:                    0xFFFF,
		6:                    2,
		7:                    300,
		8:                    0x0001,
		9:                    0x0002,
		10:                   0xFFFF,
		11:                   0xFFFF,
		14:                   0,
		15:                   7,
		SlotReservedStart:    0,
		SlotReservedEnd:      0,
		SlotTimestampHi:      1,
		SlotTimestampLo:      70000 - 65536,
	}
	for slot, v := range want {
		if regs[slot] != v {
			t.Fatalf("slot %d: got=%#x want=%#x", slot, regs[slot], v)
		}
	}
}

func TestEncode_NoTimestamp(t *testing.T) {
	regs := Encode(Snapshot{Seconds: 12})
	if regs[SlotTimestampHi] != 0 || regs[SlotTimestampLo] != 0 {
		t.Fatalf("timestamp encoded without HasTime: %v", regs)
	}
}

// internal/catalog/catalog_test.go
package catalog

import (
	"errors"
	"testing"

	"github.com/tamzrod/harp-stepper/internal/payload"
)

func TestLookup_EveryAddressDefinedOnce(t *testing.T) {
	names := make(map[string]uint8)

	for a := int(FirstAddress); a <= int(LastAddress); a++ {
		e, err := Lookup(uint8(a))
		if err != nil {
			t.Fatalf("address %d: %v", a, err)
		}
		if int(e.Address) != a {
			t.Fatalf("address %d: entry reports %d", a, e.Address)
		}
		if prev, dup := names[e.Name]; dup {
			t.Fatalf("name %q used by %d and %d", e.Name, prev, a)
		}
		names[e.Name] = e.Address
	}

	if len(All()) != 83 {
		t.Fatalf("expected 83 entries, got %d", len(All()))
	}
}

func TestLookup_UnknownAddress(t *testing.T) {
	for _, a := range []uint8{0, 31, 115, 255} {
		if _, err := Lookup(a); !errors.Is(err, ErrUnknownRegister) {
			t.Fatalf("address %d: expected unknown register, got %v", a, err)
		}
		if _, err := Resolve(a); !errors.Is(err, ErrUnknownRegister) {
			t.Fatalf("address %d: Resolve expected unknown register, got %v", a, err)
		}
	}
}

func TestResolve_ReservedRefused(t *testing.T) {
	for a := ReservedStart; a <= ReservedEnd; a++ {
		e, err := Lookup(a)
		if err != nil {
			t.Fatalf("reserved %d should be catalog-present: %v", a, err)
		}
		if !e.Reserved() {
			t.Fatalf("address %d should be reserved", a)
		}
		if _, err := Resolve(a); !errors.Is(err, ErrReservedRegister) {
			t.Fatalf("address %d: expected reserved register, got %v", a, err)
		}
	}

	if _, err := Resolve(ResetEncoder); err != nil {
		t.Fatalf("address %d should resolve: %v", ResetEncoder, err)
	}
}

func TestWireTable(t *testing.T) {
	cases := []struct {
		addr  uint8
		name  string
		shape payload.Shape
		count int
	}{
		{32, "EnableMotors", payload.U8, 1},
		{37, "DisableInputs", payload.U8, 1},
		{38, "Motor0OperationMode", payload.U8, 1},
		{45, "Motor3MicrostepResolution", payload.U8, 1},
		{46, "Motor0MaximumCurrentRms", payload.Float32, 1},
		{53, "Motor3HoldCurrentReduction", payload.U8, 1},
		{54, "Motor0NominalStepInterval", payload.U16, 1},
		{61, "Motor3MaximumStepInterval", payload.U16, 1},
		{62, "Motor0StepAccelerationInterval", payload.U16, 1},
		{66, "EncoderMode", payload.U8, 1},
		{67, "EncoderRate", payload.U8, 1},
		{71, "Input3OperationMode", payload.U8, 1},
		{72, "Input0TriggerMode", payload.U8, 1},
		{76, "EmergencyStopMode", payload.U8, 1},
		{79, "MotorErrorDetection", payload.U8, 1},
		{80, "Encoders", payload.S16, 3},
		{81, "DigitalInputState", payload.U8, 1},
		{82, "EmergencyStop", payload.U8, 1},
		{83, "Motor0Steps", payload.S32, 1},
		{90, "Motor3AccumulatedSteps", payload.S32, 1},
		{91, "Motor0MaximumStepsIntegration", payload.S32, 1},
		{98, "Motor3MinimumStepsIntegration", payload.S32, 1},
		{102, "Motor3ImmediateSteps", payload.S32, 1},
		{103, "StopMotorSuddenly", payload.U8, 1},
		{104, "StopMotorSmoothly", payload.U8, 1},
		{105, "ResetMotor", payload.U8, 1},
		{106, "ResetEncoder", payload.U8, 1},
		{107, "Reserved107", payload.U8, 1},
		{114, "Reserved114", payload.U8, 1},
	}

	for _, tc := range cases {
		e, err := Lookup(tc.addr)
		if err != nil {
			t.Fatalf("address %d: %v", tc.addr, err)
		}
		if e.Name != tc.name || e.Shape != tc.shape || e.Count != tc.count {
			t.Fatalf("address %d: got %s %s x%d, want %s %s x%d",
				tc.addr, e.Name, e.Shape, e.Count, tc.name, tc.shape, tc.count)
		}

		byName, err := ByName(tc.name)
		if err != nil || byName.Address != tc.addr {
			t.Fatalf("ByName(%q): got %d %v", tc.name, byName.Address, err)
		}
	}
}

func TestLimits_Advisory(t *testing.T) {
	e, _ := Lookup(PerAxis(MotorMaximumCurrentRms, 2))
	l, ok := e.Limits()
	if !ok {
		t.Fatalf("%s should declare limits", e.Name)
	}
	if l.Min != 0.139 || l.Max != 2.1 || l.Default != 0.2 {
		t.Fatalf("unexpected current limits: %+v", l)
	}
	if l.Contains(5.0) || !l.Contains(2.1) || !l.Contains(0.139) {
		t.Fatalf("inclusive range check failed: %+v", l)
	}

	e, _ = Lookup(PerAxis(MotorStepAccelerationInterval, 1))
	if l, ok := e.Limits(); !ok || l.Min != 2 || l.Max != 2000 {
		t.Fatalf("unexpected acceleration limits: %+v %v", l, ok)
	}

	e, _ = Lookup(MotorStopped)
	if _, ok := e.Limits(); ok {
		t.Fatalf("%s should not declare limits", e.Name)
	}
}

func TestAll_IsACopy(t *testing.T) {
	all := All()
	all[0].Name = "changed"

	e, _ := Lookup(FirstAddress)
	if e.Name != "EnableMotors" {
		t.Fatalf("catalog mutated through All(): %q", e.Name)
	}
}

// internal/telemetry/encode.go
package telemetry

// Encode converts a Snapshot into a full telemetry block.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerDevice)

	regs[SlotMotorStopped] = uint16(s.Stopped)
	regs[SlotMotorOvervoltage] = uint16(s.Overvoltage)
	regs[SlotMotorError] = uint16(s.Error)
	regs[SlotDigitalInputs] = uint16(s.Inputs)
	regs[SlotEmergencyStop] = uint16(s.EmergencyStop)

	for i, v := range s.Encoders.Array() {
		regs[SlotEncoderStart+i] = uint16(v)
	}

	for i, v := range s.AccumulatedSteps {
		hi, lo := words(uint32(v))
		regs[SlotAccumulatedStepsStart+2*i] = hi
		regs[SlotAccumulatedStepsStart+2*i+1] = lo
	}

	// Slots 16–17 are RESERVED → left as zero

	if s.HasTime && s.Seconds > 0 {
		var secs uint32
		if s.Seconds >= 1<<32 {
			secs = 1<<32 - 1
		} else {
			secs = uint32(s.Seconds)
		}
		regs[SlotTimestampHi], regs[SlotTimestampLo] = words(secs)
	}

	return regs
}

func words(v uint32) (hi, lo uint16) {
	return uint16(v >> 16), uint16(v)
}

// internal/telemetry/constants.go
package telemetry

// Telemetry block layout constants.
// These values define the mirror protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of holding registers per device.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotMotorStopped holds the MotorStopped bit mask.
const SlotMotorStopped = 0

// SlotMotorOvervoltage holds the MotorOvervoltageDetection bit mask.
const SlotMotorOvervoltage = 1

// SlotMotorError holds the MotorErrorDetection bit mask.
const SlotMotorError = 2

// SlotDigitalInputs holds the DigitalInputState bit mask.
const SlotDigitalInputs = 3

// SlotEmergencyStop holds the EmergencyStop state.
const SlotEmergencyStop = 4

// SlotEncoderStart is the first of three encoder count slots
// (two's complement, encoder 0 first).
const SlotEncoderStart = 5

// SlotAccumulatedStepsStart is the first of eight slots holding the
// accumulated step counter of motors 0..3, high word first.
const SlotAccumulatedStepsStart = 8

// ---- RESERVED RANGE ----

// Slots 16–17 are reserved and always zero.
const SlotReservedStart = 16
const SlotReservedEnd = 17

// ---- TIMESTAMP ----

// SlotTimestampHi and SlotTimestampLo hold the whole seconds of the
// most recent timestamped message.
const SlotTimestampHi = 18
const SlotTimestampLo = 19

// internal/stepper/encoders.go
package stepper

import "fmt"

// EncoderReadings holds the three quadrature encoder counters in wire order.
type EncoderReadings struct {
	Encoder0 int16
	Encoder1 int16
	Encoder2 int16
}

// Array returns the counters in wire order.
func (r EncoderReadings) Array() [EncoderCount]int16 {
	return [EncoderCount]int16{r.Encoder0, r.Encoder1, r.Encoder2}
}

// EncoderReadingsOf assigns counters positionally.
func EncoderReadingsOf(v [EncoderCount]int16) EncoderReadings {
	return EncoderReadings{Encoder0: v[0], Encoder1: v[1], Encoder2: v[2]}
}

func (r EncoderReadings) String() string {
	return fmt.Sprintf("{Encoder0:%d Encoder1:%d Encoder2:%d}", r.Encoder0, r.Encoder1, r.Encoder2)
}

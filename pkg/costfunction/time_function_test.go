package costfunction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTravelTimeFunction(t *testing.T) {
	testCases := []struct {
		name     string
		waitTime float64
		velocity float64
		meters   float64
		wantRide float64
	}{
		{name: "60 km/h is 1000 m/min", waitTime: 6, velocity: 60, meters: 2000, wantRide: 2},
		{name: "40 km/h", waitTime: 2, velocity: 40, meters: 3900, wantRide: 5.85},
		{name: "zero distance", waitTime: 0, velocity: 30, meters: 0, wantRide: 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			tf := NewTravelTimeFunction(tt.waitTime, tt.velocity)
			assert.Equal(t, tt.waitTime, tf.GetWaitWeight())
			assert.InDelta(t, tt.wantRide, tf.GetRideWeight(tt.meters), 1e-9)
		})
	}
}

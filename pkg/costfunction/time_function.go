package costfunction

import (
	"github.com/lintang-b-s/transitcatalogue/pkg"
)

// TravelTimeFunction. weights in minute: fixed wait at a stop, ride time from road meters at the bus velocity
type TravelTimeFunction struct {
	waitTime float64 // minute
	velocity float64 // km/h
}

func NewTravelTimeFunction(waitTime, velocity float64) *TravelTimeFunction {
	return &TravelTimeFunction{
		waitTime: waitTime,
		velocity: velocity,
	}
}

func (tf *TravelTimeFunction) GetWaitWeight() float64 {
	return tf.waitTime
}

func (tf *TravelTimeFunction) GetRideWeight(meters float64) float64 {
	return meters / (tf.velocity * pkg.SPEED_COEF)
}

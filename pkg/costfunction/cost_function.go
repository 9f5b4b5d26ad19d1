package costfunction

type CostFunction interface {
	GetWaitWeight() float64
	GetRideWeight(meters float64) float64
}

package pkg

// enum of route item kind
type ItemKind uint8

const (
	WAIT ItemKind = iota
	BUS
)

func (k ItemKind) String() string {
	switch k {
	case WAIT:
		return "Wait"
	case BUS:
		return "Bus"
	default:
		return "Unknown"
	}
}

const (
	INF_WEIGHT float64 = 1e15

	SPEED_COEF = 1000.0 / 60.0 // km/h -> m/min

	DEFAULT_BUS_WAIT_TIME = 6.0  // minute
	DEFAULT_BUS_VELOCITY  = 40.0 // km/h
)

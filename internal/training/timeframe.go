package training

// Timeframe can be one of:
//   - week
//   - month
//   - all
type Timeframe string

const (
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeAll   Timeframe = "all"
)

func (tf Timeframe) String() string {
	return string(tf)
}

func (tf Timeframe) IsValid() bool {
	switch tf {
	case TimeframeWeek, TimeframeMonth, TimeframeAll:
		return true
	default:
		return false
	}
}

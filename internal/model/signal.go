package model

// Direction is an aggregate directional verdict.
type Direction string

const (
	DirectionBullish Direction = "Bullish"
	DirectionBearish Direction = "Bearish"
	DirectionNeutral Direction = "Neutral"
)

// SignalSet groups the classified technical signals. The bullish/bearish text
// lists and the Overall verdict are computed from independent rule panels and
// may disagree; both are always populated.
type SignalSet struct {
	Bullish []string
	Bearish []string
	Neutral []string
	Overall Direction
}

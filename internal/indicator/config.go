package indicator

// Config enumerates every window length the engine computes with.
type Config struct {
	SMAPeriods []int
	EMAPeriods []int

	RSIPeriod int

	MACDFast   int
	MACDSlow   int
	MACDSignal int

	BollingerPeriod int
	BollingerStdDev float64

	ATRPeriod int

	KeltnerEMAPeriod  int
	KeltnerATRPeriod  int
	KeltnerMultiplier float64

	StochasticK int
	StochasticD int

	WilliamsRPeriod int
	ROCPeriod       int
	CCIPeriod       int
	ADXPeriod       int
	MFIPeriod       int

	// Window for the rolling support/resistance scalars.
	RangeWindow int
}

// DefaultConfig returns the standard dashboard configuration.
func DefaultConfig() Config {
	return Config{
		SMAPeriods:        []int{20, 50, 200},
		EMAPeriods:        []int{9, 12, 26, 50},
		RSIPeriod:         14,
		MACDFast:          12,
		MACDSlow:          26,
		MACDSignal:        9,
		BollingerPeriod:   20,
		BollingerStdDev:   2.0,
		ATRPeriod:         14,
		KeltnerEMAPeriod:  20,
		KeltnerATRPeriod:  10,
		KeltnerMultiplier: 2.0,
		StochasticK:       14,
		StochasticD:       3,
		WilliamsRPeriod:   14,
		ROCPeriod:         12,
		CCIPeriod:         20,
		ADXPeriod:         14,
		MFIPeriod:         14,
		RangeWindow:       20,
	}
}

// FullDetailConfig extends the SMA ladder for full-detail mode.
func FullDetailConfig() Config {
	cfg := DefaultConfig()
	cfg.SMAPeriods = []int{5, 10, 20, 50, 100, 200}
	return cfg
}

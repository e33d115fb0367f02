package sot3

// Test bridge: exposes internals to package sot3_test only.

const PanicEpsilonInvalid = panicEpsilonInvalid

// EffectiveEpsilon returns the eps resolved from opts.
func EffectiveEpsilon(opts ...Option) float64 {
	return gatherOptions(opts...).eps
}

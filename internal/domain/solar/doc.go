// Package solar maps hour values to a stylized solar elevation angle.
//
// The model is a single sinusoid over the day: 0° at hour 0, +90° at hour 6,
// 0° at hour 12 and -90° at hour 18. It is not an ephemeris. All functions are
// pure and safe for concurrent use.
package solar

// Package wavelength holds the small cm^-1 <-> Angstrom conversions shared
// by the emissivity summer and the RL evaluators —
// the analogue of toy-spice's pkg/util value-formatting helpers, scoped to
// this domain's one unit conversion instead of engineering-prefix display.
package wavelength

import "github.com/equib/prEQUIB/internal/consts"

// FromDeltaE converts an energy gap in cm^-1 to a wavelength in Angstrom.
func FromDeltaE(deltaE float64) float64 {
	if deltaE == 0 {
		return 0
	}
	return consts.AngstromPerCM / deltaE
}

// PhotonEnergyFromDeltaE returns hc*deltaE (erg), the photon energy for an
// energy gap given in cm^-1 — equivalent to hc/lambda with lambda in cm,
// but avoids the round trip through Angstrom.
func PhotonEnergyFromDeltaE(deltaE float64) float64 {
	return consts.Planck * consts.LightSpeed * deltaE
}

// PhotonEnergyFromAngstrom returns hc/lambda (erg) for lambda in Angstrom.
func PhotonEnergyFromAngstrom(lambdaAngstrom float64) float64 {
	if lambdaAngstrom == 0 {
		return 0
	}
	return consts.Planck * consts.LightSpeed * consts.AngstromPerCM / lambdaAngstrom
}

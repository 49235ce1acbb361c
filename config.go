package qentangle

import "fmt"

/*
Config carries the limits and tolerances shared between the core and the
layers that consume it. It is passed explicitly instead of living in package
level variables, so a circuit editor and a batch tool can run with different
limits side by side.
*/
type Config struct {
	// Tolerance is the magnitude below which an amplitude counts as zero,
	// and the maximum distance between two ratios that still counts as equal.
	Tolerance float64
	// MaxQubits bounds the qubit count a consumer is willing to simulate.
	MaxQubits int
}

func NewConfig() *Config {
	return &Config{
		Tolerance: 1e-4,
		MaxQubits: 8,
	}
}

// CheckQubits rejects qubit counts outside [1, MaxQubits].
func (config *Config) CheckQubits(n int) error {
	if n < 1 || n > config.MaxQubits {
		return fmt.Errorf(
			"%w: qubit count %d outside [1, %d]", ErrConstruction, n, config.MaxQubits,
		)
	}

	return nil
}

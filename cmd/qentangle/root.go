package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theapemachine/qentangle"
)

/*
newRootCmd builds the command that prepares a basis state, runs it through a
sequence of gates and reports the entangled qubit groups of the result.

Gates are given as KIND:TARGET or KIND:TARGET:CONTROL and are applied in the
order they appear on the command line.
*/
func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "qentangle",
		Short:        "Simulate a small circuit and report entangled qubits",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(v)
			if err != nil {
				return err
			}

			return run(cmd, config, v.GetInt("qubits"), v.GetInt("value"), v.GetStringSlice("gate"))
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "optional config file")
	flags.Int("qubits", 2, "number of qubits in the register")
	flags.Int("value", 0, "basis value of the input state")
	flags.StringSlice("gate", nil, "gate as KIND:TARGET[:CONTROL], repeatable")
	flags.Float64("tolerance", qentangle.NewConfig().Tolerance, "zero and ratio tolerance")
	flags.Int("max-qubits", qentangle.NewConfig().MaxQubits, "largest register to simulate")

	for _, name := range []string{"config", "qubits", "value", "gate", "tolerance", "max-qubits"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	v.SetEnvPrefix("QENTANGLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func loadConfig(v *viper.Viper) (*qentangle.Config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	return &qentangle.Config{
		Tolerance: v.GetFloat64("tolerance"),
		MaxQubits: v.GetInt("max-qubits"),
	}, nil
}

func run(cmd *cobra.Command, config *qentangle.Config, n, value int, gates []string) error {
	if err := config.CheckQubits(n); err != nil {
		return err
	}

	state, err := qentangle.NewState(n, value)
	if err != nil {
		return err
	}

	circuit, err := compose(n, gates)
	if err != nil {
		return err
	}

	if circuit != nil {
		if state, err = qentangle.Apply(circuit, state); err != nil {
			return err
		}
	}

	groups, err := qentangle.NewDetector(config).Groups(state.Amplitudes())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "state:     %s\n", state)
	fmt.Fprintf(out, "entangled: %v\n", groups)

	return nil
}

// compose multiplies the gates into one unitary, first gate applied first.
// It returns nil when no gates were given.
func compose(n int, gates []string) (*qentangle.Gate, error) {
	var circuit *qentangle.Gate

	for _, raw := range gates {
		spec, err := parseGateSpec(raw)
		if err != nil {
			return nil, err
		}

		gate, err := spec.Build(n)
		if err != nil {
			return nil, fmt.Errorf("gate %q: %w", raw, err)
		}

		if circuit == nil {
			circuit = gate
			continue
		}

		if circuit, err = qentangle.Compose(gate, circuit); err != nil {
			return nil, err
		}
	}

	return circuit, nil
}

// parseGateSpec reads KIND:TARGET or KIND:TARGET:CONTROL.
func parseGateSpec(raw string) (qentangle.GateSpec, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return qentangle.GateSpec{}, fmt.Errorf(
			"%w: gate %q must look like KIND:TARGET[:CONTROL]", qentangle.ErrConstruction, raw,
		)
	}

	kind, err := qentangle.ParseKind(strings.ToUpper(parts[0]))
	if err != nil {
		return qentangle.GateSpec{}, err
	}

	spec := qentangle.GateSpec{Kind: kind, Control: qentangle.NoControl}

	if spec.Target, err = strconv.Atoi(parts[1]); err != nil {
		return qentangle.GateSpec{}, fmt.Errorf("%w: gate %q target: %v", qentangle.ErrConstruction, raw, err)
	}

	if len(parts) == 3 {
		if spec.Control, err = strconv.Atoi(parts[2]); err != nil {
			return qentangle.GateSpec{}, fmt.Errorf("%w: gate %q control: %v", qentangle.ErrConstruction, raw, err)
		}
	}

	return spec, nil
}

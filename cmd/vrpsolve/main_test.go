// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlroute/instance"
	"github.com/katalvlaran/lvlroute/vrp"
)

const scenarioYAML = `name: scenario
capacity: 2
depot: D
clients: [A, B, C]
edges:
  - {from: D, to: A, length: 1}
  - {from: D, to: B, length: 5}
  - {from: D, to: C, length: 2}
  - {from: A, to: B, length: 1}
  - {from: A, to: C, length: 4}
  - {from: B, to: C, length: 1}
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	args = append([]string{"--env-file", "", "--log-level", "error"}, args...)
	err := run(args, &out, io.Discard)

	return out.String(), err
}

func TestRun_TextReport(t *testing.T) {
	out, err := runCLI(t, "--instance", writeFile(t, "scenario.yaml", scenarioYAML))
	require.NoError(t, err)

	require.Contains(t, out, "Instance scenario: depot D, capacity 2\n")
	require.Contains(t, out, "This solution uses 2 vehicles. Total length: 8.00\n")
	require.Contains(t, out, "Vehicle 0: Path length       4.00. Clients served:   A   B\n")
	require.Contains(t, out, "Vehicle 1: Path length       4.00. Clients served:   C\n")
}

func TestRun_JSONReport(t *testing.T) {
	out, err := runCLI(t, "--instance", writeFile(t, "scenario.yaml", scenarioYAML), "--format", "JSON")
	require.NoError(t, err)

	var rep vrp.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Equal(t, "scenario", rep.Instance)
	require.Equal(t, 2, rep.Vehicles)
	require.InDelta(t, 8.0, rep.TotalLength, 1e-9)
	require.Equal(t, []string{"A", "B"}, rep.Routes[0].Clients)
	require.Equal(t, []string{"C"}, rep.Routes[1].Clients)
}

func TestRun_Metrics(t *testing.T) {
	out, err := runCLI(t, "--instance", writeFile(t, "scenario.yaml", scenarioYAML), "--metrics")
	require.NoError(t, err)

	require.Contains(t, out, `lvlroute_solves_total{outcome="ok"} 1`)
	require.Contains(t, out, "lvlroute_routes_built_total 2")
	require.Contains(t, out, "# TYPE lvlroute_tree_build_seconds histogram")
	require.Contains(t, out, `lvlroute_cache_lookups_total{result="miss"}`)
}

func TestRun_RandomInstance(t *testing.T) {
	save := filepath.Join(t.TempDir(), "random.yaml")
	out, err := runCLI(t,
		"--random-nodes", "40", "--random-clients", "12", "--random-capacity", "3",
		"--random-density", "0.1", "--seed", "5", "--format", "json", "--save", save)
	require.NoError(t, err)

	var rep vrp.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Equal(t, "random-5", rep.Instance)
	require.GreaterOrEqual(t, rep.Vehicles, 4)
	served := 0
	for _, r := range rep.Routes {
		require.LessOrEqual(t, len(r.Clients), 3)
		served += len(r.Clients)
	}
	require.Equal(t, 12, served)

	// The saved instance solves to the same report.
	saved, err := instance.LoadFile(save)
	require.NoError(t, err)
	require.Equal(t, 12, saved.ClientCount())
	again, err := runCLI(t, "--instance", save, "--format", "json")
	require.NoError(t, err)
	require.JSONEq(t, out, again)
}

func TestRun_RandomShapes(t *testing.T) {
	out, err := runCLI(t,
		"--random-nodes", "8", "--random-clients", "5", "--random-capacity", "2",
		"--random-topology", "complete", "--random-ids", "letters", "--random-weights", "exponential",
		"--format", "json")
	require.NoError(t, err)

	var rep vrp.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.GreaterOrEqual(t, rep.Vehicles, 3)
	for _, r := range rep.Routes {
		for _, c := range r.Clients {
			require.Regexp(t, `^[A-H]$`, c)
		}
	}

	t.Setenv("VRP_RANDOM_TOPOLOGY", "grid")
	out, err = runCLI(t, "--random-nodes", "16", "--random-clients", "6", "--random-weights", "integer", "--format", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Regexp(t, `^\d+,\d+$`, rep.Depot)

	_, err = runCLI(t, "--random-weights", "pareto")
	require.ErrorIs(t, err, vrp.ErrRandomConfig)
}

func TestRun_EnvironmentAndConfigFile(t *testing.T) {
	path := writeFile(t, "scenario.yaml", scenarioYAML)

	t.Run("env", func(t *testing.T) {
		t.Setenv("VRP_INSTANCE", path)
		t.Setenv("VRP_FORMAT", "json")
		out, err := runCLI(t)
		require.NoError(t, err)
		require.True(t, json.Valid([]byte(out)))
	})

	t.Run("config file", func(t *testing.T) {
		cfg := writeFile(t, "vrpsolve.yaml", "instance: "+path+"\nformat: json\n")
		out, err := runCLI(t, "--config", cfg)
		require.NoError(t, err)
		require.True(t, json.Valid([]byte(out)))
	})

	t.Run("flag beats env", func(t *testing.T) {
		t.Setenv("VRP_FORMAT", "json")
		out, err := runCLI(t, "--instance", path, "--format", "text")
		require.NoError(t, err)
		require.Contains(t, out, "This solution uses 2 vehicles.")
	})

	t.Run("dotenv", func(t *testing.T) {
		env := writeFile(t, "test.env", "VRP_INSTANCE="+path+"\n")
		t.Setenv("VRP_INSTANCE", "")
		require.NoError(t, os.Unsetenv("VRP_INSTANCE"))
		var out bytes.Buffer
		err := run([]string{"--env-file", env, "--log-level", "error"}, &out, io.Discard)
		require.NoError(t, err)
		require.Contains(t, out.String(), "Instance scenario")
	})
}

func TestRun_Errors(t *testing.T) {
	infeasible := writeFile(t, "island.yaml", `name: island
capacity: 2
depot: D
clients: [A, Z]
nodes: [Z]
edges:
  - {from: D, to: A, length: 1}
`)
	_, err := runCLI(t, "--instance", infeasible)
	require.ErrorIs(t, err, vrp.ErrNoFeasibleRoute)

	_, err = runCLI(t, "--instance", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = runCLI(t, "--instance", writeFile(t, "bad.yaml", "depot: D\n"))
	require.ErrorIs(t, err, instance.ErrInvalidDocument)

	_, err = runCLI(t, "--format", "xml")
	require.ErrorContains(t, err, "unknown format")

	_, err = runCLI(t, "--log-level", "loud")
	require.Error(t, err)

	_, err = runCLI(t, "--no-such-flag")
	require.Error(t, err)

	_, err = runCLI(t, "--random-nodes", "3", "--random-clients", "5")
	require.ErrorIs(t, err, vrp.ErrTooFewNodes)
}

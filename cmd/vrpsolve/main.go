// SPDX-License-Identifier: MIT

// Command vrpsolve builds greedy capacitated vehicle routes for an instance
// loaded from YAML or generated at random, and prints the resulting tours.
//
// Every flag can also be set through a VRP_-prefixed environment variable
// (VRP_RANDOM_NODES for --random-nodes), a .env file, or a YAML file given
// with --config whose keys are the flag names. Flags win over the
// environment, which wins over the config file.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvlroute/greedy"
	"github.com/katalvlaran/lvlroute/instance"
	"github.com/katalvlaran/lvlroute/metrics"
	"github.com/katalvlaran/lvlroute/spcache"
	"github.com/katalvlaran/lvlroute/vrp"
)

const envPrefix = "VRP"

// config is the resolved command configuration.
type config struct {
	Instance string
	Save     string
	Format   string
	LogLevel string
	Metrics  bool

	Random vrp.RandomConfig
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "vrpsolve:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}

	log, sync, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		return err
	}
	defer sync()

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	cacheOpts := vrp.WithCacheOptions(
		spcache.WithLogger(log.WithName("spcache")),
		spcache.WithRecorder(rec),
	)
	in, err := loadInstance(cfg, cacheOpts)
	if err != nil {
		return err
	}
	log.Info("instance ready", "name", in.Name(), "nodes", in.Graph().VertexCount(),
		"edges", in.Graph().EdgeCount(), "clients", in.ClientCount())

	if cfg.Save != "" {
		if err = instance.SaveFile(cfg.Save, in); err != nil {
			return err
		}
		log.Info("instance saved", "path", cfg.Save)
	}

	sol := greedy.New(in, greedy.WithLogger(log.WithName("greedy")), greedy.WithRecorder(rec))
	if err = sol.Compute(); err != nil {
		var infeasible *greedy.InfeasibleError
		if errors.As(err, &infeasible) {
			log.Info("no feasible routes", "unreachable", infeasible.Unreachable)
		}
		return err
	}

	rep, err := vrp.Summarize(sol)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err = enc.Encode(rep); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	default:
		if err = writeText(stdout, rep); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	if cfg.Metrics {
		return writeMetrics(stdout, reg)
	}

	return nil
}

// loadConfig parses args and layers them over the environment, a .env file
// and the optional --config file.
func loadConfig(args []string, stderr io.Writer) (*config, error) {
	flags := pflag.NewFlagSet("vrpsolve", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.String("config", "", "YAML file with default flag values")
	flags.String("env-file", ".env", "dotenv file loaded into the environment if present")
	flags.String("instance", "", "YAML instance to solve; a random instance is generated when empty")
	flags.String("save", "", "write the solved instance to this YAML file")
	flags.String("format", "text", "report format: text or json")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Bool("metrics", false, "append the Prometheus text exposition of the run")
	flags.Int("random-nodes", 50, "random instance: number of nodes")
	flags.Int("random-clients", 10, "random instance: number of clients")
	flags.Int("random-capacity", 4, "random instance: vehicle capacity")
	flags.Float64("random-density", 0.05, "random instance: probability of each extra road")
	flags.Float64("random-min-length", 1, "random instance: minimum road length")
	flags.Float64("random-max-length", 100, "random instance: maximum road length (exclusive)")
	flags.String("random-weights", vrp.WeightsUniform, "random instance: road lengths: uniform, integer, normal or exponential")
	flags.String("random-topology", vrp.TopologyConnected, "random instance: road network: connected, grid or complete")
	flags.String("random-ids", vrp.IDsNumbered, "random instance: node IDs: numbered or letters")
	flags.Int64("seed", 1, "random instance: RNG seed")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	envFile, _ := flags.GetString("env-file")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &config{
		Instance: v.GetString("instance"),
		Save:     v.GetString("save"),
		Format:   strings.ToLower(v.GetString("format")),
		LogLevel: v.GetString("log-level"),
		Metrics:  v.GetBool("metrics"),
		Random: vrp.RandomConfig{
			Nodes:     v.GetInt("random-nodes"),
			Density:   v.GetFloat64("random-density"),
			Clients:   v.GetInt("random-clients"),
			Capacity:  v.GetInt("random-capacity"),
			Seed:      v.GetInt64("seed"),
			MinLength: v.GetFloat64("random-min-length"),
			MaxLength: v.GetFloat64("random-max-length"),
			Weights:   strings.ToLower(v.GetString("random-weights")),
			Topology:  strings.ToLower(v.GetString("random-topology")),
			IDs:       strings.ToLower(v.GetString("random-ids")),
		},
	}
	if cfg.Format != "text" && cfg.Format != "json" {
		return nil, fmt.Errorf("unknown format %q (want text or json)", cfg.Format)
	}
	cfg.Random.Name = fmt.Sprintf("random-%d", cfg.Random.Seed)

	return cfg, nil
}

// newLogger returns a logr.Logger backed by a zap JSON core on w.
// V(1) messages appear at the debug level.
func newLogger(level string, w io.Writer) (logr.Logger, func(), error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf("log level: %w", err)
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), lvl)
	z := zap.New(core).Named("vrpsolve")

	return zapr.NewLogger(z), func() { _ = z.Sync() }, nil
}

func loadInstance(cfg *config, opts ...vrp.Option) (*vrp.Instance, error) {
	if cfg.Instance != "" {
		return instance.LoadFile(cfg.Instance, opts...)
	}

	rc := cfg.Random
	rc.Options = opts

	return vrp.RandomInstance(rc)
}

// writeText prints the report as
//
//	This solution uses 2 vehicles. Total length: 8.00
//	Vehicle 0: Path length       4.00. Clients served:   A   B
func writeText(w io.Writer, rep *vrp.Report) error {
	if _, err := fmt.Fprintf(w, "Instance %s: depot %s, capacity %d\n", rep.Instance, rep.Depot, rep.Capacity); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "This solution uses %d vehicles. Total length: %.2f\n", rep.Vehicles, rep.TotalLength); err != nil {
		return err
	}
	for _, r := range rep.Routes {
		var b strings.Builder
		fmt.Fprintf(&b, "Vehicle %d: Path length %10.2f. Clients served:", r.Vehicle, r.Length)
		for _, c := range r.Clients {
			fmt.Fprintf(&b, "%4s", c)
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}

	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

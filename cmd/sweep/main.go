// Command sweep steps one rotation angle of a sensor's calibration across a
// range and records where a target point lands in world space.
//
// Usage:
//
//	sweep -config config/calibration.example.json -range 60:120:13 -png sweep.png
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jesivasq/mcp/internal/config"
	"github.com/jesivasq/mcp/internal/sweep"
	"github.com/jesivasq/mcp/internal/version"
)

var (
	configPath  = flag.String("config", config.DefaultConfigPath, "Calibration config file (JSON)")
	sensorID    = flag.String("sensor", "", "Sensor ID to sweep (defaults to the config sweep sensor)")
	axisFlag    = flag.String("axis", "", "Rotation axis to sweep: x, y or z (overrides config)")
	rangeFlag   = flag.String("range", "", "Angle range start:end:count in degrees (overrides config)")
	outPath     = flag.String("out", "", "CSV output file (defaults to stdout)")
	pngPath     = flag.String("png", "", "Write a trajectory plot to this file")
	htmlPath    = flag.String("html", "", "Write an interactive trajectory chart to this file")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

// options are the resolved flag values, kept separate from the flag globals
// so request building can be tested.
type options struct {
	sensorID string
	axis     string
	rangeStr string
}

// buildRequest merges the config with flag overrides.
func buildRequest(cfg *config.CalibrationConfig, opts options) (sweep.Request, error) {
	sw := cfg.GetSweep()

	id := opts.sensorID
	if id == "" {
		id = sw.SensorID
	}
	if id == "" {
		return sweep.Request{}, fmt.Errorf("no sensor selected: set -sensor or sweep.sensor_id")
	}
	sensor, ok := cfg.Sensor(id)
	if !ok {
		return sweep.Request{}, fmt.Errorf("sensor %q not found in config", id)
	}

	axisName := sw.GetAxis()
	if opts.axis != "" {
		axisName = opts.axis
	}
	axis, err := config.AxisIndex(axisName)
	if err != nil {
		return sweep.Request{}, err
	}

	spec := sweep.SampleSpec{Start: sw.GetStart(), End: sw.GetEnd(), Count: sw.GetCount()}
	if opts.rangeStr != "" {
		if spec, err = sweep.ParseSampleSpec(opts.rangeStr); err != nil {
			return sweep.Request{}, err
		}
	}

	return sweep.Request{
		Transform: sensor.Transform(),
		Device:    sensor.DeviceMatrix(),
		Axis:      axis,
		Range:     spec,
		Target:    cfg.GetTarget(),
	}, nil
}

func writeCSV(w io.Writer, report *sweep.Report) error {
	cw := sweep.NewCSVWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.WriteReport(report); err != nil {
		return err
	}
	return cw.Flush()
}

// writeCSVFile writes the report to path. A failed close is reported since
// it can lose buffered rows.
func writeCSVFile(path string, report *sweep.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeCSV(f, report); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	cfg, err := config.LoadCalibrationConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	req, err := buildRequest(cfg, options{sensorID: *sensorID, axis: *axisFlag, rangeStr: *rangeFlag})
	if err != nil {
		log.Fatalf("invalid sweep: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := sweep.Run(ctx, req)
	if err != nil {
		log.Fatalf("sweep failed: %v", err)
	}

	if *outPath != "" {
		if err := writeCSVFile(*outPath, report); err != nil {
			log.Fatalf("failed to write CSV: %v", err)
		}
		log.Printf("[sweep] wrote %d samples to %s", len(report.Results), *outPath)
	} else if err := writeCSV(os.Stdout, report); err != nil {
		log.Fatalf("failed to write CSV: %v", err)
	}

	if *pngPath != "" {
		if err := sweep.PlotPNG(report, *pngPath); err != nil {
			log.Fatalf("failed to plot: %v", err)
		}
		log.Printf("[sweep] wrote plot %s", *pngPath)
	}

	if *htmlPath != "" {
		f, err := os.Create(*htmlPath)
		if err != nil {
			log.Fatalf("failed to create chart file: %v", err)
		}
		if err := sweep.RenderChart(report, f); err != nil {
			f.Close()
			log.Fatalf("failed to render chart: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("failed to close chart file: %v", err)
		}
		log.Printf("[sweep] wrote chart %s", *htmlPath)
	}

	first, last := report.Results[0], report.Results[len(report.Results)-1]
	log.Printf("[sweep] target moved from %s to %s (%.3f apart)",
		first.Point, last.Point, last.Point.Sub(first.Point).Length())
}

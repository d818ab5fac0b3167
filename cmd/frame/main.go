// Command frame converts device-space points to world space.
//
// Points are read from stdin, one "x y z" triple per line; blank lines and
// lines starting with '#' are skipped. Each point is written to stdout as
// "(x, y, z)".
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jesivasq/mcp/internal/config"
	"github.com/jesivasq/mcp/internal/geom"
	"github.com/jesivasq/mcp/internal/version"
)

var (
	configPath  = flag.String("config", config.DefaultConfigPath, "Calibration config file (JSON)")
	sensorID    = flag.String("sensor", "", "Sensor ID whose device-to-world matrix is applied")
	matrixFlag  = flag.String("matrix", "", "Serialized 16-value row-major matrix (overrides -config)")
	printMatrix = flag.Bool("print-matrix", false, "Print the serialized matrix and exit")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

// resolveMatrix picks the matrix from -matrix or from the sensor config.
func resolveMatrix(matrixStr, cfgPath, id string) (geom.Matrix4x4, error) {
	if matrixStr != "" {
		return geom.ParseMatrix(matrixStr)
	}

	cfg, err := config.LoadCalibrationConfig(cfgPath)
	if err != nil {
		return geom.Matrix4x4{}, err
	}
	if id == "" {
		if len(cfg.Sensors) != 1 {
			return geom.Matrix4x4{}, fmt.Errorf("config has %d sensors: select one with -sensor", len(cfg.Sensors))
		}
		id = cfg.Sensors[0].ID
	}
	sensor, ok := cfg.Sensor(id)
	if !ok {
		return geom.Matrix4x4{}, fmt.Errorf("sensor %q not found in config", id)
	}
	log.Printf("[frame] sensor %s: %s", sensor.ID, sensor.Transform())
	return sensor.Matrix(), nil
}

// parsePoint parses an "x y z" line.
func parsePoint(line string) (geom.Vector3, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return geom.Vector3{}, fmt.Errorf("expected 3 values, got %d", len(fields))
	}
	var p geom.Vector3
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geom.Vector3{}, fmt.Errorf("invalid value %q: %w", f, err)
		}
		p.Set(i, v)
	}
	return p, nil
}

// transformPoints applies m to every point read from r and writes the
// results to w. It returns the number of points written.
func transformPoints(r io.Reader, w io.Writer, m geom.Matrix4x4) (int, error) {
	scanner := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	n := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := parsePoint(line)
		if err != nil {
			return n, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if _, err := fmt.Fprintln(bw, m.MulVec(p)); err != nil {
			return n, err
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, err
	}
	return n, bw.Flush()
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	m, err := resolveMatrix(*matrixFlag, *configPath, *sensorID)
	if err != nil {
		log.Fatalf("failed to resolve matrix: %v", err)
	}

	if *printMatrix {
		fmt.Println(m.Serialize())
		return
	}

	if !m.IsRigid(geom.RigidTolerance) {
		log.Printf("[frame] note: matrix is not a pure rigid transform (scale or axis flip present)")
	}

	n, err := transformPoints(os.Stdin, os.Stdout, m)
	if err != nil {
		log.Fatalf("failed to transform points: %v", err)
	}
	log.Printf("[frame] transformed %d points", n)
}

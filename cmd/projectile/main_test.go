package main

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/tuple"
	"github.com/gogpu/tuple/sim"
)

func TestPrintTrajectory(t *testing.T) {
	trajectory := []sim.Projectile{
		{Position: tuple.Point(0, 1, 0), Velocity: tuple.Vector(0.5, -0.25, 0)},
		{Position: tuple.Point(1234.5, 1, 0), Velocity: tuple.Vector(0, 0, 0)},
	}

	var buf bytes.Buffer
	printTrajectory(&buf, message.NewPrinter(language.English), trajectory)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}

	tests := []struct {
		name string
		line string
		want []string
	}{
		{"first state", lines[0], []string{"step 0:", "position (0.0000, 1.0000, 0.0000, w=1)", "velocity (0.5000, -0.2500, 0.0000, w=0)"}},
		{"grouped digits", lines[1], []string{"step 1:", "1,234.5000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, w := range tt.want {
				if !strings.Contains(tt.line, w) {
					t.Errorf("line %q does not contain %q", tt.line, w)
				}
			}
		})
	}
}

func TestPrintTrajectory_Demo(t *testing.T) {
	trajectory, err := sim.Run(sim.DefaultEnvironment(), sim.DefaultProjectile(), steps)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var buf bytes.Buffer
	printTrajectory(&buf, message.NewPrinter(language.English), trajectory)

	if n := strings.Count(buf.String(), "\n"); n != steps {
		t.Errorf("printed %d lines, want %d", n, steps)
	}
	if !strings.HasPrefix(buf.String(), "step 0: position (0.0000, 1.0000, 0.0000, w=1) velocity (0.7071, 0.7071, 0.0000, w=0)\n") {
		t.Errorf("unexpected first line:\n%s", buf.String())
	}
}

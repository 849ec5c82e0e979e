// Command projectile prints the trajectory of a projectile launched under
// gravity and wind.
package main

import (
	"io"
	"log"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/tuple/sim"
)

// steps matches the length of the classic demo trajectory.
const steps = 17

func main() {
	trajectory, err := sim.Run(sim.DefaultEnvironment(), sim.DefaultProjectile(), steps)
	if err != nil {
		log.Fatalf("Failed to simulate: %v", err)
	}

	printTrajectory(os.Stdout, message.NewPrinter(language.English), trajectory)
}

// printTrajectory writes one line per state. Numbers are formatted by p, so
// digit grouping and the decimal mark follow its locale. The trailing
// component of each tuple is the point/vector discriminant.
func printTrajectory(w io.Writer, p *message.Printer, trajectory []sim.Projectile) {
	for i, proj := range trajectory {
		pos, vel := proj.Position, proj.Velocity
		p.Fprintf(w, "step %d: position (%.4f, %.4f, %.4f, w=%g) velocity (%.4f, %.4f, %.4f, w=%g)\n",
			i, pos.X, pos.Y, pos.Z, pos.W, vel.X, vel.Y, vel.Z, vel.W)
	}
}

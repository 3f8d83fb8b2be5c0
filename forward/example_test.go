package forward_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/armkin/core"
	"github.com/katalvlaran/armkin/forward"
)

// ExampleSolve composes a three-joint chain at its zero pose.
//
// Chain: a 0.2 link raised 0.1 off the base, a 0.3 link twisted π/2,
// and a 0.2 forearm — the end-effector rests at (0.7, 0, 0.1).
func ExampleSolve() {
	cfg, err := core.New([]core.JointSpec{
		{D: 0.1, A: 0.2},
		{A: 0.3, Alpha: math.Pi / 2},
		{A: 0.2},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	pose, err := forward.Solve(cfg, []float64{0, 0, 0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("position=(%.4f, %.4f, %.4f)\n",
		pose.Position.X, pose.Position.Y, pose.Position.Z)
	// Output:
	// position=(0.7000, 0.0000, 0.1000)
}

// ExampleChain walks the cumulative transforms renderers use to place
// every joint of the arm.
func ExampleChain() {
	cfg, err := core.New([]core.JointSpec{
		{D: 0.1, A: 0.2},
		{A: 0.3, Alpha: math.Pi / 2},
		{A: 0.2},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	chain, err := forward.Chain(cfg, []float64{0, 0, 0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, tr := range chain {
		p := tr.Position()
		fmt.Printf("joint %d at (%.1f, %.1f, %.1f)\n", i+1, p.X, p.Y, p.Z)
	}
	// Output:
	// joint 1 at (0.2, 0.0, 0.1)
	// joint 2 at (0.5, 0.0, 0.1)
	// joint 3 at (0.7, 0.0, 0.1)
}

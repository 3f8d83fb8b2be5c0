package core_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/armkin/core"
)

// ExampleNew builds an immutable robot description and reads its
// workspace-radius estimate (the plain sum of link lengths).
func ExampleNew() {
	cfg, err := core.New([]core.JointSpec{
		{A: 0.3, Alpha: math.Pi / 2, Limit: core.Limit{Min: -math.Pi, Max: math.Pi}},
		{A: 0.3},
		{A: 0.3},
	}, core.WithName("demo-arm"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s: %d joints, reach %.2f\n", cfg.Name(), cfg.NumJoints(), cfg.WorkspaceRadius())
	// Output:
	// demo-arm: 3 joints, reach 0.90
}

package robots_test

import (
	"fmt"

	"github.com/katalvlaran/armkin/robots"
)

// ExampleNames lists the bundled robot descriptions.
func ExampleNames() {
	fmt.Println(robots.Names())
	// Output:
	// [scara sixaxis threelink]
}

// ExampleLoad picks a bundled robot by name and inspects its chain.
func ExampleLoad() {
	cfg, err := robots.Load("threelink")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s: %d joints, reach %.3f\n", cfg.Name(), cfg.NumJoints(), cfg.WorkspaceRadius())
	// Output:
	// threelink: 3 joints, reach 1.135
}

// SPDX-License-Identifier: MIT

package pins_test

import (
	"fmt"

	"github.com/katalvlaran/stringart/pins"
)

// ExampleGenerate places eight pins on a 100×100 canvas with no safety gap.
func ExampleGenerate() {
	l, err := pins.Generate(100, 100, 8, pins.WithSafetyGap(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("center:", l.Center, "radius:", l.Radius)
	fmt.Println(l.Pins)
	// Output:
	// center: (50,50) radius: 50
	// [(100,50) (85,85) (50,100) (15,85) (0,50) (15,15) (50,0) (85,15)]
}

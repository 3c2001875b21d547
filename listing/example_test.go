// SPDX-License-Identifier: MIT

package listing_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/stringart/listing"
)

// ExampleWrite prints a short sequence four pins per line.
func ExampleWrite() {
	seq := []int{0, 150, 12, 163, 27, 181, 40, 199, 55}
	if err := listing.Write(os.Stdout, seq, listing.WithChunk(4)); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// 1-4:   0 150  12 163
	// 5-8:  27 181  40 199
	// 9-9:  55
}

package morton_test

import (
	"fmt"

	"github.com/hupe1980/sightline/morton"
)

func ExampleKey() {
	k, _ := morton.Key(morton.Pt(3, 5))
	fmt.Println(k, morton.PointOf(k))

	_, err := morton.Key(morton.Pt(-1, 0))
	fmt.Println(err)
	// Output:
	// 39 (3,5)
	// Number not within acceptable 32-bit range: x=-1
}

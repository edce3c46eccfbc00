// File: point/example_test.go
package point_test

import (
	"fmt"

	"github.com/katalvlaran/lvpattern/point"
)

// ExampleFromCoordinates builds a dataset of (onset, pitch) events and shows
// that construction normalises order and drops duplicates.
func ExampleFromCoordinates() {
	ds, err := point.FromCoordinates([][]float64{
		{2, 64}, {0, 60}, {1, 62}, {0, 60},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ds.Len(), ds)
	fmt.Println(ds.Contains(point.MustNew(1, 62)))

	// Output:
	// 3 {(0, 60) (1, 62) (2, 64)}
	// true
}

// ExampleSet_Anchored shows the canonical form used to recognise translated
// copies of the same configuration.
func ExampleSet_Anchored() {
	motif, _ := point.FromCoordinates([][]float64{{4, 67}, {5, 69}})
	fmt.Println(motif.Anchored())

	// Output:
	// {(0, 0) (1, 2)}
}

package pipeline_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/pipeline"
)

// ExampleMultiply multiplies a 2x3 matrix by a 3x2 matrix.
func ExampleMultiply() {
	a, _ := matrix.NewDenseFrom(2, 3, matrix.RowMajor, []float64{
		1, 2, 3,
		1, 1, 1,
	})
	b, _ := matrix.NewDenseFrom(3, 2, matrix.RowMajor, []float64{
		2, 3,
		3, 4,
		5, 6,
	})

	c, err := pipeline.Multiply(a, b)
	if err != nil {
		fmt.Println("multiply failed:", err)
		return
	}
	fmt.Print(c)
	// Output:
	// [23, 29]
	// [10, 13]
}

package haar_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dwt/haar"
)

func ExampleTransform() {
	batch := [][]float64{{1, 2, 3, 4}}

	out, _ := haar.Transform(batch, haar.ModeClassic)
	fmt.Println(out[0])
	// Output:
	// [10 -4 -1 -1]
}

func ExampleTransform_orthonormal() {
	batch := [][]float64{{1, 2, 3, 4}}

	out, _ := haar.Transform(batch, haar.ModeOrthonormal)
	fmt.Printf("%.4f %.4f %.4f %.4f\n", out[0][0], out[0][1], out[0][2], out[0][3])
	// Output:
	// 5.0000 -2.0000 -0.7071 -0.7071
}

func ExampleBandEnergies() {
	out, _ := haar.Transform([][]float64{{1, 2, 3, 4}}, haar.ModeClassic)

	fmt.Println(haar.BandEnergies(out[0]))
	// Output:
	// [100 16 2]
}

func ExampleMatrixTransformer() {
	mt, _ := haar.NewMatrixTransformer(4, haar.ModeClassic)

	out, _ := mt.Transform([][]float64{{1, 2, 3, 4}})
	fmt.Println(out[0])
	// Output:
	// [10 -4 -1 -1]
}

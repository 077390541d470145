package response_test

import (
	"fmt"

	"github.com/attilaasghari/signals-systems-simulator/dsp/lti"
	"github.com/attilaasghari/signals-systems-simulator/dsp/response"
)

func ExampleComputer_Impulse() {
	// A static gain of 2: the impulse response is a scaled delta.
	tf, err := lti.New([]float64{2}, []float64{1}, 1000)
	if err != nil {
		panic(err)
	}

	c := response.NewComputer()
	_, h := c.Impulse(tf, []float64{0, 0.001, 0.002})

	fmt.Println(h)
	// Output:
	// [2 0 0]
}

func ExampleFilter() {
	// A two-tap averager smooths an impulse into two half-height samples.
	y := response.Filter([]float64{0.5, 0.5}, []float64{1}, []float64{1, 0, 0, 0})

	fmt.Println(y)
	// Output:
	// [0.5 0.5 0 0]
}

package signal_test

import (
	"fmt"

	"github.com/attilaasghari/signals-systems-simulator/dsp/core"
	"github.com/attilaasghari/signals-systems-simulator/dsp/signal"
)

func ExampleGenerator_Generate() {
	gen := signal.NewGenerator(core.WithSampleRate(8), core.WithDuration(1))

	step := signal.NewUnitStep()
	step.StepTime = 0.5

	s, err := gen.Generate(step)
	if err != nil {
		panic(err)
	}

	fmt.Println(s.Len())
	fmt.Println(s.Samples[3], s.Samples[4])
	// Output:
	// 8
	// 0 1
}

func ExampleGenerator_Generate_custom() {
	gen := signal.NewGenerator(core.WithSampleRate(4), core.WithDuration(1))

	s, err := gen.Generate(signal.CustomFunction{Function: "2*t+1"})
	if err != nil {
		panic(err)
	}

	fmt.Println(s.Samples)
	// Output:
	// [1 1.5 2 2.5]
}

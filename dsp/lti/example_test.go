package lti_test

import (
	"fmt"

	"github.com/attilaasghari/signals-systems-simulator/dsp/lti"
)

func ExampleDesign() {
	tf, err := lti.Design(lti.Lowpass{Cutoff: 50, Order: 2}, 1000)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(tf.B), len(tf.A), tf.A[0], tf.Stable())
	// Output:
	// 3 3 1 true
}

func ExampleDesign_movingAverage() {
	tf, err := lti.Design(lti.MovingAverage{Window: 4}, 1000)
	if err != nil {
		panic(err)
	}

	fmt.Println(tf.B)
	fmt.Println(tf.A)
	// Output:
	// [0.25 0.25 0.25 0.25]
	// [1]
}

func ExampleDesign_custom() {
	_, err := lti.Design(lti.Custom{Numerator: "[1]", Denominator: "[0]"}, 1000)
	fmt.Println(err != nil)
	// Output:
	// true
}

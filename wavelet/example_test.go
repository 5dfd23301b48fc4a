package wavelet_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/wavelet"
)

func ExampleNew() {
	w, err := wavelet.New(wavelet.FamilyHaar)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s nc=%d offset=%d\n", w.Name(), w.Len(), w.Offset())
	fmt.Printf("h = [%.4f %.4f]\n", w.H()[0], w.H()[1])
	fmt.Printf("g = [%.4f %.4f]\n", w.G()[0], w.G()[1])
	// Output:
	// haar nc=2 offset=0
	// h = [0.7071 0.7071]
	// g = [0.7071 -0.7071]
}

func ExampleParse() {
	w, err := wavelet.Parse("haar")
	if err != nil {
		panic(err)
	}
	fmt.Println(w.Family() == wavelet.FamilyHaar)

	_, err = wavelet.Parse("db4")
	fmt.Println(err != nil)
	// Output:
	// true
	// true
}

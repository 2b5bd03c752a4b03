package smallvec_test

import (
	"fmt"

	"github.com/webbmaffian/go-smallvec/smallvec"
)

func Example() {
	var v smallvec.Vector[int, [4]int]

	for i := 1; i <= 4; i++ {
		_ = v.PushBack(i * i)
	}

	fmt.Println(v.Mode(), v.Cap(), &v)

	_ = v.PushBack(25)
	fmt.Println(v.Mode(), v.Cap(), &v)

	_ = v.Erase(0)
	_ = v.Erase(0)
	_ = v.ShrinkToFit()
	fmt.Println(v.Mode(), v.Cap(), &v)

	// Output:
	// inline 4 [1 4 9 16]
	// heap 8 [1 4 9 16 25]
	// inline 4 [9 16 25]
}

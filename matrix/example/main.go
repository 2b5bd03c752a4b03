package main

import (
	"fmt"
	"log"

	"github.com/webbmaffian/go-smallvec/matrix"
)

func main() {
	a, err := matrix.NewDenseFrom(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	if err != nil {
		log.Fatal(err)
	}

	defer a.Free()

	id, err := matrix.Identity[float64](3)

	if err != nil {
		log.Fatal(err)
	}

	defer id.Free()

	c, err := matrix.MulStrassen(a, id)

	if err != nil {
		log.Fatal(err)
	}

	defer c.Free()

	fmt.Println("a x I == a:", c.Equal(a))

	s, err := matrix.NewSym[float64](100)

	if err != nil {
		log.Fatal(err)
	}

	defer s.Free()

	s.Set(1, 2, 345.678)

	fmt.Println(*s.Get(2, 1))
	fmt.Println(s.Dims())
}

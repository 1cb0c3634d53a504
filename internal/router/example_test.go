package router_test

import (
	"fmt"

	"github.com/jask/viewshell/internal/router"
)

func Example() {
	r := router.Default()
	r.Subscribe(func(view router.ViewID) {
		fmt.Printf("render %s for %s\n", view, r.Path())
	})

	for _, link := range r.Links() {
		fmt.Printf("%s -> %s\n", link.Label, link.Path)
	}

	r.Navigate("/x")
	r.Navigate("/unknown")

	// Output:
	// Home -> /
	// X -> /x
	// Y -> /y
	// render x for /x
	// render home for /unknown
}

package frame_test

import (
	"fmt"

	"github.com/plus3/vertices/frame"
)

type Viewport struct {
	Width, Height int
}

// ExampleProvide shows that every accessor for a type shares the same value.
func ExampleProvide() {
	resources := frame.NewResources()

	viewport := frame.Provide(resources, Viewport{Width: 800, Height: 480})
	fmt.Printf("%dx%d\n", viewport.Get().Width, viewport.Get().Height)

	viewport.Get().Width = 1280
	same := frame.Provide[Viewport](resources)
	fmt.Printf("%dx%d\n", same.Get().Width, same.Get().Height)

	// Output:
	// 800x480
	// 1280x480
}

// Package costgrid_test provides runnable examples for building and
// querying cost grids. Each example is runnable via “go test -run Example”,
// showing both code and expected output.
package costgrid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/costgrid"
)

// ExampleParse demonstrates parsing ASCII digit rows into a Grid and
// querying its dimensions and cell costs.
func ExampleParse() {
	// 1) Parse three rows of digits; each character is one cell cost.
	g, err := costgrid.Parse("241\n321\n325")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Query the dimensions and two corner costs.
	rows, cols := g.Bounds()
	fmt.Printf("bounds: %d×%d\n", rows, cols)
	fmt.Printf("top-left cost: %d\n", g.Cost(g.TopLeft()))
	fmt.Printf("bottom-right cost: %d\n", g.Cost(g.BottomRight()))
	// Output:
	// bounds: 3×3
	// top-left cost: 2
	// bottom-right cost: 5
}

// ExampleGrid_Step demonstrates bounds-checked movement: stepping off
// the grid reports ok=false instead of producing an invalid location.
func ExampleGrid_Step() {
	g, err := costgrid.Parse("12\n34")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 1) A legal step East from the top-left corner.
	next, ok := g.Step(g.TopLeft(), costgrid.East)
	fmt.Printf("east: %v at (%d,%d)\n", ok, next.Row, next.Col)

	// 2) Stepping North off the top edge fails.
	_, ok = g.Step(g.TopLeft(), costgrid.North)
	fmt.Printf("north: %v\n", ok)
	// Output:
	// east: true at (0,1)
	// north: false
}

// ExampleHeading_Left demonstrates the closed rotation cycle: four
// left turns return to the starting heading, and no single turn ever
// reverses it.
func ExampleHeading_Left() {
	hd := costgrid.North
	for i := 0; i < 4; i++ {
		hd = hd.Left()
		fmt.Println(hd)
	}
	// Output:
	// West
	// South
	// East
	// North
}

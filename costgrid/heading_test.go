package costgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridpath/costgrid"
)

// TestHeading_RotationCycle verifies Left and Right each walk the full
// 4-cycle and invert one another.
func TestHeading_RotationCycle(t *testing.T) {
	// Right: N→E→S→W→N.
	assert.Equal(t, costgrid.East, costgrid.North.Right())
	assert.Equal(t, costgrid.South, costgrid.East.Right())
	assert.Equal(t, costgrid.West, costgrid.South.Right())
	assert.Equal(t, costgrid.North, costgrid.West.Right())

	// Left: N→W→S→E→N.
	assert.Equal(t, costgrid.West, costgrid.North.Left())
	assert.Equal(t, costgrid.South, costgrid.West.Left())
	assert.Equal(t, costgrid.East, costgrid.South.Left())
	assert.Equal(t, costgrid.North, costgrid.East.Left())

	for hd := costgrid.Heading(0); hd < costgrid.NumHeadings; hd++ {
		assert.Equal(t, hd, hd.Left().Right(), "Right must undo Left")
		assert.Equal(t, hd, hd.Right().Left(), "Left must undo Right")
	}
}

// TestHeading_NoSingleStepReversal pins the structural guarantee that a
// single rotation can never face a heading backward: the opposite
// heading is exactly two turns away, in either direction.
func TestHeading_NoSingleStepReversal(t *testing.T) {
	for hd := costgrid.Heading(0); hd < costgrid.NumHeadings; hd++ {
		opposite := hd.Right().Right()
		assert.NotEqual(t, opposite, hd.Left(), "one left turn must not reverse %v", hd)
		assert.NotEqual(t, opposite, hd.Right(), "one right turn must not reverse %v", hd)
		assert.Equal(t, opposite, hd.Left().Left(), "two turns either way reach the opposite of %v", hd)
	}
}

func TestHeading_String(t *testing.T) {
	assert.Equal(t, "North", costgrid.North.String())
	assert.Equal(t, "East", costgrid.East.String())
	assert.Equal(t, "South", costgrid.South.String())
	assert.Equal(t, "West", costgrid.West.String())
}

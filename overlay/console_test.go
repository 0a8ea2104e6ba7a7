package overlay

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole(t *testing.T) {
	t.Run("pinned lines survive scrolling", func(t *testing.T) {
		c := NewConsole(2, "Translate", "3D Sword")
		for i := 0; i < 5; i++ {
			c.Write(fmt.Sprintf("event %d", i))
		}

		assert.Equal(t, []string{"Translate", "3D Sword", "event 3", "event 4"}, c.Lines())
	})

	t.Run("lines are copied", func(t *testing.T) {
		c := NewConsole(4, "help")
		lines := c.Lines()
		lines[0] = "changed"
		assert.Equal(t, []string{"help"}, c.Lines())
	})

	t.Run("zero value is usable", func(t *testing.T) {
		var c Console
		c.Write("reset")
		assert.Equal(t, []string{"reset"}, c.Lines())
	})
}

func TestItems(t *testing.T) {
	var items Items
	items.Add(ConsoleWindow(&Console{}))
	items.Add(Item{Name: "custom", Render: func() {}})

	assert.Equal(t, 2, items.Len())
	assert.Equal(t, "Console", items.list[0].Name)
}

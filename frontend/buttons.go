package frontend

import (
	"time"

	"github.com/hubastard/marley/engine/colors"
	"github.com/hubastard/marley/engine/ui"
)

// UpEntryName labels the entry that leaves the current directory.
const UpEntryName = ".."

// NewROMButton is a game entry: clickable to launch, holdable for the
// entry's options. Its events carry the ROM path.
func NewROMButton(name, path string, hold time.Duration) *ui.Button {
	return ui.NewButton(name, ui.NewHoldable(path, hold)).
		WidthExpand().
		Padding2(12, 8)
}

// NewDirectoryBrowserButton is a click-only directory entry. up marks the
// entry that navigates to the parent.
func NewDirectoryBrowserButton(name, path string, up bool) *ui.Button {
	b := ui.NewButton(name, ui.NewClickable(path)).
		WidthExpand().
		Padding2(12, 8)
	if up {
		b.TextColor(colors.Hex(0xb0b0b0))
	} else {
		b.TextColor(colors.Hex(0xffd479))
	}
	return b
}

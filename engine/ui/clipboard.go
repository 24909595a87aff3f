package ui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/1siamBot/iso-sandbox/engine/maplib"
)

var errClipboardUnsupported = errors.New("clipboard unsupported on this system")

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

// CopyHeightmap puts the grid's text heightmap on the system clipboard
func CopyHeightmap(g *maplib.Grid) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	if err := writeClipboard(g.Heightmap()); err != nil {
		return fmt.Errorf("copy heightmap: %w", err)
	}
	return nil
}

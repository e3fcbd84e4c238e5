// Package clipboard reads the source image off the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	xclipboard "golang.design/x/clipboard"
)

var ErrNoImage = errors.New("no image found in clipboard")

// Read returns the clipboard image as PNG-encoded bytes, the format
// clipboard captures arrive in.
func Read() ([]byte, error) {
	if err := xclipboard.Init(); err != nil {
		return nil, fmt.Errorf("access clipboard: %w", err)
	}
	data := xclipboard.Read(xclipboard.FmtImage)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: copy an image first", ErrNoImage)
	}
	return data, nil
}

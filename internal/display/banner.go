package display

import (
	"fmt"
	"io"

	"github.com/backmassage/qfxrenamer/internal/term"
)

// PrintBanner writes the ASCII art banner to w; uses Magenta if colors are
// enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, `  ___  _____  __  ___
 / _ \|  ___|\ \/ / _ \ ___ _ __   __ _ _ __ ___   ___ _ __
| | | | |_    \  /| |_) / _ \ '_ \ / _`+"`"+` | '_ `+"`"+` _ \ / _ \ '__|
| |_| |  _|   /  \|  _ <  __/ | | | (_| | | | | | |  __/ |
 \__\_\_|    /_/\_\_| \_\___|_| |_|\__,_|_| |_| |_|\___|_|
`)
	fmt.Fprint(w, term.NC)
}

// FARBS - pywal-driven theming engine for Firefox
//
// FARBS talks to the pywal native helper over Firefox native messaging and
// derives browser, extension and companion themes from pywal palettes.
package main

import (
	"github.com/Frewacom/FARBS-Firefox/internal/cli"
)

func main() {
	cli.Execute()
}

// Command poffset prints the FFmpeg struct offsets
// and constants of the library it was built against.
//
// Arguments are ignored. The output is meant to be
// pasted into the binding's generated config file.
package main

import (
	"io"
	"log"
	"os"

	"github.com/zimwip/poffset"
)

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatalf("poffset: %v", err)
	}
}

func run(w io.Writer) error {
	_, err := poffset.NewReport().WriteTo(w)

	return err
}

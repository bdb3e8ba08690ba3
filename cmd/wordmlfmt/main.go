// Command wordmlfmt reads a WordprocessingML part and re-emits it in
// canonical form: fixed child order, fixed attribute spelling, defaults
// substituted. Unknown content is dropped, as the tolerant reader defines.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/benjaminschreck/go-wordml/pkg/wordml"
)

const usage = `Usage: wordmlfmt <part> [file]

Parts:
  document    main document part (w:document)
  header      header part (w:hdr)
  footer      footer part (w:ftr)
  styles      style definitions part (w:styles)
  numbering   numbering definitions part (w:numbering)
  settings    settings part (w:settings)

Reads the part from file (or stdin) and writes the canonical form to
stdout. Set WORDML_LOG_LEVEL=debug to see dropped content on stderr.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	part := os.Args[1]

	in := os.Stdin
	if len(os.Args) > 2 {
		f, err := os.Open(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "wordmlfmt: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	wordml.UpdateLoggerFromConfig()

	out, err := reformat(part, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wordmlfmt: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}

func reformat(part string, in io.Reader) (string, error) {
	switch part {
	case "document":
		d, err := wordml.ReadDocument(in)
		if err != nil {
			return "", err
		}
		return d.XML()
	case "header":
		h, err := wordml.ReadHeader(in)
		if err != nil {
			return "", err
		}
		return h.XML()
	case "footer":
		f, err := wordml.ReadFooter(in)
		if err != nil {
			return "", err
		}
		return f.XML()
	case "styles":
		s, err := wordml.ReadStyles(in)
		if err != nil {
			return "", err
		}
		return s.XML()
	case "numbering":
		n, err := wordml.ReadNumberings(in)
		if err != nil {
			return "", err
		}
		return n.XML()
	case "settings":
		s, err := wordml.ReadSettings(in)
		if err != nil {
			return "", err
		}
		return s.XML()
	default:
		return "", fmt.Errorf("unknown part %q", part)
	}
}

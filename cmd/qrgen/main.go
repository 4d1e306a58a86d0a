package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/qrforge/qrgen"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g struct {
	scale  int         // image pixels per module
	margin int         // quiet zone width for terminal output
	fn     string      // output filename
	mode   qrgen.Mode  // encoding mode
	lev    qrgen.Level // error correction level
	ver    int         // version, 0 for automatic
	format string      // output format
	latin1 bool        // convert input to Latin-1
	upper  bool        // convert input to uppercase
	stats  bool        // print statistics
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR code generator\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.
`)
	cl.PrintOptions(w)
}

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

var modes = []string{"numeric", "alphanumeric", "byte"}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	enc := getopt.Enum('e', modes, "byte", "encoding mode, one of: "+
		strings.Join(modes, ", "), "mode")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "m",
		"error correction level, lowest to highest", "l|m|q|h")
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 40},
		"QR code version, smallest that fits if not given", "ver")
	scale := getopt.Unsigned('s', 4,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 1 << 12},
		`image pixels per QR module ("pixel"); `+
			`ignored for types utf8 and ascii`, "scale")
	margin := getopt.Unsigned('m', 4, &getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 0, Max: 16},
		`quiet zone width in modules for types utf8 and ascii; `+
			`image output always uses the standard 4`, "margin")
	fno := getopt.Flag(&g.fn, 'o',
		`output file, or "-" for standard output`, "file")
	ff := getopt.Enum('t', []string{"png", "pbm", "utf8", "ascii"}, "",
		`output format, one of: png, pbm, utf8, ascii; `+
			`if no -o is given and standard output is a TTY, `+
			`default is utf8, otherwise png`, "type")
	getopt.Flag(&g.latin1, '1', "convert input to Latin-1")
	getopt.Flag(&g.upper, 'i', "ignore case, convert input to uppercase")
	getopt.Flag(&g.stats, 'S', "print code statistics to standard error")

	getopt.Parse()
	for i, v := range modes {
		if *enc == v {
			g.mode = qrgen.Mode(i)
		}
	}
	g.lev = qrgen.Level(strings.Index("lmqhLMQH", *lev) & 3)
	g.ver = int(*ver)
	g.scale = int(*scale)
	g.margin = int(*margin)
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	g.format = *ff
	if g.fn == "-" {
		g.fn = ""
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.upper {
		s = strings.ToUpper(s)
	}
	if g.latin1 {
		var err error
		if s, err = qrgen.Latin1(s); err != nil {
			log.Fatalln(err)
		}
	}

	q := qrgen.New(s, qrgen.WithMode(g.mode), qrgen.WithLevel(g.lev),
		qrgen.WithVersion(g.ver))
	var w = os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn,
			os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666); err != nil {
			log.Fatalln(err)
		}
	}
	var err error
	switch g.format {
	case "png":
		var img image.Image
		if img, err = q.Image(g.scale); err == nil {
			err = png.Encode(w, img)
		}
	case "pbm":
		err = q.WritePBM(w, g.scale)
	case "utf8":
		err = utf8Art(q, w)
	default:
		err = asciiArt(q, w)
	}
	if err == nil && g.fn != "" {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
	if g.stats {
		printStats(q)
	}
}

// utf8Art writes the code two module rows per line using half block
// characters. Dark modules are rendered in the terminal background
// colour, suiting light-on-dark terminals.
func utf8Art(q *qrgen.QR, w io.Writer) error {
	m, err := q.Matrix()
	if err != nil {
		return err
	}
	bord := g.margin
	var b strings.Builder
	for y := -bord; y < m.Size+bord; y += 2 {
		for x := -bord; x < m.Size+bord; x++ {
			n := 0
			if m.Dark(x, y) {
				n = 2
			}
			if m.Dark(x, y+1) {
				n++
			}
			b.WriteString([4]string{"█", "▀", "▄", " "}[n])
		}
		b.WriteByte('\n')
	}
	_, err = io.WriteString(w, b.String())
	return err
}

// asciiArt writes the code one module row per line, two characters
// per module.
func asciiArt(q *qrgen.QR, w io.Writer) error {
	m, err := q.Matrix()
	if err != nil {
		return err
	}
	bord := g.margin
	var b strings.Builder
	for y := -bord; y < m.Size+bord; y++ {
		for x := -bord; x < m.Size+bord; x++ {
			p := "  "
			if m.Dark(x, y) {
				p = "##"
			}
			b.WriteString(p)
		}
		b.WriteByte('\n')
	}
	_, err = io.WriteString(w, b.String())
	return err
}

func printStats(q *qrgen.QR) {
	s, err := q.Stats()
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Fprintf(os.Stderr, `version: %d
mode: %v
error correction level: %v
mask pattern: %d
size: %dx%d modules
function modules: %d
data modules: %d
codewords: %d data, %d check
capacity used: %.1f%%
`, s.Version, s.Mode, s.Level, s.Mask, s.Size, s.Size,
		s.Function, s.DataModules, s.DataBytes, s.CheckBytes,
		s.Utilization*100)
}

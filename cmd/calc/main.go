package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/zephyrtronium/calculator"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command with the given arguments and returns the exit
// status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)
	var (
		inname, verb, opname string
		echo                 bool
	)
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: calc [flags] [expression ...]")
		fmt.Fprintln(fs.Output(), "       calc -op name [--] operand [operand]")
		fs.PrintDefaults()
	}
	defverb := os.Getenv("CALC_FORMAT")
	if defverb == "" {
		defverb = "%g"
	}
	fs.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	fs.StringVar(&verb, "fmt", defverb, "result formatting string")
	fs.StringVar(&opname, "op", "", "apply the named operation to the operands given as arguments (one of "+opnames()+")")
	fs.BoolVar(&echo, "echo", false, "print parsed expressions")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	verb += "\n"

	if opname != "" {
		return calcop(logger, stdout, opname, fs.Args(), verb)
	}

	var srcs []string
	var in io.Reader
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			logger.Print(err)
			return 1
		}
		defer f.Close()
		in = f
	case inname == "-", fs.NArg() == 0:
		in = stdin
	}
	if in != nil {
		scan := bufio.NewScanner(in)
		for scan.Scan() {
			if s := strings.TrimSpace(scan.Text()); s != "" {
				srcs = append(srcs, s)
			}
		}
		if err := scan.Err(); err != nil {
			logger.Print(err)
			return 1
		}
	}
	srcs = append(srcs, fs.Args()...)

	status := 0
	for _, src := range srcs {
		a, err := calculator.Parse(src)
		if err != nil {
			fmt.Fprintln(stdout, describe(src, err))
			status = 1
			continue
		}
		if echo {
			fmt.Fprintf(stdout, "%v : ", a)
		}
		r, err := a.Eval()
		if err != nil {
			fmt.Fprintln(stdout, err)
			status = 1
			continue
		}
		fmt.Fprintf(stdout, verb, r)
	}
	return status
}

// calcop applies a named operation to operands given as text.
func calcop(logger *log.Logger, stdout io.Writer, name string, args []string, verb string) int {
	operands := make([]float64, 0, len(args))
	for _, arg := range args {
		x, err := calculator.ParseOperand(arg)
		if err != nil {
			logger.Printf("invalid operand %q", arg)
			return 2
		}
		operands = append(operands, x)
	}
	r, err := calculator.Calculate(name, operands...)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}
	fmt.Fprintf(stdout, verb, r)
	return 0
}

// describe formats an error for an expression, pointing at the offending field
// when there is one.
func describe(src string, err error) string {
	e, ok := err.(*calculator.Error)
	if !ok || e.Pos() == 0 {
		return err.Error()
	}
	return strconv.Itoa(e.Pos()) + ": " + err.Error() + ": " + strconv.Quote(src)
}

func opnames() string {
	var v []string
	for _, op := range calculator.Ops() {
		v = append(v, op.String())
	}
	return strings.Join(v, " ")
}


// Command bracer evaluates math expressions over complex numbers.
//
// Expressions are taken from the arguments, or from stdin if there are none.
// Each result is printed on its own line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zephyrtronium/bracer"
)

// Exit codes.
const (
	exitOK    = 0
	exitEval  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the command's entry point, separated from main for testing.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgname          string
		prec             int
		x                float64
		rpn, nl, verbose bool
	)
	fs.StringVar(&cfgname, "config", "", "YAML configuration file")
	fs.IntVar(&prec, "p", defaultPrecision, "digits after the decimal point")
	fs.Float64Var(&x, "var", 0, "value of "+bracer.Variable)
	fs.BoolVar(&rpn, "rpn", false, "print the postfix form of each expression")
	fs.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	fs.BoolVar(&verbose, "v", false, "log debug events to stderr")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg := defaultConfig()
	if cfgname != "" {
		c, err := loadConfig(cfgname)
		if err != nil {
			fmt.Fprintf(stderr, "bracer: %v\n", err)
			return exitUsage
		}
		cfg = c
	}
	// Flags given explicitly override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Precision = prec
		case "var":
			cfg.Var = &x
		case "rpn":
			cfg.RPN = rpn
		case "v":
			cfg.Debug = verbose
		}
	})

	exprs, err := inputs(fs.Args(), stdin, nl)
	if err != nil {
		fmt.Fprintf(stderr, "bracer: reading input: %v\n", err)
		return exitUsage
	}

	log := zap.NewNop()
	if cfg.Debug {
		log = devLogger(stderr)
	}
	defer log.Sync()

	p := bracer.New(cfg.Precision, bracer.Logger(log))
	code := exitOK
	for _, expr := range exprs {
		r, err := eval(p, expr, cfg.Var)
		if err != nil {
			fmt.Fprintf(stderr, "bracer: %q: %v\n", expr, err)
			code = exitEval
			continue
		}
		if cfg.RPN {
			fmt.Fprintf(stdout, "%q : ", p.RPN())
		}
		fmt.Fprintln(stdout, r)
	}
	return code
}

func eval(p *bracer.Parser, expr string, x *float64) (string, error) {
	if err := p.Parse(expr); err != nil {
		return "", err
	}
	if x == nil {
		return p.Evaluate()
	}
	return p.EvaluateVar(*x)
}

// inputs collects the expressions to evaluate. With no arguments, stdin is one
// expression, or one per non-blank line if lines is set.
func inputs(args []string, stdin io.Reader, lines bool) ([]string, error) {
	if len(args) != 0 {
		return args, nil
	}
	if !lines {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var r []string
	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		r = append(r, sc.Text())
	}
	return r, sc.Err()
}

func devLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core, zap.Development())
}

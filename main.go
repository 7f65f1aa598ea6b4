package main

import (
	"context"
	"errors"
	"fmt"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/haikoschol/nbtstat/internal/nbstat"
	"github.com/haikoschol/nbtstat/internal/network"
	"github.com/spf13/pflag"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
)

var errUsage = errors.New("usage error")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if os.Getenv("NBTSTAT_DEBUG") != "" {
		network.Logger.SetOutput(os.Stderr)
	}

	os.Exit(run(ctx, os.Args, os.Stdout, os.Stderr))
}

type options struct {
	target  string
	port    int
	timeout int
}

// onceInt is an integer option that may appear at most once.
type onceInt struct {
	name  string
	value int
	seen  mapset.Set[string]
}

func (o *onceInt) String() string {
	return strconv.Itoa(o.value)
}

func (o *onceInt) Type() string {
	return "int"
}

func (o *onceInt) Set(s string) error {
	if !o.seen.Add(o.name) {
		return fmt.Errorf("incorrect number of arguments for option -%s", o.name)
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid value %q for option -%s", s, o.name)
	}
	o.value = v
	return nil
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	prog := filepath.Base(args[0])

	if len(args) != 2 && len(args) != 4 && len(args) != 6 {
		fmt.Fprintf(stderr, "-%s: incorrect number of arguments\n", prog)
		printUsage(stderr, prog)
		return options{}, errUsage
	}

	seen := mapset.NewSet[string]()
	port := &onceInt{name: "p", seen: seen}
	timeout := &onceInt{name: "t", seen: seen}

	fs := pflag.NewFlagSet(prog, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.VarP(port, "port", "p", "UDP port of the name service")
	fs.VarP(timeout, "timeout", "t", "response timeout in milliseconds")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintf(stderr, "-%s: %v\n", prog, err)
		return options{}, errUsage
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "-%s: expected exactly one target\n", prog)
		printUsage(stderr, prog)
		return options{}, errUsage
	}

	return options{
		target:  fs.Arg(0),
		port:    port.value,
		timeout: timeout.value,
	}, nil
}

func printUsage(w io.Writer, prog string) {
	fmt.Fprintf(w, "\nUsage:   %s [-p port] [-t timeout] target\n", prog)
	fmt.Fprintf(w, "Example: %s -p 137 -t 3000 192.168.1.200\n", prog)
}

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return 1
	}
	prog := filepath.Base(args[0])

	result, err := network.QueryHost(ctx, opts.target, opts.port, opts.timeout)
	if err != nil {
		code := nbstat.CodeOf(err)
		fmt.Fprintf(stderr, "-%s: error! %s (%s)\n", prog, nbstat.Describe(code), code)
		network.Logger.Println(err)
		return 1
	}

	if err := nbstat.WriteTable(stdout, result); err != nil {
		log.Println(err)
		return 1
	}
	return 0
}

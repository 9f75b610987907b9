// Command mlcrt inspects and invokes functions in the native runtime
// namespace from the command line.
//
//	mlcrt funcs
//	mlcrt call mlcrt.echo hello
//	mlcrt call --device cpu:0 add 2 3
//
// Argument literals are parsed as int, then float, then fall back to string.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/mlcgo/go-mlcrt/runtime"
	"github.com/mlcgo/go-mlcrt/value"
)

var version = "v0.1.0"

func main() {
	runtimeFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "device",
			Aliases: []string{"d"},
			Usage:   "Default device as type:id (e.g. opencl:0, cpu:1)",
			Value:   "opencl:0",
		},
		&cli.BoolFlag{
			Name:  "stub",
			Usage: "Use the placeholder namespace (every lookup succeeds, calls return nil)",
		},
	}

	cmd := &cli.Command{
		Name:    "mlcrt",
		Usage:   "Inspect and invoke functions in the native runtime namespace",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:   "funcs",
				Usage:  "List the registered function names",
				Flags:  runtimeFlags,
				Action: funcsAction,
			},
			{
				Name:      "call",
				Usage:     "Invoke a function by name with literal arguments",
				ArgsUsage: "<name> [args...]",
				Flags:     runtimeFlags,
				Action:    callAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "mlcrt: %v\n", err)
		os.Exit(1)
	}
}

// newRuntime builds the runtime from the root flags.
func newRuntime(cmd *cli.Command) (*runtime.Runtime, error) {
	dev, err := runtime.ParseDevice(cmd.String("device"))
	if err != nil {
		return nil, err
	}
	opts := []runtime.Option{runtime.WithDefaultDevice(dev)}
	if cmd.Bool("stub") {
		opts = append(opts, runtime.WithStubNamespace())
	}
	return runtime.New(opts...), nil
}

func funcsAction(ctx context.Context, cmd *cli.Command) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	for _, name := range rt.FuncNames() {
		fmt.Println(name)
	}
	return nil
}

func callAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: mlcrt call <name> [args...]")
	}
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}

	name := cmd.Args().First()
	fn, err := rt.GetFunction(name)
	if err != nil {
		return err
	}

	for _, lit := range cmd.Args().Tail() {
		fn.PushArg(parseLiteral(lit))
	}
	res, err := fn.Invoke()
	if err != nil {
		return err
	}

	fmt.Printf("%s (device %s)\n", res, rt.Device())
	return nil
}

// parseLiteral converts a command-line literal into a Value:
// int first, then float, then string.
func parseLiteral(s string) value.Value {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value.NewInt(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return value.NewFloat(f)
	}
	return value.NewStr(s)
}

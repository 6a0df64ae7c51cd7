// Command bytepack packs and unpacks binary data described by a format
// string, for inspecting layouts from the shell.
//
//	bytepack size '!bhl'
//	bytepack pack '<2Hd' 1 2 1.0
//	bytepack unpack '<2Hd' 01000200000000000000f03f
//	bytepack iter '!BB' 01fe01fe
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/bytepack/bytepack"
)

func main() {
	app := &cli.Command{
		Name:  "bytepack",
		Usage: "pack and unpack binary data described by a format string",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			sizeCmd(),
			packCmd(),
			unpackCmd(),
			iterCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func verboseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "verbose",
		Usage: "log pack and unpack calls",
	}
}

func setupLogging(cmd *cli.Command) {
	if cmd.Bool("verbose") {
		bytepack.EnableLogging(true)
		bytepack.SetLogWriters(os.Stderr)
	}
}

func sizeCmd() *cli.Command {
	return &cli.Command{
		Name:      "size",
		Usage:     "print the byte length a format's layout occupies",
		ArgsUsage: "<format>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("usage: size <format>")
			}
			n, err := bytepack.CalcSize(cmd.Args().First())
			if err != nil {
				return err
			}
			fmt.Println(n)
			return nil
		},
	}
}

func packCmd() *cli.Command {
	return &cli.Command{
		Name:      "pack",
		Usage:     "pack values and print the result as hex",
		ArgsUsage: "<format> [value...]",
		Flags:     []cli.Flag{verboseFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return fmt.Errorf("usage: pack <format> [value...]")
			}
			setupLogging(cmd)

			format := cmd.Args().First()
			vals, err := parseValues(format, cmd.Args().Tail())
			if err != nil {
				return err
			}

			data, err := bytepack.Pack(format, vals...)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(data))
			return nil
		},
	}
}

func unpackCmd() *cli.Command {
	return &cli.Command{
		Name:      "unpack",
		Usage:     "unpack hex data and print one value per line",
		ArgsUsage: "<format> <hex>",
		Flags:     []cli.Flag{verboseFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("usage: unpack <format> <hex>")
			}
			setupLogging(cmd)

			data, err := hex.DecodeString(cmd.Args().Get(1))
			if err != nil {
				return err
			}

			vals, err := bytepack.Unpack(data, cmd.Args().First())
			if err != nil {
				return err
			}
			for _, v := range vals {
				printValue(v)
			}
			return nil
		},
	}
}

func iterCmd() *cli.Command {
	return &cli.Command{
		Name:      "iter",
		Usage:     "unpack successive windows of hex data, one window per line",
		ArgsUsage: "<format> <hex>",
		Flags:     []cli.Flag{verboseFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("usage: iter <format> <hex>")
			}
			setupLogging(cmd)

			data, err := hex.DecodeString(cmd.Args().Get(1))
			if err != nil {
				return err
			}

			it, err := bytepack.IterUnpack(data, cmd.Args().First())
			if err != nil {
				return err
			}
			for vals, ok := it.Next(); ok; vals, ok = it.Next() {
				for i, v := range vals {
					if i > 0 {
						fmt.Print(" ")
					}
					fmt.Print(formatValue(v))
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func printValue(v any) {
	fmt.Println(formatValue(v))
}

func formatValue(v any) string {
	if b, ok := v.([]byte); ok {
		return hex.EncodeToString(b)
	}
	return fmt.Sprintf("%v", v)
}

// parseValues converts command line strings to the value kinds the
// format's codes consume, in format order.
func parseValues(format string, args []string) ([]any, error) {
	f, err := bytepack.Parse(format)
	if err != nil {
		return nil, err
	}

	vals := make([]any, 0, len(args))
	i := 0
	take := func() (string, bool) {
		if i >= len(args) {
			return "", false
		}
		s := args[i]
		i++
		return s, true
	}

	for _, it := range f.Items {
		n := it.Repeat
		switch it.Code {
		case 'x':
			continue
		case 's', 'p':
			n = 1
		}
		for j := 0; j < n; j++ {
			s, ok := take()
			if !ok {
				// let the pack engine report the shortfall
				return vals, nil
			}
			v, err := parseValue(it.Code, s)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
	}

	// extra values are passed through untouched; packing ignores them
	for _, s := range args[i:] {
		vals = append(vals, s)
	}
	return vals, nil
}

func parseValue(code byte, s string) (any, error) {
	switch code {
	case 'b', 'h', 'i', 'l', 'q':
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return nil, err
		}
		return n, nil
	case 'B', 'H', 'I', 'L', 'Q':
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return nil, err
		}
		return n, nil
	case 'e', 'f', 'd':
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return n, nil
	case '?':
		n, err := strconv.ParseBool(s)
		if err != nil {
			return nil, err
		}
		return n, nil
	default:
		// 'c', 's', 'p' take the raw argument bytes
		return s, nil
	}
}

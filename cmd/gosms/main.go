package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thelolagemann/gosms/internal/cartridge"
	"github.com/thelolagemann/gosms/internal/cpu"
	"github.com/thelolagemann/gosms/internal/mmu"
	"github.com/thelolagemann/gosms/internal/sms"
	"github.com/thelolagemann/gosms/pkg/log"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "gosms",
		Short:        "Z80 interpreter for Master System cartridge images",
		SilenceUsage: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.AddCommand(newRunCmd(), newDisasmCmd(), newInfoCmd())
	return rootCmd
}

func newRunCmd() *cobra.Command {
	var debug, trace bool
	var maxSteps uint64

	runCmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Run an image until it faults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.LevelInfo
			if debug || trace {
				level = log.LevelDebug
			}
			logger := log.NewLogrus(cmd.ErrOrStderr(), level)

			cart, err := cartridge.Load(args[0])
			if err != nil {
				return err
			}
			logger.Infof("loaded %s (%d bytes)", args[0], cart.Len())

			opts := []sms.Opt{
				sms.WithLogger(logger),
				sms.WithConsole(cmd.OutOrStdout()),
				sms.StepLimit(maxSteps),
			}
			if trace {
				opts = append(opts, sms.Trace())
			}
			m := sms.New(cart, opts...)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			err = m.Run(ctx)
			switch {
			case errors.Is(err, sms.ErrStepLimit), errors.Is(err, context.Canceled):
				logger.Infof("stopped after %d steps: %v", m.Steps(), err)
				return nil
			default:
				return err
			}
		},
	}
	runCmd.Flags().BoolVar(&debug, "debug", false, "Log diagnostics, including unhandled port writes")
	runCmd.Flags().BoolVar(&trace, "trace", false, "Log every instruction (implies --debug)")
	runCmd.Flags().Uint64Var(&maxSteps, "max-steps", 0, "Stop after this many instructions (0 = unlimited)")
	return runCmd
}

func newDisasmCmd() *cobra.Command {
	var start uint16
	var count int

	disasmCmd := &cobra.Command{
		Use:   "disasm <image>",
		Short: "Disassemble instructions from an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := cartridge.Load(args[0])
			if err != nil {
				return err
			}
			bus := mmu.NewMMU(cart, log.NewNullLogger())
			return disassemble(cmd.OutOrStdout(), bus, start, count)
		},
	}
	disasmCmd.Flags().Uint16Var(&start, "start", 0, "Address of the first instruction")
	disasmCmd.Flags().IntVar(&count, "count", 32, "Number of instructions to print")
	return disasmCmd
}

// disassemble prints count instructions from pc, one per line with
// their encoding. Undefined opcodes are printed and skipped; it stops
// at the first bus fault.
func disassemble(w io.Writer, bus cpu.Bus, pc uint16, count int) error {
	for i := 0; i < count; i++ {
		text, length, err := cpu.Disassemble(bus, pc)
		var de *cpu.DecodeError
		switch {
		case errors.As(err, &de):
			text = fmt.Sprintf("?? (%v)", err)
		case err != nil:
			return err
		}

		encoding := make([]string, 0, length)
		for j := uint16(0); j < length; j++ {
			b, _ := bus.Read(pc + j)
			encoding = append(encoding, fmt.Sprintf("%02X", b))
		}
		fmt.Fprintf(w, "%04X  %-12s %s\n", pc, strings.Join(encoding, " "), text)
		pc += length
	}
	return nil
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <image>",
		Short: "Print the size, fingerprint and header of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := cartridge.Load(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "size:   %d bytes\n", cart.Len())
			fmt.Fprintf(w, "xxhash: %016x\n", cart.Hash())
			if h := cart.Header(); h != nil {
				fmt.Fprintf(w, "header: %04X %s\n", h.Offset, h)
			} else {
				fmt.Fprintln(w, "header: none")
			}
			return nil
		},
	}
}

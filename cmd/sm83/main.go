package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/kaioluanro/emulador-gba/internal/cpu"
	"github.com/kaioluanro/emulador-gba/internal/machine"
	"github.com/kaioluanro/emulador-gba/internal/mmu"
	"github.com/kaioluanro/emulador-gba/pkg/log"
	"github.com/kaioluanro/emulador-gba/pkg/utils"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "sm83",
		Short:        "Run, disassemble and compare SM83 programs",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(runCommand(), disasmCommand(), compareCommand())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runCommand() *cobra.Command {
	var (
		profile string
		cfg     machine.Config
		entry   uint16
	)

	cmd := &cobra.Command{
		Use:   "run [image]",
		Short: "Run a program image until it halts, fails or spends its budget",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if profile != "" {
				loaded, err := machine.LoadConfig(profile)
				if err != nil {
					return err
				}
				applyFlags(cmd, loaded, &cfg)
				cfg = *loaded
			}
			if len(args) == 1 {
				cfg.Image = args[0]
			}
			if cmd.Flags().Changed("entry") {
				cfg.Entry = &entry
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := log.NewWithOutput(os.Stderr, cfg.LogLevel)
			data, err := utils.LoadFile(cfg.Image)
			if err != nil {
				return err
			}
			if err := cfg.CheckImage(len(data)); err != nil {
				return err
			}

			m, err := machine.New(cfg.Options(data, logger)...)
			if err != nil {
				return err
			}
			result, runErr := m.Run(cmd.Context(), cfg.Steps)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "stopped: %v after %d steps, %d cycles\n", result.Reason, result.Steps, result.Cycles)
			printSnapshot(cmd, result.Final)
			if m.Serial != nil && m.Serial.Output() != "" {
				fmt.Fprintf(out, "serial:\n%s\n", m.Serial.Output())
			}
			if result.Reason == machine.Breakpoint {
				fmt.Fprintf(out, "outcome: %v\n", result.Outcome())
			}
			return runErr
		},
	}
	cmd.Flags().StringVarP(&profile, "config", "c", "", "YAML run profile")
	cmd.Flags().Uint16Var(&cfg.LoadAddress, "load", 0, "Address the image is loaded at")
	cmd.Flags().Uint16Var(&entry, "entry", 0, "Initial PC (defaults to 0x0000, or 0x0100 with --post-boot)")
	cmd.Flags().IntVar(&cfg.Steps, "steps", 0, "Step budget (0 = unlimited)")
	cmd.Flags().BoolVar(&cfg.PostBoot, "post-boot", false, "Start with the registers left by the boot ROM")
	cmd.Flags().BoolVar(&cfg.StopOnHalt, "stop-on-halt", false, "Stop when the CPU executes HALT or STOP")
	cmd.Flags().BoolVar(&cfg.Serial, "serial", false, "Capture serial output and stop on a test verdict")
	cmd.Flags().BoolVarP(&cfg.Trace, "trace", "t", false, "Trace every instruction and stop on LD B, B")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	return cmd
}

// applyFlags copies the flags set on the command line over the loaded
// profile, so they take precedence.
func applyFlags(cmd *cobra.Command, loaded, flags *machine.Config) {
	changed := cmd.Flags().Changed
	if changed("load") {
		loaded.LoadAddress = flags.LoadAddress
	}
	if changed("steps") {
		loaded.Steps = flags.Steps
	}
	if changed("post-boot") {
		loaded.PostBoot = flags.PostBoot
	}
	if changed("stop-on-halt") {
		loaded.StopOnHalt = flags.StopOnHalt
	}
	if changed("serial") {
		loaded.Serial = flags.Serial
	}
	if changed("trace") {
		loaded.Trace = flags.Trace
	}
	if changed("log-level") || loaded.LogLevel == "" {
		loaded.LogLevel = flags.LogLevel
	}
}

func printSnapshot(cmd *cobra.Command, s cpu.Snapshot) {
	fmt.Fprintf(cmd.OutOrStdout(), "A:%02X F:%s B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X IME:%v\n",
		s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L, s.SP, s.PC, s.IME)
}

func disasmCommand() *cobra.Command {
	var (
		load  uint16
		start uint16
		count int
	)

	cmd := &cobra.Command{
		Use:   "disasm [image]",
		Short: "Disassemble a program image linearly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := utils.LoadFile(args[0])
			if err != nil {
				return err
			}
			bus := mmu.NewMMU()
			if err := bus.Load(load, data); err != nil {
				return err
			}
			if !cmd.Flags().Changed("start") {
				start = load
			}

			out := cmd.OutOrStdout()
			end := int(load) + len(data)
			address := int(start)
			for i := 0; (count <= 0 || i < count) && address < end; i++ {
				text, length, err := cpu.Disassemble(bus, uint16(address))
				var decodeErr *cpu.DecodeError
				if errors.As(err, &decodeErr) {
					text = fmt.Sprintf("DB $%02X", decodeErr.Opcode)
				}
				fmt.Fprintf(out, "%04X  % -9X %s\n", address, bus.Dump(uint16(address), int(length)), text)
				address += int(length)
			}
			return nil
		},
	}
	cmd.Flags().Uint16Var(&load, "load", 0, "Address the image is loaded at")
	cmd.Flags().Uint16Var(&start, "start", 0, "First address to disassemble (defaults to --load)")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of instructions (0 = until the end of the image)")
	return cmd
}

func compareCommand() *cobra.Command {
	var (
		load     uint16
		entry    uint16
		steps    int
		postBoot bool
		memory   bool
	)

	cmd := &cobra.Command{
		Use:   "compare [image-a] [image-b]",
		Short: "Run two program images in lockstep and report where they diverge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var machines [2]*machine.Machine
			for i, path := range args {
				data, err := utils.LoadFile(path)
				if err != nil {
					return err
				}
				opts := []machine.Opt{machine.WithImage(load, data)}
				if postBoot {
					opts = append(opts, machine.PostBoot())
				}
				if cmd.Flags().Changed("entry") {
					opts = append(opts, machine.WithEntryPoint(entry))
				}
				if machines[i], err = machine.New(opts...); err != nil {
					return err
				}
			}

			executed, err := machine.Lockstep(cmd.Context(), machines[0], machines[1], steps, memory)
			var divergence *machine.Divergence
			if errors.As(err, &divergence) {
				fmt.Fprintln(cmd.OutOrStdout(), divergence.Error())
				printSnapshot(cmd, divergence.A)
				printSnapshot(cmd, divergence.B)
				return err
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "identical for %d steps\n", executed)
			return nil
		},
	}
	cmd.Flags().Uint16Var(&load, "load", 0, "Address both images are loaded at")
	cmd.Flags().Uint16Var(&entry, "entry", 0, "Initial PC of both machines")
	cmd.Flags().IntVar(&steps, "steps", 100000, "Number of steps to compare")
	cmd.Flags().BoolVar(&postBoot, "post-boot", false, "Start with the registers left by the boot ROM")
	cmd.Flags().BoolVar(&memory, "memory", false, "Compare memory after every step too")
	return cmd
}

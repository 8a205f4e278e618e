package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ctse-tools/nodebin"
	"github.com/ctse-tools/nodebin/blob"
	"github.com/ctse-tools/nodebin/enum"
	"github.com/ctse-tools/nodebin/format"
	"github.com/ctse-tools/nodebin/profile"
	"github.com/ctse-tools/nodebin/section"
)

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint: errcheck

	if err := newRootCmd(".", logger).Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the console logger. Warnings about the input go to stderr so
// that dump output on stdout stays clean.
func newLogger() (*zap.Logger, error) {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "message",
		StacktraceKey:  zapcore.OmitKey,
		FunctionKey:    zapcore.OmitKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}

// newRootCmd wires the subcommands. Profile paths are resolved against dir.
func newRootCmd(dir string, logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "nodebin",
		Short: "Compile node spreadsheets into binary node blobs",
		Long: `nodebin reads the level and stage node spreadsheets exported by the design
tools and compiles them into the binary blobs loaded by the game.

Every profile has a fixed input and output path, relative to the working directory.`,
		SilenceUsage: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "build [profile...]",
		Short: "Build the named profiles, or all profiles when none is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(dir, logger, args)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "dump <profile>",
		Short: "Decode a profile's output and print its header, strings and records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := profile.Load(args[0])
			if err != nil {
				return err
			}

			dec, err := nodebin.Open(p, dir)
			if err != nil {
				return err
			}

			return dump(cmd.OutOrStdout(), p, dec)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "profiles",
		Short: "List the built-in profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := profile.Builtin()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLAYOUT\tORDER\tINPUT\tOUTPUT")
			for _, name := range set.Names() {
				p, _ := set.Get(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.Name, p.Layout, p.ByteOrder, p.Input, p.Output)
			}

			return w.Flush()
		},
	})

	return root
}

func runBuild(dir string, logger *zap.Logger, names []string) error {
	set, err := profile.Builtin()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		names = set.Names()
	}

	for _, name := range names {
		p, err := set.Get(name)
		if err != nil {
			return err
		}

		b, err := nodebin.Build(p, dir, blob.WithLogger(logger))
		if err != nil {
			logger.Error("build failed", zap.String("profile", name), zap.Error(err))
			return err
		}

		h := b.Header()
		logger.Info("blob written",
			zap.String("profile", name),
			zap.String("output", p.Output),
			zap.Uint32("entries", h.EntryCount),
			zap.Uint32("strings", h.StringCount),
			zap.Uint32("bytes", h.TotalSize),
			zap.Stringer("compression", p.Compression),
			zap.String("fingerprint", fmt.Sprintf("%016x", b.Fingerprint())),
		)
	}

	return nil
}

func dump(out io.Writer, p *profile.Profile, dec *blob.Decoder) error {
	h := dec.Header()
	fmt.Fprintf(out, "profile %s (%s, %s endian)\n", p.Name, p.Layout, p.ByteOrder)
	fmt.Fprintf(out, "entries %d, strings %d, string section %d bytes, total %d bytes\n\n",
		h.EntryCount, h.StringCount, h.StringSectionSize, h.TotalSize)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "#\tSTRING")
	for i, s := range dec.Strings() {
		fmt.Fprintf(w, "%d\t%s\n", i, s)
	}
	fmt.Fprintln(w)

	switch p.Layout {
	case format.LayoutLevel:
		records, err := dec.LevelRecords()
		if err != nil {
			return err
		}

		fmt.Fprintln(w, "#\tNAME\tCOURSE\tSTAGE TYPE\tICON\tNODE TYPE\tVERSION\tFLAGS\tTIME")
		for i := range records {
			r := &records[i]
			name, _ := dec.Name(i)
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%d\t%s\t%d\n", i, name, r.CourseID,
				stageType(p.StageTypes(), r.StageType), label(p.NodeIcons(), r.Icon()),
				label(p.NodeTypes(), r.NodeType()), r.Version, flags(&p.Flags, r.Flags), r.ChallengeTime)
		}
	case format.LayoutStage:
		records, err := dec.StageRecords()
		if err != nil {
			return err
		}

		fmt.Fprintln(w, "#\tNAME\tCOURSE\tPAGE\tSTAGE TYPE\tICON\tDEPTH\tITEMS\tVERSION\tFLAGS\tTIME")
		for i := range records {
			r := &records[i]
			name, _ := dec.Name(i)
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\t%s\t%d\t%d\t%d\t%s\t%d\n", i, name, r.CourseID, r.PageID,
				stageType(p.StageTypes(), r.StageType), label(p.NodeIcons(), r.Icon()),
				r.Depth(), r.CollectItemNum(), r.Version(), flags(&p.Flags, r.Flags), r.ChallengeTime)
		}
	}

	return w.Flush()
}

func label(t *enum.Table, code int) string {
	if s, ok := t.Label(code); ok {
		return s
	}

	return fmt.Sprintf("?%d", code)
}

func stageType(t *enum.Table, code int8) string {
	if code == enum.Sentinel {
		return "-"
	}

	return label(t, int(code))
}

func flags(spec *section.FlagSpec, v uint8) string {
	s := fmt.Sprintf("0x%02x", v)
	for _, bit := range spec.Bits {
		if v&bit.Mask != 0 {
			s += " " + bit.Column
		}
	}

	return s
}

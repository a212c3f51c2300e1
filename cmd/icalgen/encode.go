package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	ical "github.com/luxifer/icalgen"
	"github.com/luxifer/icalgen/internal/descriptor"
	"github.com/spf13/cobra"
)

type encodeOptions struct {
	output      string
	noFold      bool
	generateUID bool
}

func newEncodeCmd(a *app) *cobra.Command {
	var opts encodeOptions

	cmd := &cobra.Command{
		Use:   "encode FILE",
		Short: "Encode a YAML or TOML calendar descriptor as iCalendar",
		Long: `Encode reads a calendar descriptor and writes the iCalendar document it
describes. Properties are typed with "type" (` + strings.Join(descriptor.Types(), ", ") + `)
and default to text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.encode(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the calendar to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.noFold, "no-fold", false, "do not fold lines longer than 75 octets")
	cmd.Flags().BoolVar(&opts.generateUID, "generate-uid", false, "give events without a UID a random one")
	return cmd
}

func (a *app) encode(stdout io.Writer, path string, opts encodeOptions) error {
	file, err := descriptor.Load(path)
	if err != nil {
		return err
	}
	doc, err := file.Document(descriptor.Options{
		ProdID:      a.cfg.ProdID,
		GenerateUID: a.cfg.GenerateUID || opts.generateUID,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("loaded descriptor", "path", path, "events", len(doc.Events),
		"components", len(doc.IANAComponents)+len(doc.XComponents))

	var encOpts []ical.EncoderOption
	if !a.cfg.Fold || opts.noFold {
		encOpts = append(encOpts, ical.WithoutFolding())
	}
	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf, encOpts...).Encode(doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if opts.output == "" {
		_, err := buf.WriteTo(stdout)
		return err
	}
	if !strings.EqualFold(filepath.Ext(opts.output), ical.FileExtension) {
		a.logger.Warn("output file does not use the usual extension", "path", opts.output, "extension", ical.FileExtension)
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	a.logger.Info("wrote calendar", "path", opts.output, "bytes", buf.Len())
	return nil
}

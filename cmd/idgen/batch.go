package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yungbote/coursekey/internal/idgen"
	"github.com/yungbote/coursekey/internal/platform/logger"
	"github.com/yungbote/coursekey/internal/services"
)

var errBatchHadFailures = errors.New("one or more specs failed")

// batchFile is either a bare YAML list of specs or a document with a specs key.
type batchFile struct {
	Specs []idgen.Spec `yaml:"specs"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <file.yaml>",
	Short: "Compute IDs for every entity spec in a YAML file",
	Long:  "Reads a YAML list of entity specs (or a document with a top-level specs key) and prints one result per spec. Use - to read stdin.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := readSpecs(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		format, _ := cmd.Flags().GetString("format")

		svc := services.NewIDService(logger.Nop(), concurrency)
		results, err := svc.Batch(context.Background(), specs)
		if err != nil {
			return err
		}
		if err := writeResults(cmd.OutOrStdout(), format, results); err != nil {
			return err
		}
		for _, r := range results {
			if r.Error != "" {
				return errBatchHadFailures
			}
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().Int("concurrency", 8, "Maximum specs computed at once")
	batchCmd.Flags().String("format", "text", "Output format: text or json")

	rootCmd.AddCommand(batchCmd)
}

func readSpecs(stdin io.Reader, path string) ([]idgen.Spec, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read specs: %w", err)
	}
	return parseSpecs(raw)
}

func parseSpecs(raw []byte) ([]idgen.Spec, error) {
	var list []idgen.Spec
	if err := yaml.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var doc batchFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse specs: %w", err)
	}
	return doc.Specs, nil
}

func writeResults(w io.Writer, format string, results []services.IDResult) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	case "", "text":
		for _, r := range results {
			switch {
			case r.Error != "":
				fmt.Fprintf(w, "%d\t%s\terror: %s\n", r.Index, r.Kind, r.Error)
			case r.Code != "":
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.Index, r.Kind, r.ID, r.Code)
			default:
				fmt.Fprintf(w, "%d\t%s\t%s\n", r.Index, r.Kind, r.ID)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

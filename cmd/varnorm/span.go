package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logust79/varnorm/internal/normalize"
	"github.com/logust79/varnorm/internal/variant"
)

func newSpanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "span <input>",
		Short: "Compute the padded genomic span of a variant list",
		Long: `Compute the bounding genomic interval of all variants in the input,
padded by one base on each side. The chromosome is taken from the first
variant; the rest are not checked for consistency.`,
		Example: `  varnorm span variants.txt
  cat variants.txt | varnorm span -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpan(cmd, args[0])
		},
	}
}

func runSpan(cmd *cobra.Command, input string) error {
	reader, err := variant.NewReader(input)
	if err != nil {
		return err
	}
	defer reader.Close()

	var ids []string
	for {
		id, err := reader.Next()
		if err != nil {
			return err
		}
		if id == "" {
			break
		}
		ids = append(ids, id)
	}

	span, err := normalize.SpanOf(ids)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), span)
	return nil
}

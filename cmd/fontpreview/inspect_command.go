package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/fontpreview/record"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "inspect PATH...",
		Short: "Load fonts and print their metadata",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			start := time.Now()

			s, err := ctx.newSession()
			if err != nil {
				return err
			}
			defer s.Teardown()

			batch, err := load(cmd.Context(), cmd, s, args)
			if err != nil {
				return err
			}
			logger.Debugf("Loaded %d fonts (%s)", len(batch.Records), time.Since(start).Round(time.Millisecond))

			records := record.Filter(batch.Records, filter)
			fmt.Fprintln(cmd.OutOrStdout(), renderRecords(records))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only show fonts whose name contains this text")
	return cmd
}

func renderRecords(records []*record.FontRecord) string {
	headers := []string{"#", "ID", "Name", "Render family", "Weight", "Style", "Glyphs", "Version", "File"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignLeft, alignLeft}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		details := detailMap(r)
		rows = append(rows, []string{
			strconv.Itoa(r.Index()),
			r.ID(),
			r.DisplayName(),
			r.RenderFamily(),
			r.Weight().CSS(),
			r.Style().String(),
			details["Glyphs"],
			details["Version"],
			r.SourceFileName(),
		})
	}
	return renderTable(headers, rows, aligns)
}

func detailMap(r *record.FontRecord) map[string]string {
	out := make(map[string]string)
	for _, d := range r.Details() {
		out[d.Label] = d.Value
	}
	return out
}

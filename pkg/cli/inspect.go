package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/getmockd/harreplay/pkg/har"
)

var (
	inspectIncludeStatic bool
	inspectSelector      string
)

// inspectCmd lists the entries of a capture the way the replay engine will
// see them, filters applied.
var inspectCmd = &cobra.Command{
	Use:   "inspect <capture.har>",
	Short: "List the entries in a HAR capture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := har.Load(args[0])
		if err != nil {
			return err
		}
		entries, err := har.Entries(h, har.ConvertOptions{
			IncludeStatic: inspectIncludeStatic,
			Selector:      inspectSelector,
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s (%d replayable)\n", h, len(entries))
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tMETHOD\tURL\tSTATUS\tREDIRECT")
		for i, e := range entries {
			redirect := e.RedirectTarget
			if redirect == "" {
				redirect = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", i, e.Request.Method, e.Request.URL, e.Response.Status, redirect)
		}
		return w.Flush()
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectIncludeStatic, "include-static", false, "include static asset entries (scripts, images, fonts)")
	inspectCmd.Flags().StringVar(&inspectSelector, "selector", "", "JSONPath expression selecting which entries to list")
	rootCmd.AddCommand(inspectCmd)
}

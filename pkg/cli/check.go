package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getmockd/harreplay/pkg/config"
	"github.com/getmockd/harreplay/pkg/fixture"
	"github.com/getmockd/harreplay/pkg/har"
	"github.com/getmockd/harreplay/pkg/logging"
	"github.com/getmockd/harreplay/pkg/replay"
	"github.com/getmockd/harreplay/pkg/requestlog"
)

var (
	checkConfigFile string
	checkMethod     string
	checkURL        string
	checkHeaders    []string
	checkBody       string
	checkStrict     bool
	checkLoose      bool
)

// checkCmd answers one synthetic request from a capture and reports the
// decision, including near-miss diagnostics when nothing matches. Headers
// are matched in the order the --header flags are given.
var checkCmd = &cobra.Command{
	Use:   "check <capture.har>",
	Short: "Check how a request would be answered from a capture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if checkConfigFile != "" {
			loaded, err := config.LoadFromFile(checkConfigFile)
			if err != nil {
				return err
			}
			cfg = *loaded
		}
		if cmd.Flags().Changed("strict") {
			cfg.Replay.StrictMatching = checkStrict
		}
		if checkLoose {
			cfg.Replay.StrictMatching = false
		}

		h, err := har.Load(args[0])
		if err != nil {
			return err
		}
		entries, err := har.Entries(h, har.ConvertOptions{
			IncludeStatic: cfg.Import.IncludeStatic,
			Selector:      cfg.Import.Selector,
		})
		if err != nil {
			return err
		}

		engineCfg := replay.DefaultConfig()
		engineCfg.StrictMatching = cfg.Replay.StrictMatching
		engineCfg.DeleteAfterMatch = cfg.Replay.DeleteAfterMatch
		engineCfg.Logger = logging.New(logging.Config{
			Level:  logging.ParseLevel(cfg.Logging.Level),
			Format: logging.ParseFormat(cfg.Logging.Format),
		})
		engineCfg.RequestLog = requestlog.NewMemoryStore(cfg.Replay.MaxLogEntries)
		engine := replay.New(fixture.NewStore(entries), engineCfg)

		live, err := buildSnapshot()
		if err != nil {
			return err
		}

		resp, err := engine.Send(live)
		var noMatch *replay.NoMatchError
		if errors.As(err, &noMatch) {
			fmt.Printf("NO MATCH for %s %s (%d entries scanned)\n", live.Method, live.URL, len(entries))
			for _, nm := range noMatch.NearMisses {
				fmt.Printf("  entry %d: %s\n", nm.Index, nm.Diagnostic.Reason())
			}
			return err
		}
		if err != nil {
			return err
		}

		fmt.Printf("MATCH: %s %s -> %d (%d bytes, %d entries remaining)\n",
			live.Method, live.URL, resp.Status, len(resp.Body), engine.Remaining())
		return nil
	},
}

// buildSnapshot assembles the live request snapshot from the check flags.
func buildSnapshot() (*fixture.RequestSnapshot, error) {
	if checkURL == "" {
		return nil, errors.New("--url is required")
	}
	headers := make([]fixture.Header, 0, len(checkHeaders))
	for _, raw := range checkHeaders {
		name, value, ok := strings.Cut(raw, ":")
		if !ok {
			return nil, fmt.Errorf("malformed header %q, want \"Name: value\"", raw)
		}
		headers = append(headers, fixture.Header{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)})
	}
	var body []byte
	if checkBody != "" {
		body = []byte(checkBody)
	}
	return &fixture.RequestSnapshot{
		Method:  checkMethod,
		URL:     checkURL,
		Headers: headers,
		Body:    body,
	}, nil
}

func init() {
	checkCmd.Flags().StringVarP(&checkConfigFile, "config", "c", "", "path to a harreplay config file")
	checkCmd.Flags().StringVarP(&checkMethod, "method", "X", "GET", "request method")
	checkCmd.Flags().StringVar(&checkURL, "url", "", "absolute request URL (required)")
	checkCmd.Flags().StringArrayVarP(&checkHeaders, "header", "H", nil, "request header \"Name: value\" (repeatable, order matters in strict mode)")
	checkCmd.Flags().StringVarP(&checkBody, "body", "d", "", "request body")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", true, "strict matching (header order, values, cookies, body)")
	checkCmd.Flags().BoolVar(&checkLoose, "loose", false, "match on method and URL only (overrides --strict)")
	rootCmd.AddCommand(checkCmd)
}

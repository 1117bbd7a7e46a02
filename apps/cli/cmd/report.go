package cmd

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/attest-dev/attest/packages/core/config"
	"github.com/attest-dev/attest/packages/core/suite"
	"github.com/attest-dev/attest/packages/output"
	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

var reportCmd = &cobra.Command{
	Use:   "report <results.xml|results.json>",
	Short: "Re-render a captured results file",
	Long: `Re-render a previously captured results file through one of the
library's exporters.

Examples:
  attest report results.xml
  attest report results.xml --format tap
  attest report results.json --format text --style plain --durations
  attest report results.xml --format xml --output-file archive.xml
  attest report results.xml --watch`,
	Args: cobra.ExactArgs(1),
	RunE: reportCommand,
}

const (
	// watchDebounceDelay is the debounce delay for file watch events
	watchDebounceDelay = 300 * time.Millisecond
)

var (
	formatFlag     string
	styleFlag      string
	durationsFlag  bool
	outputFileFlag string
	watchFlag      bool
	configFlag     string
)

func init() {
	reportCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: text, tap, json, xml")
	reportCmd.Flags().StringVar(&styleFlag, "style", "", "Token style: color, plain")
	reportCmd.Flags().BoolVar(&durationsFlag, "durations", false, "Include test durations in the output")
	reportCmd.Flags().StringVarP(&outputFileFlag, "output-file", "o", "", "Write output to file (default: stdout)")
	reportCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch the results file and re-render on change")
	reportCmd.Flags().StringVar(&configFlag, "config", "", "Path to config file")
}

func reportCommand(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	path := args[0]

	cfg, err := loadReportConfig(cmd)
	if err != nil {
		printError(err)
		os.Exit(ExitConfigError)
	}

	if watchFlag {
		return watchAndRender(path, cfg)
	}

	failed, err := renderFile(path, cfg)
	if err != nil {
		printError(err)
		os.Exit(ExitParseError)
	}
	if failed {
		os.Exit(ExitTestFailure)
	}
	return nil
}

// loadReportConfig merges the config file with command-line overrides.
func loadReportConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configFlag != "" {
		cfg, err = config.Load(configFlag)
	} else {
		cfg, err = config.Find(".")
	}
	if err != nil {
		return nil, err
	}

	overrides := &config.Config{
		Style:      styleFlag,
		OutputFile: outputFileFlag,
	}
	if formatFlag != "" {
		overrides.Reporters = []string{formatFlag}
	}
	if cmd.Flags().Changed("durations") {
		overrides.Durations = &durationsFlag
	}
	return cfg.Merge(overrides), nil
}

// renderFile loads the results file and renders it with the configured
// exporter. It reports whether any rendered test failed.
func renderFile(path string, cfg *config.Config) (bool, error) {
	cases, err := loadResults(path)
	if err != nil {
		return false, err
	}

	w := io.Writer(os.Stdout)
	if cfg.OutputFile != "" {
		f, err := os.Create(cfg.OutputFile)
		if err != nil {
			return false, fmt.Errorf("%w: %s: %v", output.ErrSink, cfg.OutputFile, err)
		}
		defer f.Close()
		w = f
	}

	format := "text"
	if len(cfg.Reporters) > 0 {
		format = cfg.Reporters[0]
	}

	exporter, err := newExporter(format, w, cfg)
	if err != nil {
		return false, err
	}
	for _, s := range cases {
		exporter.ExportResults(s)
	}
	if closer, ok := exporter.(output.Closer); ok {
		if err := closer.Close(); err != nil {
			return false, err
		}
	}

	for _, s := range cases {
		for _, rec := range s.Records() {
			if !rec.Passed() {
				return true, nil
			}
		}
	}
	return false, nil
}

func newExporter(format string, w io.Writer, cfg *config.Config) (output.Exporter, error) {
	style := output.StyleColor
	if cfg.Style == config.StylePlain {
		style = output.StylePlain
	}

	switch format {
	case "text":
		return output.NewText(w, output.WithStyle(style), output.WithDurations(cfg.GetDurations())), nil
	case "tap":
		return output.NewTAP(w), nil
	case "json":
		return output.NewJSON(w), nil
	case "xml":
		return output.NewXML(w, output.XMLWithDurations(cfg.GetDurations())), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// watchAndRender re-renders the file on every change until interrupted.
func watchAndRender(path string, cfg *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file on save.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	if _, err := renderFile(path, cfg); err != nil {
		printError(err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	var debounce *time.Timer
	render := make(chan struct{}, 1)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounceDelay, func() {
				select {
				case render <- struct{}{}:
				default:
				}
			})
		case <-render:
			if _, err := renderFile(path, cfg); err != nil {
				printError(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(err)
		case <-sig:
			return nil
		}
	}
}

// loadResults parses a captured results file into suites, one per test-case
// block.
func loadResults(path string) ([]*suite.Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJSONResults(path, data)
	default:
		return parseXMLResults(path, data)
	}
}

type xmlResults struct {
	XMLName xml.Name      `xml:"test-results"`
	Cases   []xmlTestCase `xml:"test-case"`
}

type xmlTestCase struct {
	Tests []xmlTest `xml:"test"`
}

type xmlTest struct {
	Result   string  `xml:"result,attr"`
	Duration float64 `xml:"duration,attr"`
	Name     string  `xml:"name,attr"`
}

func parseXMLResults(path string, data []byte) ([]*suite.Suite, error) {
	var doc xmlResults
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	suites := make([]*suite.Suite, 0, len(doc.Cases))
	for _, c := range doc.Cases {
		records := make([]*suite.Record, 0, len(c.Tests))
		for _, tc := range c.Tests {
			records = append(records, restoredRecord(tc.Name, tc.Result == "passed", tc.Duration))
		}
		suites = append(suites, suite.Restore(name, records))
	}
	return suites, nil
}

func parseJSONResults(path string, data []byte) ([]*suite.Suite, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parsing %s: invalid JSON", path)
	}

	doc := gjson.ParseBytes(data)
	tests := doc.Get("tests")
	if !tests.IsArray() {
		return nil, fmt.Errorf("parsing %s: missing tests array", path)
	}

	records := make([]*suite.Record, 0)
	tests.ForEach(func(_, t gjson.Result) bool {
		records = append(records, restoredRecord(
			t.Get("name").String(),
			t.Get("passed").Bool(),
			t.Get("duration").Float(),
		))
		return true
	})

	name := doc.Get("suite").String()
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return []*suite.Suite{suite.Restore(name, records)}, nil
}

func restoredRecord(name string, passed bool, seconds float64) *suite.Record {
	out := suite.OutcomeFailed
	if passed {
		out = suite.OutcomePassed
	}
	return &suite.Record{
		Name:     name,
		Outcome:  out,
		Duration: time.Duration(seconds * float64(time.Second)),
	}
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
}

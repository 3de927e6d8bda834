// Command tracemem runs a staged allocation workload while sampling the
// process memory footprint through the tracemem library, then renders the
// resulting sample log.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nyggus/tracemem"
	"github.com/nyggus/tracemem/internal/logging"
)

type options struct {
	phases      int
	allocMB     int
	goroutines  int
	pretty      bool
	metricsAddr string
	verbose     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "tracemem",
		Short: "Sample and report the memory footprint of a staged allocation workload",
		Long: "tracemem allocates memory in phases, records a labeled sample around each\n" +
			"phase, and prints the resulting sample log as a report.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Flags().IntVar(&opts.phases, "phases", 4, "number of allocation phases")
	cmd.Flags().IntVar(&opts.allocMB, "alloc-mb", 8, "megabytes allocated per phase")
	cmd.Flags().IntVar(&opts.goroutines, "goroutines", 1, "phases running concurrently")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "render the report as a styled table")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "log per-phase details to stderr")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	logger := logging.Nop()
	if opts.verbose {
		logger = logging.NewLogger(os.Stderr, "tracemem-demo")
	}

	if opts.metricsAddr != "" {
		serveMetrics(opts.metricsAddr, logger)
	}

	tracemem.Point("workload start")

	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	spin.Suffix = " allocating"
	spin.Start()
	held := runWorkload(opts, logger)
	spin.Stop()

	tracemem.Point("workload end")
	runtime.KeepAlive(held)

	out := cmd.OutOrStdout()
	if opts.pretty {
		prettyReport(out)
		return nil
	}
	tracemem.Fprint(out)
	return nil
}

func serveMetrics(addr string, logger logging.Logger) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(tracemem.NewCollector())
	logger.Info("serving metrics", logging.String("addr", addr))
	go func() {
		handler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
		if err := http.ListenAndServe(addr, handler); err != nil {
			logger.Error("metrics endpoint failed", logging.Err(err))
		}
	}()
}

// runWorkload allocates opts.phases blocks of opts.allocMB megabytes each,
// sampling before and after every phase. The blocks stay referenced until
// the final sample so the footprint growth is visible in the report.
func runWorkload(opts *options, logger logging.Logger) [][]byte {
	blocks := make([][]byte, opts.phases)
	var g errgroup.Group
	g.SetLimit(max(opts.goroutines, 1))
	for i := range opts.phases {
		g.Go(func() error {
			phase := tracemem.TraceFunc(
				func() { blocks[i] = allocate(opts.allocMB) },
				tracemem.WithBefore(fmt.Sprintf("before phase %d", i+1)),
				tracemem.WithAfter(fmt.Sprintf("after phase %d", i+1)),
			)
			phase()
			logger.Info("phase done",
				logging.Int("phase", i+1),
				logging.Uint64("memory_bytes", tracemem.Memory()))
			return nil
		})
	}
	// Phases never return errors; Wait only synchronizes.
	_ = g.Wait()
	return blocks
}

// allocate returns a touched block of n megabytes, so the pages are
// actually resident rather than merely reserved.
func allocate(n int) []byte {
	b := make([]byte, n<<20)
	for i := 0; i < len(b); i += 4096 {
		b[i] = 1
	}
	return b
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	indexStyle  = lipgloss.NewStyle().Faint(true).Width(5)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Width(12).Align(lipgloss.Right)
	labelStyle  = lipgloss.NewStyle().PaddingLeft(2)
)

func prettyReport(out io.Writer) {
	fmt.Fprintln(out, headerStyle.Render("memory samples"))
	i := 0
	for s := range tracemem.Logs().All() {
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			indexStyle.Render(fmt.Sprintf("%d", i)),
			valueStyle.Render(fmt.Sprintf("%.2f MB", tracemem.MB(s.Memory, nil))),
			labelStyle.Render(s.Label),
		)
		fmt.Fprintln(out, line)
		i++
	}
}

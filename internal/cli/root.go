package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/ethanbaker/lineramind/pkg/sdk"
	"github.com/ethanbaker/lineramind/pkg/utils"
	"github.com/spf13/cobra"
)

// app carries the state shared by every command
type app struct {
	cfg *utils.Config
	out io.Writer
	in  io.Reader

	baseURL  string
	timezone string
	timeout  time.Duration
}

// client returns an API client whose requests never outlive the timeout flag
func (a *app) client() *sdk.Client {
	return sdk.NewClient(a.baseURL, "").WithHTTPClient(&http.Client{Timeout: a.timeout})
}

func (a *app) location() (*time.Location, error) {
	if a.timezone == "" {
		return a.cfg.GetLocation("REPORT_TIMEZONE"), nil
	}
	loc, err := time.LoadLocation(a.timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", a.timezone, err)
	}
	return loc, nil
}

// NewRootCommand builds the lineramind command tree
func NewRootCommand(cfg *utils.Config, in io.Reader, out io.Writer) *cobra.Command {
	a := &app{cfg: cfg, in: in, out: out}

	root := &cobra.Command{
		Use:   "lineramind",
		Short: "LineraMind - verifiable AI answers on a simulated microchain",
		Long: `LineraMind answers questions and commits each answer to a simulated
microchain. Every answer gets a proof identifier (linera:<chainId>:<entryId>)
that anyone can resolve back to the recorded question and answer.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetIn(in)
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.baseURL, "url", cfg.GetWithDefault("LINERAMIND_URL", "http://localhost:8080"), "LineraMind API base URL")
	root.PersistentFlags().StringVar(&a.timezone, "timezone", "", "timezone for timestamps (default: REPORT_TIMEZONE or UTC)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 2*time.Minute, "request timeout")

	root.AddCommand(
		newHealthCommand(a),
		newAskCommand(a),
		newVerifyCommand(a),
		newReportCommand(a),
		newParseCommand(a),
	)
	return root
}

// Execute runs the CLI against the process environment
func Execute() error {
	cfg := utils.NewConfigFromEnv(utils.EnvFiles()...)
	return NewRootCommand(cfg, os.Stdin, os.Stdout).Execute()
}

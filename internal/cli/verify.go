package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/ethanbaker/lineramind/pkg/proof"
	"github.com/ethanbaker/lineramind/pkg/sdk"
	"github.com/ethanbaker/lineramind/pkg/verify"
	"github.com/spf13/cobra"
)

func newVerifyCommand(a *app) *cobra.Command {
	var (
		format string
		watch  bool
		remote bool
	)

	cmd := &cobra.Command{
		Use:   "verify [proof-or-id]",
		Short: "Resolve a proof identifier and show the verified entry",
		Long: `Verify parses a proof identifier (linera:<chainId>:<entryId>) or bare
entry id, reads the entry from LineraMind and prints it with its summary.

With --watch, identifiers are read line by line from stdin and only the
result of the most recent one is printed. With --remote, the server parses
the identifier and builds the view in its own timezone.

Example:
  lineramind verify linera:e476187f...:42
  lineramind verify 42 --format yaml`,
		Args: func(cmd *cobra.Command, args []string) error {
			if watch {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			if watch && remote {
				return fmt.Errorf("--watch and --remote cannot be combined")
			}
			if watch {
				return a.watch(cmd.Context(), format)
			}
			if remote {
				return a.verifyRemote(cmd.Context(), args[0], format)
			}

			res, err := a.resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printResult(res, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "output format (text, json, yaml)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "read identifiers from stdin and follow the latest")
	cmd.Flags().BoolVar(&remote, "remote", false, "let the server parse the identifier and build the view")
	return cmd
}

// resolve parses raw and resolves it through the API. Parse failures never
// reach the network.
func (a *app) resolve(ctx context.Context, raw string) (verify.Result, error) {
	id, err := proof.Parse(raw)
	if err != nil {
		return verify.Result{State: verify.NotRequested}, fmt.Errorf("invalid proof identifier: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	return verify.NewResolver(a.client()).Resolve(ctx, &id), nil
}

// verifyRemote asks the server for the verified view of raw
func (a *app) verifyRemote(ctx context.Context, raw, format string) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	view, err := a.client().Verify(ctx, raw)
	if err != nil {
		return a.remoteError(raw, err)
	}
	return writeView(a.out, format, view)
}

// remoteError maps a failed server-side verification to the messages used for
// local resolution
func (a *app) remoteError(raw string, err error) error {
	var httpErr *sdk.HTTPError
	if !errors.As(err, &httpErr) {
		return fmt.Errorf("could not reach LineraMind at %s: %w", a.baseURL, err)
	}

	switch httpErr.StatusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("invalid proof identifier: %s", httpErr.Message)
	case http.StatusNotFound:
		return fmt.Errorf("no entry found for %s", raw)
	case http.StatusBadGateway:
		return fmt.Errorf("LineraMind could not reach its record store: %s", httpErr.Message)
	}
	return err
}

// resultError describes an unverified result
func (a *app) resultError(res verify.Result) error {
	switch res.State {
	case verify.NotFound:
		return fmt.Errorf("no entry found for id %d", res.ID)
	case verify.TransportError:
		return fmt.Errorf("could not reach LineraMind at %s: %w", a.baseURL, res.Err)
	case verify.NotRequested:
		return fmt.Errorf("no proof identifier supplied")
	}
	return fmt.Errorf("entry %d is %s", res.ID, res.State)
}

func (a *app) printResult(res verify.Result, format string) error {
	if !res.Verified() {
		return a.resultError(res)
	}

	loc, err := a.location()
	if err != nil {
		return err
	}
	view, err := verify.NewView(res, loc)
	if err != nil {
		return err
	}
	return writeView(a.out, format, view)
}

// watch follows identifiers read from stdin. Each line starts a new lookup;
// a result is printed only if no newer line arrived while it was in flight.
// Once ctx ends no goroutine is left blocked on a send.
func (a *app) watch(ctx context.Context, format string) error {
	tracker := verify.NewTracker(verify.NewResolver(a.client()))
	results := make(chan *verify.Lookup)
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				scanErr <- ctx.Err()
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	var forwarders sync.WaitGroup
	pending := 0
	for lines != nil || pending > 0 {
		select {
		case <-ctx.Done():
			forwarders.Wait()
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			id, err := proof.Parse(line)
			if err != nil {
				fmt.Fprintf(a.out, "invalid proof identifier: %v\n", err)
				continue
			}

			l := tracker.Track(ctx, &id)
			pending++
			forwarders.Add(1)
			go func() {
				defer forwarders.Done()
				<-l.Done()
				select {
				case results <- l:
				case <-ctx.Done():
				}
			}()

		case l := <-results:
			pending--
			if !tracker.IsCurrent(l) {
				continue
			}
			if err := a.printResult(l.Result(), format); err != nil {
				fmt.Fprintf(a.out, "%v\n", err)
			}
		}
	}

	if err := <-scanErr; err != nil {
		return err
	}
	return ctx.Err()
}

package verify_module

import (
	"context"
	"time"

	"github.com/ethanbaker/lineramind/pkg/proof"
	"github.com/ethanbaker/lineramind/pkg/report"
	"github.com/ethanbaker/lineramind/pkg/verify"
)

// Service resolves proof identifiers into views and reports
type Service struct {
	resolver *verify.Resolver
	location *time.Location
}

// NewService creates the verify service. Timestamps are shown in loc.
func NewService(resolver *verify.Resolver, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{resolver: resolver, location: loc}
}

// Resolve parses raw and resolves the entry it names. Input that does not
// parse is reported without any lookup.
func (s *Service) Resolve(ctx context.Context, raw string) (verify.Result, error) {
	id, err := proof.Parse(raw)
	if err != nil {
		return verify.Result{State: verify.NotRequested}, err
	}
	return s.resolver.Resolve(ctx, &id), nil
}

// View builds the displayable view of a resolved entry
func (s *Service) View(res verify.Result) (*verify.View, error) {
	return verify.NewView(res, s.location)
}

// Report renders the PDF report of a resolved entry
func (s *Service) Report(res verify.Result) ([]byte, error) {
	return verify.Report(res, report.Options{Location: s.location})
}

// Package reclaim deletes demo environments and collections from a workspace.
// Delete failures are tolerated: each one is logged and recorded, and the
// remaining resources are still processed.
package reclaim

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/loykin/demosync/internal/common"
	"github.com/loykin/demosync/internal/postman"
)

// API is the subset of the vendor client the reclaimer needs.
type API interface {
	List(ctx context.Context, kind postman.Kind) ([]postman.Summary, error)
	FindByName(ctx context.Context, kind postman.Kind, name string) (*postman.Summary, error)
	Delete(ctx context.Context, kind postman.Kind, uid string) error
}

// Outcome is the result of one delete attempt.
type Outcome struct {
	Kind       postman.Kind
	Name       string
	UID        string
	Skipped    bool
	StatusCode int
	Err        error
}

// Deleted reports whether the resource was removed.
func (o Outcome) Deleted() bool {
	return !o.Skipped && o.Err == nil
}

// Report collects outcomes in processing order.
type Report struct {
	Outcomes []Outcome
	// Missing lists targeted names that had no remote match.
	Missing []string
}

// Failed returns the outcomes whose delete call failed.
func (r *Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}
	return out
}

// Err folds every failed delete into one error, or nil when none failed.
func (r *Report) Err() error {
	var result *multierror.Error
	for _, o := range r.Failed() {
		result = multierror.Append(result, fmt.Errorf("%s %s (%s): %w", o.Kind, o.Name, o.UID, o.Err))
	}
	return result.ErrorOrNil()
}

// Options tune a reclaim run.
type Options struct {
	// DryRun reports matches without issuing deletes.
	DryRun bool
}

// Reclaimer runs bulk and targeted deletes.
type Reclaimer struct {
	api    API
	out    io.Writer
	opts   Options
	logger *common.Logger
}

// New returns a Reclaimer printing progress to out.
func New(api API, out io.Writer, opts Options) *Reclaimer {
	if out == nil {
		out = io.Discard
	}
	return &Reclaimer{api: api, out: out, opts: opts, logger: common.GetLogger().WithComponent("reclaim")}
}

// Bulk lists every environment and collection and deletes those classified
// as demo. Listing failures are fatal; delete failures are not.
func (r *Reclaimer) Bulk(ctx context.Context) (*Report, error) {
	report := &Report{}
	for _, step := range []struct {
		kind     postman.Kind
		classify func(string) bool
	}{
		{postman.KindEnvironment, IsDemoEnvironment},
		{postman.KindCollection, IsDemoCollection},
	} {
		items, err := r.api.List(ctx, step.kind)
		if err != nil {
			return report, fmt.Errorf("failed to list %s: %w", step.kind.Plural(), err)
		}
		var matched []postman.Summary
		for _, it := range items {
			if step.classify(it.Name) {
				matched = append(matched, it)
			}
		}
		if len(matched) == 0 {
			r.printf("No demo %s found to delete.\n", step.kind.Plural())
			continue
		}
		for _, it := range matched {
			report.Outcomes = append(report.Outcomes, r.delete(ctx, step.kind, it))
		}
	}
	return report, nil
}

// Targeted deletes the first environment named envName and the first
// collection named collName. Empty names are skipped; names with no match are
// recorded in Report.Missing.
func (r *Reclaimer) Targeted(ctx context.Context, envName, collName string) (*Report, error) {
	report := &Report{}
	for _, t := range []struct {
		kind postman.Kind
		name string
	}{
		{postman.KindEnvironment, envName},
		{postman.KindCollection, collName},
	} {
		if t.name == "" {
			continue
		}
		found, err := r.api.FindByName(ctx, t.kind, t.name)
		if err != nil {
			return report, fmt.Errorf("failed to look up %s %q: %w", t.kind, t.name, err)
		}
		if found == nil {
			r.printf("No %s named %q found.\n", t.kind, t.name)
			report.Missing = append(report.Missing, t.name)
			continue
		}
		report.Outcomes = append(report.Outcomes, r.delete(ctx, t.kind, *found))
	}
	return report, nil
}

func (r *Reclaimer) delete(ctx context.Context, kind postman.Kind, s postman.Summary) Outcome {
	o := Outcome{Kind: kind, Name: s.Name, UID: s.UID}
	if r.opts.DryRun {
		r.printf("Would delete %s: %s (%s)\n", kind, s.Name, s.UID)
		o.Skipped = true
		return o
	}
	r.printf("Deleting %s: %s (%s)\n", kind, s.Name, s.UID)
	if err := r.api.Delete(ctx, kind, s.UID); err != nil {
		var se *postman.StatusError
		if errors.As(err, &se) {
			o.StatusCode = se.StatusCode
		}
		o.Err = err
		r.printf("   Failed to delete %s %s: %v\n", kind, s.Name, err)
		r.logger.Warn("delete failed", "kind", kind, "name", s.Name, "uid", s.UID, "status", o.StatusCode, "error", err)
	}
	return o
}

func (r *Reclaimer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

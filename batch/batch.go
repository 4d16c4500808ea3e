// Package batch runs the ingestion pipeline over whole documents:
// records are assembled concurrently, invalid rows are skipped or abort
// the run depending on policy, and outcomes are logged and counted.
package batch

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vortex-fintech/ingest-lib/contact"
	liberrors "github.com/vortex-fintech/ingest-lib/errors"
	"github.com/vortex-fintech/ingest-lib/ingest"
	"github.com/vortex-fintech/ingest-lib/logger"
	"github.com/vortex-fintech/ingest-lib/metrics"
	"github.com/vortex-fintech/ingest-lib/piiutil"
	"github.com/vortex-fintech/ingest-lib/validator"
)

// Policy decides what an invalid record does to the rest of the run.
type Policy string

const (
	// PolicySkip keeps going: the failed row gets its error in Results
	// and every other row is still processed.
	PolicySkip Policy = "skip"
	// PolicyAbort stops the run on the first invalid record.
	PolicyAbort Policy = "abort"
)

const defaultConcurrency = 8

// Options configures an Importer. The zero value is usable: skip policy,
// default concurrency, no-op logger, unregistered metrics.
type Options struct {
	Policy      Policy `validate:"omitempty,oneof=skip abort"`
	Concurrency int    `validate:"omitempty,gte=1,lte=64"`

	Logger  logger.LoggerInterface `validate:"-"`
	Metrics *metrics.Ingest        `validate:"-"`
}

// Result is the outcome for one record, in input order. Err is nil for a
// valid contact and a *contact.ValidationError for a rejected one.
type Result struct {
	Index   int
	Contact contact.Contact
	Err     error
}

// Importer runs documents through detection, record lowering and
// assembly. Safe for concurrent use once constructed.
type Importer struct {
	policy      Policy
	concurrency int
	log         logger.LoggerInterface
	met         *metrics.Ingest
}

// New validates opts and builds an Importer.
func New(opts Options) (*Importer, error) {
	if fields := validator.Validate(opts); fields != nil {
		return nil, liberrors.ValidationFields(fields)
	}

	imp := &Importer{
		policy:      opts.Policy,
		concurrency: opts.Concurrency,
		log:         opts.Logger,
		met:         opts.Metrics,
	}
	if imp.policy == "" {
		imp.policy = PolicySkip
	}
	if imp.concurrency == 0 {
		imp.concurrency = defaultConcurrency
	}
	if imp.log == nil {
		imp.log = logger.Nop()
	}
	if imp.met == nil {
		imp.met = metrics.NewIngest(nil)
	}
	return imp, nil
}

// Import detects the format of text, lowers it to records and assembles
// every record. Results come back in record order regardless of worker
// scheduling. Under PolicyAbort the first validation failure cancels the
// remaining work and is returned as the error.
func (i *Importer) Import(ctx context.Context, text string) ([]Result, error) {
	doc, err := ingest.DetectAndParse(text)
	if err != nil {
		return nil, fmt.Errorf("batch: parse: %w", err)
	}
	i.met.Documents.WithLabelValues(doc.Format.String()).Inc()

	return i.ImportRecords(ctx, ingest.RecordsFrom(doc))
}

// ImportRecords assembles already-lowered records, bypassing detection.
func (i *Importer) ImportRecords(ctx context.Context, records []*contact.Record) ([]Result, error) {
	results := make([]Result, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(i.concurrency)

	for idx, rec := range records {
		if err := ctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			i.met.Rows.Inc()

			c, err := contact.Assemble(rec)
			results[idx] = Result{Index: idx, Contact: c, Err: err}
			if err == nil {
				i.met.Contacts.Inc()
				return nil
			}

			i.countFailure(err)
			i.logFailure(idx, rec, err)
			if i.policy == PolicyAbort {
				return fmt.Errorf("batch: record %d: %w", idx, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Contacts filters the valid contacts out of results, preserving order.
func Contacts(results []Result) []contact.Contact {
	out := make([]contact.Contact, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			out = append(out, r.Contact)
		}
	}
	return out
}

func (i *Importer) countFailure(err error) {
	verr, ok := err.(*contact.ValidationError)
	if !ok {
		return
	}
	for _, req := range verr.Missing() {
		i.met.ValidationFailures.WithLabelValues(req).Inc()
	}
}

// logFailure warns about a rejected record with PII-masked field values.
func (i *Importer) logFailure(idx int, rec *contact.Record, err error) {
	kv := []any{"record", idx, "error", err.Error()}
	rec.Each(func(key, value string) bool {
		kv = append(kv, "field_"+key, mask(value))
		return true
	})
	i.log.Warnw("record rejected", kv...)
}

func mask(value string) string {
	if strings.Contains(value, "@") {
		return piiutil.MaskEmail(value)
	}
	return piiutil.MaskPhone(value)
}

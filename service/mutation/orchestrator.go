package mutation

import (
	"context"
	"fmt"
	"log"

	"github.com/Draketheb4dass/reaction-admin/client"
	auditRepo "github.com/Draketheb4dass/reaction-admin/model/repository/audit"
	"github.com/Draketheb4dass/reaction-admin/notify"
	"github.com/Draketheb4dass/reaction-admin/service/catalog"
)

// Navigator accepts a "navigate to path" command after an operation that
// redirects on success.
type Navigator interface {
	NavigateTo(path string)
}

// NopNavigator discards navigation.
type NopNavigator struct{}

func (NopNavigator) NavigateTo(string) {}

// AuditSink records settled operations. Optional.
type AuditSink interface {
	Record(ctx context.Context, e auditRepo.Entry) error
}

// Orchestrator is the set of admin mutations against the remote commerce API.
// Every operation builds its payload from (explicit override ?? current
// selection ?? current aggregate field), submits it, and emits exactly one
// success or error notification. No retries, no optimistic updates: a failed
// call leaves local state untouched and the caller re-invokes to retry.
// Concurrent invocations are not coalesced.
type Orchestrator struct {
	client   *client.Client
	loader   *catalog.Loader
	notifier notify.Notifier
	nav      Navigator
	audit    AuditSink
	sel      catalog.Selection
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

func WithNavigator(nav Navigator) Option {
	return func(o *Orchestrator) {
		if nav != nil {
			o.nav = nav
		}
	}
}

func WithAudit(sink AuditSink) Option {
	return func(o *Orchestrator) {
		o.audit = sink
	}
}

func New(c *client.Client, loader *catalog.Loader, notifier notify.Notifier, sel catalog.Selection, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		client:   c,
		loader:   loader,
		notifier: notifier,
		nav:      NopNavigator{},
		sel:      sel,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Selection returns the active selection the orchestrator defaults to.
func (o *Orchestrator) Selection() catalog.Selection {
	return o.sel
}

// run is the shared control flow: submit, audit, notify once, chain side
// effects only on success.
func (o *Orchestrator) run(ctx context.Context, op operation, productID, variantID string, payload any, call func(context.Context) error, after func()) error {
	err := call(ctx)
	o.record(ctx, op, productID, variantID, payload, err)
	if err != nil {
		o.notifier.Notify(fmt.Sprintf("%s: %v", op.errorMsg, err), notify.SeverityError)
		return err
	}
	o.notifier.Notify(op.successMsg, notify.SeveritySuccess)
	if after != nil {
		after()
	}
	return nil
}

func (o *Orchestrator) record(ctx context.Context, op operation, productID, variantID string, payload any, opErr error) {
	if o.audit == nil {
		return
	}
	entry := auditRepo.Entry{
		Operation: op.name,
		ProductID: productID,
		VariantID: variantID,
		ShopID:    o.sel.ShopID,
		Payload:   payload,
		Status:    "success",
	}
	if opErr != nil {
		entry.Status = "error"
		entry.Error = opErr.Error()
	}
	if err := o.audit.Record(ctx, entry); err != nil {
		log.Printf("mutation: audit record failed: %v", err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

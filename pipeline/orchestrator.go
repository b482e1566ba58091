// Package pipeline runs one submission from raw request to response:
// validate, build the record, render both notifications, then store and
// notify concurrently.
package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	apperrors "github.com/rrinconline/sticker-lab-backend/errors"
	"github.com/rrinconline/sticker-lab-backend/logger"
	"github.com/rrinconline/sticker-lab-backend/records"
	"github.com/rrinconline/sticker-lab-backend/types"
	"github.com/rrinconline/sticker-lab-backend/validation"
)

// Renderer produces one notification document.
type Renderer interface {
	Render(rec types.Record, audience types.Audience) (types.RenderedNotification, error)
}

// Sender delivers a rendered notification.
type Sender interface {
	Send(ctx context.Context, n types.RenderedNotification) types.Outcome
}

// Recorder persists a record.
type Recorder interface {
	Store(ctx context.Context, rec types.Record) types.Outcome
}

// ArtworkResolver rewrites artwork references into download links.
type ArtworkResolver interface {
	ResolveItems(ctx context.Context, items []types.LineItemForm)
}

// Dependencies are the collaborators of an Orchestrator. Artwork is
// optional.
type Dependencies struct {
	Builder  *records.Builder
	Renderer Renderer
	Notifier Sender
	Recorder Recorder
	Artwork  ArtworkResolver
}

// Result is what one pipeline run produced. The three outcomes are only
// meaningful once the run reached BUILT.
type Result struct {
	State           State
	RecordID        string
	Details         []string
	Response        types.Response
	Store           types.Outcome
	StaffNotify     types.Outcome
	SubmitterNotify types.Outcome
}

// Orchestrator is safe for concurrent use; it holds only read-only
// collaborators.
type Orchestrator struct {
	deps        Dependencies
	submissions *prometheus.CounterVec
}

func New(deps Dependencies) *Orchestrator {
	return NewWithRegistry(deps, prometheus.DefaultRegisterer)
}

func NewWithRegistry(deps Dependencies, reg prometheus.Registerer) *Orchestrator {
	if deps.Builder == nil {
		deps.Builder = records.NewBuilder()
	}
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stickerlab_submissions_total",
		Help: "Submissions by kind and terminal state",
	}, []string{"kind", "state"})
	reg.MustRegister(submissions)

	return &Orchestrator{deps: deps, submissions: submissions}
}

// flow is what differs between the contact and order variants.
type flow[F any] struct {
	kind     types.Kind
	validate func(F) []string
	prepare  func(context.Context, *F)
	build    func(F) types.Record
}

// HandleContact runs a contact inquiry.
func (o *Orchestrator) HandleContact(ctx context.Context, req types.Request) *Result {
	return run(ctx, o, req, flow[types.ContactForm]{
		kind:     types.KindContact,
		validate: validation.ValidateContact,
		build:    func(f types.ContactForm) types.Record { return o.deps.Builder.Contact(f) },
	})
}

// HandleOrder runs a checkout order. Artwork references are resolved
// before the record is built.
func (o *Orchestrator) HandleOrder(ctx context.Context, req types.Request) *Result {
	return run(ctx, o, req, flow[types.OrderForm]{
		kind:     types.KindOrder,
		validate: validation.ValidateOrder,
		prepare: func(ctx context.Context, f *types.OrderForm) {
			if o.deps.Artwork != nil {
				o.deps.Artwork.ResolveItems(ctx, f.Items)
			}
		},
		build: func(f types.OrderForm) types.Record { return o.deps.Builder.Order(f) },
	})
}

// Handle dispatches on kind.
func (o *Orchestrator) Handle(ctx context.Context, kind types.Kind, req types.Request) *Result {
	if kind == types.KindOrder {
		return o.HandleOrder(ctx, req)
	}
	return o.HandleContact(ctx, req)
}

func run[F any](ctx context.Context, o *Orchestrator, req types.Request, fl flow[F]) (res *Result) {
	log := logger.GetLogger().Named("pipeline").With(
		"kind", fl.kind,
		logger.RequestIDKey, req.RequestID,
	)
	res = &Result{State: StateReceived}

	defer func() {
		if r := recover(); r != nil {
			err := PanicError(r)
			logger.LogError(ctx, err, "Submission pipeline fault", map[string]interface{}{
				"kind":     fl.kind,
				"state":    res.State,
				"recordId": res.RecordID,
			})
			res.State = StateFaulted
			res.Response = FaultResponse(err)
		}
		o.submissions.WithLabelValues(string(fl.kind), string(res.State)).Inc()
	}()

	if req.Method == http.MethodOptions {
		res.State = StateResponded
		res.Response = PreflightResponse()
		return res
	}

	var form F
	if err := decodeObject(req.Body, &form); err != nil {
		log.Infow("Rejected unparseable body", "error", err)
		res.State = StateRejected
		res.Response = InvalidJSONResponse()
		return res
	}

	if errs := fl.validate(form); len(errs) > 0 {
		log.Infow("Rejected invalid submission", "errors", errs)
		res.State = StateRejected
		res.Details = errs
		res.Response = ValidationResponse(errs)
		return res
	}
	res.State = StateValidated

	if fl.prepare != nil {
		fl.prepare(ctx, &form)
	}

	rec := fl.build(form)
	res.RecordID = rec.RecordID()
	res.State = StateBuilt

	staff, err := o.deps.Renderer.Render(rec, types.AudienceStaff)
	if err != nil {
		panic(fmt.Errorf("render staff notification: %w", err))
	}
	submitter, err := o.deps.Renderer.Render(rec, types.AudienceSubmitter)
	if err != nil {
		panic(fmt.Errorf("render submitter notification: %w", err))
	}

	o.dispatch(ctx, rec, staff, submitter, res)

	log.Infow("Submission processed",
		"recordId", res.RecordID,
		"stored", res.Store.OK,
		"staffNotified", res.StaffNotify.OK,
		"submitterNotified", res.SubmitterNotify.OK)

	res.State = StateResponded
	res.Response = AcceptedResponse(fl.kind, res.RecordID)
	return res
}

// dispatch runs the three side effects concurrently and waits for all of
// them. They are detached from request cancellation; each collaborator
// applies its own timeout. A panic in any of them is re-raised here.
func (o *Orchestrator) dispatch(ctx context.Context, rec types.Record, staff, submitter types.RenderedNotification, res *Result) {
	ctx = context.WithoutCancel(ctx)

	var (
		wg     sync.WaitGroup
		faults [3]any
	)
	goSafe := func(slot int, fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				faults[slot] = recover()
			}()
			fn()
		}()
	}

	goSafe(0, func() { res.Store = o.deps.Recorder.Store(ctx, rec) })
	goSafe(1, func() { res.StaffNotify = o.deps.Notifier.Send(ctx, staff) })
	goSafe(2, func() { res.SubmitterNotify = o.deps.Notifier.Send(ctx, submitter) })
	wg.Wait()

	for _, fault := range faults {
		if fault != nil {
			panic(fault)
		}
	}
}

// decodeObject accepts only a JSON object. An empty body counts as {} so
// the validator can name the missing fields.
func decodeObject(body []byte, v any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		trimmed = []byte("{}")
	}
	if trimmed[0] != '{' {
		return apperrors.InvalidRequest(InvalidJSONMessage, fmt.Errorf("body is not a JSON object"))
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return apperrors.InvalidRequest(InvalidJSONMessage, err)
	}
	return nil
}

// PanicError turns a recovered value into an error. An AWS API error is
// classified as an upstream failure so the caller gets the retry hint.
func PanicError(r any) error {
	err, ok := r.(error)
	if !ok {
		return apperrors.InternalServerError(fmt.Sprintf("panic: %v", r))
	}
	return apperrors.FromAWS("aws", err)
}

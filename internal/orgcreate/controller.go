package orgcreate

import (
	"context"
	"fmt"

	"orgsetup/internal/debug"
	"orgsetup/internal/domain"
	appErrors "orgsetup/internal/errors"
	"orgsetup/internal/orgapi"
)

// ErrSubmitInFlight is returned by Begin while a request is outstanding.
var ErrSubmitInFlight = appErrors.New(appErrors.CodeSubmitInFlight, "a create request is already in flight", nil)

// Creator performs the create request.
type Creator interface {
	CreateOrganization(ctx context.Context, values domain.FormValues) orgapi.Result
}

// Notifier shows transient messages to the user.
type Notifier interface {
	Warn(msg string)
	Error(msg string)
}

// Phase is the controller's position in the submit flow.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseInvalid
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

// String returns the string representation of a Phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseInvalid:
		return "invalid"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Deps are the collaborators a Controller talks to.
type Deps struct {
	Creator   Creator
	Notifier  Notifier
	State     StateWriter
	Navigator Navigator
	// OnTransition, when set, observes every phase change.
	OnTransition func(from, to Phase)
}

// Controller validates and submits the create form.
//
// Submit runs the whole flow and blocks on the request. Front ends with their
// own event loop split it instead: Begin and Finish on the loop, Execute off it.
// Begin/Finish/Submit must be called from a single goroutine; Execute touches
// no controller state and may run anywhere.
type Controller struct {
	deps    Deps
	bridge  Bridge
	phase   Phase
	loading bool
}

// NewController returns an idle controller.
func NewController(deps Deps) *Controller {
	return &Controller{
		deps:   deps,
		bridge: NewBridge(deps.State),
	}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Loading reports whether a request is outstanding.
func (c *Controller) Loading() bool {
	return c.loading
}

// Submit validates the form, sends it and applies the result.
func (c *Controller) Submit(ctx context.Context, form *Form) Outcome {
	values, err := c.Begin(form)
	if err != nil {
		return rejectedBeforeSend(values, err)
	}
	out := c.Finish(c.Execute(ctx, values))
	out.Values = values
	return out
}

// Begin validates the form and, if it passes, marks the controller loading.
// The trimmed name is written back to the form. On validation failure the
// message is shown, set on the field and the controller returns to idle.
func (c *Controller) Begin(form *Form) (domain.FormValues, error) {
	if c.loading {
		debug.Event("orgcreate", "submit.ignored", "reason", "in flight")
		return form.Values(), ErrSubmitInFlight
	}

	c.transition(PhaseValidating)
	form.ClearErrors()

	values, err := domain.Validate(form.Values())
	form.Change(domain.FieldName, values.Name)
	if err != nil {
		msg := err.Error()
		field := domain.FieldName
		if verr, ok := domain.AsValidationError(err); ok {
			msg = verr.Message()
			field = verr.Field
		}
		form.SetError(field, msg)
		c.notifyError(msg)
		c.transition(PhaseInvalid)
		c.transition(PhaseIdle)
		debug.Event("orgcreate", "submit.invalid", "name", values.Name, "error", msg)
		return values, err
	}

	c.loading = true
	c.transition(PhaseSubmitting)
	debug.Event("orgcreate", "submit", "name", values.Name)
	return values, nil
}

// Execute performs the request. A panic in the request path is reported as an
// unrecognized transport failure.
func (c *Controller) Execute(ctx context.Context, values domain.FormValues) (res orgapi.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = orgapi.Result{
				Kind:    orgapi.ResultTransportFailure,
				Failure: orgapi.FailureUnrecognized,
				Err:     appErrors.New(appErrors.CodeTransportFailed, fmt.Sprintf("create request panicked: %v", r), nil),
			}
		}
	}()
	if c.deps.Creator == nil {
		return orgapi.Result{
			Kind:    orgapi.ResultTransportFailure,
			Failure: orgapi.FailureUnrecognized,
			Err:     appErrors.New(appErrors.CodeConfigurationError, "no backend configured", nil),
		}
	}
	return c.deps.Creator.CreateOrganization(ctx, values)
}

// Finish applies a request result. Loading is cleared on every path.
func (c *Controller) Finish(res orgapi.Result) (out Outcome) {
	defer func() {
		c.loading = false
		c.transition(PhaseIdle)
	}()

	switch res.Kind {
	case orgapi.ResultCreated:
		c.transition(PhaseSucceeded)
		path := c.bridge.Apply(res.Organization)
		debug.Event("orgcreate", "created", "slug", res.Organization.Slug, "path", path)
		c.navigate(path)
		return Outcome{Kind: OutcomeCreated, Organization: res.Organization, Path: path}

	case orgapi.ResultApplicationFailure:
		c.transition(PhaseFailed)
		c.notifyError(MsgCannotCreate)
		return Outcome{Kind: OutcomeRejected, Message: MsgCannotCreate, Err: res.Err}

	case orgapi.ResultTransportFailure:
		c.transition(PhaseFailed)
		switch res.Failure {
		case orgapi.FailureReachedMaxOrganization:
			c.notifyWarn(MsgReachedMax)
			return Outcome{Kind: OutcomeReachedMax, Message: MsgReachedMax, Err: res.Err}
		case orgapi.FailureDuplicateOrganization:
			c.notifyError(MsgDuplicate)
			return Outcome{Kind: OutcomeDuplicate, Message: MsgDuplicate, Err: res.Err}
		default:
			// Nothing is shown for unrecognized failures; the debug log keeps the detail.
			debug.Event("orgcreate", "failure.unrecognized",
				"status", res.Status, "message", res.Payload.Message, "error", res.Err)
			return Outcome{Kind: OutcomeUnrecognized, Err: res.Err}
		}

	default:
		c.transition(PhaseFailed)
		err := res.Err
		if err == nil {
			err = appErrors.New(appErrors.CodeTransportFailed, "create request returned no result", nil)
		}
		debug.Event("orgcreate", "failure.unrecognized", "kind", res.Kind, "status", res.Status, "error", err)
		return Outcome{Kind: OutcomeUnrecognized, Err: err}
	}
}

func (c *Controller) navigate(path string) {
	if c.deps.Navigator == nil {
		return
	}
	if err := c.deps.Navigator.Navigate(path); err != nil {
		debug.Event("orgcreate", "navigate.failed", "path", path, "error", err)
	}
}

func (c *Controller) notifyError(msg string) {
	if c.deps.Notifier != nil {
		c.deps.Notifier.Error(msg)
	}
}

func (c *Controller) notifyWarn(msg string) {
	if c.deps.Notifier != nil {
		c.deps.Notifier.Warn(msg)
	}
}

func (c *Controller) transition(to Phase) {
	from := c.phase
	if from == to {
		return
	}
	c.phase = to
	if c.deps.OnTransition != nil {
		c.deps.OnTransition(from, to)
	}
}

func rejectedBeforeSend(values domain.FormValues, err error) Outcome {
	if appErrors.IsCode(err, appErrors.CodeSubmitInFlight) {
		return Outcome{Kind: OutcomeBusy, Values: values, Err: err}
	}
	msg := err.Error()
	if verr, ok := domain.AsValidationError(err); ok {
		msg = verr.Message()
	}
	return Outcome{Kind: OutcomeInvalid, Values: values, Message: msg, Err: err}
}

// Package submit implements the read → validate → call → resolve cycle shared
// by the registration and sign-in forms.
package submit

import (
	"context"

	"github.com/nfrund/signon/internal/domain"
	"github.com/nfrund/signon/internal/form"
)

// Kind tags how a submission resolved.
type Kind int

const (
	// Invalid means a required field was empty and no remote call was made.
	Invalid Kind = iota
	Success
	Failure
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// ValidationMessage is the single message shown when any required field is empty.
const ValidationMessage = "Please fill all the fields"

// Outcome is the resolved state of one submission.
type Outcome struct {
	Kind    Kind
	Token   domain.Token
	Message string
	Err     error
}

// Call is the remote operation a submission performs once its fields are valid.
type Call func(ctx context.Context, fields form.Fields) (domain.Token, error)

// Controller runs submissions against a validator.
type Controller struct {
	validator *form.Validator
}

// NewController creates a new Controller.
func NewController(v *form.Validator) *Controller {
	return &Controller{validator: v}
}

// Run validates fields and, if every required field is filled, invokes call and
// waits for it. Each Run is independent; nothing is retained between calls.
func (c *Controller) Run(ctx context.Context, fields form.Fields, required []string, call Call) Outcome {
	if !c.validator.Validate(fields, required...) {
		return Outcome{Kind: Invalid, Message: ValidationMessage, Err: domain.ErrMissingFields}
	}

	token, err := call(ctx, fields)
	if err != nil {
		return Outcome{Kind: Failure, Message: domain.MessageOf(err), Err: err}
	}
	return Outcome{Kind: Success, Token: token}
}

package form

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/idilsaglam/planner/internal/model"
)

// Field identifies a form input and keys its error slot.
type Field string

const (
	FieldTitle   Field = "title"
	FieldDueDate Field = "dueDate"
)

// fieldOrder is the focus precedence when several fields are invalid.
var fieldOrder = []Field{FieldTitle, FieldDueDate}

// Values carries one submission. Tags run per field in order and stop at the
// first failing rule for that field; fields never short-circuit each other.
type Values struct {
	Title   string `validate:"required"`
	DueDate string `validate:"required,date,notpast"`
}

// Result of one validation pass. Errors holds one message per invalid field;
// each pass starts from a clean slate.
type Result struct {
	Valid  bool
	Errors map[Field]string
}

// First returns the first invalid field in display order, for focus placement.
func (r Result) First() (Field, bool) {
	for _, f := range fieldOrder {
		if _, ok := r.Errors[f]; ok {
			return f, true
		}
	}
	return "", false
}

// Messages returns the error messages in display order.
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, f := range fieldOrder {
		if msg, ok := r.Errors[f]; ok {
			out = append(out, msg)
		}
	}
	return out
}

// Validator checks submitted values. The clock is injectable so "today" can
// be pinned in tests.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

func New() *Validator { return NewWithClock(time.Now) }

func NewWithClock(now func() time.Time) *Validator {
	fv := &Validator{v: validator.New(), now: now}
	fv.v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(model.DateLayout, fl.Field().String())
		return err == nil
	})
	fv.v.RegisterValidation("notpast", func(fl validator.FieldLevel) bool {
		// calendar-day comparison; ISO dates order lexicographically
		return fl.Field().String() >= fv.now().Format(model.DateLayout)
	})
	return fv
}

// Validate trims both fields and evaluates every rule. Today never counts as
// past.
func (fv *Validator) Validate(vals Values) Result {
	vals.Title = strings.TrimSpace(vals.Title)
	vals.DueDate = strings.TrimSpace(vals.DueDate)

	if err := fv.v.Struct(vals); err != nil {
		out := make(map[Field]string)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, ve := range verrs {
				f := fieldFor(ve.Field())
				out[f] = message(f, ve.Tag())
			}
		}
		return Result{Errors: out}
	}
	return Result{Valid: true, Errors: map[Field]string{}}
}

func fieldFor(structField string) Field {
	switch structField {
	case "DueDate":
		return FieldDueDate
	default:
		return FieldTitle
	}
}

// label is the user-facing field name used inside messages.
func label(f Field) string {
	if f == FieldDueDate {
		return "due date"
	}
	return string(f)
}

func message(f Field, tag string) string {
	switch tag {
	case "required":
		return label(f) + " is required"
	case "date":
		return label(f) + " is invalid"
	case "notpast":
		return label(f) + " cannot be in the past"
	default:
		return fmt.Sprintf("%s failed %s validation", label(f), tag)
	}
}

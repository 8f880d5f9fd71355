// Package student is the record model: a plain Student and a Scholar that
// extends it with a scholarship type.
//
// VALIDATION CONTRACT:
// ────────────────────
// The email and age fields are unexported. The only way to set them is the
// constructor, which runs them through setEmail / setAge. Nothing outside
// this package can store an unchecked value.
//
// Construction always succeeds. Problems are reported as Issues:
//
//   - bad email → email left unset, Valid() returns false, record must be
//     discarded by the caller
//   - bad age   → age set to 0, record is still acceptable
package student

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaskToken replaces the local part of an email in MaskedEmail.
const MaskToken = "*****"

// Kind tells the variants of Record apart.
type Kind string

// Record variants.
const (
	KindStudent Kind = "student"
	KindScholar Kind = "scholar"
)

// emailPattern: local part and domain of word chars, dots and hyphens,
// then a dot and a word-char top-level segment.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+@[A-Za-z0-9_.-]+\.[A-Za-z0-9_]+$`)

// validate checks emails with two tags, in order:
//
//	contains=@     → ErrMissingAt
//	student_email  → ErrEmailFormat
//
// validator stops at the first failing tag, so the tag on the returned
// FieldError tells us which message to show.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("student_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("student: register email validation: %v", err))
	}
	return v
}

// Record is implemented by *Student and *Scholar.
type Record interface {
	// Kind returns the variant of the record.
	Kind() Kind
	// Base returns the student fields shared by every variant.
	Base() *Student
	// Display writes the record as a block of labelled lines.
	Display(w io.Writer) error
}

// Student is a plain student record.
type Student struct {
	id     string
	name   string
	email  string // empty means unset
	age    int
	issues []Issue
}

// New builds a Student. It never fails; check Valid or Issues afterwards.
func New(id, name, email, age string) *Student {
	s := &Student{id: id, name: name}
	s.setEmail(email)
	s.setAge(age)
	return s
}

func (s *Student) setEmail(raw string) {
	email := strings.TrimSpace(raw)
	s.email = ""

	err := validate.Var(email, "contains=@,student_email")
	if err == nil {
		s.email = email
		return
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) || len(validateErrs) == 0 {
		s.issues = append(s.issues, Issue{Field: FieldEmail, Value: email, Err: err})
		return
	}

	switch validateErrs[0].ActualTag() {
	case "contains":
		s.issues = append(s.issues, Issue{Field: FieldEmail, Value: email, Err: ErrMissingAt})
	default:
		s.issues = append(s.issues, Issue{Field: FieldEmail, Value: email, Err: ErrEmailFormat})
	}
}

// setAge stores raw as an int. Anything Atoi rejects becomes 0 with a
// warning; a digit run too large for int gets ErrAgeRange instead of
// ErrInvalidAge so the message does not claim it is not a number.
func (s *Student) setAge(raw string) {
	value := strings.TrimSpace(raw)
	age, err := strconv.Atoi(value)
	switch {
	case err == nil:
		s.age = age
	case errors.Is(err, strconv.ErrRange):
		s.age = 0
		s.issues = append(s.issues, Issue{Field: FieldAge, Value: value, Err: ErrAgeRange})
	default:
		s.age = 0
		s.issues = append(s.issues, Issue{Field: FieldAge, Value: value, Err: ErrInvalidAge})
	}
}

// ID returns the identifier exactly as it was typed.
func (s *Student) ID() string { return s.id }

// Name returns the cleaned name.
func (s *Student) Name() string { return s.name }

// Age returns the stored age, 0 when the input could not be converted.
func (s *Student) Age() int { return s.age }

// Email returns the stored address and whether one is set.
func (s *Student) Email() (string, bool) {
	return s.email, s.email != ""
}

// Valid reports whether the record may be admitted to the collection.
// Only the email decides this.
func (s *Student) Valid() bool {
	return s.email != ""
}

// Issues returns the problems found during construction, in the order the
// fields were checked (email first, then age).
func (s *Student) Issues() []Issue {
	out := make([]Issue, len(s.issues))
	copy(out, s.issues)
	return out
}

// MaskedEmail hides the local part: "john.smith@school.edu" becomes
// "*****@school.edu". It returns "N/A" when no email is set.
func (s *Student) MaskedEmail() string {
	if s.email == "" {
		return "N/A"
	}
	_, domain, _ := strings.Cut(s.email, "@")
	return MaskToken + "@" + domain
}

// Kind returns KindStudent.
func (s *Student) Kind() Kind { return KindStudent }

// Base returns s itself.
func (s *Student) Base() *Student { return s }

// Display writes:
//
//	Student ID: 2025-001
//	Name:      Juan Dela Cruz
//	Email:     juan@test.com (Masked: *****@test.com)
//	Age:       20
func (s *Student) Display(w io.Writer) error {
	email, ok := s.Email()
	if !ok {
		email = "N/A"
	}

	_, err := fmt.Fprintf(w,
		"Student ID: %s\nName:      %s\nEmail:     %s (Masked: %s)\nAge:       %d\n",
		s.id, s.name, email, s.MaskedEmail(), s.age,
	)
	return err
}

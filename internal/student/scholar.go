package student

import (
	"fmt"
	"io"
)

// Scholar is a Student with a scholarship type. The embedded Student carries
// all the validated fields; ScholarshipType is free text.
type Scholar struct {
	Student
	scholarshipType string
}

// NewScholar builds a Scholar through the same validating path as New.
func NewScholar(id, name, email, age, scholarshipType string) *Scholar {
	return &Scholar{
		Student:         *New(id, name, email, age),
		scholarshipType: scholarshipType,
	}
}

// ScholarshipType returns the free-text scholarship category.
func (s *Scholar) ScholarshipType() string { return s.scholarshipType }

// Kind returns KindScholar.
func (s *Scholar) Kind() Kind { return KindScholar }

// Base returns the embedded Student, so shared code reads the validated
// fields the same way for both variants.
func (s *Scholar) Base() *Student { return &s.Student }

// Display writes the Student block followed by the scholarship line.
func (s *Scholar) Display(w io.Writer) error {
	if err := s.Student.Display(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Scholarship: %s\n", s.scholarshipType)
	return err
}

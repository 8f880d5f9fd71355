package console

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aanand-mishra/student-records/internal/parser"
	"github.com/aanand-mishra/student-records/internal/storage"
	"github.com/aanand-mishra/student-records/internal/student"
	"github.com/aanand-mishra/student-records/internal/utils/response"
)

// Admit appends rec to store if its email is set and reports whether it did.
// An invalid age never blocks admission; a missing or malformed email always
// does.
func Admit(store storage.Storage, rec student.Record) (bool, error) {
	if !rec.Base().Valid() {
		return false, nil
	}
	if _, err := store.AddRecord(rec); err != nil {
		return false, fmt.Errorf("Admit: %w", err)
	}
	return true, nil
}

// AddStudent handles menu option 1.
func (c *Console) AddStudent() error {
	return c.addRecord(student.KindStudent)
}

// AddScholar handles menu option 2. The scholarship type is asked for only
// after the line has parsed.
func (c *Console) AddScholar() error {
	return c.addRecord(student.KindScholar)
}

func (c *Console) addRecord(kind student.Kind) error {
	fmt.Fprintln(c.out, "\n--- ENTER RAW DATA ---")
	fmt.Fprintln(c.out, "Format:  <ID> | <Name> | <Email> | <Age>")
	fmt.Fprintln(c.out, "Example: 2025-001 | Juan Cruz | juan@gmail.com | 20")

	raw, err := c.prompt("\n Enter Here: ")
	if err != nil {
		return err
	}

	if err := c.buildAndAdmit(kind, raw); err != nil {
		return err
	}

	return c.pause("\nPress Enter to return to menu...")
}

func (c *Console) buildAndAdmit(kind student.Kind, raw string) error {
	fields, err := parser.Parse(raw)
	if errors.Is(err, parser.ErrFormatMismatch) {
		c.log.Debug("format mismatch", slog.Int("length", len(raw)))
		if err := c.write(response.Error("Format doesn't match! Please ensure you use '|' to separate values.")); err != nil {
			return err
		}
		_, err := fmt.Fprintf(c.out, "Correct Example: %s\n", parser.Example)
		return err
	}
	if err != nil {
		return err
	}

	name := parser.CleanName(fields.Name)

	var rec student.Record
	switch kind {
	case student.KindScholar:
		scholarship, err := c.prompt("Enter Scholarship Type (e.g., Academic, Athletic): ")
		if err != nil {
			return err
		}
		rec = student.NewScholar(fields.ID, name, fields.Email, fields.Age, scholarship)
	default:
		rec = student.New(fields.ID, name, fields.Email, fields.Age)
	}

	for _, r := range response.ValidationError(rec.Base().Issues()) {
		if err := c.write(r); err != nil {
			return err
		}
	}

	admitted, err := Admit(c.store, rec)
	if err != nil {
		_ = c.write(response.GeneralError(err))
		return err
	}

	if !admitted {
		c.log.Debug("record rejected",
			slog.String("kind", string(kind)),
			slog.String("id", fields.ID))
		return c.write(response.Rejected("Record NOT added. Please fix the email format."))
	}

	c.log.Debug("record added",
		slog.String("kind", string(kind)),
		slog.String("id", fields.ID))

	if kind == student.KindScholar {
		return c.write(response.Success("Scholar successfully added!"))
	}
	return c.write(response.Success("Student successfully added!"))
}

// ViewRecords handles menu option 3: every record, numbered from 1, in the
// order it was added.
func (c *Console) ViewRecords() error {
	records, err := c.store.GetRecords()
	if err != nil {
		_ = c.write(response.GeneralError(err))
		return fmt.Errorf("ViewRecords: %w", err)
	}

	bar := strings.Repeat("=", 20)
	fmt.Fprintf(c.out, "\n%s ALL RECORDS %s\n", bar, bar)

	if len(records) == 0 {
		fmt.Fprintln(c.out, "No records found.")
	}

	for i, rec := range records {
		fmt.Fprintf(c.out, "\n[Record #%d]\n", i+1)
		if err := rec.Display(c.out); err != nil {
			return err
		}
		fmt.Fprintln(c.out, strings.Repeat("-", 40))
	}

	c.log.Debug("records listed", slog.Int("count", len(records)))

	return c.pause("\nPress Enter to continue...")
}

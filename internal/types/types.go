// Package types holds the data structures shared between the parser, the
// student model and the console. Keeping them in one place prevents import
// cycles: the parser produces Fields, the console hands them to the model,
// and neither side has to import the other.
package types

// Fields is one raw input line split into its four captured values.
//
// Everything is still a string at this stage. The parser only guarantees the
// shape of the line; turning Age into a number and checking Email against the
// email grammar is the job of the student model, so that a bad email produces
// a specific message instead of a generic "format mismatch".
//
// The order of the struct fields matches the order on the input line:
//
//	<id> | <name> | <email> | <age>
type Fields struct {
	ID    string
	Name  string
	Email string
	Age   string
}

package response

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aanand-mishra/student-records/internal/student"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_Markers(t *testing.T) {
	tests := []struct {
		resp Response
		want string
	}{
		{Success("Student successfully added!"), "\n[+] Student successfully added!\n"},
		{Rejected("Record NOT added."), "\n[X] Record NOT added.\n"},
		{GeneralError(errors.New("boom")), "\n[!] ERROR: boom\n"},
		{Info("Invalid choice. Please try again."), "\nInvalid choice. Please try again.\n"},
		{Response{Status: StatusIssue, Message: "bad"}, "   [!] Error: bad\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, tt.resp))
		assert.Equal(t, tt.want, buf.String())
	}
}

func TestValidationError(t *testing.T) {
	s := student.New("1", "Mary Jane", "maryjane.com", "twenty")

	got := ValidationError(s.Issues())
	require.Len(t, got, 2)

	assert.Equal(t, StatusIssue, got[0].Status)
	assert.Equal(t, "Invalid email 'maryjane.com'. Missing '@' symbol.", got[0].Message)
	assert.Equal(t, "Invalid age 'twenty'. Must be a number.", got[1].Message)

	assert.Empty(t, ValidationError(nil))
}

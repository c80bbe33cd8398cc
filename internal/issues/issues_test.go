package issues

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		expected string
	}{
		{name: "error", severity: SeverityError, expected: "error"},
		{name: "warning", severity: SeverityWarning, expected: "warning"},
		{name: "info", severity: SeverityInfo, expected: "info"},
		{name: "unknown", severity: Severity(99), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.String())
		})
	}
}

func TestIssueString(t *testing.T) {
	withPath := Issue{Path: "query.limit", Message: "expected type number but got string", Severity: SeverityError}
	assert.Equal(t, "[error] query.limit: expected type number but got string", withPath.String())

	noPath := Issue{Message: "something happened", Severity: SeverityWarning}
	assert.Equal(t, "[warning] something happened", noPath.String())
}

func TestSeverityMarshalsAsText(t *testing.T) {
	data, err := json.Marshal(Issue{Path: "p", Message: "m", Severity: SeverityWarning})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"severity":"warning"`)
}

func TestErrorsAndHasErrors(t *testing.T) {
	all := []Issue{
		{Path: "a", Severity: SeverityWarning},
		{Path: "b", Severity: SeverityError},
		{Path: "c", Severity: SeverityInfo},
		{Path: "d", Severity: SeverityError},
	}

	errs := Errors(all)
	require.Len(t, errs, 2)
	assert.Equal(t, "b", errs[0].Path)
	assert.Equal(t, "d", errs[1].Path)
	assert.True(t, HasErrors(all))

	assert.False(t, HasErrors([]Issue{{Severity: SeverityWarning}}))
	assert.Nil(t, Errors(nil))
}

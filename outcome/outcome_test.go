package outcome_test

import (
	"testing"

	"github.com/amp-labs/amp-wait/outcome"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		out        outcome.Outcome
		isSuccess  bool
		isFailure  bool
		isNotReady bool
	}{
		{
			name:      "success",
			out:       outcome.Success("done"),
			isSuccess: true,
		},
		{
			name:      "failure",
			out:       outcome.Failure("broken"),
			isFailure: true,
		},
		{
			name:       "not ready is failure-like but distinguishable",
			out:        outcome.NotReady("waiting"),
			isFailure:  true,
			isNotReady: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.isSuccess, tt.out.IsSuccess())
			assert.Equal(t, tt.isFailure, tt.out.IsFailure())
			assert.Equal(t, tt.isNotReady, tt.out.IsNotReady())
			assert.True(t, tt.out.Valid())
		})
	}
}

func TestZeroOutcomeIsInvalid(t *testing.T) {
	t.Parallel()

	var out outcome.Outcome

	assert.False(t, out.Valid())
	assert.False(t, out.IsSuccess())
	assert.False(t, out.IsFailure())
	assert.False(t, out.IsNotReady())
	assert.Equal(t, "InvalidOutcome", out.String())
}

func TestValueIsUntouched(t *testing.T) {
	t.Parallel()

	type payload struct{ N int }

	p := payload{N: 7}
	assert.Equal(t, p, outcome.Success(p).Value())

	tpl := outcome.Template("after {total_time} seconds")
	assert.Equal(t, tpl, outcome.NotReady(tpl).Value())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Success(ok)", outcome.Success("ok").String())
	assert.Equal(t, "Failure(no)", outcome.Failure("no").String())
	assert.Equal(t, "NotReady(wait)", outcome.NotReady("wait").String())
}

func TestTemplateExpand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template outcome.Template
		vars     map[string]string
		want     string
	}{
		{
			name:     "all placeholders",
			template: "done after {total_time} seconds and {retries} retries",
			vars:     map[string]string{"total_time": "300", "retries": "4"},
			want:     "done after 300 seconds and 4 retries",
		},
		{
			name:     "unknown placeholder left verbatim",
			template: "started at {start_time}",
			vars:     map[string]string{"total_time": "1"},
			want:     "started at {start_time}",
		},
		{
			name:     "no placeholders",
			template: "plain message",
			vars:     map[string]string{"retries": "9"},
			want:     "plain message",
		},
		{
			name:     "repeated placeholder",
			template: "{retries} and {retries}",
			vars:     map[string]string{"retries": "2"},
			want:     "2 and 2",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.template.Expand(tt.vars))
		})
	}
}

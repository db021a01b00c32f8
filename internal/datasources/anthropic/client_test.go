package anthropic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNarrativePayload(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		want    narrativePayload
		wantErr bool
	}{
		{
			name: "plain_json",
			text: `{"summary": "solid", "efficacy": "likely", "side_effects": "rare", "recommendations": "daily"}`,
			want: narrativePayload{Summary: "solid", Efficacy: "likely", SideEffects: "rare", Recommendations: "daily"},
		},
		{
			name: "fenced_json",
			text: "```json\n{\"summary\": \"solid\"}\n```",
			want: narrativePayload{Summary: "solid"},
		},
		{
			name: "json_with_preamble",
			text: "Here is the analysis:\n{\"summary\": \"solid\"}",
			want: narrativePayload{Summary: "solid"},
		},
		{
			name:    "no_json_at_all",
			text:    "I cannot help with that.",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseNarrativePayload(tc.text)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

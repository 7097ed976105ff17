package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FlexInt
		wantErr bool
	}{
		{"number", `{"v": 3}`, 3, false},
		{"numeric string", `{"v": "3"}`, 3, false},
		{"padded string", `{"v": " 12 "}`, 12, false},
		{"empty string", `{"v": ""}`, 0, false},
		{"null", `{"v": null}`, 0, false},
		{"word", `{"v": "three"}`, 0, true},
		{"float", `{"v": 1.5}`, 0, true},
		{"bool", `{"v": true}`, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out struct {
				V FlexInt `json:"v"`
			}
			err := json.Unmarshal([]byte(tc.input), &out)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.V)
		})
	}
}

func TestQuizRequestDistinguishesMissingID(t *testing.T) {
	var withZero QuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"previous_questions":[1],"quiz_category":{"type":"click","id":0}}`), &withZero))
	require.NotNil(t, withZero.QuizCategory)
	require.NotNil(t, withZero.QuizCategory.ID)
	assert.Equal(t, 0, withZero.QuizCategory.ID.Int())

	var missing QuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"previous_questions":[],"quiz_category":{"type":"Science"}}`), &missing))
	require.NotNil(t, missing.QuizCategory)
	assert.Nil(t, missing.QuizCategory.ID)
}

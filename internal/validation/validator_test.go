package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/articlekeeper/pkg/api"
)

func TestValidator_DraftRequest(t *testing.T) {
	v := New()

	manyTags := make([]string, 21)
	for i := range manyTags {
		manyTags[i] = "t"
	}

	tests := []struct {
		name       string
		req        api.DraftRequest
		wantFields map[string]string
	}{
		{
			name: "valid",
			req:  api.DraftRequest{Title: "Hello", Content: "world", Tags: []string{"AI"}},
		},
		{
			name: "empty title is allowed",
			req:  api.DraftRequest{},
		},
		{
			name: "title of 200 runes",
			req:  api.DraftRequest{Title: strings.Repeat("я", 200)},
		},
		{
			name:       "title too long",
			req:        api.DraftRequest{Title: strings.Repeat("a", 201)},
			wantFields: map[string]string{"title": "must not exceed 200 characters"},
		},
		{
			name:       "too many tags",
			req:        api.DraftRequest{Title: "x", Tags: manyTags},
			wantFields: map[string]string{"tags": "must not contain more than 20 items"},
		},
		{
			name:       "empty tag",
			req:        api.DraftRequest{Title: "x", Tags: []string{"ok", ""}},
			wantFields: map[string]string{"tags[1]": "is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantFields, verr.Fields)
		})
	}
}

func TestError_Message(t *testing.T) {
	err := &Error{Fields: map[string]string{
		"title": "must not exceed 200 characters",
		"tags":  "must not contain more than 20 items",
	}}

	assert.Equal(t,
		"validation failed: tags must not contain more than 20 items; title must not exceed 200 characters",
		err.Error())
}

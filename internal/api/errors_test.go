package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdelmajidelayachi/task-manager/internal/domain"
	"github.com/abdelmajidelayachi/task-manager/internal/store"
)

func TestRespondTaskError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "not found maps to 404",
			err:        store.ErrTaskNotFound,
			wantStatus: http.StatusNotFound,
			wantTitle:  "Resource Not Found",
		},
		{
			name:       "entity title length maps to 400",
			err:        domain.ErrTitleTooLong,
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Validation Failed",
		},
		{
			name:       "entity description length maps to 400",
			err:        domain.ErrDescriptionTooLong,
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Validation Failed",
		},
		{
			name:       "entity enum error maps to 400",
			err:        domain.ErrInvalidStatus,
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Validation Failed",
		},
		{
			name:       "unknown error maps to 500 with generic body",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", nil)
			rec := httptest.NewRecorder()

			respondTaskError(rec, req, tc.err, "boom")

			require.Equal(t, tc.wantStatus, rec.Code)
			resp := decodeErrorResponse(t, rec)
			assert.Equal(t, tc.wantTitle, resp.Error)
			if tc.wantStatus == http.StatusInternalServerError {
				// Raw error text never reaches the client.
				assert.NotContains(t, resp.Message, "connection reset")
			}
		})
	}
}

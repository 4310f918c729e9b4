package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   Code
	}{
		{"invalid content", ErrInvalidContent, http.StatusBadRequest, CodeInvalidContent},
		{"wrapped room not found", fmt.Errorf("get room: %w", ErrRoomNotFound), http.StatusNotFound, CodeRoomNotFound},
		{"not participant", ErrNotParticipant, http.StatusForbidden, CodeNotParticipant},
		{"room closed is a success outcome", ErrRoomClosed, http.StatusOK, CodeRoomClosed},
		{"missing token", ErrMissingToken, http.StatusUnauthorized, CodeUnauthenticated},
		{"storage failure", fmt.Errorf("badger: disk full"), http.StatusInternalServerError, CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			status, code := MapToHTTPStatus(tt.err)
			req.Equal(tt.status, status)
			req.Equal(tt.code, code)
		})
	}
}

func TestNotFoundAndUnauthorizedAreDistinct(t *testing.T) {
	req := require.New(t)
	req.NotEqual(CodeOf(ErrRoomNotFound), CodeOf(ErrNotParticipant))
}

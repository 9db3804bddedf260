package errorx

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joeblew999/plat-bionic/internal/model"
	"github.com/joeblew999/plat-bionic/pkg/bionic"
	"github.com/joeblew999/plat-bionic/pkg/host"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", fmt.Errorf("load node x: %w", model.ErrNotFound), http.StatusNotFound},
		{"unknown node", host.ErrUnknownNode, http.StatusNotFound},
		{"no selection", bionic.ErrNoSelection, http.StatusBadRequest},
		{"invalid settings", fmt.Errorf("%w: contrast 1000", bionic.ErrInvalidSettings), http.StatusBadRequest},
		{"out of range", host.ErrOutOfRange, http.StatusBadRequest},
		{"code error", ErrNotFound("gone"), http.StatusNotFound},
		{"other", fmt.Errorf("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromError(tt.err)
			ce, ok := err.(*CodeError)
			if assert.True(t, ok) {
				assert.Equal(t, tt.code, ce.Code)
			}
		})
	}

	assert.NoError(t, FromError(nil))
}

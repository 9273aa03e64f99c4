package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"jessster/gateway"
)

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", &gateway.Error{Op: "FetchProfile", Kind: gateway.ErrUnauthenticated}, http.StatusUnauthorized},
		{"invalid request", &gateway.Error{Op: "Search", Kind: gateway.ErrInvalidRequest}, http.StatusBadRequest},
		{"upstream 404", &gateway.Error{Op: "ListComments", Kind: gateway.ErrUnexpectedStatus, StatusCode: 404}, http.StatusNotFound},
		{"upstream 500", &gateway.Error{Op: "ListPosts", Kind: gateway.ErrUnexpectedStatus, StatusCode: 500}, http.StatusBadGateway},
		{"transport", &gateway.Error{Op: "ListPosts", Kind: gateway.ErrTransport}, http.StatusBadGateway},
		{"decode", &gateway.Error{Op: "ListPosts", Kind: gateway.ErrDecode}, http.StatusBadGateway},
		{"no body", &gateway.Error{Op: "ListPosts", Kind: gateway.ErrNoResponseBody}, http.StatusBadGateway},
		{"other", errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusFor(tc.err))
		})
	}
}

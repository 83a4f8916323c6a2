package models_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oracular-labs/oracular/internal/api/models"
	"github.com/oracular-labs/oracular/internal/core"
)

func Test_NewErrResp_StatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"oracle not found", core.ErrOracleNotFound, http.StatusNotFound},
		{"user not found", core.ErrUserNotFound, http.StatusNotFound},
		{"feed not found", core.ErrFeedNotFound, http.StatusNotFound},
		{"duplicate oracle", core.ErrOracleAlreadyExists, http.StatusConflict},
		{"duplicate feed", core.ErrFeedAlreadyExists, http.StatusConflict},
		{"not owner", core.ErrNotOwner, http.StatusForbidden},
		{"anonymous owner", core.ErrAnonymousOwner, http.StatusForbidden},
		{"empty update", core.ErrEmptyUpdate, http.StatusBadRequest},
		{"parse failure", &core.ParseError{Kind: core.KeyNotFound, Key: "amount"}, http.StatusBadRequest},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := models.NewErrResp(tc.err)
			assert.Equal(t, tc.code, resp.Code)
			assert.Equal(t, models.NotOK, resp.Status)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func Test_OKAndAcceptedResponses(t *testing.T) {
	ok := models.NewOKResp(models.Result{"k": "v"})
	assert.Equal(t, http.StatusOK, ok.Code)
	assert.Equal(t, models.OK, ok.Status)

	accepted := models.NewAcceptedResp(nil)
	assert.Equal(t, http.StatusAccepted, accepted.Code)
	assert.Equal(t, models.OK, accepted.Status)
}

func Test_UpdateBodyPatchDecoding(t *testing.T) {
	// An absent patch decodes to an empty patch, never a nil pointer
	var body models.OracleUpdateBody
	assert.True(t, body.Patch.IsNone())
}

package ghrest_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/ghrest"
	"github.com/jmgilman/go/ghrest/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const collaboratorURL = "GET repos/octo/hello/collaborators/bob"

func TestClient_CheckCollaborator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		reply      reply
		wantStatus ghrest.CollaboratorStatus
		wantIs     bool
		wantCode   errors.ErrorCode
	}{
		{
			name:       "no content means collaborator",
			reply:      reply{status: http.StatusNoContent},
			wantStatus: ghrest.CollaboratorYes,
			wantIs:     true,
		},
		{
			name:       "not found means not a collaborator",
			reply:      status(http.StatusNotFound),
			wantStatus: ghrest.CollaboratorNo,
			wantIs:     false,
		},
		{
			name:       "forbidden is an error",
			reply:      status(http.StatusForbidden),
			wantStatus: ghrest.CollaboratorUnknown,
			wantCode:   errors.CodeForbidden,
		},
		{
			name:       "unauthorized is an error",
			reply:      status(http.StatusUnauthorized),
			wantStatus: ghrest.CollaboratorUnknown,
			wantCode:   errors.CodeUnauthorized,
		},
		{
			name:       "server error is an error",
			reply:      status(http.StatusServiceUnavailable),
			wantStatus: ghrest.CollaboratorUnknown,
			wantCode:   errors.CodeNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, transport := newFakeAPI(t, map[string]reply{collaboratorURL: tt.reply})
			client := newTestClient(t, transport)
			ctx := context.Background()

			got, err := client.CheckCollaborator(ctx, "octo", "hello", "bob")
			is, isErr := client.IsCollaborator(ctx, "octo", "hello", "bob")

			assert.Equal(t, tt.wantStatus, got)
			if tt.wantCode != "" {
				require.Error(t, err)
				require.Error(t, isErr)
				assert.Equal(t, tt.wantCode, errors.GetCode(err))
				assert.False(t, is)
				return
			}
			require.NoError(t, err)
			require.NoError(t, isErr)
			assert.Equal(t, tt.wantIs, is)
		})
	}
}

func TestClient_CheckCollaborator_DeclaresNotFound(t *testing.T) {
	t.Parallel()

	transport := &mocks.TransportMock{
		DoFunc: func(_ context.Context, req *ghrest.Request) (*ghrest.Response, error) {
			return &ghrest.Response{StatusCode: http.StatusNoContent}, nil
		},
	}
	client := newTestClient(t, transport)

	_, err := client.CheckCollaborator(context.Background(), "octo", "hello", "bob")

	require.NoError(t, err)
	require.Len(t, transport.DoCalls(), 1)
	assert.True(t, transport.DoCalls()[0].Req.Accepts(http.StatusNotFound))
	assert.False(t, transport.DoCalls()[0].Req.Accepts(http.StatusForbidden))
}

func TestCollaboratorStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "collaborator", ghrest.CollaboratorYes.String())
	assert.Equal(t, "not_collaborator", ghrest.CollaboratorNo.String())
	assert.Equal(t, "unknown", ghrest.CollaboratorUnknown.String())
}

func TestClient_AddCollaborator(t *testing.T) {
	t.Parallel()

	t.Run("invitation created", func(t *testing.T) {
		t.Parallel()

		var got *ghrest.Request
		transport := &mocks.TransportMock{
			DoFunc: func(_ context.Context, req *ghrest.Request) (*ghrest.Response, error) {
				got = req
				return &ghrest.Response{
					StatusCode: http.StatusCreated,
					Body: []byte(`{"id":42,"repository":{"full_name":"octo/hello"},` +
						`"invitee":{"login":"bob"},"inviter":{"login":"octo"},"permissions":"write"}`),
				}, nil
			},
		}
		client := newTestClient(t, transport)

		inv, err := client.AddCollaborator(context.Background(), "octo", "hello", "bob", ghrest.PermissionPush)

		require.NoError(t, err)
		require.NotNil(t, inv)
		assert.Equal(t, int64(42), inv.ID)
		assert.Equal(t, "octo/hello", inv.Repository)
		assert.Equal(t, "bob", inv.Invitee)
		assert.Equal(t, "octo", inv.Inviter)
		assert.Equal(t, "write", inv.Permissions)

		assert.Equal(t, ghrest.MethodPut, got.Method)
		assert.Equal(t, "repos/octo/hello/collaborators/bob", got.Path)
		assert.Equal(t, "push", bodyOf(t, got)["permission"])
	})

	t.Run("already a collaborator", func(t *testing.T) {
		t.Parallel()

		transport := &mocks.TransportMock{
			DoFunc: func(_ context.Context, req *ghrest.Request) (*ghrest.Response, error) {
				assert.Nil(t, req.Body)
				return &ghrest.Response{StatusCode: http.StatusNoContent}, nil
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		client := newTestClient(t, transport, ghrest.WithLogger(logger))

		inv, err := client.AddCollaborator(context.Background(), "octo", "hello", "bob", "")

		require.NoError(t, err)
		assert.Nil(t, inv)
		assert.Contains(t, buf.String(), "already a collaborator")
	})
}

func TestClient_RemoveCollaborator(t *testing.T) {
	t.Parallel()

	api, transport := newFakeAPI(t, map[string]reply{
		"DELETE repos/octo/hello/collaborators/bob": {status: http.StatusNoContent},
	})
	client := newTestClient(t, transport)

	err := client.RemoveCollaborator(context.Background(), "octo", "hello", "bob")

	require.NoError(t, err)
	assert.Equal(t, []string{"DELETE repos/octo/hello/collaborators/bob"}, api.requests())
}

func TestClient_ListCollaborators(t *testing.T) {
	t.Parallel()

	_, transport := newFakeAPI(t, map[string]reply{
		"GET repos/octo/hello/collaborators?per_page=50": ok(`[
			{"id":1,"login":"bob","role_name":"write","permissions":{"pull":true,"push":true,"admin":false}}
		]`),
	})
	client := newTestClient(t, transport)

	collaborators, err := client.ListCollaborators(context.Background(), "octo", "hello", &ghrest.ListOptions{PerPage: 50})

	require.NoError(t, err)
	require.Len(t, collaborators, 1)
	assert.Equal(t, "bob", collaborators[0].Login)
	assert.Equal(t, "write", collaborators[0].RoleName)
	assert.Equal(t, map[string]bool{"pull": true, "push": true, "admin": false}, collaborators[0].Permissions)
}

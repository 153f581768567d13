package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/foldcfg/internal/core/domain"
	"github.com/custodia-labs/foldcfg/internal/core/services"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleDocumentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns yaml", func(t *testing.T) {
		server, _ := newTestServer(t)
		_, _, err := server.handleAddProtein(ctx, nil, ProteinInput{Copies: 1, IDs: "A", Sequence: "MKV"})
		require.NoError(t, err)

		result, err := server.handleDocumentResource(ctx, makeReadResourceRequest(documentURI))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, documentURI, result.Contents[0].URI)
		assert.Equal(t, "application/yaml", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "id: [A]")
	})

	t.Run("render failure is an error", func(t *testing.T) {
		builder := services.NewBuilderService(nil, nil, services.BuilderOptions{})
		server, err := NewServer(&Ports{Builder: builder})
		require.NoError(t, err)

		_, err = server.handleDocumentResource(ctx, makeReadResourceRequest(documentURI))

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNoEncoder)
	})
}

func TestServer_handleRegistryResource(t *testing.T) {
	ctx := context.Background()

	t.Run("empty registry", func(t *testing.T) {
		server, _ := newTestServer(t)

		result, err := server.handleRegistryResource(ctx, makeReadResourceRequest(registryURI))

		require.NoError(t, err)
		var view registryView
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &view))
		assert.Empty(t, view.Chains)
		assert.Empty(t, view.Binders)
		assert.Equal(t, "idle", view.Pending.State)
		assert.Contains(t, result.Contents[0].Text, `"chains": []`)
	})

	t.Run("lists chains binders and pending", func(t *testing.T) {
		server, _ := newTestServer(t)
		_, _, err := server.handleAddProtein(ctx, nil, ProteinInput{Copies: 2, IDs: "A,B", Sequence: "MKV"})
		require.NoError(t, err)
		_, _, err = server.handleAddLigand(ctx, nil, LigandInput{Copies: 1, IDs: "L1", Kind: "CCD", Value: "ATP"})
		require.NoError(t, err)
		_, _, err = server.handleAddContact(ctx, nil, ContactInput{Binder: "L1", Chain: "B", Residue: "12"})
		require.NoError(t, err)

		result, err := server.handleRegistryResource(ctx, makeReadResourceRequest(registryURI))

		require.NoError(t, err)
		var view registryView
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &view))
		assert.Equal(t, []string{"A", "B"}, view.Chains)
		assert.Equal(t, []domain.BinderOption{{ID: "L1", Label: "L1 (CCD: ATP)"}}, view.Binders)
		assert.Equal(t, "L1", view.Pending.Binder)
		assert.Equal(t, []ContactOutput{{Chain: "B", Residue: 12}}, view.Pending.Contacts)
	})
}

package clickup

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_InjectsAuthorizationHeader(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pk_123", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"teams":[]}`)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "pk_123")
	_, err := c.GetWorkspaces()
	require.NoError(t, err)
}

// Without a token the header stays absent; the proxy gateway injects its own.
func TestClient_NoTokenNoHeader(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"teams":[]}`)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "")
	_, err := c.GetWorkspaces()
	require.NoError(t, err)
}

func TestClient_DecodesClickUpErrorEnvelope(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"err":"Token invalid","ECODE":"OAUTH_027"}`)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "bad")
	_, err := c.GetWorkspaces()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Token invalid")
}

func TestClient_StatusErrorWithoutEnvelope(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `not json`)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "token")
	_, err := c.GetFolderLists("123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGetFolderLists(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/folder/f1/list", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("archived"))
		fmt.Fprint(w, `{"lists":[{"id":"l1","name":"CLT - Botopremium"},{"id":"l2","name":"CLT - LocMoto"}]}`)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "token")
	lists, err := c.GetFolderLists("f1")
	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, "CLT - Botopremium", lists[0].Name)
}

func TestGetSpacesAndFolders(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/team/9001/space":
			fmt.Fprint(w, `{"spaces":[{"id":"s1","name":"Operação"}]}`)
		case "/space/s1/folder":
			fmt.Fprint(w, `{"folders":[{"id":"f1","name":"Clientes"}]}`)
		case "/space/s1/list":
			fmt.Fprint(w, `{"lists":[{"id":"l9","name":"Tickets"}]}`)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "token")

	spaces, err := c.GetSpaces("9001")
	require.NoError(t, err)
	require.Len(t, spaces, 1)

	folders, err := c.GetFolders("s1")
	require.NoError(t, err)
	require.Len(t, folders, 1)

	lists, err := c.GetSpaceLists("s1")
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Tickets", lists[0].Name)
}

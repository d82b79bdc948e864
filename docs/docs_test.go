package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerRegistered(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	require.Equal(t, "/api/auth", parsed.BasePath)
	require.Contains(t, parsed.Paths, "/register")
	require.Contains(t, parsed.Paths, "/login")
	require.Contains(t, parsed.Paths, "/test-connection")
}

func TestSwaggerSummaries(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		Paths map[string]map[string]struct {
			Summary string `json:"summary"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	require.Equal(t, "註冊使用者", parsed.Paths["/register"]["post"].Summary)
	require.Equal(t, "登入使用者", parsed.Paths["/login"]["post"].Summary)
	require.Equal(t, "檢查資料庫連線", parsed.Paths["/test-connection"]["get"].Summary)
}

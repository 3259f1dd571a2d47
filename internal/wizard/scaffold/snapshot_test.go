package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scaffold.yaml")
	cfg := Config{
		ProjectName:       "my-app",
		FrontendFramework: FrontendNextJS,
		AITemplates:       []string{AITemplateRAG, AITemplateChatbot},
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestParse_RoundTrip_UnsetListsStayUnset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scaffold.yaml")
	cfg := Config{ProjectName: "my-app"}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Nil(t, loaded.AITemplates)
	require.Nil(t, loaded.Extras)
	require.Equal(t, cfg, loaded)
}

func TestParse_ExplicitEmptyListIsUnset(t *testing.T) {
	cfg, err := Parse([]byte("extras: []\n"))
	require.NoError(t, err)
	require.Nil(t, cfg.Extras)
	require.False(t, cfg.IsSet(FieldExtras))
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("projectName: my-app\nfrontend: nextjs\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "frontend")
}

func TestParse_EmptyFileIsFreshConfig(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Config{}, cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

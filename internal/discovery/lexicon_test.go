package discovery

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestLoadLexiconOverridesAndFallbacks(t *testing.T) {
    path := filepath.Join(t.TempDir(), "lexicon.json")
    content := `{"high_energy_traits": ["zoomies", "wild"], "small_breeds": ["teacup poodle"]}`
    require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

    lex, err := LoadLexicon(path)
    require.NoError(t, err)

    assert.Equal(t, []string{"zoomies", "wild"}, lex.HighEnergyTraits)
    assert.Equal(t, []string{"teacup poodle"}, lex.SmallBreeds)
    // untouched fields keep their defaults
    assert.Equal(t, DefaultLexicon().CalmTraits, lex.CalmTraits)
    assert.Equal(t, DefaultLexicon().LargeBreeds, lex.LargeBreeds)
}

func TestLoadLexiconErrors(t *testing.T) {
    _, err := LoadLexicon(filepath.Join(t.TempDir(), "missing.json"))
    assert.Error(t, err)

    path := filepath.Join(t.TempDir(), "bad.json")
    require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
    _, err = LoadLexicon(path)
    assert.Error(t, err)
}

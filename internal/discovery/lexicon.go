package discovery

import (
    "encoding/json"
    "fmt"
    "os"
)

// Lexicon holds the keyword tables the scorer classifies free-text fields
// with. The defaults cover common cases; deployments can extend the taxonomy
// via a JSON file (LEXICON_PATH) without touching scoring logic.
type Lexicon struct {
    HighEnergyTraits []string `json:"high_energy_traits"`
    CalmTraits       []string `json:"calm_traits"`
    SmallBreeds      []string `json:"small_breeds"`
    MediumBreeds     []string `json:"medium_breeds"`
    LargeBreeds      []string `json:"large_breeds"`
}

func DefaultLexicon() *Lexicon {
    return &Lexicon{
        HighEnergyTraits: []string{"playful", "energetic", "active", "bouncy", "hyperactive"},
        CalmTraits:       []string{"calm", "gentle", "relaxed", "quiet", "peaceful"},
        SmallBreeds: []string{
            "chihuahua", "pomeranian", "yorkshire", "shih tzu", "maltese",
            "pug", "dachshund", "papillon", "terrier",
        },
        MediumBreeds: []string{
            "beagle", "bulldog", "cocker spaniel", "border collie", "corgi",
            "whippet", "australian shepherd", "basset",
        },
        LargeBreeds: []string{
            "labrador", "retriever", "german shepherd", "rottweiler", "husky",
            "doberman", "great dane", "mastiff", "bernese",
        },
    }
}

// LoadLexicon reads a lexicon override from a JSON file. Fields left empty in
// the file fall back to the defaults.
func LoadLexicon(path string) (*Lexicon, error) {
    data, err := os.ReadFile(path)
    if err != nil {
        return nil, fmt.Errorf("failed to read lexicon file: %w", err)
    }

    lex := DefaultLexicon()
    if err := json.Unmarshal(data, lex); err != nil {
        return nil, fmt.Errorf("failed to parse lexicon file: %w", err)
    }

    return lex, nil
}

package discovery

import (
    "math"
    "strings"
)

// Energy levels inferred from trait vocabulary
const (
    energyLow    = 1
    energyMedium = 2
    energyHigh   = 3
)

// Breed size classes
const (
    sizeUnknown = iota
    sizeSmall
    sizeMedium
    sizeLarge
)

// Scorer computes the 0-100 compatibility score between two pet profiles.
// The weights are product-level contracts:
//   - age similarity    max 20 (neutral 10 when either age is unknown)
//   - trait overlap     max 30 (neutral 15 when either side has no traits)
//   - energy similarity max 30
//   - breed size        max 20 (neutral 10 when either size is unknown)
//   - minus min(distanceKm * 2, 10), floored at 0
type Scorer struct {
    lexicon *Lexicon
}

func NewScorer(lexicon *Lexicon) *Scorer {
    if lexicon == nil {
        lexicon = DefaultLexicon()
    }
    return &Scorer{lexicon: lexicon}
}

func (s *Scorer) Score(requester, candidate *PetProfile, distanceKm float64) int {
    total := float64(s.ageScore(requester.Age, candidate.Age) +
        s.traitScore(requester.Traits, candidate.Traits) +
        s.energyScore(requester.Traits, candidate.Traits) +
        s.breedSizeScore(requester.Breed, candidate.Breed))

    total -= math.Min(distanceKm*2, 10)

    score := int(math.Round(total))
    if score < 0 {
        score = 0
    }
    if score > 100 {
        score = 100
    }
    return score
}

func (s *Scorer) ageScore(age1, age2 *int) int {
    if age1 == nil || age2 == nil {
        return 10
    }

    diff := *age1 - *age2
    if diff < 0 {
        diff = -diff
    }

    switch {
    case diff <= 1:
        return 20
    case diff <= 2:
        return 15
    case diff <= 3:
        return 10
    case diff <= 5:
        return 5
    default:
        return 0
    }
}

func (s *Scorer) traitScore(traits1, traits2 []string) int {
    set1 := normalizeTraits(traits1)
    set2 := normalizeTraits(traits2)

    if len(set1) == 0 || len(set2) == 0 {
        return 15
    }

    matches := 0
    for trait := range set2 {
        if set1[trait] {
            matches++
        }
    }

    larger := len(set1)
    if len(set2) > larger {
        larger = len(set2)
    }

    ratio := float64(matches) / float64(larger)
    return int(math.Floor(ratio * 30))
}

func (s *Scorer) energyScore(traits1, traits2 []string) int {
    diff := s.energyLevel(traits1) - s.energyLevel(traits2)
    if diff < 0 {
        diff = -diff
    }

    switch {
    case diff <= 1:
        return 30
    case diff <= 2:
        return 20
    default:
        return 10
    }
}

// energyLevel infers an ordinal energy level from trait vocabulary. Profiles
// matching neither lexicon land on medium.
func (s *Scorer) energyLevel(traits []string) int {
    set := normalizeTraits(traits)

    high := 0
    for _, keyword := range s.lexicon.HighEnergyTraits {
        if set[keyword] {
            high++
        }
    }

    calm := 0
    for _, keyword := range s.lexicon.CalmTraits {
        if set[keyword] {
            calm++
        }
    }

    switch {
    case high > calm:
        return energyHigh
    case calm > high:
        return energyLow
    default:
        return energyMedium
    }
}

func (s *Scorer) breedSizeScore(breed1, breed2 string) int {
    size1 := s.breedSize(breed1)
    size2 := s.breedSize(breed2)

    if size1 == sizeUnknown || size2 == sizeUnknown {
        return 10
    }

    diff := size1 - size2
    if diff < 0 {
        diff = -diff
    }

    switch diff {
    case 0:
        return 20
    case 1:
        return 15
    default:
        // small vs large
        return 5
    }
}

func (s *Scorer) breedSize(breed string) int {
    breed = strings.ToLower(breed)

    for _, keyword := range s.lexicon.SmallBreeds {
        if strings.Contains(breed, keyword) {
            return sizeSmall
        }
    }
    for _, keyword := range s.lexicon.MediumBreeds {
        if strings.Contains(breed, keyword) {
            return sizeMedium
        }
    }
    for _, keyword := range s.lexicon.LargeBreeds {
        if strings.Contains(breed, keyword) {
            return sizeLarge
        }
    }

    return sizeUnknown
}

func normalizeTraits(traits []string) map[string]bool {
    set := make(map[string]bool, len(traits))
    for _, trait := range traits {
        trait = strings.ToLower(strings.TrimSpace(trait))
        if trait != "" {
            set[trait] = true
        }
    }
    return set
}

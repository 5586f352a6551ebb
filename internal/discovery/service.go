package discovery

import (
    "context"
    "errors"
    "fmt"
    "sort"
    "strings"
)

var (
    ErrPetNotFound = errors.New("pet profile not found")
    ErrEmptyQuery  = errors.New("search query is required")
)

type Service interface {
    Match(ctx context.Context, req *MatchRequestDTO) ([]*MatchResult, error)
    Search(ctx context.Context, req *SearchRequestDTO) ([]*SearchResult, error)
}

type service struct {
    repo            Repository
    scorer          *Scorer
    defaultRadiusKm float64
    maxMatches      int
    searchLimit     int
}

func NewService(repo Repository, scorer *Scorer, defaultRadiusKm float64, maxMatches, searchLimit int) Service {
    return &service{
        repo:            repo,
        scorer:          scorer,
        defaultRadiusKm: defaultRadiusKm,
        maxMatches:      maxMatches,
        searchLimit:     searchLimit,
    }
}

func (s *service) Match(ctx context.Context, req *MatchRequestDTO) ([]*MatchResult, error) {
    requester, err := s.repo.GetPetProfile(ctx, req.PetID)
    if err != nil {
        return nil, err
    }

    excluded, err := s.exclusionSet(ctx, req.PetID)
    if err != nil {
        return nil, err
    }

    candidates, err := s.repo.ListAvailableProfiles(ctx)
    if err != nil {
        return nil, fmt.Errorf("failed to load candidates: %w", err)
    }

    radius := s.defaultRadiusKm
    if req.Radius != nil {
        radius = *req.Radius
    }

    var matches []*MatchResult
    for _, candidate := range candidates {
        if excluded[candidate.ID] || !candidate.HasLocation() {
            continue
        }

        distance := HaversineKm(*req.Latitude, *req.Longitude, *candidate.Latitude, *candidate.Longitude)
        if distance > radius {
            continue
        }

        score := s.scorer.Score(requester, candidate, distance)
        RecordCompatibilityScore(score)

        matches = append(matches, &MatchResult{
            ID:                 candidate.ID,
            Name:               candidate.Name,
            Breed:              candidate.Breed,
            Age:                candidate.Age,
            Traits:             candidate.Traits,
            OwnerID:            candidate.OwnerID,
            MaskedLocation:     MaskLocation(candidate, false),
            Distance:           roundKm(distance),
            CompatibilityScore: score,
        })
    }

    // Rank: best score first, nearer candidate on ties, then id so the
    // ordering is deterministic.
    sort.Slice(matches, func(i, j int) bool {
        if matches[i].CompatibilityScore != matches[j].CompatibilityScore {
            return matches[i].CompatibilityScore > matches[j].CompatibilityScore
        }
        if matches[i].Distance != matches[j].Distance {
            return matches[i].Distance < matches[j].Distance
        }
        return matches[i].ID < matches[j].ID
    })

    if len(matches) > s.maxMatches {
        matches = matches[:s.maxMatches]
    }

    RecordMatchRequest("ok", len(matches))
    return matches, nil
}

func (s *service) Search(ctx context.Context, req *SearchRequestDTO) ([]*SearchResult, error) {
    query := strings.TrimSpace(req.SearchQuery)
    if query == "" {
        return nil, ErrEmptyQuery
    }

    excluded, err := s.exclusionSet(ctx, req.PetID)
    if err != nil {
        return nil, err
    }

    candidates, err := s.repo.SearchAvailableByName(ctx, query, s.searchLimit)
    if err != nil {
        return nil, fmt.Errorf("failed to search candidates: %w", err)
    }

    hasCoords := req.Latitude != nil && req.Longitude != nil

    var results []*SearchResult
    for _, candidate := range candidates {
        if excluded[candidate.ID] {
            continue
        }

        ownerName, err := s.repo.ResolveOwnerName(ctx, candidate.OwnerID)
        if err != nil {
            return nil, fmt.Errorf("failed to resolve owner: %w", err)
        }

        // Distance stays null unless both sides have coordinates; search is
        // name-based, not geo-filtered.
        var distance *float64
        if hasCoords && candidate.HasLocation() {
            d := roundKm(HaversineKm(*req.Latitude, *req.Longitude, *candidate.Latitude, *candidate.Longitude))
            distance = &d
        }

        results = append(results, &SearchResult{
            ID:             candidate.ID,
            Name:           candidate.Name,
            Breed:          candidate.Breed,
            Age:            candidate.Age,
            Traits:         candidate.Traits,
            OwnerID:        candidate.OwnerID,
            OwnerName:      ownerName,
            MaskedLocation: MaskLocation(candidate, false),
            Distance:       distance,
        })
    }

    if hasCoords {
        sort.Slice(results, func(i, j int) bool {
            di, dj := results[i].Distance, results[j].Distance
            switch {
            case di != nil && dj != nil && *di != *dj:
                return *di < *dj
            case di != nil && dj == nil:
                return true
            case di == nil && dj != nil:
                return false
            default:
                return lessByName(results[i].Name, results[j].Name)
            }
        })
    } else {
        sort.Slice(results, func(i, j int) bool {
            return lessByName(results[i].Name, results[j].Name)
        })
    }

    RecordSearchRequest(len(results))
    return results, nil
}

func (s *service) exclusionSet(ctx context.Context, petID string) (map[string]bool, error) {
    edges, err := s.repo.ListFriendships(ctx, petID)
    if err != nil {
        return nil, fmt.Errorf("failed to load friendships: %w", err)
    }
    return BuildExclusionSet(petID, edges), nil
}

func lessByName(a, b string) bool {
    return strings.ToLower(a) < strings.ToLower(b)
}

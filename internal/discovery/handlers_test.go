package discovery

import (
    "bytes"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, body string) *httptest.ResponseRecorder {
    t.Helper()
    req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
    rec := httptest.NewRecorder()
    handlerFunc(rec, req)
    return rec
}

func TestMatchHandlerValidation(t *testing.T) {
    handler := NewHandler(newTestService(newFakeRepo()))

    rec := postJSON(t, handler.Match, "{not json")
    assert.Equal(t, http.StatusBadRequest, rec.Code)

    rec = postJSON(t, handler.Match, `{"latitude": 40, "longitude": -74}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)

    rec = postJSON(t, handler.Match, `{"petId": "rex"}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchHandlerUnknownPet(t *testing.T) {
    handler := NewHandler(newTestService(newFakeRepo()))

    rec := postJSON(t, handler.Match, `{"petId": "ghost", "latitude": 40, "longitude": -74}`)
    assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMatchHandlerResponseShape(t *testing.T) {
    repo := newFakeRepo()
    repo.addPet("rex", "Rex", 3, "Labrador", 40.0, -74.0, "playful")
    repo.addPet("apollo", "Apollo", 3, "Labrador", 40.0090, -74.0, "playful")
    handler := NewHandler(newTestService(repo))

    rec := postJSON(t, handler.Match, `{"petId": "rex", "latitude": 40, "longitude": -74}`)
    require.Equal(t, http.StatusOK, rec.Code)

    var body MatchResponseDTO
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
    require.Len(t, body.Matches, 1)
    assert.Equal(t, "apollo", body.Matches[0].ID)

    // matches key is present even when empty
    rec = postJSON(t, handler.Match, `{"petId": "rex", "latitude": 40, "longitude": -74, "radius": 0.5}`)
    require.Equal(t, http.StatusOK, rec.Code)
    assert.True(t, bytes.Contains(rec.Body.Bytes(), []byte(`"matches":[]`)))
}

func TestSearchHandlerValidation(t *testing.T) {
    handler := NewHandler(newTestService(newFakeRepo()))

    rec := postJSON(t, handler.Search, `{"petId": "rex"}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)

    rec = postJSON(t, handler.Search, `{"searchQuery": "ace"}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)

    // whitespace-only query survives the tag check but not the service
    rec = postJSON(t, handler.Search, `{"petId": "rex", "searchQuery": "  "}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchHandlerResponseShape(t *testing.T) {
    repo := newFakeRepo()
    repo.addPet("ace", "Ace", 3, "Beagle", 40.0090, -74.0, "playful")
    handler := NewHandler(newTestService(repo))

    rec := postJSON(t, handler.Search, `{"petId": "rex", "searchQuery": "ace"}`)
    require.Equal(t, http.StatusOK, rec.Code)

    var body SearchResponseDTO
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
    require.Len(t, body.Results, 1)
    assert.Equal(t, "ace", body.Results[0].ID)
    assert.Nil(t, body.Results[0].Distance)

    rec = postJSON(t, handler.Search, `{"petId": "rex", "searchQuery": "zzz"}`)
    require.Equal(t, http.StatusOK, rec.Code)
    assert.True(t, bytes.Contains(rec.Body.Bytes(), []byte(`"results":[]`)))
}

package discovery

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestBuildExclusionSetAlwaysContainsSelf(t *testing.T) {
    excluded := BuildExclusionSet("rex", nil)
    assert.Len(t, excluded, 1)
    assert.True(t, excluded["rex"])
}

func TestBuildExclusionSetCoversBothDirections(t *testing.T) {
    edges := []*Friendship{
        {RequesterID: "rex", RecipientID: "apollo", Status: StatusAccepted},
        {RequesterID: "bella", RecipientID: "rex", Status: StatusAccepted},
        {RequesterID: "rex", RecipientID: "coco", Status: StatusPending},
        {RequesterID: "daisy", RecipientID: "rex", Status: StatusPending},
    }

    excluded := BuildExclusionSet("rex", edges)

    // self + 2 accepted + 2 pending
    assert.Len(t, excluded, 5)
    for _, id := range []string{"rex", "apollo", "bella", "coco", "daisy"} {
        assert.True(t, excluded[id], id)
    }
}

// A previously rejected request lets the candidate resurface. This mirrors the
// shipped behavior; change BuildExclusionSet if product ever decides rejected
// edges should stick.
func TestBuildExclusionSetIgnoresRejectedEdges(t *testing.T) {
    edges := []*Friendship{
        {RequesterID: "rex", RecipientID: "echo", Status: StatusRejected},
        {RequesterID: "finn", RecipientID: "rex", Status: StatusRejected},
    }

    excluded := BuildExclusionSet("rex", edges)

    assert.Len(t, excluded, 1)
    assert.False(t, excluded["echo"])
    assert.False(t, excluded["finn"])
}

func TestBuildExclusionSetIgnoresUnrelatedEdges(t *testing.T) {
    edges := []*Friendship{
        {RequesterID: "apollo", RecipientID: "bella", Status: StatusAccepted},
    }

    excluded := BuildExclusionSet("rex", edges)

    assert.Len(t, excluded, 1)
    assert.False(t, excluded["apollo"])
    assert.False(t, excluded["bella"])
}

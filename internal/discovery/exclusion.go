package discovery

// BuildExclusionSet derives the pet identifiers that must never surface as
// candidates for the requester: the requester itself, plus the other endpoint
// of every pending or accepted friendship edge, in either direction. A pending
// edge is excluded so an in-flight request is not re-surfaced or sent twice.
// Rejected edges are deliberately left in the candidate pool.
func BuildExclusionSet(petID string, edges []*Friendship) map[string]bool {
    excluded := map[string]bool{petID: true}

    for _, edge := range edges {
        if edge.Status != StatusPending && edge.Status != StatusAccepted {
            continue
        }

        switch petID {
        case edge.RequesterID:
            excluded[edge.RecipientID] = true
        case edge.RecipientID:
            excluded[edge.RequesterID] = true
        }
    }

    return excluded
}

package discovery

import "math"

// MaskedLocation is the location shape exposed to callers. Owners see their
// exact coordinates; everyone else gets a ~1km approximation or nothing.
type MaskedLocation struct {
    Latitude        *float64 `json:"latitude,omitempty"`
    Longitude       *float64 `json:"longitude,omitempty"`
    ApproxLatitude  *float64 `json:"approx_latitude"`
    ApproxLongitude *float64 `json:"approx_longitude"`
}

// MaskLocation produces the coordinates to expose for a profile. When the
// caller is not the owning user, the exact fields are suppressed and only a
// two-decimal approximation is returned; an unset coordinate stays null rather
// than being fabricated.
func MaskLocation(profile *PetProfile, isOwner bool) MaskedLocation {
    if isOwner {
        return MaskedLocation{
            Latitude:  profile.Latitude,
            Longitude: profile.Longitude,
        }
    }

    return MaskedLocation{
        ApproxLatitude:  approxCoordinate(profile.Latitude),
        ApproxLongitude: approxCoordinate(profile.Longitude),
    }
}

func approxCoordinate(value *float64) *float64 {
    if value == nil {
        return nil
    }
    rounded := math.Round(*value*100) / 100
    return &rounded
}

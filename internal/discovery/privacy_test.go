package discovery

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestMaskLocationOwnerSeesExactCoordinates(t *testing.T) {
    profile := &PetProfile{
        Latitude:  floatPtr(40.123456),
        Longitude: floatPtr(-74.987654),
    }

    masked := MaskLocation(profile, true)

    require.NotNil(t, masked.Latitude)
    require.NotNil(t, masked.Longitude)
    assert.Equal(t, 40.123456, *masked.Latitude)
    assert.Equal(t, -74.987654, *masked.Longitude)
    assert.Nil(t, masked.ApproxLatitude)
    assert.Nil(t, masked.ApproxLongitude)
}

func TestMaskLocationNonOwnerGetsApproximation(t *testing.T) {
    profile := &PetProfile{
        Latitude:  floatPtr(40.123456),
        Longitude: floatPtr(-74.987654),
    }

    masked := MaskLocation(profile, false)

    assert.Nil(t, masked.Latitude)
    assert.Nil(t, masked.Longitude)
    require.NotNil(t, masked.ApproxLatitude)
    require.NotNil(t, masked.ApproxLongitude)
    assert.InDelta(t, 40.12, *masked.ApproxLatitude, 1e-9)
    assert.InDelta(t, -74.99, *masked.ApproxLongitude, 1e-9)
}

func TestMaskLocationNeverFabricatesCoordinates(t *testing.T) {
    profile := &PetProfile{}

    masked := MaskLocation(profile, false)
    assert.Nil(t, masked.ApproxLatitude)
    assert.Nil(t, masked.ApproxLongitude)

    masked = MaskLocation(profile, true)
    assert.Nil(t, masked.Latitude)
    assert.Nil(t, masked.Longitude)
}

package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeocoderForward_EmptyAddress(t *testing.T) {
	g := NewGeocoder("key")

	_, err := g.Forward(context.Background(), "   ")
	assert.Error(t, err)
}

func TestGeocoderForward_MissingKey(t *testing.T) {
	g := NewGeocoder("")

	_, err := g.Forward(context.Background(), "Oslo")
	assert.Error(t, err)
}

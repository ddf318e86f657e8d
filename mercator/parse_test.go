package mercator

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBBox(t *testing.T) {
	b, err := ParseBBox("-180, -85.5,180,85.5")
	require.NoError(t, err)
	assert.Equal(t, BBox{-180, -85.5, 180, 85.5}, b)

	_, err = ParseBBox("1,2,3")
	assert.ErrorIs(t, err, ErrInvalidBBoxLength)
	_, err = ParseBBox("")
	assert.ErrorIs(t, err, ErrInvalidBBoxLength)

	_, err = ParseBBox("a,2,b,4")
	require.Error(t, err)
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
	assert.Contains(t, err.Error(), `"a"`)
	assert.Contains(t, err.Error(), `"b"`)
}

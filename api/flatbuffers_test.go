package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedRequestFlatbuffer(t *testing.T) {
	req := EmbedRequest{Image: []byte{0x89, 'P', 'N', 'G', 0, 1, 2}, Message: "hello 世界", Format: "bmp"}

	decoded, err := UnmarshalEmbedRequest(MarshalEmbedRequest(req))
	require.NoError(t, err)
	assert.Equal(t, req, decoded)
}

func TestEmbedResponseFlatbuffer(t *testing.T) {
	resp := EmbedResponse{StegoImage: []byte{1, 2, 3, 4, 5}, Format: "png"}

	decoded, err := UnmarshalEmbedResponse(MarshalEmbedResponse(resp))
	require.NoError(t, err)
	assert.Equal(t, resp.StegoImage, decoded.StegoImage)
	assert.Equal(t, resp.Format, decoded.Format)
}

func TestUnmarshalMalformedFlatbuffer(t *testing.T) {
	_, err := UnmarshalEmbedRequest([]byte{1})
	assert.ErrorIs(t, err, ErrMalformedFlatbuffer)

	_, err = UnmarshalEmbedRequest([]byte{0xff, 0xff, 0xff, 0x7f, 0, 0, 0, 0})
	assert.ErrorIs(t, err, ErrMalformedFlatbuffer)
}

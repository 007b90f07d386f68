package api

import (
	"errors"
	"fmt"
	"lsbsteg/api/lsbsteg/Embed"

	flatbuffers "github.com/google/flatbuffers/go"
)

var ErrMalformedFlatbuffer = errors.New("malformed flatbuffers message")

// MarshalEmbedRequest encodes the request as an Embed.EmbedRequest flatbuffer
func MarshalEmbedRequest(req EmbedRequest) []byte {
	builder := flatbuffers.NewBuilder(len(req.Image) + len(req.Message) + 64)
	image := builder.CreateByteVector(req.Image)
	message := builder.CreateString(req.Message)
	format := builder.CreateString(req.Format)

	Embed.EmbedRequestStart(builder)
	Embed.EmbedRequestAddImage(builder, image)
	Embed.EmbedRequestAddMessage(builder, message)
	Embed.EmbedRequestAddFormat(builder, format)
	Embed.FinishEmbedRequestBuffer(builder, Embed.EmbedRequestEnd(builder))
	return builder.FinishedBytes()
}

// UnmarshalEmbedRequest decodes an Embed.EmbedRequest flatbuffer. Offsets pointing outside the buffer are reported
// as ErrMalformedFlatbuffer instead of panicking
func UnmarshalEmbedRequest(buf []byte) (req EmbedRequest, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrMalformedFlatbuffer, r)
		}
	}()
	if len(buf) < flatbuffers.SizeUOffsetT {
		return EmbedRequest{}, ErrMalformedFlatbuffer
	}

	fbRequest := Embed.GetRootAsEmbedRequest(buf, 0)
	return EmbedRequest{
		Image:   fbRequest.ImageBytes(),
		Message: string(fbRequest.Message()),
		Format:  string(fbRequest.Format()),
	}, nil
}

func MarshalEmbedResponse(resp EmbedResponse) []byte {
	builder := flatbuffers.NewBuilder(len(resp.StegoImage) + 64)
	stegoImage := builder.CreateByteVector(resp.StegoImage)
	format := builder.CreateString(resp.Format)

	Embed.EmbedResponseStart(builder)
	Embed.EmbedResponseAddStegoImage(builder, stegoImage)
	Embed.EmbedResponseAddFormat(builder, format)
	Embed.FinishEmbedResponseBuffer(builder, Embed.EmbedResponseEnd(builder))
	return builder.FinishedBytes()
}

func UnmarshalEmbedResponse(buf []byte) (resp EmbedResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrMalformedFlatbuffer, r)
		}
	}()
	if len(buf) < flatbuffers.SizeUOffsetT {
		return EmbedResponse{}, ErrMalformedFlatbuffer
	}

	fbResponse := Embed.GetRootAsEmbedResponse(buf, 0)
	return EmbedResponse{
		StegoImage: fbResponse.StegoImageBytes(),
		Format:     string(fbResponse.Format()),
	}, nil
}

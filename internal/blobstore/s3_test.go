package blobstore

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	b, _ := io.ReadAll(params.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_Put(t *testing.T) {
	client := &fakeS3{}
	store := NewS3Store(client, "deal-images", "us-west-2", nil)

	u, err := store.Put(context.Background(), "alice/abc.png", "image/png", strings.NewReader("png-bytes"), 9)
	require.NoError(t, err)

	assert.Equal(t, "https://deal-images.s3.us-west-2.amazonaws.com/alice/abc.png", u)
	assert.Equal(t, "deal-images", aws.ToString(client.input.Bucket))
	assert.Equal(t, "alice/abc.png", aws.ToString(client.input.Key))
	assert.Equal(t, "image/png", aws.ToString(client.input.ContentType))
	assert.Equal(t, int64(9), aws.ToInt64(client.input.ContentLength))
	assert.Equal(t, "png-bytes", client.body)
}

func TestS3Store_PutError(t *testing.T) {
	store := NewS3Store(&fakeS3{err: errors.New("AccessDenied")}, "b", "r", nil)
	_, err := store.Put(context.Background(), "k", "image/png", strings.NewReader(""), 0)
	assert.ErrorContains(t, err, "AccessDenied")
}

func TestS3Store_PublicURLEscapesSegments(t *testing.T) {
	store := NewS3Store(&fakeS3{}, "b", "eu-west-1", nil)
	assert.Equal(t, "https://b.s3.eu-west-1.amazonaws.com/jo%20doe/x.jpg", store.PublicURL("jo doe/x.jpg"))
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.Put(context.Background(), "k", "image/png", strings.NewReader(""), 0)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

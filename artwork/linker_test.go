package artwork

import (
	"context"
	"errors"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rrinconline/sticker-lab-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePresigner struct {
	calls   []string
	expires time.Duration
	err     error
}

func (f *fakePresigner) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	var opts s3.PresignOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	f.expires = opts.Expires
	f.calls = append(f.calls, *params.Bucket+"/"+*params.Key)
	return &v4.PresignedHTTPRequest{
		URL: "https://" + *params.Bucket + ".s3.amazonaws.com/" + *params.Key + "?X-Amz-Signature=abc",
	}, nil
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		ref       string
		expected  string
		presigned string
		expectErr bool
	}{
		{
			name:     "web url passes through",
			ref:      "https://cdn.example.com/art.png",
			expected: "https://cdn.example.com/art.png",
		},
		{
			name:      "s3 url",
			ref:       "s3://uploads/orders/art.png",
			expected:  "https://uploads.s3.amazonaws.com/orders/art.png?X-Amz-Signature=abc",
			presigned: "uploads/orders/art.png",
		},
		{
			name:      "bare key uses the default bucket",
			ref:       "artwork/123_logo.pdf",
			expected:  "https://artwork-bucket.s3.amazonaws.com/artwork/123_logo.pdf?X-Amz-Signature=abc",
			presigned: "artwork-bucket/artwork/123_logo.pdf",
		},
		{name: "path traversal", ref: "s3://uploads/../secrets", expectErr: true},
		{name: "bucket only", ref: "s3://uploads/", expectErr: true},
		{name: "javascript scheme", ref: "javascript:alert(1)", expectErr: true},
		{name: "scheme-relative url", ref: "//evil.example.com/a.png", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakePresigner{}
			l := NewLinkerWith(p, "artwork-bucket", 0)

			link, err := l.Resolve(context.Background(), tt.ref)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Empty(t, p.calls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, link)
			if tt.presigned != "" {
				assert.Equal(t, []string{tt.presigned}, p.calls)
				assert.Equal(t, MaxLinkTTL, p.expires)
			} else {
				assert.Empty(t, p.calls)
			}
		})
	}
}

func TestResolveWithoutDefaultBucket(t *testing.T) {
	l := NewLinkerWith(&fakePresigner{}, "", time.Hour)
	_, err := l.Resolve(context.Background(), "artwork/logo.png")
	assert.Error(t, err)
}

func TestLinkTTLIsClamped(t *testing.T) {
	assert.Equal(t, 2*time.Hour, NewLinkerWith(&fakePresigner{}, "b", 2*time.Hour).ttl)
	assert.Equal(t, MaxLinkTTL, NewLinkerWith(&fakePresigner{}, "b", 30*24*time.Hour).ttl)
	assert.Equal(t, MaxLinkTTL, NewLinkerWith(&fakePresigner{}, "b", -time.Hour).ttl)
}

func TestResolveItems(t *testing.T) {
	items := []types.LineItemForm{
		{ArtworkS3URL: "s3://uploads/a.png"},
		{ArtworkKey: "b.png"},
		{ArtworkURL: "https://cdn.example.com/c.png"},
		{},
	}

	NewLinkerWith(&fakePresigner{}, "artwork-bucket", time.Hour).ResolveItems(context.Background(), items)

	assert.Equal(t, "https://uploads.s3.amazonaws.com/a.png?X-Amz-Signature=abc", items[0].ArtworkReference())
	assert.Equal(t, "https://artwork-bucket.s3.amazonaws.com/b.png?X-Amz-Signature=abc", items[1].ArtworkReference())
	assert.Equal(t, "https://cdn.example.com/c.png", items[2].ArtworkReference())
	assert.Equal(t, "", items[3].ArtworkReference())
}

func TestResolveItemsKeepsReferenceOnFailure(t *testing.T) {
	items := []types.LineItemForm{{ArtworkS3URL: "s3://uploads/a.png"}}

	NewLinkerWith(&fakePresigner{err: errors.New("expired credentials")}, "", time.Hour).
		ResolveItems(context.Background(), items)

	assert.Equal(t, "s3://uploads/a.png", items[0].ArtworkReference())
}

func TestResolveItemsDropsUnsupportedReference(t *testing.T) {
	items := []types.LineItemForm{
		{ArtworkURL: "javascript:alert(document.cookie)"},
		{ArtworkKey: "data:text/html;base64,PHNjcmlwdD4="},
	}

	// No default bucket: presigning would fail, which must not keep the raw value.
	p := &fakePresigner{}
	NewLinkerWith(p, "", time.Hour).ResolveItems(context.Background(), items)

	assert.Equal(t, "", items[0].ArtworkReference())
	assert.Equal(t, "", items[1].ArtworkReference())
	assert.Empty(t, p.calls)
}

func TestResolveUnsupportedReferenceError(t *testing.T) {
	_, err := NewLinkerWith(&fakePresigner{}, "artwork-bucket", time.Hour).Resolve(context.Background(), "vbscript:msgbox")
	assert.ErrorIs(t, err, ErrUnsupportedReference)
}

// Package artwork turns artwork references on order line items into
// time-limited download links.
package artwork

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rrinconline/sticker-lab-backend/config"
	apperrors "github.com/rrinconline/sticker-lab-backend/errors"
	"github.com/rrinconline/sticker-lab-backend/logger"
	"github.com/rrinconline/sticker-lab-backend/types"
	"github.com/rrinconline/sticker-lab-backend/validation"
)

// MaxLinkTTL is the longest validity SigV4 presigning allows.
const MaxLinkTTL = 7 * 24 * time.Hour

// ErrUnsupportedReference is returned for references that are neither web
// or s3 URLs nor storage keys.
var ErrUnsupportedReference = errors.New("unsupported artwork reference")

type presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Linker presigns GET requests for artwork objects.
type Linker struct {
	presigner     presigner
	defaultBucket string
	ttl           time.Duration
}

// NewLinker builds a Linker backed by an S3 presign client.
func NewLinker(ctx context.Context, cfg *config.Config) (*Linker, error) {
	awsCfg, err := cfg.AWS.Load(ctx)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint := cfg.AWS.EndpointOverride(); endpoint != nil {
			o.BaseEndpoint = endpoint
			o.UsePathStyle = true
		}
	})
	return NewLinkerWith(s3.NewPresignClient(client), cfg.Artwork.Bucket, time.Duration(cfg.Artwork.LinkTTLHours)*time.Hour), nil
}

// NewLinkerWith builds a Linker around an existing presigner. A ttl outside
// (0, MaxLinkTTL] is clamped to MaxLinkTTL.
func NewLinkerWith(p presigner, defaultBucket string, ttl time.Duration) *Linker {
	if ttl <= 0 || ttl > MaxLinkTTL {
		ttl = MaxLinkTTL
	}
	return &Linker{presigner: p, defaultBucket: defaultBucket, ttl: ttl}
}

// Resolve returns a download link for ref. http(s) URLs are returned as
// they are; s3://bucket/key URLs and bare keys are presigned.
func (l *Linker) Resolve(ctx context.Context, ref string) (string, error) {
	bucket, key, err := l.locate(ref)
	if err != nil {
		return "", err
	}
	if key == "" {
		return ref, nil
	}

	result, err := l.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(l.ttl))
	if err != nil {
		return "", apperrors.FromAWS("s3", fmt.Errorf("s3 presign failed: %w", err))
	}
	return result.URL, nil
}

// ResolveItems rewrites each line item's artwork reference to a download
// link. A reference that cannot be presigned is kept as supplied; one with an
// unsupported scheme is dropped.
func (l *Linker) ResolveItems(ctx context.Context, items []types.LineItemForm) {
	log := logger.GetLogger().Named("artwork")
	for i := range items {
		ref := items[i].ArtworkReference()
		if ref == "" {
			continue
		}
		link, err := l.Resolve(ctx, ref)
		switch {
		case errors.Is(err, ErrUnsupportedReference):
			log.Warnw("Dropping artwork reference", "item", i+1, "error", err)
			link = ""
		case err != nil:
			log.Warnw("Keeping unresolved artwork reference",
				"item", i+1,
				"error", err)
			link = ref
		}
		items[i].ArtworkURL = types.Text(link)
		items[i].ArtworkS3URL, items[i].ArtworkKey = "", ""
	}
}

// locate splits ref into bucket and key. An empty key means ref is already
// a web URL.
func (l *Linker) locate(ref string) (bucket, key string, err error) {
	if !validation.IsAllowedArtworkRef(ref) {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedReference, ref)
	}
	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return "", "", nil
	case strings.HasPrefix(ref, "s3://"):
		u, err := url.Parse(ref)
		if err != nil {
			return "", "", fmt.Errorf("invalid artwork reference: %w", err)
		}
		bucket, key = u.Host, strings.TrimPrefix(u.Path, "/")
	default:
		bucket, key = l.defaultBucket, strings.TrimPrefix(ref, "/")
	}

	if bucket == "" {
		return "", "", fmt.Errorf("no bucket for artwork key %q", key)
	}
	if key == "" || strings.HasSuffix(key, "/") {
		return "", "", fmt.Errorf("artwork reference %q names no object", ref)
	}
	if err := validateKey(key); err != nil {
		return "", "", err
	}
	return bucket, path.Clean(key), nil
}

// validateKey rejects storage keys containing path traversal segments.
func validateKey(key string) error {
	for _, segment := range strings.Split(key, "/") {
		if segment == ".." {
			return fmt.Errorf("path traversal detected in storage key")
		}
	}
	return nil
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dustin/go-humanize"

	awsx "github.com/staranto/hexdiff/internal/aws"
	"github.com/staranto/hexdiff/internal/cacheutil"
	"github.com/staranto/hexdiff/internal/config"
	"github.com/staranto/hexdiff/internal/log"
)

// Error reports a source that could not be read. It is never retried.
type Error struct {
	Source string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Source, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ObjectGetter is the slice of the S3 API the loader needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// S3Object identifies an object named by an s3:// URI.
type S3Object struct {
	Bucket    string
	Key       string
	VersionID string
}

func (o S3Object) String() string {
	s := "s3://" + o.Bucket + "/" + o.Key
	if o.VersionID != "" {
		s += "?versionId=" + o.VersionID
	}
	return s
}

// ParseS3URI parses s3://bucket/key[?versionId=id]. ok is false when source
// is not an s3 URI at all.
func ParseS3URI(source string) (obj S3Object, ok bool, err error) {
	if !strings.HasPrefix(source, "s3://") {
		return S3Object{}, false, nil
	}

	u, err := url.Parse(source)
	if err != nil {
		return S3Object{}, true, fmt.Errorf("invalid s3 uri: %w", err)
	}

	obj = S3Object{
		Bucket:    u.Host,
		Key:       strings.TrimPrefix(u.Path, "/"),
		VersionID: u.Query().Get("versionId"),
	}
	if obj.Bucket == "" || obj.Key == "" {
		return S3Object{}, true, errors.New("s3 uri needs both a bucket and a key")
	}
	return obj, true, nil
}

// Loader reads sources. The zero value reads local files; S3 sources build a
// client lazily from the AWS default chain plus the configured overrides.
type Loader struct {
	profile  string
	region   string
	endpoint string
	client   ObjectGetter
}

// Option customizes a Loader.
type Option func(*Loader)

// WithProfile sets the AWS shared config profile used for s3 sources.
func WithProfile(profile string) Option {
	return func(l *Loader) { l.profile = profile }
}

// WithRegion sets the AWS region used for s3 sources.
func WithRegion(region string) Option {
	return func(l *Loader) { l.region = region }
}

// WithEndpoint points s3 sources at an S3-compatible endpoint.
func WithEndpoint(endpoint string) Option {
	return func(l *Loader) { l.endpoint = endpoint }
}

// WithClient injects the S3 client, bypassing AWS config resolution.
func WithClient(c ObjectGetter) Option {
	return func(l *Loader) { l.client = c }
}

// New returns a Loader with opts applied.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the complete contents of source. Failures are *Error.
func (l *Loader) Load(ctx context.Context, source string) ([]byte, error) {
	obj, isS3, err := ParseS3URI(source)
	if err != nil {
		return nil, &Error{Source: source, Err: err}
	}

	var data []byte
	if isS3 {
		data, err = l.loadS3(ctx, obj)
	} else {
		data, err = loadFile(source)
	}
	if err != nil {
		return nil, &Error{Source: source, Err: err}
	}

	log.Debugf("loaded %s: %s", source, humanize.Bytes(uint64(len(data))))
	return data, nil
}

// loadFile reads a local file whole. Directories are rejected up front so the
// message is clearer than the read error.
func loadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, errors.New("is a directory")
	}
	return os.ReadFile(path)
}

// loadS3 fetches an object. Version-pinned objects are immutable and go
// through the on-disk cache; unpinned objects are always fetched.
func (l *Loader) loadS3(ctx context.Context, obj S3Object) ([]byte, error) {
	cacheDirs := []string{"s3", obj.Bucket}
	pinned := obj.VersionID != ""

	if pinned {
		if err := purgeCache(); err != nil {
			log.WithError(err).Warn("failed to purge cache")
		}
		if entry, ok := cacheutil.Read(cacheDirs, obj.String()); ok {
			return entry.Data, nil
		}
	}

	client, err := l.s3Client(ctx)
	if err != nil {
		return nil, err
	}

	input := &s3v2.GetObjectInput{
		Bucket: awsv2.String(obj.Bucket),
		Key:    awsv2.String(obj.Key),
	}
	if pinned {
		input.VersionId = awsv2.String(obj.VersionID)
	}

	result, err := client.GetObject(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get S3 object: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body: %w", err)
	}

	if pinned {
		if _, _, err := cacheutil.EnsureBaseDir(); err != nil {
			log.WithError(err).Warn("failed to create cache directory")
		} else if err := cacheutil.Write(cacheDirs, obj.String(), data); err != nil {
			log.WithError(err).Warn("failed to cache S3 object")
		}
	}
	return data, nil
}

func (l *Loader) s3Client(ctx context.Context) (ObjectGetter, error) {
	if l.client != nil {
		return l.client, nil
	}

	var opts []awsx.Option
	if l.profile != "" {
		opts = append(opts, awsx.WithProfile(l.profile))
	}
	if l.region != "" {
		opts = append(opts, awsx.WithRegion(l.region))
	}
	cfg, err := awsx.LoadConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	l.client = awsx.NewS3(cfg, awsx.WithEndpoint(l.endpoint))
	return l.client, nil
}

// purgeCache drops cache entries older than cache.clean hours.
func purgeCache() error {
	cleanHours, _ := config.GetInt("cache.clean", 0)
	return cacheutil.Purge(cleanHours)
}

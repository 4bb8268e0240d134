// Package source loads Go source units from any afs supported location
package source

import (
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// Unit represents a single source file content
type Unit struct {
	URL     string
	Content []byte
}

// Reader returns unit content reader
func (u *Unit) Reader() io.Reader {
	return bytes.NewReader(u.Content)
}

// Store uploads unit content to its URL
func (u *Unit) Store(ctx context.Context, fs afs.Service) error {
	if err := fs.Upload(ctx, u.URL, file.DefaultFileOsMode, u.Reader()); err != nil {
		return errors.Wrapf(err, "failed to store: %v", u.URL)
	}
	return nil
}

// FromBytes creates a unit from in memory content, URL is used for diagnostics only
func FromBytes(URL string, content []byte) *Unit {
	return &Unit{URL: URL, Content: content}
}

// FromReader creates a unit from reader content
func FromReader(URL string, reader io.Reader) (*Unit, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read: %v", URL)
	}
	return FromBytes(URL, content), nil
}

// FromURL loads a unit with supplied file system service
func FromURL(ctx context.Context, fs afs.Service, URL string) (*Unit, error) {
	content, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load source: %v", URL)
	}
	return FromBytes(URL, content), nil
}

// FromFile loads a unit from local file system path
func FromFile(ctx context.Context, location string) (*Unit, error) {
	URL := url.Normalize(location, file.Scheme)
	return FromURL(ctx, afs.New(), URL)
}

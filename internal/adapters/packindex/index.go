// Package packindex resolves vendor packs against the pack repository index.
package packindex

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	httpClientTimeout = 30 * time.Second

	// atmelNS is the namespace of the vendor's index extension attributes.
	atmelNS = "http://packs.download.atmel.com/pack-idx-atmel-extension"
)

var _ ports.PackIndex = (*Index)(nil)

type indexDocument struct {
	Packs []pdsc `xml:"pdsc"`
}

type pdsc struct {
	URL       string   `xml:"url,attr"`
	Version   string   `xml:"version,attr"`
	AtmelName string   `xml:"http://packs.download.atmel.com/pack-idx-atmel-extension name,attr"`
	Releases  releases `xml:"http://packs.download.atmel.com/pack-idx-atmel-extension releases"`
}

type releases struct {
	Items []release `xml:"http://packs.download.atmel.com/pack-idx-atmel-extension release"`
}

type release struct {
	Version string  `xml:"version,attr"`
	Devices devices `xml:"http://packs.download.atmel.com/pack-idx-atmel-extension devices"`
}

type devices struct {
	Items []device `xml:"http://packs.download.atmel.com/pack-idx-atmel-extension device"`
}

type device struct {
	Name string `xml:"name,attr"`
}

// Index implements ports.PackIndex over HTTP.
type Index struct {
	httpClient *http.Client
}

// New creates an Index with the default HTTP client.
func New() *Index {
	return NewWithClient(&http.Client{Timeout: httpClientTimeout})
}

// NewWithClient creates an Index using client.
func NewWithClient(client *http.Client) *Index {
	return &Index{httpClient: client}
}

// IndexLocation returns the URL of the index file of the repository at base.
func IndexLocation(base string) string {
	return strings.TrimSuffix(base, "/") + "/" + domain.IndexFileName
}

// ArchiveLocation returns the URL the repository at base serves the release archive from.
func ArchiveLocation(base string, rel domain.PackRelease) string {
	return strings.TrimSuffix(base, "/") + "/" + rel.ArchiveName()
}

// Lookup fetches the index of the repository at indexURL and returns the named pack's
// latest release. Devices are taken from the first release entry.
func (i *Index) Lookup(ctx context.Context, indexURL, name string) (*domain.PackRelease, error) {
	doc, err := i.fetch(ctx, IndexLocation(indexURL))
	if err != nil {
		return nil, err
	}

	for _, p := range doc.Packs {
		if p.AtmelName != name {
			continue
		}
		rel := &domain.PackRelease{
			Name:    name,
			Version: p.Version,
		}
		if len(p.Releases.Items) > 0 {
			for _, d := range p.Releases.Items[0].Devices.Items {
				rel.Devices = append(rel.Devices, d.Name)
			}
		}
		rel.URL = ArchiveLocation(indexURL, *rel)
		return rel, nil
	}

	return nil, zerr.With(zerr.Wrap(domain.ErrPackNotFound, "no such pack in index"), "pack", name)
}

func (i *Index) fetch(ctx context.Context, url string) (*indexDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexRequestFailed.Error()), "url", url)
	}

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexRequestFailed.Error()), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		reqErr := zerr.With(zerr.Wrap(domain.ErrIndexRequestFailed, "unexpected status"), "status_code", resp.StatusCode)
		return nil, zerr.With(reqErr, "url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexRequestFailed.Error()), "url", url)
	}

	var doc indexDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexParseFailed.Error()), "url", url)
	}
	return &doc, nil
}

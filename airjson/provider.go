package airjson

import (
	"io"
	"io/fs"
	"os"

	"github.com/npillmayer/divedeco"
)

// Paths names the four table documents of a table set.
type Paths struct {
	NoDeco     string
	RepetGroup string
	RNT        string
	Deco       string
}

// Provider reads table documents on demand. It implements
// divedeco.TableProvider.
type Provider struct {
	open  func(name string) (io.ReadCloser, error)
	paths Paths
}

var _ divedeco.TableProvider = (*Provider)(nil)

// FileProvider reads table documents from the file system.
func FileProvider(paths Paths) *Provider {
	return &Provider{
		open: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
		paths: paths,
	}
}

// FSProvider reads table documents from fsys, e.g. an embed.FS.
func FSProvider(fsys fs.FS, paths Paths) *Provider {
	return &Provider{
		open: func(name string) (io.ReadCloser, error) {
			return fsys.Open(name)
		},
		paths: paths,
	}
}

// Header reads the identity fields of the document at path.
func (p *Provider) Header(path string) (Header, error) {
	f, err := p.open(path)
	if err != nil {
		return Header{}, err
	}
	defer f.Close()
	return DecodeHeader(f)
}

func withFile[T any](p *Provider, path string, decode func(io.Reader) (T, error)) (t T, err error) {
	f, err := p.open(path)
	if err != nil {
		return t, err
	}
	defer f.Close()
	return decode(f)
}

// NoDecoTable decodes the no-decompression table document.
func (p *Provider) NoDecoTable() (*divedeco.NoDecoTable, error) {
	return withFile(p, p.paths.NoDeco, DecodeNoDeco)
}

// RepetGroupTable decodes the surface interval credit table document.
func (p *Provider) RepetGroupTable() (*divedeco.RepetGroupTable, error) {
	return withFile(p, p.paths.RepetGroup, DecodeRepetGroup)
}

// ResidualNitrogenTable decodes the residual nitrogen time table document.
func (p *Provider) ResidualNitrogenTable() (*divedeco.ResidualNitrogenTable, error) {
	return withFile(p, p.paths.RNT, DecodeRNT)
}

// DecompressionTable decodes the air decompression table document.
func (p *Provider) DecompressionTable() (*divedeco.DecompressionTable, error) {
	return withFile(p, p.paths.Deco, DecodeDeco)
}

package hwpx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
)

// Package assembles the HWPX zip container. The format demands that the
// mimetype entry comes first and is stored uncompressed; every other
// entry is deflated.
type Package struct {
	entries []packageEntry
	names   map[string]struct{}
}

type packageEntry struct {
	name string
	data []byte
}

// NewPackage creates an empty container.
func NewPackage() *Package {
	return &Package{names: make(map[string]struct{})}
}

// AddFile adds an entry. Entry names are forward-slash relative paths
// inside the container; absolute paths, traversal sequences and
// duplicates are rejected.
func (p *Package) AddFile(name string, data []byte) error {
	if err := checkEntryName(name); err != nil {
		return err
	}
	if _, dup := p.names[name]; dup {
		return &PackageError{Entry: name, Cause: fmt.Errorf("duplicate entry")}
	}
	p.entries = append(p.entries, packageEntry{name: name, data: data})
	p.names[name] = struct{}{}
	return nil
}

func checkEntryName(name string) error {
	if name == "" {
		return &PackageError{Entry: name, Cause: fmt.Errorf("empty entry name")}
	}
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return &PackageError{Entry: name, Cause: fmt.Errorf("absolute path not allowed")}
	}
	if len(name) >= 2 && name[1] == ':' {
		return &PackageError{Entry: name, Cause: fmt.Errorf("absolute path not allowed")}
	}
	clean := path.Clean(name)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return &PackageError{Entry: name, Cause: fmt.Errorf("path traversal not allowed")}
	}
	return nil
}

// WriteTo writes the container to w. The mimetype entry, if present, is
// written first and stored; all other entries keep insertion order and
// are deflated.
func (p *Package) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	for _, e := range p.entries {
		if e.name != "mimetype" {
			continue
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: e.name, Method: zip.Store})
		if err != nil {
			return cw.n, &PackageError{Entry: e.name, Cause: err}
		}
		if _, err := fw.Write(e.data); err != nil {
			return cw.n, &PackageError{Entry: e.name, Cause: err}
		}
	}
	for _, e := range p.entries {
		if e.name == "mimetype" {
			continue
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: e.name, Method: zip.Deflate})
		if err != nil {
			return cw.n, &PackageError{Entry: e.name, Cause: err}
		}
		if _, err := fw.Write(e.data); err != nil {
			return cw.n, &PackageError{Entry: e.name, Cause: err}
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, &PackageError{Entry: "", Cause: err}
	}
	return cw.n, nil
}

// Bytes returns the container as a byte slice.
func (p *Package) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}

// buildPackage serializes the document and lays out the complete
// container entry set.
func (d *Document) buildPackage() (*Package, error) {
	headerXML, sectionXML, err := d.Serialize()
	if err != nil {
		return nil, err
	}

	pkg := NewPackage()
	files := []struct {
		name string
		data []byte
	}{
		{"mimetype", []byte(mimetypePayload)},
		{"version.xml", []byte(renderVersionXML())},
		{"settings.xml", []byte(renderSettingsXML())},
		{"META-INF/container.xml", []byte(renderContainerXML())},
		{"META-INF/manifest.xml", []byte(renderManifestXML())},
		{"META-INF/container.rdf", []byte(renderContainerRDF())},
		{"Contents/content.hpf", []byte(renderContentHPF(d.pictures))},
		{"Contents/header.xml", []byte(headerXML)},
		{"Contents/section0.xml", []byte(sectionXML)},
		{"Preview/PrvText.txt", []byte(d.PreviewText())},
	}
	for _, f := range files {
		if err := pkg.AddFile(f.name, f.data); err != nil {
			return nil, err
		}
	}
	for _, pic := range d.pictures {
		name := fmt.Sprintf("BinData/%s.%s", pic.BinaryItemID, pic.Format)
		if err := pkg.AddFile(name, pic.Data); err != nil {
			return nil, err
		}
	}
	d.log.Debug().Int("entries", len(pkg.entries)).Msg("container assembled")
	return pkg, nil
}

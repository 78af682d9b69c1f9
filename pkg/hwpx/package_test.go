package hwpx

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readContainer(t *testing.T, doc *Document) *zip.Reader {
	t.Helper()
	data, err := doc.Bytes()
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return zr
}

func readEntry(t *testing.T, zr *zip.Reader, name string) string {
	t.Helper()
	f, err := zr.Open(name)
	require.NoError(t, err)
	defer f.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(f)
	require.NoError(t, err)
	return buf.String()
}

func TestContainerMimetypeFirstAndStored(t *testing.T) {
	doc := NewWithSeed(1)
	doc.AddParagraph("x")
	zr := readContainer(t, doc)

	require.NotEmpty(t, zr.File)
	first := zr.File[0]
	assert.Equal(t, "mimetype", first.Name)
	assert.Equal(t, zip.Store, first.Method)
	assert.Equal(t, "application/hwp+zip", readEntry(t, zr, "mimetype"))

	for _, f := range zr.File[1:] {
		assert.Equal(t, zip.Deflate, f.Method, f.Name)
	}
}

func TestContainerEntrySet(t *testing.T) {
	doc := NewWithSeed(1)
	doc.AddParagraph("x")
	zr := readContainer(t, doc)

	want := []string{
		"mimetype",
		"version.xml",
		"settings.xml",
		"META-INF/container.xml",
		"META-INF/manifest.xml",
		"META-INF/container.rdf",
		"Contents/content.hpf",
		"Contents/header.xml",
		"Contents/section0.xml",
		"Preview/PrvText.txt",
	}
	var got []string
	for _, f := range zr.File {
		got = append(got, f.Name)
	}
	assert.Equal(t, want, got)
}

func TestContainerEmbedsImages(t *testing.T) {
	doc := NewWithSeed(1)
	payload := []byte("fake image payload")
	doc.AddImage(payload)
	doc.AddImage(payload)
	zr := readContainer(t, doc)

	assert.Equal(t, "fake image payload", readEntry(t, zr, "BinData/image1.png"))
	assert.Equal(t, "fake image payload", readEntry(t, zr, "BinData/image2.png"))

	hpf := readEntry(t, zr, "Contents/content.hpf")
	assert.Contains(t, hpf, `id="image1" href="BinData/image1.png"`)
	assert.Contains(t, hpf, `id="image2"`)
	assert.Contains(t, hpf, `isEmbeded="1"`)
	assert.Contains(t, hpf, `media-type="image/png"`)
}

func TestContainerPreviewText(t *testing.T) {
	doc := NewWithSeed(1)
	doc.AddHeading("Title", 1)
	doc.AddParagraph("Body text")
	zr := readContainer(t, doc)

	preview := readEntry(t, zr, "Preview/PrvText.txt")
	assert.Contains(t, preview, "Title")
	assert.Contains(t, preview, "Body text")
}

func TestPackageRejectsBadEntryNames(t *testing.T) {
	tests := []string{
		"/absolute",
		`\absolute`,
		"c:/windows",
		"../escape",
		"a/../../escape",
		"",
	}
	for _, name := range tests {
		p := NewPackage()
		err := p.AddFile(name, []byte("x"))
		assert.Error(t, err, "name %q", name)
		var perr *PackageError
		assert.ErrorAs(t, err, &perr, "name %q", name)
		assert.True(t, IsPackageError(err), "name %q", name)
	}
}

func TestPackageRejectsDuplicates(t *testing.T) {
	p := NewPackage()
	require.NoError(t, p.AddFile("a.xml", []byte("1")))
	err := p.AddFile("a.xml", []byte("2"))
	require.Error(t, err)
	assert.True(t, IsPackageError(err))
	assert.True(t, strings.Contains(err.Error(), "duplicate"))
}

func TestIsPackageErrorDistinguishesKinds(t *testing.T) {
	assert.False(t, IsPackageError(nil))
	assert.False(t, IsPackageError(newModelError("table", "x")))
	assert.True(t, IsPackageError(&PackageError{Entry: "a"}))
}

func TestDocumentWriteTo(t *testing.T) {
	doc := NewWithSeed(1)
	doc.AddParagraph("x")

	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Positive(t, n)
}

func TestDocumentSave(t *testing.T) {
	doc := NewWithSeed(1)
	doc.AddParagraph("x")

	path := t.TempDir() + "/out.hwpx"
	require.NoError(t, doc.Save(path))

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()
	assert.Equal(t, "mimetype", zr.File[0].Name)
}

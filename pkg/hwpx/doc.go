// Package hwpx generates HWPX documents, the zip-packaged OWPML format
// of Hancom Office Hangul. It builds documents from high-level content
// operations (headings, paragraphs with inline formatting, tables,
// lists, code blocks, images, hyperlinks) and serializes them into the
// fixed template the format requires: exact namespace prefixes, exact
// element and attribute order, and the container layout Hancom Office
// expects.
//
// Basic usage:
//
//	doc := hwpx.New()
//	doc.AddHeading("보고서", 1)
//	doc.AddParagraph("본문 텍스트입니다.")
//	doc.AddTable([]string{"이름", "나이"}, [][]string{{"김철수", "30"}})
//	if err := doc.Save("output.hwpx"); err != nil {
//	    log.Fatal(err)
//	}
//
// Markdown conversion:
//
//	doc, err := hwpx.ConvertMarkdown(mdText)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, err := doc.Bytes()
//
// A Document is not safe for concurrent use; build independent
// documents on separate goroutines instead. Styling is customized
// through StyleConfig, which rebuilds the whole property registry
// atomically so records never desynchronize.
package hwpx

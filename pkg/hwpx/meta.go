package hwpx

import (
	"fmt"
	"strings"
)

// Container metadata payloads. These are fixed texts except for the
// binary attachment manifest in content.hpf.

const mimetypePayload = "application/hwp+zip"

func renderVersionXML() string {
	return "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n" +
		"<hv:HCFVersion xmlns:hv=\"" + nsHV + "\" tagetApplication=\"WORDPROCESSOR\"" +
		" major=\"5\" minor=\"1\" micro=\"1\" buildNumber=\"0\" os=\"1\"" +
		" xmlVersion=\"1.5\" application=\"Hancom Office Hangul\"" +
		" appVersion=\"12.0.0.1\"/>\n"
}

func renderSettingsXML() string {
	return "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n" +
		"<ha:HWPApplicationSetting xmlns:ha=\"" + nsHA + "\"" +
		" xmlns:config=\"urn:oasis:names:tc:opendocument:xmlns:config:1.0\">\n" +
		"  <ha:CaretPosition listIDRef=\"0\" paraIDRef=\"0\" pos=\"0\"/>\n" +
		"  <config:config-item-set name=\"PrintInfo\">\n" +
		"    <config:config-item name=\"PrintAutoFootNote\" type=\"boolean\">false</config:config-item>\n" +
		"    <config:config-item name=\"PrintAutoHeadNote\" type=\"boolean\">false</config:config-item>\n" +
		"    <config:config-item name=\"PrintCropMark\" type=\"short\">0</config:config-item>\n" +
		"    <config:config-item name=\"BinderHoleType\" type=\"short\">0</config:config-item>\n" +
		"    <config:config-item name=\"ZoomX\" type=\"short\">100</config:config-item>\n" +
		"    <config:config-item name=\"ZoomY\" type=\"short\">100</config:config-item>\n" +
		"  </config:config-item-set>\n" +
		"</ha:HWPApplicationSetting>\n"
}

func renderContainerXML() string {
	return "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n" +
		"<ocf:container xmlns:ocf=\"" + nsOCF + "\"" +
		" xmlns:hpf=\"http://www.hancom.co.kr/schema/2011/hpf\">\n" +
		"  <ocf:rootfiles>\n" +
		"    <ocf:rootfile full-path=\"Contents/content.hpf\" media-type=\"application/hwpml-package+xml\"/>\n" +
		"    <ocf:rootfile full-path=\"Preview/PrvText.txt\" media-type=\"text/plain\"/>\n" +
		"    <ocf:rootfile full-path=\"META-INF/container.rdf\" media-type=\"application/rdf+xml\"/>\n" +
		"  </ocf:rootfiles>\n" +
		"</ocf:container>\n"
}

func renderManifestXML() string {
	return "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n" +
		"<odf:manifest xmlns:odf=\"" + nsODF + "\"/>\n"
}

func renderContainerRDF() string {
	return "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n" +
		"<rdf:RDF xmlns:rdf=\"" + nsRDF + "\">\n" +
		"  <rdf:Description rdf:about=\"\">\n" +
		"    <ns0:hasPart xmlns:ns0=\"http://www.hancom.co.kr/hwpml/2016/meta/pkg#\" rdf:resource=\"Contents/header.xml\"/>\n" +
		"  </rdf:Description>\n" +
		"  <rdf:Description rdf:about=\"Contents/header.xml\">\n" +
		"    <rdf:type rdf:resource=\"http://www.hancom.co.kr/hwpml/2016/meta/pkg#HeaderFile\"/>\n" +
		"  </rdf:Description>\n" +
		"  <rdf:Description rdf:about=\"\">\n" +
		"    <ns0:hasPart xmlns:ns0=\"http://www.hancom.co.kr/hwpml/2016/meta/pkg#\" rdf:resource=\"Contents/section0.xml\"/>\n" +
		"  </rdf:Description>\n" +
		"  <rdf:Description rdf:about=\"Contents/section0.xml\">\n" +
		"    <rdf:type rdf:resource=\"http://www.hancom.co.kr/hwpml/2016/meta/pkg#SectionFile\"/>\n" +
		"  </rdf:Description>\n" +
		"  <rdf:Description rdf:about=\"\">\n" +
		"    <rdf:type rdf:resource=\"http://www.hancom.co.kr/hwpml/2016/meta/pkg#Document\"/>\n" +
		"  </rdf:Description>\n" +
		"</rdf:RDF>\n"
}

// renderContentHPF lists the package parts. Embedded binary attachments
// each get an opf:item pointing into BinData/.
func renderContentHPF(pictures []*Picture) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	b.WriteString("<opf:package xmlns:opf=\"" + nsOPF + "\" version=\"\" unique-identifier=\"\" id=\"\">\n")
	b.WriteString("  <opf:metadata>\n")
	b.WriteString("    <opf:title></opf:title>\n")
	b.WriteString("    <opf:language>ko</opf:language>\n")
	b.WriteString("    <opf:meta name=\"creator\" content=\"text\"></opf:meta>\n")
	b.WriteString("    <opf:meta name=\"subject\" content=\"text\"/>\n")
	b.WriteString("    <opf:meta name=\"description\" content=\"text\"/>\n")
	b.WriteString("    <opf:meta name=\"keyword\" content=\"text\"/>\n")
	b.WriteString("  </opf:metadata>\n")
	b.WriteString("  <opf:manifest>\n")
	b.WriteString("    <opf:item id=\"header\" href=\"Contents/header.xml\" media-type=\"application/xml\"/>\n")
	b.WriteString("    <opf:item id=\"section0\" href=\"Contents/section0.xml\" media-type=\"application/xml\"/>\n")
	b.WriteString("    <opf:item id=\"settings\" href=\"settings.xml\" media-type=\"application/xml\"/>\n")
	for _, pic := range pictures {
		fmt.Fprintf(&b, "    <opf:item id=%q href=\"BinData/%s.%s\" media-type=%q isEmbeded=\"1\"/>\n",
			pic.BinaryItemID, pic.BinaryItemID, pic.Format, pic.MediaType())
	}
	b.WriteString("  </opf:manifest>\n")
	b.WriteString("  <opf:spine>\n")
	b.WriteString("    <opf:itemref idref=\"header\" linear=\"yes\"/>\n")
	b.WriteString("    <opf:itemref idref=\"section0\" linear=\"yes\"/>\n")
	b.WriteString("  </opf:spine>\n")
	b.WriteString("</opf:package>\n")
	return b.String()
}

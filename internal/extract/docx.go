package extract

import (
	"html"
	"log"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// Word documents store their body as WordprocessingML. The reader hands
// back the raw document XML; paragraph and table text is pulled out of
// it in document order.
var (
	tablePattern = regexp.MustCompile(`(?s)<w:tbl[ >].*?</w:tbl>`)
	paraPattern  = regexp.MustCompile(`(?s)<w:p[ >/].*?</w:p>|<w:p>.*?</w:p>`)
	rowPattern   = regexp.MustCompile(`(?s)<w:tr[ >].*?</w:tr>|<w:tr>.*?</w:tr>`)
	cellPattern  = regexp.MustCompile(`(?s)<w:tc[ >].*?</w:tc>|<w:tc>.*?</w:tc>`)
	runPattern   = regexp.MustCompile(`(?s)<w:t[^>]*>(.*?)</w:t>`)
)

// extractDocx reads paragraph text in document order, then table text
// row by row with cells space-joined, all newline-separated. Legacy
// binary .doc files fail to parse and degrade to empty output.
func extractDocx(path string) (string, Diagnosis) {
	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		log.Printf("extract: failed to open word document %s: %v", path, err)
		return "", DiagParseError
	}
	defer reader.Close()

	text := textFromDocumentXML(reader.Editable().GetContent())
	log.Printf("extract: word document %s: %d characters", path, len(text))
	return text, DiagDirect
}

// textFromDocumentXML pulls readable text out of WordprocessingML.
func textFromDocumentXML(content string) string {
	var lines []string

	// Paragraphs outside tables first; table cells carry their own
	// paragraphs and would otherwise appear twice.
	body := tablePattern.ReplaceAllString(content, "")
	for _, para := range paraPattern.FindAllString(body, -1) {
		if text := runText(para); text != "" {
			lines = append(lines, text)
		}
	}

	for _, table := range tablePattern.FindAllString(content, -1) {
		for _, row := range rowPattern.FindAllString(table, -1) {
			var cells []string
			for _, cell := range cellPattern.FindAllString(row, -1) {
				if text := runText(cell); text != "" {
					cells = append(cells, text)
				}
			}
			if len(cells) > 0 {
				lines = append(lines, strings.Join(cells, " "))
			}
		}
	}

	return strings.Join(lines, "\n")
}

// runText concatenates the text runs inside one XML fragment.
func runText(fragment string) string {
	var sb strings.Builder
	for _, m := range runPattern.FindAllStringSubmatch(fragment, -1) {
		sb.WriteString(html.UnescapeString(m[1]))
	}
	return strings.TrimSpace(sb.String())
}

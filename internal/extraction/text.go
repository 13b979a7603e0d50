package extraction

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
)

// txtCharmaps are tried in priority order after a strict UTF-8 check. A
// decoding counts only when it produces non-whitespace text.
var txtCharmaps = []struct {
	name string
	cm   *charmap.Charmap
}{
	{"latin-1", charmap.ISO8859_1},
	{"windows-1252", charmap.Windows1252},
	{"iso-8859-1", charmap.ISO8859_1},
}

func (x *Extractor) extractText(content []byte) (string, error) {
	if utf8.Valid(content) {
		if s := strings.TrimSpace(string(content)); s != "" {
			return s, nil
		}
	}

	for _, entry := range txtCharmaps {
		decoded, err := entry.cm.NewDecoder().Bytes(content)
		if err != nil {
			continue
		}
		if s := strings.TrimSpace(string(decoded)); s != "" {
			x.logger.Debug("decoded txt file", zap.String("encoding", entry.name))
			return s, nil
		}
	}

	// Last resort: keep what is decodable, replacing anything that is not.
	s := strings.TrimSpace(strings.ToValidUTF8(string(content), "�"))
	if s == "" {
		return "", fmt.Errorf("no text content found in txt file")
	}
	return s, nil
}

package app

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NishchayBhardwaj/English-Communication-System/internal/api"
)

// saveChartsCmd decodes the base64 PNG charts attached to the current
// result and writes them under dir. Charts that fail to decode are skipped;
// a result without charts saves nothing.
func saveChartsCmd(result *api.AnalysisResult, dir string) tea.Cmd {
	return func() tea.Msg {
		if result == nil || result.Charts == nil {
			return chartsSavedMsg{}
		}

		stamp := time.Now().Format("20060102-150405")
		var paths []string
		for name, data := range map[string]string{
			"radar":      result.Charts.Radar,
			"vocabulary": result.Charts.Vocabulary,
		} {
			if data == "" {
				continue
			}
			png, err := decodeChartPNG(data)
			if err != nil {
				continue
			}
			path := filepath.Join(dir, fmt.Sprintf("chart-%s-%s.png", name, stamp))
			if os.MkdirAll(dir, 0o755) != nil {
				continue
			}
			if os.WriteFile(path, png, 0o644) != nil {
				continue
			}
			paths = append(paths, path)
		}
		return chartsSavedMsg{Paths: paths}
	}
}

// decodeChartPNG accepts either raw base64 or a data URI
// ("data:image/png;base64,...") as the backend emits both forms.
func decodeChartPNG(data string) ([]byte, error) {
	if i := strings.Index(data, "base64,"); i >= 0 {
		data = data[i+len("base64,"):]
	}
	return base64.StdEncoding.DecodeString(strings.TrimSpace(data))
}

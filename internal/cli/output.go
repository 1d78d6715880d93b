package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// printResult prints a result in the configured output format
func printResult(textLines []string, data any) {
	if cfg.Output == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(data)
		return
	}

	for _, line := range textLines {
		fmt.Println(line)
	}
}

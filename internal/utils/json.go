package utils

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON serializes data as indented JSON and writes it to w followed by
// a newline.
//
// json.RawMessage values are re-indented, so a node response body can be
// passed through unchanged.
//
// Example usage:
//
//	utils.WriteJSON(os.Stdout, map[string]string{"chainId": id})
func WriteJSON(w io.Writer, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("error writing data to JSON: %w", err)
	}

	if _, err = w.Write(append(jsonData, '\n')); err != nil {
		return fmt.Errorf("error writing JSON output: %w", err)
	}
	return nil
}

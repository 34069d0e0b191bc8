package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// DecodeDocument parses a batch JSON payload. The producer is AI tooling and
// occasionally emits slightly malformed JSON (trailing commas, unquoted
// keys); when strict decoding fails we repair once and retry before giving
// up on the item.
func DecodeDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(data))
		if repairErr != nil {
			return nil, fmt.Errorf("decode document: %w (repair failed: %v)", err, repairErr)
		}
		if err2 := json.Unmarshal([]byte(repaired), &doc); err2 != nil {
			return nil, fmt.Errorf("decode repaired document: %w", err2)
		}
	}
	return &doc, nil
}

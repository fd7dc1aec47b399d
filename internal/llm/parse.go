package llm

import (
	"encoding/json"
	"strings"

	"github.com/srikanthsurna/swipe-project/internal/common"
)

// ParseExtraction recovers a typed ExtractionResult from raw model output.
// Two stages: a strict parse of the whole text, then a greedy outer-brace
// recovery (first '{' through last '}') for responses that wrap the JSON in
// prose or markdown fencing. The recovered object is schema-checked before it
// is decoded, so shape problems fail here rather than field by field later.
func ParseExtraction(raw string) (*ExtractionResult, error) {
	payload := []byte(strings.TrimSpace(raw))

	var probe any
	if err := json.Unmarshal(payload, &probe); err != nil {
		recovered, ok := recoverEmbeddedJSON(raw)
		if !ok {
			return nil, common.UnparsableResponseError(err)
		}
		if err := json.Unmarshal(recovered, &probe); err != nil {
			return nil, common.UnparsableResponseError(err)
		}
		payload = recovered
	}

	if err := ValidateJSONAgainstSchema(ExtractionSchema(), payload); err != nil {
		return nil, common.UnparsableResponseError(err)
	}

	var result ExtractionResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, common.UnparsableResponseError(err)
	}
	return &result, nil
}

// recoverEmbeddedJSON takes the substring from the first '{' to the last '}'.
// The greedy match assumes a single well-formed object is embedded; multiple
// or nested JSON blocks are not disambiguated.
func recoverEmbeddedJSON(raw string) ([]byte, bool) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return nil, false
	}
	return []byte(raw[start : end+1]), true
}

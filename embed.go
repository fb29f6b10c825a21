package wavelength

import (
	_ "embed"
)

// Embed the question catalog shipped with the binary
//
//go:embed questions.yaml
var QuestionsYAML []byte

package lint

import "fmt"

// promptTemplate asks the model for a single JSON object mirroring the
// extraction record shape. The reply is parsed by parseExtraction.
const promptTemplate = `You are a documentation linter. Read the tool documentation below and extract what it claims about the tool's behavior.

Respond with a single JSON object and nothing else, using exactly these keys:
{
  "capability": "one sentence describing what the tool does",
  "inputs": ["each input the documentation names"],
  "outputs": ["each output the documentation names"],
  "when_to_use": "when the documentation says to use the tool",
  "when_not_to_use": "when the documentation says not to use the tool",
  "constraints": ["each limit or restriction the documentation names"],
  "invocation": "how the documentation says to invoke the tool",
  "confidence": 0.0
}

Use null for any key the documentation does not address. Set "confidence" to a number between 0 and 1 reflecting how unambiguous the documentation is.

Documentation:
---
%s
---`

func buildPrompt(content string) string {
	return fmt.Sprintf(promptTemplate, content)
}

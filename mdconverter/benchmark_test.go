package mdconverter

import (
	"context"
	"testing"
)

func BenchmarkConvertMarkdown(b *testing.B) {
	conv, err := New(Config{})
	if err != nil {
		b.Fatalf("failed to create converter: %v", err)
	}

	input := `# Heading

This is **bold** text with [link](https://example.com) and *italic*.

> quoted text

- item one
**bold tail**
- item two
1. first

| Name | Value |
|------|-------|
| A | 1 |
| B | 2 |

` + "```go\nfunc main() {}\n```\n"

	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := conv.Convert(ctx, input); err != nil {
			b.Fatalf("convert failed: %v", err)
		}
	}
}

package utils

import (
	"strings"
	"testing"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		chunkSize  int
		overlap    int
		wantChunks int
	}{
		{
			name:       "short text single chunk",
			text:       "hello world",
			chunkSize:  100,
			overlap:    10,
			wantChunks: 1,
		},
		{
			name:       "exact fit single chunk",
			text:       strings.Repeat("a", 100),
			chunkSize:  100,
			overlap:    10,
			wantChunks: 1,
		},
		{
			name:       "two chunks with overlap",
			text:       strings.Repeat("a", 150),
			chunkSize:  100,
			overlap:    50,
			wantChunks: 2,
		},
		{
			name:       "overlap larger than chunk falls back to plain steps",
			text:       strings.Repeat("a", 30),
			chunkSize:  10,
			overlap:    20,
			wantChunks: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := SplitText(tt.text, tt.chunkSize, tt.overlap)

			if len(chunks) != tt.wantChunks {
				t.Errorf("chunk count = %d, want %d", len(chunks), tt.wantChunks)
			}
			for i, chunk := range chunks {
				if len([]rune(chunk)) > tt.chunkSize {
					t.Errorf("chunk %d length = %d, exceeds %d", i, len([]rune(chunk)), tt.chunkSize)
				}
			}
		})
	}
}

func TestSplitTextOverlapPreservesBoundary(t *testing.T) {
	text := "0123456789abcdefghij"
	chunks := SplitText(text, 10, 5)

	if len(chunks) < 2 {
		t.Fatalf("chunk count = %d, want at least 2", len(chunks))
	}
	// Second chunk starts overlap characters before the first chunk ends.
	if !strings.HasPrefix(chunks[1], "56789") {
		t.Errorf("second chunk = %q, want overlap prefix 56789", chunks[1])
	}
}

func TestSplitTextUnicode(t *testing.T) {
	text := strings.Repeat("日本語テキスト", 10) // 60 runes
	chunks := SplitText(text, 25, 5)

	joined := strings.Join(chunks, "")
	if !strings.Contains(joined, "日本語") {
		t.Error("chunks lost multibyte characters")
	}
	for i, chunk := range chunks {
		if len([]rune(chunk)) > 25 {
			t.Errorf("chunk %d rune length = %d, exceeds 25", i, len([]rune(chunk)))
		}
	}
}

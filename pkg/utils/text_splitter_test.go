package utils

import (
	"strings"
	"testing"
)

func TestSplitTextShortInput(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty string", text: "", want: nil},
		{name: "whitespace only", text: "  \n\t  ", want: nil},
		{name: "fits in one chunk", text: "hello world", want: []string{"hello world"}},
		{name: "exactly max size", text: strings.Repeat("x", 20), want: []string{strings.Repeat("x", 20)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitText(tt.text, 20, 5)

			if len(got) != len(tt.want) {
				t.Fatalf("chunk count = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("chunk[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitTextSentenceBoundary(t *testing.T) {
	// Break lands right after a period, and the overlap pulls the cursor back.
	got := SplitText("One. Two. Three. Four.", 10, 2)

	want := []string{"One. Two.", "o. Three.", "e. Four."}
	if len(got) != len(want) {
		t.Fatalf("chunk count = %d, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitTextNewlineBoundary(t *testing.T) {
	got := SplitText("aaaa aaaa\nbbbb bbbb cccc", 16, 0)

	want := []string{"aaaa aaaa\n", "bbbb bbbb cccc"}
	if len(got) != len(want) {
		t.Fatalf("chunk count = %d, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitTextParagraphBoundary(t *testing.T) {
	got := SplitText("para one text\n\npara two text more", 18, 0)

	want := []string{"para one text\n\n", "para two text more"}
	if len(got) != len(want) {
		t.Fatalf("chunk count = %d, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitTextHardCut(t *testing.T) {
	// No whitespace anywhere: the cut falls exactly at the size limit.
	got := SplitText(strings.Repeat("a", 25), 10, 2)

	want := []string{strings.Repeat("a", 10), strings.Repeat("a", 10), strings.Repeat("a", 9)}
	if len(got) != len(want) {
		t.Fatalf("chunk count = %d, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitTextChunkSizeLimit(t *testing.T) {
	text := strings.Repeat("Lorem ipsum dolor sit amet. ", 50)
	maxChunkSize := 100

	chunks := SplitText(text, maxChunkSize, 20)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if n := len([]rune(chunk)); n > maxChunkSize {
			t.Errorf("chunk[%d] has %d runes, limit is %d", i, n, maxChunkSize)
		}
	}
}

func TestSplitTextDeterministic(t *testing.T) {
	text := strings.Repeat("Some sentence here. Another one follows! A question? ", 30)

	first := SplitText(text, 120, 30)
	second := SplitText(text, 120, 30)

	if len(first) != len(second) {
		t.Fatalf("chunk counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk[%d] differs between runs", i)
		}
	}
}

func TestSplitTextReassembly(t *testing.T) {
	// Dropping the trailing overlap from every chunk but the last and
	// concatenating must reproduce the original text with no gaps.
	text := strings.Repeat("The quick brown fox jumps over a lazy dog. ", 40)
	overlap := 25

	chunks := SplitText(text, 100, overlap)
	if len(chunks) < 3 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	var rebuilt []rune
	for i, chunk := range chunks {
		runes := []rune(chunk)
		if i == len(chunks)-1 {
			rebuilt = append(rebuilt, runes...)
			continue
		}
		rebuilt = append(rebuilt, runes[:len(runes)-overlap]...)
	}

	if string(rebuilt) != text {
		t.Errorf("reassembled text does not match the original (len %d vs %d)", len(rebuilt), len([]rune(text)))
	}
}

func TestSplitTextCoversDocumentStart(t *testing.T) {
	text := strings.Repeat("word boundary test content. ", 40)

	chunks := SplitText(text, 100, 25)

	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
	if !strings.HasPrefix(text, chunks[0]) {
		t.Errorf("first chunk is not a prefix of the document")
	}
	if !strings.HasSuffix(text, chunks[len(chunks)-1]) {
		t.Errorf("last chunk is not a suffix of the document")
	}
}

package input

import "testing"

func TestInsertText(t *testing.T) {
	text, cursor := InsertText([]rune("ad"), 1, "bc")
	if string(text) != "abcd" || cursor != 3 {
		t.Fatalf("insert = %q cursor %d, want %q cursor 3", string(text), cursor, "abcd")
	}
}

func TestInsertTextNormalizesBreaks(t *testing.T) {
	text, cursor := InsertText(nil, 0, "a\r\nb\rc")
	if string(text) != "a\nb\nc" {
		t.Fatalf("normalized = %q, want %q", string(text), "a\nb\nc")
	}
	if cursor != 5 {
		t.Fatalf("cursor = %d, want 5", cursor)
	}
}

func TestInsertTextClampsCursor(t *testing.T) {
	text, cursor := InsertText([]rune("ab"), 99, "c")
	if string(text) != "abc" || cursor != 3 {
		t.Fatalf("insert = %q cursor %d, want %q cursor 3", string(text), cursor, "abc")
	}
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	orig := "hello"
	for cursor := 0; cursor <= len(orig); cursor++ {
		text, c := InsertText([]rune(orig), cursor, "x")
		text, c = DeleteCharLeft(text, c)
		if string(text) != orig || c != cursor {
			t.Fatalf("round trip at %d = %q cursor %d", cursor, string(text), c)
		}
	}
}

func TestDeleteCharBoundaries(t *testing.T) {
	text, cursor := DeleteCharLeft([]rune("ab"), 0)
	if string(text) != "ab" || cursor != 0 {
		t.Fatalf("left at start = %q cursor %d", string(text), cursor)
	}
	text, cursor = DeleteCharRight([]rune("ab"), 2)
	if string(text) != "ab" || cursor != 2 {
		t.Fatalf("right at end = %q cursor %d", string(text), cursor)
	}
	text, cursor = DeleteCharRight([]rune("ab"), 0)
	if string(text) != "b" || cursor != 0 {
		t.Fatalf("right = %q cursor %d, want %q cursor 0", string(text), cursor, "b")
	}
}

func TestDeleteWordLeftYankRoundTrip(t *testing.T) {
	orig := []rune("foo bar")
	start := FindWordStart(orig, 7)
	text, cursor, killed := DeleteWordLeft(orig, 7, start)
	if string(text) != "foo " || cursor != 4 || killed != "bar" {
		t.Fatalf("delete word = %q cursor %d killed %q", string(text), cursor, killed)
	}
	text, cursor = YankText(text, cursor, killed)
	if string(text) != "foo bar" || cursor != 7 {
		t.Fatalf("yank = %q cursor %d, want original back", string(text), cursor)
	}
}

func TestDeleteWordRight(t *testing.T) {
	orig := []rune("foo bar")
	end := FindWordEnd(orig, 3)
	text, cursor, killed := DeleteWordRight(orig, 3, end)
	if string(text) != "foo" || cursor != 3 || killed != " bar" {
		t.Fatalf("delete word right = %q cursor %d killed %q", string(text), cursor, killed)
	}
}

func TestDeleteToStartEnd(t *testing.T) {
	text, cursor, killed := DeleteToStart([]rune("one\ntwo"), 5)
	if string(text) != "wo" || cursor != 0 || killed != "one\nt" {
		t.Fatalf("to start = %q cursor %d killed %q", string(text), cursor, killed)
	}
	text, cursor, killed = DeleteToEnd([]rune("one\ntwo"), 2)
	if string(text) != "on" || cursor != 2 || killed != "e\ntwo" {
		t.Fatalf("to end = %q cursor %d killed %q", string(text), cursor, killed)
	}
}

func TestTransposeChars(t *testing.T) {
	text, cursor := TransposeChars([]rune("ab"), 2)
	if string(text) != "ba" || cursor != 2 {
		t.Fatalf("at end = %q cursor %d, want %q cursor 2", string(text), cursor, "ba")
	}
	text, cursor = TransposeChars([]rune("abc"), 1)
	if string(text) != "bac" || cursor != 2 {
		t.Fatalf("mid = %q cursor %d, want %q cursor 2", string(text), cursor, "bac")
	}
	text, cursor = TransposeChars([]rune("abc"), 0)
	if string(text) != "abc" || cursor != 0 {
		t.Fatalf("at start = %q cursor %d, want no-op", string(text), cursor)
	}
	text, cursor = TransposeChars([]rune("a"), 1)
	if string(text) != "a" || cursor != 1 {
		t.Fatalf("single rune = %q cursor %d, want no-op", string(text), cursor)
	}
}

func TestTransposeDragsForward(t *testing.T) {
	// Repeated transposes carry the first rune through the word.
	text, cursor := []rune("abcd"), 1
	text, cursor = TransposeChars(text, cursor)
	text, cursor = TransposeChars(text, cursor)
	text, cursor = TransposeChars(text, cursor)
	if string(text) != "bcda" || cursor != 4 {
		t.Fatalf("dragged = %q cursor %d, want %q cursor 4", string(text), cursor, "bcda")
	}
}

func TestYankEmptyKillBuffer(t *testing.T) {
	text, cursor := YankText([]rune("ab"), 1, "")
	if string(text) != "ab" || cursor != 1 {
		t.Fatalf("empty yank = %q cursor %d, want no-op", string(text), cursor)
	}
}

func TestEditOperationsArePure(t *testing.T) {
	orig := []rune("abcdef")
	snapshot := string(orig)
	InsertText(orig, 3, "XYZ")
	DeleteCharLeft(orig, 3)
	DeleteToEnd(orig, 2)
	TransposeChars(orig, 3)
	if string(orig) != snapshot {
		t.Fatalf("input buffer mutated to %q", string(orig))
	}
}

func TestKillRing(t *testing.T) {
	var k KillRing
	if got := k.Get(); got != "" {
		t.Fatalf("fresh ring = %q, want empty", got)
	}
	k.Set("first")
	k.Set("second")
	if got := k.Get(); got != "second" {
		t.Fatalf("ring = %q, want %q", got, "second")
	}
	// Reads do not clear.
	if got := k.Get(); got != "second" {
		t.Fatalf("second read = %q, want %q", got, "second")
	}
	// Empty kills keep the previous span.
	k.Set("")
	if got := k.Get(); got != "second" {
		t.Fatalf("after empty kill = %q, want %q", got, "second")
	}
	k.Reset()
	if got := k.Get(); got != "" {
		t.Fatalf("after reset = %q, want empty", got)
	}
}

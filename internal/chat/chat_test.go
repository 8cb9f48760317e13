package chat

import "testing"

func TestTranscriptAppend(t *testing.T) {
	var tr Transcript
	first := tr.Append(RoleUser, "hello")
	second := tr.Append(RoleAssistant, "hi")
	if tr.Len() != 2 {
		t.Fatalf("len = %d, want 2", tr.Len())
	}
	if first.ID == "" || second.ID == "" {
		t.Fatalf("message ids not assigned")
	}
	if first.ID == second.ID {
		t.Fatalf("duplicate message id %q", first.ID)
	}
	msgs := tr.Messages()
	if msgs[0].Text != "hello" || msgs[0].Role != RoleUser {
		t.Fatalf("first message = %+v", msgs[0])
	}
	if msgs[1].Text != "hi" || msgs[1].Role != RoleAssistant {
		t.Fatalf("second message = %+v", msgs[1])
	}
	if msgs[0].Time.IsZero() {
		t.Fatalf("timestamp not set")
	}
}

package chat

import (
	"reflect"
	"testing"
	"time"

	"chucklechain/domain"
)

func makeConversation(id string) domain.Conversation {
	sent := time.Now().Add(-time.Hour)
	return domain.Conversation{
		ID:   id,
		User: domain.User{ID: "user2", Username: "janedoe"},
		Messages: []domain.Message{
			{ID: "m1", SenderID: "user2", Text: "Hey, did you see that new meme format?", Timestamp: sent},
			{ID: "m2", SenderID: "user1", Text: "Yeah, it's hilarious!", Timestamp: sent.Add(time.Minute)},
		},
		LastMessage: domain.LastMessage{Text: "Yeah, it's hilarious!", Timestamp: sent.Add(time.Minute)},
	}
}

func TestSendMessage_AppendsAndSyncsLastMessage(t *testing.T) {
	conv := makeConversation("conv1")

	got, sent := SendMessage(conv, "user1", "Can't wait to see it!")
	if !sent {
		t.Fatalf("expected message to be sent")
	}
	if len(got.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(got.Messages))
	}

	tail := got.Messages[len(got.Messages)-1]
	if tail.SenderID != "user1" || tail.Text != "Can't wait to see it!" {
		t.Fatalf("unexpected tail message: %+v", tail)
	}
	if tail.ID == "" {
		t.Fatalf("expected a fresh message id")
	}
	if got.LastMessage.Text != tail.Text || !got.LastMessage.Timestamp.Equal(tail.Timestamp) {
		t.Fatalf("last message out of sync: %+v vs tail %+v", got.LastMessage, tail)
	}
	if tail.Timestamp.Before(got.Messages[1].Timestamp) {
		t.Fatalf("timestamps must be non-decreasing")
	}

	// Input conversation untouched.
	if len(conv.Messages) != 2 {
		t.Fatalf("input conversation was mutated")
	}
}

func TestSendMessage_BlankText_IsNoOp(t *testing.T) {
	conv := makeConversation("conv1")
	for _, text := range []string{"", "   ", "\n\t "} {
		got, sent := SendMessage(conv, "user1", text)
		if sent {
			t.Fatalf("blank text %q must not send", text)
		}
		if !reflect.DeepEqual(got, conv) {
			t.Fatalf("blank send changed the conversation")
		}
	}
}

func TestReplace_SplicesByID(t *testing.T) {
	convs := []domain.Conversation{makeConversation("conv1"), makeConversation("conv2")}
	updated, _ := SendMessage(convs[1], "user1", "template incoming")

	got := Replace(convs, updated)
	if len(got[1].Messages) != 3 {
		t.Fatalf("updated conversation not spliced in")
	}
	if !reflect.DeepEqual(got[0], convs[0]) {
		t.Fatalf("unrelated conversation changed")
	}
	if len(convs[1].Messages) != 2 {
		t.Fatalf("input list was mutated")
	}
}

func TestReplace_UnknownID_LeavesListUnchanged(t *testing.T) {
	convs := []domain.Conversation{makeConversation("conv1")}
	stranger := makeConversation("conv9")
	got := Replace(convs, stranger)
	if !reflect.DeepEqual(got, convs) {
		t.Fatalf("unknown conversation must not be inserted")
	}
}

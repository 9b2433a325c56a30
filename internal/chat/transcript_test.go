package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyQuickTopics(t *testing.T) {
	for _, topic := range Topics() {
		reply, ok := Reply(topic)
		assert.True(t, ok, topic)
		assert.NotEqual(t, FallbackReply, reply)
	}
}

func TestReplyIsExactMatch(t *testing.T) {
	reply, ok := Reply("how do i reduce acne?")
	assert.False(t, ok)
	assert.Equal(t, FallbackReply, reply)
}

func TestTranscriptStartsWithGreeting(t *testing.T) {
	svc := NewService()
	msgs, err := svc.Transcript(context.Background(), "guest:a")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, SenderAurelia, msgs[0].Sender)
	assert.Equal(t, Greeting, msgs[0].Text)
}

func TestSendAppendsPair(t *testing.T) {
	ctx := context.Background()
	svc := NewService()
	_, reply, err := svc.Send(ctx, "guest:a", "Explain retinol benefits")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "Retinol (Vitamin A)")

	_, reply, err = svc.Send(ctx, "guest:a", "Is toner necessary?")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply.Text)

	msgs, _ := svc.Transcript(ctx, "guest:a")
	require.Len(t, msgs, 5)
	assert.Equal(t, SenderUser, msgs[3].Sender)
	assert.Equal(t, "Is toner necessary?", msgs[3].Text)
}

func TestSendBlankIsRejected(t *testing.T) {
	ctx := context.Background()
	svc := NewService()
	_, _, err := svc.Send(ctx, "guest:a", "   \n")
	require.ErrorIs(t, err, ErrBlankMessage)

	msgs, _ := svc.Transcript(ctx, "guest:a")
	assert.Len(t, msgs, 1)
}

func TestResetRestoresGreeting(t *testing.T) {
	ctx := context.Background()
	svc := NewService()
	_, _, _ = svc.Send(ctx, "guest:a", "hello")
	require.NoError(t, svc.Reset(ctx, "guest:a"))
	msgs, _ := svc.Transcript(ctx, "guest:a")
	assert.Len(t, msgs, 1)
}

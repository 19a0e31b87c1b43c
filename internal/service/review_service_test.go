package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type generatorStub struct {
	reply      string
	err        error
	lastPrompt string
}

func (g *generatorStub) Generate(_ context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func TestReviewServicePassesThroughReply(t *testing.T) {
	generator := &generatorStub{reply: "Great pace keep going"}
	svc := NewReviewService(generator, time.Second, testLogger())

	text, err := svc.Review(context.Background(), 76)
	require.NoError(t, err)
	require.Equal(t, "Great pace keep going", text)
	require.Contains(t, generator.lastPrompt, "progress-percentage=76")
}

func TestReviewServicePromptKeepsFractionalValues(t *testing.T) {
	generator := &generatorStub{reply: "ok"}
	svc := NewReviewService(generator, time.Second, testLogger())

	_, err := svc.Review(context.Background(), 12.5)
	require.NoError(t, err)
	require.Contains(t, generator.lastPrompt, "progress-percentage=12.5")
}

func TestReviewServiceUpstreamError(t *testing.T) {
	upstreamErr := errors.New("upstream unreachable")
	svc := NewReviewService(&generatorStub{err: upstreamErr}, time.Second, testLogger())

	_, err := svc.Review(context.Background(), 40)
	require.ErrorIs(t, err, upstreamErr)
}

func TestReviewServiceEmptyReply(t *testing.T) {
	svc := NewReviewService(&generatorStub{reply: "   "}, time.Second, testLogger())

	_, err := svc.Review(context.Background(), 40)
	require.ErrorIs(t, err, ErrEmptyReview)
}

package service

import (
	"context"

	"virtual-assistant-be/types"
)

// Responder produces a grounded text answer for a user query.
type Responder interface {
	Respond(ctx context.Context, query string) (string, error)
}

// AssistantService composes one chat turn: retrieve and generate, then
// optionally synthesize the answer to speech. Stages run sequentially; the
// first failure aborts the turn and its error kind reaches the caller.
type AssistantService struct {
	responder Responder
	tts       SpeechSynthesizer
	audio     *AudioStore
}

func NewAssistantService(responder Responder, tts SpeechSynthesizer, audio *AudioStore) *AssistantService {
	return &AssistantService{
		responder: responder,
		tts:       tts,
		audio:     audio,
	}
}

func (s *AssistantService) HandleChatTurn(ctx context.Context, message string, wantVoice bool) (*types.ChatResult, error) {
	text, err := s.responder.Respond(ctx, message)
	if err != nil {
		return nil, err
	}

	result := &types.ChatResult{Text: text}
	if !wantVoice {
		return result, nil
	}

	audio, err := s.tts.Synthesize(ctx, text)
	if err != nil {
		return nil, err
	}
	result.Audio = audio
	result.ResponseID = s.audio.Put(audio)
	return result, nil
}

package service

import (
	"context"
	"time"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"

	"virtual-assistant-be/config"
	"virtual-assistant-be/types"
)

// TTSService synthesizes answers to MP3 audio through Google Cloud
// Text-to-Speech with a fixed voice. Identical text is resynthesized on
// every call.
type TTSService struct {
	client       *texttospeech.Client
	languageCode string
	voiceName    string
	timeout      time.Duration
}

func NewTTSService(ctx context.Context, cfg config.TTSConfig) (*TTSService, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &TTSService{
		client:       client,
		languageCode: cfg.LanguageCode,
		voiceName:    cfg.VoiceName,
		timeout:      time.Duration(cfg.TimeoutSec) * time.Second,
	}, nil
}

func (s *TTSService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: s.languageCode,
			Name:         s.voiceName,
			SsmlGender:   texttospeechpb.SsmlVoiceGender_FEMALE,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, types.NewAppError(types.ErrKindSynthesis, "text-to-speech request failed").WithCause(err)
	}
	return resp.AudioContent, nil
}

func (s *TTSService) Close() error {
	return s.client.Close()
}

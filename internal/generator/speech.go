package generator

import "context"

const (
	// DemoTranscript is returned for every transcription in mock mode.
	DemoTranscript = "Das ist eine Demo-Transkription des aufgenommenen Audios."
	// DemoSpeechDataURL is a short WAV clip returned for every synthesis in mock mode.
	DemoSpeechDataURL = "data:audio/wav;base64,UklGRnoGAABXQVZFZm10IBAAAAABAAEAQB8AAEAfAAABAAgAZGF0YQoGAACBhYqFbF1fdJivrJBhNjVgodDbq2EcBj+a2/LDciUFLIHO8tiJNwgZaLvt559NEAxQp+PwtmMcBjiR1/LMeSwFJHfH8N2QQAoUXrTp66hVFApGn+DyvmwhBjuR2O/AciMFl"
)

// SpeechProvider converts between audio and text.
type SpeechProvider interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
	Synthesize(ctx context.Context, text string) (string, error)
}

// MockSpeech returns the fixed demo transcript and audio clip.
type MockSpeech struct{}

func NewMockSpeech() *MockSpeech { return &MockSpeech{} }

func (MockSpeech) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return DemoTranscript, nil
}

// Synthesize returns an audio URL (a data URL in mock mode) for text.
func (MockSpeech) Synthesize(ctx context.Context, text string) (string, error) {
	return DemoSpeechDataURL, nil
}

var _ SpeechProvider = (*MockSpeech)(nil)

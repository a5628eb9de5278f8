package core

import "github.com/go-audio/audio"

// ToFloatBuffer wraps a mono signal in a go-audio FloatBuffer so finished
// material can flow into go-audio encoders and sinks. The sample data is
// copied.
func ToFloatBuffer(x []float64, sampleRate int) *audio.FloatBuffer {
	return &audio.FloatBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data: append([]float64(nil), x...),
	}
}

// FromFloatBuffer copies the sample data out of a go-audio FloatBuffer.
// Returns nil for a nil buffer.
func FromFloatBuffer(buf *audio.FloatBuffer) []float64 {
	if buf == nil {
		return nil
	}

	return append([]float64(nil), buf.Data...)
}

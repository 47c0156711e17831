package audio

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWAV assembles a minimal RIFF/WAVE byte stream.
func buildWAV(channels uint16, sampleRate uint32, bits uint16, pcm []byte) []byte {
	var fmtChunk bytes.Buffer
	binary.Write(&fmtChunk, binary.LittleEndian, uint16(pcmFormatCode))
	binary.Write(&fmtChunk, binary.LittleEndian, channels)
	binary.Write(&fmtChunk, binary.LittleEndian, sampleRate)
	byteRate := sampleRate * uint32(channels) * uint32(bits/8)
	binary.Write(&fmtChunk, binary.LittleEndian, byteRate)
	binary.Write(&fmtChunk, binary.LittleEndian, channels*(bits/8)) // block align
	binary.Write(&fmtChunk, binary.LittleEndian, bits)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(4+8+fmtChunk.Len()+8+len(pcm)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(fmtChunk.Len()))
	buf.Write(fmtChunk.Bytes())
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}

func TestDecodeWAV(t *testing.T) {
	pcm := []byte{0x00, 0x01, 0x02, 0x03}
	w, err := decodeWAV(buildWAV(1, 44100, 16, pcm))
	require.NoError(t, err)

	assert.Equal(t, uint16(pcmFormatCode), w.formatCode)
	assert.Equal(t, uint16(1), w.channels)
	assert.Equal(t, uint32(44100), w.sampleRate)
	assert.Equal(t, uint16(16), w.bitsPerSample)
	assert.Equal(t, pcm, w.pcm)
}

func TestDecodeWAVSkipsUnknownChunks(t *testing.T) {
	base := buildWAV(2, 48000, 16, []byte{1, 2, 3, 4})

	// Splice a LIST chunk between the header and fmt chunk.
	var buf bytes.Buffer
	buf.Write(base[:12])
	buf.WriteString("LIST")
	binary.Write(&buf, binary.LittleEndian, uint32(4))
	buf.WriteString("INFO")
	buf.Write(base[12:])

	w, err := decodeWAV(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, uint16(2), w.channels)
	assert.Equal(t, []byte{1, 2, 3, 4}, w.pcm)
}

func TestDecodeWAVRejectsGarbage(t *testing.T) {
	tests := map[string][]byte{
		"empty":       {},
		"not riff":    []byte("OggS this is something else entirely"),
		"bare header": []byte("RIFF\x00\x00\x00\x00WAVE"),
		"no data":     buildWAV(1, 44100, 16, nil)[:28],
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := decodeWAV(data)
			assert.Error(t, err)
		})
	}
}

func TestDecodeWAVRejectsZeroChannels(t *testing.T) {
	_, err := decodeWAV(buildWAV(0, 44100, 16, []byte{1, 2}))
	assert.Error(t, err)
}

func TestDecodeWAVTruncatedDataChunk(t *testing.T) {
	full := buildWAV(1, 44100, 16, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	w, err := decodeWAV(full[:len(full)-4])
	require.NoError(t, err)
	assert.Len(t, w.pcm, 4, "declared length is clamped to what is present")
}

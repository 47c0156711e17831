package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

// pcmFormatCode is the WAVE format tag for uncompressed PCM.
const pcmFormatCode = 1

// wavData is the decoded contents of a RIFF/WAVE file: the format fields
// from the fmt chunk and the raw sample bytes from the data chunk.
type wavData struct {
	formatCode    uint16
	channels      uint16
	sampleRate    uint32
	bitsPerSample uint16
	pcm           []byte
}

var errNotWAV = errors.New("not a RIFF/WAVE file")

// decodeWAVFile reads a WAV file and returns its format and sample data.
// Only the fmt and data chunks are consumed; other chunks are skipped.
func decodeWAVFile(path string) (*wavData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeWAV(data)
}

func decodeWAV(data []byte) (*wavData, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errNotWAV
	}

	w := &wavData{}
	sawFmt := false
	offset := 12
	for offset+8 <= len(data) {
		chunkID := string(data[offset : offset+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		body := offset + 8
		if body+chunkSize > len(data) {
			chunkSize = len(data) - body
		}

		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return nil, fmt.Errorf("wav fmt chunk too short: %d bytes", chunkSize)
			}
			w.formatCode = binary.LittleEndian.Uint16(data[body : body+2])
			w.channels = binary.LittleEndian.Uint16(data[body+2 : body+4])
			w.sampleRate = binary.LittleEndian.Uint32(data[body+4 : body+8])
			w.bitsPerSample = binary.LittleEndian.Uint16(data[body+14 : body+16])
			sawFmt = true
		case "data":
			w.pcm = data[body : body+chunkSize]
		}

		// Chunks are word-aligned.
		if chunkSize%2 == 1 {
			chunkSize++
		}
		offset = body + chunkSize
	}

	if !sawFmt || w.pcm == nil {
		return nil, errNotWAV
	}
	if w.channels == 0 || w.sampleRate == 0 {
		return nil, fmt.Errorf("wav has invalid format: %d channels at %d Hz", w.channels, w.sampleRate)
	}
	return w, nil
}

package sysex

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/ZILtoid1991/midi2/pkg/ump"
)

// WriteSMF writes a single-track Standard MIDI File containing one SysEx
// event with the given 7-bit-clean payload.
func WriteSMF(w io.Writer, payload []byte) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(480)

	var track smf.Track
	track.Add(0, midi.SysEx(payload))
	track.Close(0)

	if err := s.Add(track); err != nil {
		return fmt.Errorf("failed to add track: %w", err)
	}

	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write MIDI: %w", err)
	}
	return nil
}

// ReadSMF reads a Standard MIDI File and returns the payload of the first
// SysEx event it contains.
func ReadSMF(data []byte) ([]byte, error) {
	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse MIDI: %w", err)
	}

	for _, track := range s.Tracks {
		for _, ev := range track {
			msg := ev.Message
			if len(msg) >= 2 && msg[0] == ump.SysExStart && msg[len(msg)-1] == ump.SysExEnd {
				payload := make([]byte, len(msg)-2)
				copy(payload, msg[1:len(msg)-1])
				return payload, nil
			}
		}
	}

	return nil, errors.New("no SysEx event found in MIDI file")
}

// Package ump provides the static MIDI 2.0 protocol tables and the
// fixed-layout MIDI-CI message header accessor consumed by transport code
// sitting above the Mcoded7 codec. It contains data definitions and
// shift/mask helpers only; no framing or validation logic lives here.
package ump

// Universal MIDI Packet message types (the high nibble of the first word).
const (
	MsgTypeUtility           = 0x0 // utility messages (NOOP, jitter reduction)
	MsgTypeSystemRealTime    = 0x1 // system real-time and system common
	MsgTypeMIDI1ChannelVoice = 0x2 // MIDI 1.0 channel voice
	MsgTypeSysEx7            = 0x3 // 7-bit data / SysEx
	MsgTypeMIDI2ChannelVoice = 0x4 // MIDI 2.0 channel voice
	MsgTypeData128           = 0x5 // 128-bit data / SysEx8 and mixed data set
	MsgTypeFlexData          = 0xD // flex data
	MsgTypeUMPStream         = 0xF // UMP stream messages
)

// packetWords maps a UMP message type (0x0-0xF) to its packet size in
// 32-bit words.
var packetWords = [16]int{
	1, 1, 1, 2,
	2, 4, 1, 1,
	2, 2, 2, 3,
	3, 4, 4, 4,
}

// PacketWords returns the size in 32-bit words of a packet with the given
// message type nibble.
func PacketWords(msgType uint8) int {
	return packetWords[msgType&0x0F]
}

// PacketBytes returns the size in bytes of a packet with the given message
// type nibble.
func PacketBytes(msgType uint8) int {
	return PacketWords(msgType) * 4
}

// MessageType extracts the message type nibble from the first word of a
// packet.
func MessageType(word uint32) uint8 {
	return uint8(word >> 28)
}

// Group extracts the group field (second nibble) from the first word of a
// packet.
func Group(word uint32) uint8 {
	return uint8(word>>24) & 0x0F
}

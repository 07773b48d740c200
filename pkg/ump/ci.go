package ump

// Universal SysEx bytes used by MIDI-CI messages.
const (
	SysExStart        = 0xF0
	SysExEnd          = 0xF7
	UniversalNonRT    = 0x7E // universal non-real-time SysEx ID
	DeviceIDWholePort = 0x7F // "to/from the whole MIDI port"
	SubIDMIDICI       = 0x0D // sub-ID #1: MIDI Capability Inquiry
)

// MIDI-CI sub-ID #2 command codes.
const (
	// Protocol negotiation
	CIProtocolNegotiation      = 0x10
	CIProtocolNegotiationReply = 0x11
	CISetNewProtocol           = 0x12
	CITestNewProtocol          = 0x13
	CITestNewProtocolReply     = 0x14
	CIConfirmNewProtocol       = 0x15

	// Profile configuration
	CIProfileInquiry        = 0x20
	CIProfileInquiryReply   = 0x21
	CISetProfileOn          = 0x22
	CISetProfileOff         = 0x23
	CIProfileEnabledReport  = 0x24
	CIProfileDisabledReport = 0x25

	// Property exchange (payloads are Mcoded7-encoded)
	CIPECapabilityInquiry = 0x30
	CIPECapabilityReply   = 0x31
	CIPEGet               = 0x34
	CIPEGetReply          = 0x35
	CIPESet               = 0x36
	CIPESetReply          = 0x37
	CIPESubscribe         = 0x38
	CIPESubscribeReply    = 0x39
	CIPENotify            = 0x3F

	// Management
	CIDiscovery      = 0x70
	CIDiscoveryReply = 0x71
	CIInvalidateMUID = 0x7E
	CINAK            = 0x7F
)

// CIHeaderSize is the fixed size of the MIDI-CI message header, counted
// from the universal SysEx ID (the byte after 0xF0) through the
// destination MUID.
const CIHeaderSize = 13

// Fixed byte offsets within a CI header.
const (
	ciOffUniversal = 0  // 0x7E
	ciOffDeviceID  = 1  // device ID / channel
	ciOffSubID     = 2  // 0x0D
	ciOffCommand   = 3  // sub-ID #2
	ciOffVersion   = 4  // CI message version
	ciOffSrcMUID   = 5  // 4 bytes, 7-bit little-endian
	ciOffDstMUID   = 9  // 4 bytes, 7-bit little-endian
)

// CIHeader is a fixed-layout accessor over the first CIHeaderSize bytes of
// a MIDI-CI message body (SysEx frame bytes excluded). It performs no
// validation; accessors read and write fields in place.
type CIHeader []byte

// NewCIHeader allocates a header with the universal SysEx ID and MIDI-CI
// sub-ID preset.
func NewCIHeader() CIHeader {
	h := make(CIHeader, CIHeaderSize)
	h[ciOffUniversal] = UniversalNonRT
	h[ciOffSubID] = SubIDMIDICI
	return h
}

// DeviceID returns the device ID / channel field.
func (h CIHeader) DeviceID() uint8 { return h[ciOffDeviceID] }

// SetDeviceID sets the device ID / channel field.
func (h CIHeader) SetDeviceID(v uint8) { h[ciOffDeviceID] = v & 0x7F }

// Command returns the sub-ID #2 command code.
func (h CIHeader) Command() uint8 { return h[ciOffCommand] }

// SetCommand sets the sub-ID #2 command code.
func (h CIHeader) SetCommand(v uint8) { h[ciOffCommand] = v & 0x7F }

// Version returns the CI message version field.
func (h CIHeader) Version() uint8 { return h[ciOffVersion] }

// SetVersion sets the CI message version field.
func (h CIHeader) SetVersion(v uint8) { h[ciOffVersion] = v & 0x7F }

// SourceMUID returns the 28-bit source MUID, stored as four 7-bit bytes,
// least significant first.
func (h CIHeader) SourceMUID() uint32 { return h.muid(ciOffSrcMUID) }

// SetSourceMUID stores the 28-bit source MUID.
func (h CIHeader) SetSourceMUID(v uint32) { h.setMUID(ciOffSrcMUID, v) }

// DestMUID returns the 28-bit destination MUID.
func (h CIHeader) DestMUID() uint32 { return h.muid(ciOffDstMUID) }

// SetDestMUID stores the 28-bit destination MUID.
func (h CIHeader) SetDestMUID(v uint32) { h.setMUID(ciOffDstMUID, v) }

func (h CIHeader) muid(off int) uint32 {
	return uint32(h[off]) |
		uint32(h[off+1])<<7 |
		uint32(h[off+2])<<14 |
		uint32(h[off+3])<<21
}

func (h CIHeader) setMUID(off int, v uint32) {
	h[off] = byte(v) & 0x7F
	h[off+1] = byte(v>>7) & 0x7F
	h[off+2] = byte(v>>14) & 0x7F
	h[off+3] = byte(v>>21) & 0x7F
}

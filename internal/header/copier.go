package header

// CopierHeaderSize is the size of the header that backup units prepend to
// dumped images.
const CopierHeaderSize = 512

// CopierHeader identifies how a copier header was detected.
type CopierHeader int

const (
	NoCopierHeader    CopierHeader = iota
	SWCCopierHeader                // Super Wild Card identifier bytes
	SizeCopierHeader               // image size stored in the first word
	ExtraCopierHeader              // image is 512 bytes larger than a block multiple
)

var copierHeaderNames = map[CopierHeader]string{
	NoCopierHeader:    "none",
	SWCCopierHeader:   "SWC",
	SizeCopierHeader:  "size",
	ExtraCopierHeader: "extra",
}

// String returns the name of the detection method.
func (c CopierHeader) String() string {
	return copierHeaderNames[c]
}

// Offset returns the number of bytes to skip at the start of the image.
func (c CopierHeader) Offset() int {
	if c == NoCopierHeader {
		return 0
	}
	return CopierHeaderSize
}

// DetectCopierHeader checks whether data starts with a 512 byte copier
// header.
func DetectCopierHeader(data []byte) CopierHeader {
	if len(data) < CopierHeaderSize {
		return NoCopierHeader
	}

	switch {
	case data[8] == 0xAA && data[9] == 0xBB && data[10] == 0x04:
		return SWCCopierHeader

	case int(data[0])|int(data[1])<<8 == (len(data)-CopierHeaderSize)/1024/8:
		return SizeCopierHeader

	case len(data)%0x8000 == CopierHeaderSize:
		return ExtraCopierHeader

	default:
		return NoCopierHeader
	}
}

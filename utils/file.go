package utils

import (
	"bytes"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// Encoding names the character set a dataset file was decoded from.
type Encoding string

const (
	EncodingUTF8    Encoding = "utf-8"
	EncodingUTF16LE Encoding = "utf-16le"
	EncodingUTF16BE Encoding = "utf-16be"
	EncodingGB18030 Encoding = "gb18030"
	EncodingGBK     Encoding = "gbk"
	EncodingHZ      Encoding = "hz-gb-2312"
	EncodingUnknown Encoding = "unknown"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type candidate struct {
	name Encoding
	enc  encoding.Encoding
	bom  []byte
}

var bomEncodings = []candidate{
	{EncodingUTF16BE, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), []byte{0xFE, 0xFF}},
	{EncodingUTF16LE, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), []byte{0xFF, 0xFE}},
}

// Tried in order when the bytes are not valid UTF-8.
var legacyEncodings = []candidate{
	{name: EncodingGB18030, enc: simplifiedchinese.GB18030},
	{name: EncodingGBK, enc: simplifiedchinese.GBK},
	{name: EncodingHZ, enc: simplifiedchinese.HZGB2312},
}

// DecodeText converts dataset bytes to UTF-8 and reports which encoding it
// detected. Bytes no decoder accepts come back unchanged as EncodingUnknown.
func DecodeText(data []byte) (string, Encoding) {
	if rest, ok := bytes.CutPrefix(data, utf8BOM); ok {
		return string(rest), EncodingUTF8
	}
	for _, c := range bomEncodings {
		if !bytes.HasPrefix(data, c.bom) {
			continue
		}
		if b, err := c.enc.NewDecoder().Bytes(data); err == nil {
			return string(b), c.name
		}
	}
	if utf8.Valid(data) {
		return string(data), EncodingUTF8
	}
	for _, c := range legacyEncodings {
		if b, err := c.enc.NewDecoder().Bytes(data); err == nil && utf8.Valid(b) {
			return string(b), c.name
		}
	}
	return string(data), EncodingUnknown
}

// ReadText reads a dataset file as UTF-8 with LF line endings, along with the
// encoding it was stored in.
func ReadText(path string) (string, Encoding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	text, enc := DecodeText(data)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n"), enc, nil
}

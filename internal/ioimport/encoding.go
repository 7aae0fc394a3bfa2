package ioimport

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decode normalizes raw file content to UTF-8. UTF-8 (with or without
// a byte-order marker) passes through; anything else gets one GBK
// decode attempt, the encoding the source spreadsheets ship in.
func decode(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if utf8.Valid(data) {
		return data, nil
	}

	res, _, err := transform.Bytes(
		simplifiedchinese.GBK.NewDecoder(), data)
	if err != nil {
		return nil, err
	}
	return res, nil
}

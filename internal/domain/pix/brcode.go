// Package pix builds static EMV "BR Code" payloads for instant transfers.
package pix

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	gui             = "br.gov.bcb.pix"
	maxMerchantName = 25
	maxMerchantCity = 15
	maxTxID         = 25

	// MaxKeyLength keeps the merchant account template (ID 26) within the
	// two-digit EMV length.
	MaxKeyLength = 77
)

var (
	ErrMissingKey = errors.New("pix key is required")
	ErrKeyTooLong = errors.New("pix key is too long")
)

// StaticCode is the input of a static BR Code.
type StaticCode struct {
	Key          string
	MerchantName string
	MerchantCity string
	Amount       decimal.Decimal
	TxID         string
}

// Payload renders the copy-and-paste payload, CRC included.
func (c StaticCode) Payload() (string, error) {
	key := strings.TrimSpace(c.Key)
	if key == "" {
		return "", ErrMissingKey
	}
	if len(key) > MaxKeyLength {
		return "", ErrKeyTooLong
	}
	name := truncate(asciiUpper(c.MerchantName), maxMerchantName)
	if name == "" {
		name = "N/A"
	}
	city := truncate(asciiUpper(c.MerchantCity), maxMerchantCity)
	if city == "" {
		city = "BRASIL"
	}
	txid := truncate(alnum(c.TxID), maxTxID)
	if txid == "" {
		txid = "***"
	}

	var b strings.Builder
	b.WriteString(field("00", "01"))
	b.WriteString(field("26", field("00", gui)+field("01", key)))
	b.WriteString(field("52", "0000"))
	b.WriteString(field("53", "986"))
	if c.Amount.IsPositive() {
		b.WriteString(field("54", c.Amount.StringFixed(2)))
	}
	b.WriteString(field("58", "BR"))
	b.WriteString(field("59", name))
	b.WriteString(field("60", city))
	b.WriteString(field("62", field("05", txid)))
	b.WriteString("6304")

	payload := b.String()
	return payload + fmt.Sprintf("%04X", CRC16(payload)), nil
}

func field(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// CRC16 is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF).
func CRC16(data string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

func asciiUpper(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, out)
	return strings.ToUpper(strings.TrimSpace(out))
}

func alnum(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return -1
	}, s)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

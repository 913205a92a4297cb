package pix

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRC16_CheckValue(t *testing.T) {
	assert.Equal(t, uint16(0x29B1), CRC16("123456789"))
}

func TestStaticCode_Payload(t *testing.T) {
	code := StaticCode{
		Key:          "contato@padaria.com.br",
		MerchantName: "Padaria São João",
		MerchantCity: "São Paulo",
		Amount:       decimal.RequireFromString("12.5"),
		TxID:         "pedido-42",
	}

	payload, err := code.Payload()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(payload, "000201"))
	assert.Contains(t, payload, "0014br.gov.bcb.pix0122contato@padaria.com.br")
	assert.Contains(t, payload, "540512.50")
	assert.Contains(t, payload, "5916PADARIA SAO JOAO")
	assert.Contains(t, payload, "6009SAO PAULO")
	assert.Contains(t, payload, "62120508pedido42")

	body, crc := payload[:len(payload)-4], payload[len(payload)-4:]
	assert.True(t, strings.HasSuffix(body, "6304"))
	assert.Equal(t, formatCRC(CRC16(body)), crc)

	again, err := code.Payload()
	require.NoError(t, err)
	assert.Equal(t, payload, again)
}

func TestStaticCode_Defaults(t *testing.T) {
	payload, err := StaticCode{Key: "12345678900"}.Payload()
	require.NoError(t, err)
	assert.Contains(t, payload, "5903N/A")
	assert.Contains(t, payload, "6006BRASIL")
	assert.Contains(t, payload, "62070503***")
	assert.NotContains(t, payload, "5405")
}

func TestStaticCode_MissingKey(t *testing.T) {
	_, err := StaticCode{MerchantName: "x"}.Payload()
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestStaticCode_KeyLength(t *testing.T) {
	payload, err := StaticCode{Key: strings.Repeat("k", MaxKeyLength)}.Payload()
	require.NoError(t, err)
	assert.Contains(t, payload, "2699")

	_, err = StaticCode{Key: strings.Repeat("k", MaxKeyLength+1)}.Payload()
	assert.ErrorIs(t, err, ErrKeyTooLong)
}

func formatCRC(v uint16) string {
	const hex = "0123456789ABCDEF"
	return string([]byte{hex[v>>12&0xF], hex[v>>8&0xF], hex[v>>4&0xF], hex[v&0xF]})
}

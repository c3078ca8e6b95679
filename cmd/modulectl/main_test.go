package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUSBID(t *testing.T) {
	tests := []struct {
		in      string
		want    uint16
		wantErr bool
	}{
		{in: "1067", want: 0x1067},
		{in: "626D", want: 0x626D},
		{in: "0x626d", want: 0x626D},
		{in: "0xFFFF", want: 0xFFFF},
		{in: "10000", wantErr: true},
		{in: "xyz", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseUSBID(tt.in)
			if tt.wantErr {
				assert.NotNil(t, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWPMRange(t *testing.T) {
	min, max, err := parseWPMRange("40:160")
	assert.Nil(t, err)
	assert.EqualValues(t, 40, min)
	assert.EqualValues(t, 160, max)

	_, _, err = parseWPMRange("fast")
	assert.NotNil(t, err)
}

func TestParseBackground(t *testing.T) {
	bg, err := parseBackground("255,0,128")
	assert.Nil(t, err)
	assert.EqualValues(t, 255, bg.R)
	assert.EqualValues(t, 0, bg.G)
	assert.EqualValues(t, 128, bg.B)

	_, err = parseBackground("300,0,0")
	assert.NotNil(t, err)
	_, err = parseBackground("red")
	assert.NotNil(t, err)
}

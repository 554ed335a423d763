package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewMapper_UnsupportedID(t *testing.T) {
	_, err := NewMapper(99, 1, 1)
	assert.Error(t, err)
}

func Test_Mapper0_BankCounts(t *testing.T) {
	type testArgs struct {
		prgBanks, chrBanks int
		wantErr            bool
	}

	testDo := func(t *testing.T, in testArgs) {
		_, err := newMapper0(in.prgBanks, in.chrBanks)
		if in.wantErr {
			assert.Error(t, err)
		} else {
			assert.NoError(t, err)
		}
	}

	t.Run("1 prg bank, 1 chr bank", func(t *testing.T) {
		testDo(t, testArgs{prgBanks: 1, chrBanks: 1})
	})
	t.Run("2 prg banks, 1 chr bank", func(t *testing.T) {
		testDo(t, testArgs{prgBanks: 2, chrBanks: 1})
	})
	t.Run("0 prg banks rejected", func(t *testing.T) {
		testDo(t, testArgs{prgBanks: 0, chrBanks: 1, wantErr: true})
	})
	t.Run("2 chr banks rejected", func(t *testing.T) {
		testDo(t, testArgs{prgBanks: 1, chrBanks: 2, wantErr: true})
	})
	t.Run("0 chr banks accepted (chr ram)", func(t *testing.T) {
		testDo(t, testArgs{prgBanks: 1, chrBanks: 0})
	})
}

func Test_Mapper0_Read(t *testing.T) {
	m, err := newMapper0(1, 1)
	assert.NoError(t, err)

	off, ok := m.Read(0x8000).IsProgram()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x0000), off)

	off, ok = m.Read(0xFFFF).IsProgram()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x3FFF), off)

	off, ok = m.Read(0x0010).IsCharacter()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x0010), off)
}

// Test_Mapper2_BankSwitching is spec §8 end-to-end scenario 3.
func Test_Mapper2_BankSwitching(t *testing.T) {
	m, err := newMapper2(8, 1)
	assert.NoError(t, err)

	off, ok := m.Read(0x8000).IsProgram()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x00000), off)

	off, ok = m.Read(0xC000).IsProgram()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x1C000), off)

	m.Write(0x01, 0x8000)
	off, ok = m.Read(0x8000).IsProgram()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x04000), off)

	off, ok = m.Read(0xC000).IsProgram()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x1C000), off, "fixed high bank unaffected by low-bank writes")

	m.Write(0x06, 0x8000)
	off, ok = m.Read(0x8000).IsProgram()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x18000), off)

	m.Reset()
	off, ok = m.Read(0x8000).IsProgram()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x00000), off, "reset restores bank_lo=0")
	off, ok = m.Read(0xC000).IsProgram()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x1C000), off, "reset restores bank_hi=n-1")
}

func Test_Mapper2_CharacterRAMWhenNoBanks(t *testing.T) {
	m, err := newMapper2(1, 0)
	assert.NoError(t, err)

	result := m.Write(0x42, 0x0010)
	off, ok := result.IsCharacter()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x0010), off)
}

func Test_Mapper2_CharacterROMIgnoresWrites(t *testing.T) {
	m, err := newMapper2(1, 1)
	assert.NoError(t, err)

	result := m.Write(0x42, 0x0010)
	_, ok := result.IsCharacter()
	assert.False(t, ok)
}

package hexio

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWord(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		word uint32
		ok   bool
	}){
		{"00a00093", 0x00a00093, true},
		{"0x00A00093", 0x00a00093, true},
		{"0Xff", 0xff, true},
		{"ffffffff", 0xffffffff, true},
		{"100000000", 0, false},
		{"0x", 0, false},
		{"zz", 0, false},
		{"-1", 0, false},
		{"12_34", 0, false},
	}

	for _, entry := range table {
		word, err := ParseWord(entry.text)
		if entry.ok {
			assert.NoError(err, entry.text)
			assert.Equal(entry.word, word, entry.text)
		} else {
			assert.ErrorIs(err, ErrInvalidHex, entry.text)
		}
	}
}

func TestReader(t *testing.T) {
	assert := assert.New(t)

	input := strings.Join([]string{
		"00a00093",
		"",
		"  0x01400113  ",
		"nothex",
	}, "\n")

	rd := &Reader{Input: strings.NewReader(input)}
	entries := slices.Collect(rd.All())
	assert.NoError(rd.Err())

	assert.Len(entries, 3)
	assert.Equal(Entry{LineNo: 1, Text: "00a00093", Word: 0x00a00093}, entries[0])
	assert.Equal(Entry{LineNo: 3, Text: "0x01400113", Word: 0x01400113}, entries[1])
	assert.Equal(4, entries[2].LineNo)
	assert.ErrorIs(entries[2].Err, ErrInvalidHex)
}

type failReader struct{}

var errRead = errors.New("read failed")

func (failReader) Read(p []byte) (int, error) {
	return 0, errRead
}

func TestReaderError(t *testing.T) {
	assert := assert.New(t)

	rd := &Reader{Input: failReader{}}
	assert.Empty(slices.Collect(rd.All()))
	assert.ErrorIs(rd.Err(), errRead)
}

func TestWriter(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	wr := &Writer{Output: buf}

	err := wr.WriteAll(slices.Values([]uint32{0x00a00093, 0x1f, 0xffffffff}))
	assert.NoError(err)
	assert.Equal(3, wr.Count)
	assert.Equal("00a00093\n0000001f\nffffffff\n", buf.String())

	rd := &Reader{Input: buf}
	var words []uint32
	for entry := range rd.All() {
		assert.NoError(entry.Err)
		words = append(words, entry.Word)
	}
	assert.Equal([]uint32{0x00a00093, 0x1f, 0xffffffff}, words)
}

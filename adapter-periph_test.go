//go:build !tinygo

package dbgprint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"periph.io/x/conn/v3"
)

type mockConn struct {
	tx    []byte
	err   error
	limit int // transfers longer than this fail
	txs   int // successful transfers before every Tx fails
	calls int
}

func (m *mockConn) Tx(w, r []byte) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	if m.limit > 0 && len(w) > m.limit {
		return errors.New("transfer too long")
	}
	if m.txs > 0 && m.calls > m.txs {
		return errors.New("bus fault")
	}
	m.tx = append(m.tx, w...)
	return nil
}

func (m *mockConn) Duplex() conn.Duplex { return conn.Half }
func (m *mockConn) String() string      { return "mockConn" }
func (m *mockConn) Halt() error         { return nil }

func TestConnChannel(t *testing.T) {
	m := &mockConn{}
	ch := ConnChannel{Conn: m}

	assert.Equal(t, 5, ch.Write([]byte("hello")))
	assert.Zero(t, ch.Write(nil))
	assert.Equal(t, []byte("hello"), m.tx)
	assert.Equal(t, "ConnChannel(mockConn)", ch.String())
}

func TestConnChannelSplitsLongWrites(t *testing.T) {
	m := &mockConn{limit: 4}
	sink := NewProbe(ConnChannel{Conn: m, MaxTx: 4}, nil)

	sink.WriteBytes([]byte("hello world"))
	assert.Equal(t, []byte("hello world"), m.tx)
	assert.Equal(t, 3, m.calls)
}

func TestConnChannelDefaultMaxTx(t *testing.T) {
	m := &mockConn{limit: DefaultConnMaxTx}
	data := pattern(2*DefaultConnMaxTx + 1)

	assert.Equal(t, len(data), ConnChannel{Conn: m}.Write(data))
	assert.Equal(t, data, m.tx)
	assert.Equal(t, 3, m.calls)
}

func TestConnChannelReportsPartialTransfer(t *testing.T) {
	m := &mockConn{txs: 1}
	ch := ConnChannel{Conn: m, MaxTx: 4}

	assert.Equal(t, 4, ch.Write([]byte("hello world")))
	assert.Equal(t, []byte("hell"), m.tx)
}

func TestConnChannelErrorDropsOutput(t *testing.T) {
	m := &mockConn{err: errors.New("bus fault")}
	sink := NewProbe(ConnChannel{Conn: m}, nil)

	sink.WriteBytes([]byte("lost"))
	assert.Empty(t, m.tx)
}

func TestMapRegisterRejectsBadAddress(t *testing.T) {
	_, err := mapRegister(0)
	assert.True(t, errors.Is(err, ErrUnsupported))
	_, err = mapRegister(0x6004_3002)
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestROMRoutineUnsupportedOnHost(t *testing.T) {
	f, err := newROMRoutine(0x4000_0068)
	assert.Nil(t, f)
	assert.True(t, errors.Is(err, ErrUnsupported))
}

package network

import (
	"context"
	"errors"
	"fmt"
	"github.com/haikoschol/nbtstat/internal/nbstat"
	"io"
	"log"
	"net"
	"os"
	"strconv"
	"time"
)

const dialTimeout = time.Second * 5

// Logger receives send and receive summaries. It discards everything unless
// the caller points it somewhere.
var Logger = log.New(io.Discard, "", log.LstdFlags)

// Transport moves one request datagram out and one response datagram in.
type Transport interface {
	Send(b []byte) (int, error)
	Receive(size int, timeout time.Duration) ([]byte, net.Addr, error)
}

type UDPTransport struct {
	conn net.Conn
	peer string
}

// Dial resolves target and opens a UDP socket connected to it.
func Dial(ctx context.Context, target string, port uint16) (*UDPTransport, error) {
	if target == "" {
		return nil, fmt.Errorf("%w: empty target", nbstat.ErrInvalidArgument)
	}
	peer := net.JoinHostPort(target, strconv.Itoa(int(port)))

	var dialer net.Dialer
	dialer.Timeout = dialTimeout
	conn, err := dialer.DialContext(ctx, "udp4", peer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", nbstat.ErrSocket, err)
	}

	return &UDPTransport{
		conn: conn,
		peer: peer,
	}, nil
}

func (t *UDPTransport) Send(b []byte) (int, error) {
	n, err := t.conn.Write(b)
	if err != nil {
		return n, err
	}
	Logger.Printf("sent %d bytes to %s", n, t.peer)
	return n, nil
}

// Receive waits at most timeout for one datagram of up to size bytes.
func (t *UDPTransport) Receive(size int, timeout time.Duration) ([]byte, net.Addr, error) {
	if err := t.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", nbstat.ErrInternal, err)
	}

	buf := make([]byte, size)
	n, err := t.conn.Read(buf)
	if errors.Is(err, os.ErrDeadlineExceeded) {
		Logger.Printf("no response from %s within %s", t.peer, timeout)
		return nil, nil, fmt.Errorf("%w: no response from %s within %s", nbstat.ErrTimeout, t.peer, timeout)
	} else if err != nil {
		return nil, nil, fmt.Errorf("%w: reading from %s failed: %w", nbstat.ErrInternal, t.peer, err)
	}

	Logger.Printf("received %d bytes from %s", n, t.peer)
	return buf[:n], t.conn.RemoteAddr(), nil
}

func (t *UDPTransport) Close() error {
	return t.conn.Close()
}

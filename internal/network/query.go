package network

import (
	"context"
	"fmt"
	"github.com/haikoschol/nbtstat/internal/nbstat"
	"math/rand"
	"time"
)

const (
	DefaultPort    = 137
	DefaultTimeout = 3000 * time.Millisecond

	maxTimeoutMillis  = 10000
	receiveBufferSize = 1024
)

// NormalizeTimeout turns a timeout in milliseconds into a duration. Values
// outside (0, 10000] fall back to DefaultTimeout.
func NormalizeTimeout(ms int) time.Duration {
	if ms <= 0 || ms > maxTimeoutMillis {
		return DefaultTimeout
	}
	return time.Duration(ms) * time.Millisecond
}

// NormalizePort falls back to DefaultPort for anything that is not a valid
// UDP port.
func NormalizePort(port int) uint16 {
	if port <= 0 || port > 0xFFFF {
		return DefaultPort
	}
	return uint16(port)
}

// Query sends one node status request over tr and decodes the answer. There
// are no retries.
func Query(tr Transport, timeout time.Duration) (*nbstat.Result, error) {
	req := nbstat.NewRequest(uint16(rand.Uint32()))

	data, err := req.Bytes()
	if err != nil {
		return nil, err
	}

	sent, err := tr.Send(data)
	if err != nil {
		return nil, fmt.Errorf("%w: sending request failed: %w", nbstat.ErrInternal, err)
	}
	if sent != len(data) {
		return nil, fmt.Errorf("%w: sent %d of %d bytes", nbstat.ErrInternal, sent, len(data))
	}

	raw, from, err := tr.Receive(receiveBufferSize, timeout)
	if err != nil {
		return nil, err
	}

	resp, err := nbstat.DecodeResponse(raw)
	if err != nil {
		return nil, err
	}

	if resp.Header.TransactionID != req.Header.TransactionID {
		return nil, fmt.Errorf(
			"%w: transaction id 0x%04X does not match request 0x%04X",
			nbstat.ErrProtocol,
			resp.Header.TransactionID,
			req.Header.TransactionID,
		)
	}

	Logger.Printf("decoded %d names from %s", len(resp.Names), from)
	return nbstat.NewResult(from, resp), nil
}

// QueryHost runs a complete node status query against target.
func QueryHost(ctx context.Context, target string, port int, timeoutMillis int) (*nbstat.Result, error) {
	tr, err := Dial(ctx, target, NormalizePort(port))
	if err != nil {
		return nil, err
	}
	defer tr.Close()

	return Query(tr, NormalizeTimeout(timeoutMillis))
}
